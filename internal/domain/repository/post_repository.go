package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

type PostRepository interface {
	// Create inserts the post and increments the author's post counter.
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	ListAnnouncements(ctx context.Context) ([]entity.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error)
	AddLike(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	// CreateComment inserts the comment and bumps the post's comment counter
	// and the author's message counter in one transaction.
	CreateComment(ctx context.Context, c *entity.Comment) error
	CommentsByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
	GetComment(ctx context.Context, id int64) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
