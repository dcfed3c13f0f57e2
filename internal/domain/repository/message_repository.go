package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

type MessageRepository interface {
	// Create inserts the message and increments the sender's message counter.
	Create(ctx context.Context, m *entity.Message) error
	GetByID(ctx context.Context, id int64) (*entity.Message, error)
	ListGroup(ctx context.Context) ([]entity.Message, error)
	ListPrivate(ctx context.Context, userID, otherID int64) ([]entity.Message, error)
	Conversations(ctx context.Context, userID int64) ([]entity.Conversation, error)
	MarkRead(ctx context.Context, recipientID int64) error
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
