package application

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/internal/infrastructure/search"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

// PostService serves the forum: publications, likes and comments. Deletion is
// owner-or-moderator; announcements are moderator-only.
type PostService struct {
	Posts   repo.PostRepository
	Index   *search.Indexer
	ESIndex string
	Images  FileStore
	Logger  *logrus.Logger
}

func NewPostService(posts repo.PostRepository, index *search.Indexer, esIndex string, images FileStore, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Index: index, ESIndex: esIndex, Images: images, Logger: logger}
}

func (s *PostService) Create(ctx context.Context, authorID int64, role entity.Role, title, content, imageURL string, announcement bool) (*entity.Post, error) {
	if announcement && !role.IsModerator() {
		return nil, apperr.New(apperr.Forbidden, "Solo los moderadores pueden crear anuncios")
	}
	p := &entity.Post{
		AuthorID:     authorID,
		Title:        title,
		Content:      content,
		ImageURL:     imageURL,
		Announcement: announcement,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.reindex(ctx, p)
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

func (s *PostService) ListAnnouncements(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.ListAnnouncements(ctx)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error) {
	return s.Posts.ListByAuthor(ctx, authorID)
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Publicación no encontrada")
		}
		return nil, err
	}
	return p, nil
}

// Search queries the search index and hydrates hits from the primary store.
func (s *PostService) Search(ctx context.Context, query string) ([]entity.Post, error) {
	if s.Index == nil {
		return s.Posts.List(ctx)
	}
	ids, err := s.Index.SearchIDs(ctx, s.ESIndex, query, []string{"titulo^2", "contenido"})
	if err != nil {
		s.Logger.WithError(err).Warn("search index unavailable")
		return nil, apperr.Wrap(apperr.Internal, err, "búsqueda no disponible")
	}
	posts := make([]entity.Post, 0, len(ids))
	for _, id := range ids {
		p, err := s.Posts.GetByID(ctx, id)
		if err != nil {
			continue
		}
		posts = append(posts, *p)
	}
	return posts, nil
}

func (s *PostService) Like(ctx context.Context, id int64) error {
	if err := s.Posts.AddLike(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Publicación no encontrada")
		}
		return err
	}
	return nil
}

// Delete removes a post if the caller wrote it or moderates.
func (s *PostService) Delete(ctx context.Context, callerID int64, role entity.Role, id int64) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != callerID && !role.IsModerator() {
		return apperr.New(apperr.Forbidden, "No puedes eliminar esta publicación")
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, s.ESIndex, id); err != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("search index delete failed")
		}
	}
	return nil
}

func (s *PostService) Comment(ctx context.Context, authorID, postID int64, content string) (*entity.Comment, error) {
	c := &entity.Comment{PostID: postID, AuthorID: authorID, Content: content}
	if err := s.Posts.CreateComment(ctx, c); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Publicación no encontrada")
		}
		return nil, err
	}
	return c, nil
}

func (s *PostService) Comments(ctx context.Context, postID int64) ([]entity.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}
	return s.Posts.CommentsByPost(ctx, postID)
}

// DeleteComment removes a comment if the caller wrote it or moderates.
func (s *PostService) DeleteComment(ctx context.Context, callerID int64, role entity.Role, commentID int64) error {
	c, err := s.Posts.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Comentario no encontrado")
		}
		return err
	}
	if c.AuthorID != callerID && !role.IsModerator() {
		return apperr.New(apperr.Forbidden, "No puedes eliminar este comentario")
	}
	return s.Posts.DeleteComment(ctx, commentID)
}

// UploadImage stores a post image and returns its public URL for attachment.
func (s *PostService) UploadImage(ctx context.Context, authorID int64, filename, contentType string, r io.Reader) (string, error) {
	url, err := s.Images.Upload(ctx, helpers.ObjectPath("publicaciones", authorID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", authorID).Error("image upload failed")
		return "", apperr.Wrap(apperr.Internal, err, "no se pudo subir la imagen")
	}
	return url, nil
}

func (s *PostService) reindex(ctx context.Context, p *entity.Post) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, s.ESIndex, p.ID, p); err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("search index update failed")
	}
}
