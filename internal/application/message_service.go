package application

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

// MessageService serves the global group chat and private threads.
type MessageService struct {
	Messages repo.MessageRepository
	Users    repo.UserRepository
	Images   FileStore
	Logger   *logrus.Logger
}

func NewMessageService(messages repo.MessageRepository, users repo.UserRepository, images FileStore, logger *logrus.Logger) *MessageService {
	return &MessageService{Messages: messages, Users: users, Images: images, Logger: logger}
}

// SendGroup posts a message visible to everyone.
func (s *MessageService) SendGroup(ctx context.Context, senderID int64, content, imageURL string) (*entity.Message, error) {
	return s.send(ctx, senderID, nil, content, imageURL)
}

// SendPrivate posts a direct message; the recipient must exist.
func (s *MessageService) SendPrivate(ctx context.Context, senderID, recipientID int64, content, imageURL string) (*entity.Message, error) {
	if recipientID == senderID {
		return nil, apperr.New(apperr.BadRequest, "No puedes enviarte mensajes a ti mismo")
	}
	if _, err := s.Users.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Destinatario no encontrado")
		}
		return nil, err
	}
	return s.send(ctx, senderID, &recipientID, content, imageURL)
}

func (s *MessageService) send(ctx context.Context, senderID int64, recipientID *int64, content, imageURL string) (*entity.Message, error) {
	if content == "" && imageURL == "" {
		return nil, apperr.New(apperr.BadRequest, "El mensaje no puede estar vacío")
	}
	m := &entity.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		ImageURL:    imageURL,
		Group:       recipientID == nil,
		Kind:        entity.KindFor(content, imageURL),
	}
	if err := s.Messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.Messages.GetByID(ctx, m.ID)
}

func (s *MessageService) GroupHistory(ctx context.Context) ([]entity.Message, error) {
	return s.Messages.ListGroup(ctx)
}

// PrivateHistory returns the thread with another user and marks the caller's
// pending messages as read.
func (s *MessageService) PrivateHistory(ctx context.Context, userID, otherID int64) ([]entity.Message, error) {
	msgs, err := s.Messages.ListPrivate(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if err := s.Messages.MarkRead(ctx, userID); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("mark read failed")
	}
	return msgs, nil
}

func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]entity.Conversation, error) {
	return s.Messages.Conversations(ctx, userID)
}

func (s *MessageService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.Messages.CountUnread(ctx, userID)
}

func (s *MessageService) MarkRead(ctx context.Context, userID int64) error {
	return s.Messages.MarkRead(ctx, userID)
}

// Delete removes a message if the caller sent it or moderates.
func (s *MessageService) Delete(ctx context.Context, callerID int64, role entity.Role, id int64) error {
	m, err := s.Messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Mensaje no encontrado")
		}
		return err
	}
	if m.SenderID != callerID && !role.IsModerator() {
		return apperr.New(apperr.Forbidden, "No puedes eliminar este mensaje")
	}
	return s.Messages.Delete(ctx, id)
}

// UploadImage stores a chat image and returns its public URL.
func (s *MessageService) UploadImage(ctx context.Context, senderID int64, filename, contentType string, r io.Reader) (string, error) {
	url, err := s.Images.Upload(ctx, helpers.ObjectPath("mensajes", senderID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", senderID).Error("image upload failed")
		return "", apperr.Wrap(apperr.Internal, err, "no se pudo subir la imagen")
	}
	return url, nil
}
