package application

import (
	"context"
	"errors"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
	"github.com/orugalabs/gaming-server/pkg/mailer"
)

// UserService serves profiles plus the moderation actions on accounts.
type UserService struct {
	Users     repo.UserRepository
	Redis     *redis.Client
	Avatars   FileStore
	Publisher JobPublisher
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, rdb *redis.Client, avatars FileStore, pub JobPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Redis: rdb, Avatars: avatars, Publisher: pub, Logger: logger}
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Usuario no encontrado")
		}
		return nil, err
	}
	// Redis presence wins over the persisted flag when reachable.
	if s.Redis != nil {
		u.Online = helpers.IsOnline(ctx, s.Redis, u.ID)
	}
	return u, nil
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	Username  string
	Bio       string
	SteamID   string
	DiscordID string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*entity.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if upd.Username != "" {
		u.Username = upd.Username
	}
	u.Bio = upd.Bio
	u.SteamID = upd.SteamID
	u.DiscordID = upd.DiscordID
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "El nombre de usuario ya está en uso")
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores a profile picture and attaches its URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, filename, contentType string, r io.Reader) (*entity.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.Avatars.Upload(ctx, helpers.ObjectPath("avatares", userID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("avatar upload failed")
		return nil, apperr.Wrap(apperr.Internal, err, "no se pudo subir el avatar")
	}
	u.AvatarURL = url
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns every account; moderation console only.
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

// Ban suspends an account. Moderators cannot be banned, and the target is
// notified by email through the background worker.
func (s *UserService) Ban(ctx context.Context, moderatorID, targetID int64, reason string) error {
	if moderatorID == targetID {
		return apperr.New(apperr.BadRequest, "No puedes suspender tu propia cuenta")
	}
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role.IsModerator() {
		return apperr.New(apperr.Forbidden, "No puedes suspender a un moderador")
	}
	if err := s.Users.SetBan(ctx, targetID, true, reason); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{
		"moderator_id": moderatorID,
		"user_id":      targetID,
	}).Info("account banned")

	job := mailer.EmailJob{
		To:   target.Email,
		Kind: "account_banned",
		Data: map[string]any{"razon": reason},
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("user_id", targetID).Warn("email job publish failed")
	}
	return nil
}

// Unban lifts a suspension.
func (s *UserService) Unban(ctx context.Context, moderatorID, targetID int64) error {
	if _, err := s.Get(ctx, targetID); err != nil {
		return err
	}
	if err := s.Users.SetBan(ctx, targetID, false, ""); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{
		"moderator_id": moderatorID,
		"user_id":      targetID,
	}).Info("account unbanned")
	return nil
}
