package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

const presenceTTL = 24 * time.Hour

// AuthService handles registration, login and logout. Sessions are stateless
// bearer tokens; logout only flips the connection flag, issued tokens remain
// valid until expiry.
type AuthService struct {
	Users           repo.UserRepository
	Tokens          *helpers.TokenService
	Redis           *redis.Client
	Logger          *logrus.Logger
	ModeratorEmails []string
	ModeratorCodes  []string
}

func NewAuthService(users repo.UserRepository, tokens *helpers.TokenService, rdb *redis.Client, logger *logrus.Logger, modEmails, modCodes []string) *AuthService {
	return &AuthService{
		Users:           users,
		Tokens:          tokens,
		Redis:           rdb,
		Logger:          logger,
		ModeratorEmails: modEmails,
		ModeratorCodes:  modCodes,
	}
}

// AuthResult pairs an issued token with the authenticated user.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// grantedRole decides the role at registration: a valid moderator code or an
// allow-listed email (case-insensitive) grants moderator.
func (s *AuthService) grantedRole(email, code string) entity.Role {
	for _, e := range s.ModeratorEmails {
		if strings.EqualFold(e, email) {
			return entity.RoleModerator
		}
	}
	if code != "" {
		for _, c := range s.ModeratorCodes {
			if c == code {
				return entity.RoleModerator
			}
		}
	}
	return entity.RoleUser
}

// Register creates an account and logs it in. Duplicate emails conflict.
func (s *AuthService) Register(ctx context.Context, email, password, username, moderatorCode string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:      email,
		Password:   hash,
		Username:   username,
		Role:       s.grantedRole(email, moderatorCode),
		Online:     true,
		LastSeenAt: time.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "El email ya está registrado")
		}
		return nil, err
	}

	if err := helpers.SetPresence(ctx, s.Redis, u.ID, true, presenceTTL); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("presence update failed")
	}
	return s.issue(u)
}

// Login authenticates by email and password. Banned accounts are refused with
// the stored ban reason.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Usuario no encontrado")
		}
		return nil, err
	}
	if u.Banned {
		msg := "Tu cuenta ha sido suspendida"
		if u.BanReason != "" {
			msg += ". Razón: " + u.BanReason
		}
		return nil, apperr.New(apperr.Forbidden, "%s", msg)
	}
	if !helpers.VerifyPassword(u.Password, password) {
		return nil, apperr.New(apperr.Unauthorized, "Credenciales inválidas")
	}

	if err := s.Users.SetPresence(ctx, u.ID, true); err != nil {
		return nil, err
	}
	u.Online = true
	u.LastSeenAt = time.Now()
	if err := helpers.SetPresence(ctx, s.Redis, u.ID, true, presenceTTL); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("presence update failed")
	}
	return s.issue(u)
}

// Logout marks the user disconnected. The bearer token is not revoked.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.Users.SetPresence(ctx, userID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Usuario no encontrado")
		}
		return err
	}
	if err := helpers.SetPresence(ctx, s.Redis, userID, false, 0); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("presence update failed")
	}
	return nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u}, nil
}
