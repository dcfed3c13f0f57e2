package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewAuthService(users, helpers.NewTokenService("test-secret", time.Hour), nil, logger,
		[]string{"Staff@Gaming.cl"}, []string{"MOD-2024"})
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	res, err := svc.Register(context.Background(), "gamer@example.com", "secret123", "gamer", "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, entity.RoleUser, res.User.Role)
	assert.True(t, res.User.Online)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "gamer@example.com", "secret123", "gamer", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "GAMER@example.com", "secret123", "otro", "")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestRegisterModeratorGrants(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	t.Run("allow-listed email, case-insensitive", func(t *testing.T) {
		res, err := svc.Register(ctx, "staff@gaming.cl", "secret123", "staff", "")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleModerator, res.User.Role)
	})

	t.Run("valid code", func(t *testing.T) {
		res, err := svc.Register(ctx, "otra@example.com", "secret123", "otra", "MOD-2024")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleModerator, res.User.Role)
	})

	t.Run("wrong code stays user", func(t *testing.T) {
		res, err := svc.Register(ctx, "tercera@example.com", "secret123", "tercera", "nope")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, res.User.Role)
	})
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "gamer@example.com", "secret123", "gamer", "")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		res, err := svc.Login(ctx, "gamer@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.User.Online)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie@example.com", "secret123")
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "gamer@example.com", "incorrecta")
		assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	})

	t.Run("banned account carries the reason", func(t *testing.T) {
		require.NoError(t, users.SetBan(ctx, 1, true, "spam en el foro"))
		_, err := svc.Login(ctx, "gamer@example.com", "secret123")
		assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
		assert.Contains(t, apperr.MessageOf(err), "spam en el foro")
	})
}

func TestLogoutClearsPresence(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	res, err := svc.Register(ctx, "gamer@example.com", "secret123", "gamer", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.User.ID))
	u, err := users.GetByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.False(t, u.Online)

	err = svc.Logout(ctx, 9999)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
