package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/mailer"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUserRepo, *fakePublisher) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	users := newFakeUserRepo()
	pub := &fakePublisher{}
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &entity.User{Email: "mod@example.com", Username: "mod", Role: entity.RoleModerator}))
	require.NoError(t, users.Create(ctx, &entity.User{Email: "gamer@example.com", Username: "gamer", Role: entity.RoleUser}))
	return NewUserService(users, nil, &fakeStore{}, pub, logger), users, pub
}

func TestBanQueuesNotification(t *testing.T) {
	svc, users, pub := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Ban(ctx, 1, 2, "lenguaje ofensivo"))

	u, err := users.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, u.Banned)
	assert.Equal(t, "lenguaje ofensivo", u.BanReason)

	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0].(mailer.EmailJob)
	assert.Equal(t, "account_banned", job.Kind)
	assert.Equal(t, "gamer@example.com", job.To)
}

func TestBanGuards(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	// No self-bans, no banning other moderators.
	assert.Equal(t, apperr.BadRequest, apperr.KindOf(svc.Ban(ctx, 1, 1, "x")))
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(svc.Ban(ctx, 2, 1, "x")))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(svc.Ban(ctx, 1, 99, "x")))
}

func TestUnban(t *testing.T) {
	svc, users, _ := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Ban(ctx, 1, 2, "spam"))
	require.NoError(t, svc.Unban(ctx, 1, 2))

	u, err := users.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, u.Banned)
	assert.Empty(t, u.BanReason)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	u, err := svc.UpdateProfile(ctx, 2, ProfileUpdate{Username: "gamer_pro", Bio: "main support", SteamID: "steam-77"})
	require.NoError(t, err)
	assert.Equal(t, "gamer_pro", u.Username)
	assert.Equal(t, "main support", u.Bio)
	assert.Equal(t, "steam-77", u.SteamID)

	// Empty username keeps the current one.
	u, err = svc.UpdateProfile(ctx, 2, ProfileUpdate{Bio: "nueva bio"})
	require.NoError(t, err)
	assert.Equal(t, "gamer_pro", u.Username)
	assert.Equal(t, "nueva bio", u.Bio)
}
