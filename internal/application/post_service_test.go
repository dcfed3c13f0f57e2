package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/pkg/apperr"
)

func newPostService(posts *fakePostRepo) *PostService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPostService(posts, nil, "publicaciones", &fakeStore{}, logger)
}

func TestAnnouncementIsModeratorOnly(t *testing.T) {
	svc := newPostService(newFakePostRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, entity.RoleUser, "Mantención", "El servidor cae a las 22:00", "", true)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	p, err := svc.Create(ctx, 2, entity.RoleModerator, "Mantención", "El servidor cae a las 22:00", "", true)
	require.NoError(t, err)
	assert.True(t, p.Announcement)

	anns, err := svc.ListAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, anns, 1)
}

func TestPostDeleteOwnerOrModerator(t *testing.T) {
	posts := newFakePostRepo()
	svc := newPostService(posts)
	ctx := context.Background()

	p, err := svc.Create(ctx, 1, entity.RoleUser, "Hola", "primer post", "", false)
	require.NoError(t, err)

	err = svc.Delete(ctx, 2, entity.RoleUser, p.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.Delete(ctx, 2, entity.RoleModerator, p.ID))

	err = svc.Delete(ctx, 1, entity.RoleUser, p.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCommentFlow(t *testing.T) {
	posts := newFakePostRepo()
	svc := newPostService(posts)
	ctx := context.Background()

	p, err := svc.Create(ctx, 1, entity.RoleUser, "Hola", "primer post", "", false)
	require.NoError(t, err)

	c, err := svc.Comment(ctx, 3, p.ID, "buen post")
	require.NoError(t, err)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	// Author of the comment can remove it, a stranger cannot.
	err = svc.DeleteComment(ctx, 9, entity.RoleUser, c.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	require.NoError(t, svc.DeleteComment(ctx, 3, entity.RoleUser, c.ID))

	_, err = svc.Comment(ctx, 3, 999, "post fantasma")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestLikeUnknownPost(t *testing.T) {
	svc := newPostService(newFakePostRepo())

	err := svc.Like(context.Background(), 404)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
