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

func newGameService(games *fakeGameRepo) *GameService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewGameService(games, nil, "juegos", &fakeStore{}, logger)
}

func TestCatalogWritesAreModeratorOnly(t *testing.T) {
	svc := newGameService(newFakeGameRepo())
	ctx := context.Background()
	g := &entity.Game{Name: "Elden Ring", Genre: "RPG", Price: 49990, Stock: 10}

	err := svc.Create(ctx, entity.RoleUser, g)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.Create(ctx, entity.RoleModerator, g))
	assert.True(t, g.Active)
	assert.NotZero(t, g.ID)

	err = svc.Update(ctx, entity.RoleUser, g)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}

func TestCatalogRejectsNegativeValues(t *testing.T) {
	svc := newGameService(newFakeGameRepo())
	ctx := context.Background()

	err := svc.Create(ctx, entity.RoleModerator, &entity.Game{Name: "X", Price: -1})
	assert.Equal(t, apperr.BadRequest, apperr.KindOf(err))

	err = svc.Create(ctx, entity.RoleModerator, &entity.Game{Name: "X", Stock: -1})
	assert.Equal(t, apperr.BadRequest, apperr.KindOf(err))
}

func TestSearchFallsBackWithoutIndex(t *testing.T) {
	games := newFakeGameRepo()
	svc := newGameService(games)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, entity.RoleModerator, &entity.Game{Name: "Elden Ring", Genre: "RPG", Price: 49990, Stock: 10}))
	require.NoError(t, svc.Create(ctx, entity.RoleModerator, &entity.Game{Name: "Stardew Valley", Genre: "Simulación", Price: 9990, Stock: 50}))

	found, err := svc.Search(ctx, "elden")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Elden Ring", found[0].Name)

	found, err = svc.Search(ctx, "rpg")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestGetUnknownGame(t *testing.T) {
	svc := newGameService(newFakeGameRepo())

	_, err := svc.Get(context.Background(), 404)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
