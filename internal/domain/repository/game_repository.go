package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

type GameRepository interface {
	Create(ctx context.Context, g *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
	ListActive(ctx context.Context) ([]entity.Game, error)
	ListByGenre(ctx context.Context, genre string) ([]entity.Game, error)
	Update(ctx context.Context, g *entity.Game) error
}
