package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/domain/repository"
)

type GameRepository struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) *GameRepository {
	return &GameRepository{pool: pool}
}

const gameColumns = `id, name, description, genre, price, stock, image_url,
	platforms, developer, release_date, rating, active, created_at, updated_at`

func scanGame(row pgx.Row) (*entity.Game, error) {
	g := &entity.Game{}
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Genre, &g.Price, &g.Stock,
		&g.ImageURL, &g.Platforms, &g.Developer, &g.ReleaseDate, &g.Rating,
		&g.Active, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *GameRepository) Create(ctx context.Context, g *entity.Game) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO games (name, description, genre, price, stock, image_url,
			platforms, developer, release_date, rating, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, g.Name, g.Description, g.Genre, g.Price, g.Stock, g.ImageURL,
		g.Platforms, g.Developer, g.ReleaseDate, g.Rating, g.Active)
	return row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (*entity.Game, error) {
	return scanGame(r.pool.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, id))
}

func (r *GameRepository) ListActive(ctx context.Context) ([]entity.Game, error) {
	return r.listWhere(ctx, `WHERE active ORDER BY name`)
}

func (r *GameRepository) ListByGenre(ctx context.Context, genre string) ([]entity.Game, error) {
	return r.listWhere(ctx, `WHERE active AND genre ILIKE '%' || $1 || '%' ORDER BY name`, genre)
}

func (r *GameRepository) listWhere(ctx context.Context, clause string, args ...any) ([]entity.Game, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+gameColumns+` FROM games `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []entity.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

func (r *GameRepository) Update(ctx context.Context, g *entity.Game) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE games
		SET name = $1, description = $2, genre = $3, price = $4, stock = $5,
		    image_url = $6, platforms = $7, developer = $8, release_date = $9,
		    rating = $10, active = $11, updated_at = now()
		WHERE id = $12
	`, g.Name, g.Description, g.Genre, g.Price, g.Stock, g.ImageURL,
		g.Platforms, g.Developer, g.ReleaseDate, g.Rating, g.Active, g.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.GameRepository = (*GameRepository)(nil)
