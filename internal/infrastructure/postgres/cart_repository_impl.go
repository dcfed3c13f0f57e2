package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// ensureCart returns the user's cart id, creating the cart row on first use.
func ensureCart(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	var cartID int64
	err := tx.QueryRow(ctx, `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID).Scan(&cartID)
	return cartID, err
}

func (r *CartRepository) AddItem(ctx context.Context, userID, gameID int64, qty int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the catalog row so the stock check and the upsert are consistent
	// under concurrent adds.
	var price int64
	var stock int
	err = tx.QueryRow(ctx, `
		SELECT price, stock FROM games WHERE id = $1 AND active FOR UPDATE
	`, gameID).Scan(&price, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return err
	}

	var current int
	err = tx.QueryRow(ctx, `
		SELECT quantity FROM cart_items WHERE cart_id = $1 AND game_id = $2 FOR UPDATE
	`, cartID, gameID).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if current+qty > stock {
		return repository.ErrInsufficientStock
	}

	// One line per (cart, game): re-adding increments quantity in place. The
	// unit price is snapshotted on first insert and never re-read.
	_, err = tx.Exec(ctx, `
		INSERT INTO cart_items (cart_id, game_id, unit_price, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, game_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, gameID, price, qty)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CartRepository) Items(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ci.id, ci.cart_id, ci.game_id, g.name, ci.unit_price, ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN games g ON g.id = ci.game_id
		WHERE c.user_id = $1
		ORDER BY ci.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.GameID, &it.GameName, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CartRepository) SetQuantity(ctx context.Context, userID, gameID int64, qty int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var stock int
	err = tx.QueryRow(ctx, `SELECT stock FROM games WHERE id = $1 FOR UPDATE`, gameID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	if qty > stock {
		return repository.ErrInsufficientStock
	}

	res, err := tx.Exec(ctx, `
		UPDATE cart_items ci SET quantity = $1
		FROM carts c
		WHERE ci.cart_id = c.id AND c.user_id = $2 AND ci.game_id = $3
	`, qty, userID, gameID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, gameID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.game_id = $2
	`, userID, gameID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1
	`, userID)
	return err
}

var _ repository.CartRepository = (*CartRepository)(nil)
