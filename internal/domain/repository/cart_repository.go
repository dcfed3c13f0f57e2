package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

// CartRepository persists per-user carts. AddItem and SetQuantity run inside a
// single transaction that locks the catalog row, so concurrent adds for the
// same (user, game) pair converge on one line instead of duplicating it.
type CartRepository interface {
	// AddItem upserts a line for (user, game): existing lines get their
	// quantity incremented, new lines snapshot the current catalog price.
	// Returns ErrNotFound for an unknown game, ErrInsufficientStock when the
	// resulting quantity exceeds live stock.
	AddItem(ctx context.Context, userID, gameID int64, qty int) error
	Items(ctx context.Context, userID int64) ([]entity.CartItem, error)
	SetQuantity(ctx context.Context, userID, gameID int64, qty int) error
	RemoveItem(ctx context.Context, userID, gameID int64) error
	Clear(ctx context.Context, userID int64) error
}
