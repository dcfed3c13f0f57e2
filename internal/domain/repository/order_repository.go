package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

// OrderRepository persists checkout orders. Every state transition runs in a
// transaction that re-checks the current state under a row lock, so terminal
// orders can never be reopened.
type OrderRepository interface {
	// CreateFromCart inserts the order and clears the user's cart atomically.
	// Live stock is re-validated under lock; ErrInsufficientStock aborts.
	CreateFromCart(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Order, error)
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)
	// MarkInReview stores the payment proof and moves pendiente_pago to
	// en_revision. Any other state returns ErrInvalidState.
	MarkInReview(ctx context.Context, orderID int64, proofURL string) (*entity.Order, error)
	// Review resolves an en_revision order. Approval decrements catalog stock
	// in the same transaction; ErrInvalidState if not reviewable.
	Review(ctx context.Context, orderID, moderatorID int64, approve bool, comment string) (*entity.Order, error)
	// Cancel moves pendiente_pago to cancelada; ErrInvalidState otherwise.
	Cancel(ctx context.Context, orderID int64) (*entity.Order, error)
}

type BankConfigRepository interface {
	Get(ctx context.Context) (*entity.BankConfig, error)
}
