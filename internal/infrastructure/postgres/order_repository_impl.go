package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, order_number, user_id, items, subtotal, discount, total,
	status, payment_method, proof_url, proof_uploaded_at, moderator_id,
	moderator_comment, reviewed_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	o := &entity.Order{}
	var items []byte
	err := row.Scan(&o.ID, &o.Number, &o.UserID, &items, &o.Subtotal, &o.Discount,
		&o.Total, &o.Status, &o.PaymentMethod, &o.ProofURL, &o.ProofUploadedAt,
		&o.ModeratorID, &o.ModeratorComment, &o.ReviewedAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) CreateFromCart(ctx context.Context, o *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Re-validate live stock under lock; the cart was read outside this tx.
	for _, it := range o.Items {
		var stock int
		err := tx.QueryRow(ctx, `SELECT stock FROM games WHERE id = $1 FOR UPDATE`, it.GameID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repository.ErrNotFound
			}
			return err
		}
		if stock < it.Quantity {
			return repository.ErrInsufficientStock
		}
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, items, subtotal, discount, total,
			status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, o.Number, o.UserID, items, o.Subtotal, o.Discount, o.Total, o.Status, o.PaymentMethod)
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	// The cart is consumed by checkout: clearing it here keeps one cart from
	// producing two pending orders.
	if _, err := tx.Exec(ctx, `
		DELETE FROM cart_items ci USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1
	`, o.UserID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	return r.list(ctx, `WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return r.list(ctx, `WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *OrderRepository) list(ctx context.Context, clause string, args ...any) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// lockOrder reads an order row FOR UPDATE inside tx.
func lockOrder(ctx context.Context, tx pgx.Tx, id int64) (*entity.Order, error) {
	return scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
}

func (r *OrderRepository) MarkInReview(ctx context.Context, orderID int64, proofURL string) (*entity.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.CanUploadProof() {
		return nil, repository.ErrInvalidState
	}
	row := tx.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, proof_url = $2, proof_uploaded_at = now(), updated_at = now()
		WHERE id = $3
		RETURNING `+orderColumns+`
	`, entity.OrderInReview, proofURL, orderID)
	updated, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *OrderRepository) Review(ctx context.Context, orderID, moderatorID int64, approve bool, comment string) (*entity.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.CanReview() {
		return nil, repository.ErrInvalidState
	}

	status := entity.OrderRejected
	if approve {
		status = entity.OrderApproved
		// Stock is committed only on approval; the conditional update keeps
		// it from going negative if stock moved since checkout.
		for _, it := range o.Items {
			res, err := tx.Exec(ctx, `
				UPDATE games SET stock = stock - $1, updated_at = now()
				WHERE id = $2 AND stock >= $1
			`, it.Quantity, it.GameID)
			if err != nil {
				return nil, err
			}
			if res.RowsAffected() == 0 {
				return nil, repository.ErrInsufficientStock
			}
		}
	}

	row := tx.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, moderator_id = $2, moderator_comment = $3,
		    reviewed_at = now(), updated_at = now()
		WHERE id = $4
		RETURNING `+orderColumns+`
	`, status, moderatorID, comment, orderID)
	updated, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *OrderRepository) Cancel(ctx context.Context, orderID int64) (*entity.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.CanCancel() {
		return nil, repository.ErrInvalidState
	}
	row := tx.QueryRow(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
		RETURNING `+orderColumns+`
	`, entity.OrderCancelled, orderID)
	updated, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

type BankConfigRepository struct {
	pool *pgxpool.Pool
}

func NewBankConfigRepository(pool *pgxpool.Pool) *BankConfigRepository {
	return &BankConfigRepository{pool: pool}
}

func (r *BankConfigRepository) Get(ctx context.Context) (*entity.BankConfig, error) {
	b := &entity.BankConfig{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, bank_name, account_type, account_number, holder_name, holder_tax_id, email
		FROM bank_config ORDER BY id LIMIT 1
	`).Scan(&b.ID, &b.BankName, &b.AccountType, &b.AccountNumber, &b.HolderName, &b.HolderTaxID, &b.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

var _ repository.BankConfigRepository = (*BankConfigRepository)(nil)
