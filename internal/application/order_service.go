package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
	"github.com/orugalabs/gaming-server/pkg/mailer"
)

// FileStore uploads a stream and returns its public URL.
type FileStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// JobPublisher queues a JSON job for the background worker.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// OrderService drives the bank-transfer checkout flow. All state transitions
// are delegated to the repository, which enforces them under row locks.
type OrderService struct {
	Orders    repo.OrderRepository
	Carts     repo.CartRepository
	Users     repo.UserRepository
	Bank      repo.BankConfigRepository
	Proofs    FileStore
	Publisher JobPublisher
	Logger    *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, carts repo.CartRepository, users repo.UserRepository, bank repo.BankConfigRepository, proofs FileStore, pub JobPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{
		Orders:    orders,
		Carts:     carts,
		Users:     users,
		Bank:      bank,
		Proofs:    proofs,
		Publisher: pub,
		Logger:    logger,
	}
}

// newOrderNumber builds a human-quotable unique order number.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// Checkout snapshots the cart into a pending order and clears the cart. An
// empty cart cannot be checked out.
func (s *OrderService) Checkout(ctx context.Context, userID int64, role entity.Role, paymentMethod string) (*entity.Order, error) {
	items, err := s.Carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.New(apperr.BadRequest, "El carrito está vacío")
	}
	if paymentMethod == "" {
		paymentMethod = "transferencia"
	}

	totals := entity.ComputeTotals(items, role)
	order := &entity.Order{
		Number:        newOrderNumber(time.Now()),
		UserID:        userID,
		Items:         make([]entity.OrderItem, 0, len(items)),
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		Status:        entity.OrderPendingPayment,
		PaymentMethod: paymentMethod,
	}
	for i := range items {
		order.Items = append(order.Items, entity.OrderItem{
			GameID:    items[i].GameID,
			Name:      items[i].GameName,
			UnitPrice: items[i].UnitPrice,
			Quantity:  items[i].Quantity,
			Subtotal:  items[i].Subtotal(),
		})
	}

	if err := s.Orders.CreateFromCart(ctx, order); err != nil {
		switch {
		case errors.Is(err, repo.ErrInsufficientStock):
			return nil, apperr.New(apperr.BadRequest, "Stock insuficiente para completar la orden")
		case errors.Is(err, repo.ErrNotFound):
			return nil, apperr.New(apperr.NotFound, "Juego no encontrado")
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"order":   order.Number,
		"user_id": userID,
		"total":   order.Total,
	}).Info("order created")
	return order, nil
}

// Get returns an order if the caller owns it or moderates.
func (s *OrderService) Get(ctx context.Context, callerID int64, role entity.Role, orderID int64) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Orden no encontrada")
		}
		return nil, err
	}
	if o.UserID != callerID && !role.IsModerator() {
		return nil, apperr.New(apperr.Forbidden, "No tienes acceso a esta orden")
	}
	return o, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID int64) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// UploadProof stores the transfer receipt and moves the order into review.
func (s *OrderService) UploadProof(ctx context.Context, callerID int64, role entity.Role, orderID int64, filename, contentType string, r io.Reader) (*entity.Order, error) {
	o, err := s.Get(ctx, callerID, role, orderID)
	if err != nil {
		return nil, err
	}
	if !o.CanUploadProof() {
		return nil, apperr.New(apperr.Conflict, "La orden no admite comprobante en estado %s", o.Status.Description())
	}

	url, err := s.Proofs.Upload(ctx, helpers.ObjectPath("comprobantes", o.UserID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("order", o.Number).Error("proof upload failed")
		return nil, apperr.Wrap(apperr.Internal, err, "no se pudo subir el comprobante")
	}

	updated, err := s.Orders.MarkInReview(ctx, orderID, url)
	if err != nil {
		return nil, translateOrderErr(err)
	}
	return updated, nil
}

// Cancel lets the buyer abandon an order that is still waiting for payment.
func (s *OrderService) Cancel(ctx context.Context, callerID int64, role entity.Role, orderID int64) (*entity.Order, error) {
	if _, err := s.Get(ctx, callerID, role, orderID); err != nil {
		return nil, err
	}
	o, err := s.Orders.Cancel(ctx, orderID)
	if err != nil {
		return nil, translateOrderErr(err)
	}
	return o, nil
}

// PendingReview lists orders waiting for a moderator decision.
func (s *OrderService) PendingReview(ctx context.Context) ([]entity.Order, error) {
	return s.Orders.ListByStatus(ctx, entity.OrderInReview)
}

// Review resolves an order under review and queues the buyer notification.
// Approval commits the stock decrement.
func (s *OrderService) Review(ctx context.Context, moderatorID, orderID int64, approve bool, comment string) (*entity.Order, error) {
	o, err := s.Orders.Review(ctx, orderID, moderatorID, approve, comment)
	if err != nil {
		if errors.Is(err, repo.ErrInsufficientStock) {
			return nil, apperr.New(apperr.Conflict, "Stock insuficiente para aprobar la orden")
		}
		return nil, translateOrderErr(err)
	}

	s.notifyReview(ctx, o, approve)
	return o, nil
}

func (s *OrderService) notifyReview(ctx context.Context, o *entity.Order, approved bool) {
	buyer, err := s.Users.GetByID(ctx, o.UserID)
	if err != nil {
		s.Logger.WithError(err).WithField("order", o.Number).Warn("buyer lookup for notification failed")
		return
	}
	job := mailer.EmailJob{
		To:   buyer.Email,
		Kind: "order_rejected",
		Data: map[string]any{
			"orden":      o.Number,
			"total":      entity.FormatCLP(o.Total),
			"comentario": o.ModeratorComment,
		},
	}
	if approved {
		job.Kind = "order_approved"
	}
	// Notification is best-effort: a broker outage must not undo the review.
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("order", o.Number).Warn("email job publish failed")
	}
}

// BankInfo returns the transfer destination shown after checkout.
func (s *OrderService) BankInfo(ctx context.Context) (*entity.BankConfig, error) {
	b, err := s.Bank.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Datos bancarios no configurados")
		}
		return nil, err
	}
	return b, nil
}

func translateOrderErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return apperr.New(apperr.NotFound, "Orden no encontrada")
	case errors.Is(err, repo.ErrInvalidState):
		return apperr.New(apperr.Conflict, "La orden no admite esta operación en su estado actual")
	default:
		return err
	}
}
