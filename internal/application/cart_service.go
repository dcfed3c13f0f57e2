package application

import (
	"context"
	"errors"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/pkg/apperr"
)

// CartService exposes the per-user cart. The caller's identity comes from the
// bearer token, so a user can never address another user's cart.
type CartService struct {
	Carts repo.CartRepository
}

func NewCartService(carts repo.CartRepository) *CartService {
	return &CartService{Carts: carts}
}

// CartView is the cart as the frontend renders it: lines plus a deterministic
// money breakdown.
type CartView struct {
	Items  []entity.CartItem `json:"items"`
	Totals entity.CartTotals `json:"totales"`
	Count  int               `json:"cantidad_items"`
}

func (s *CartService) Get(ctx context.Context, userID int64, role entity.Role) (*CartView, error) {
	items, err := s.Carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return &CartView{
		Items:  items,
		Totals: entity.ComputeTotals(items, role),
		Count:  entity.ItemCount(items),
	}, nil
}

func (s *CartService) Add(ctx context.Context, userID, gameID int64, qty int) error {
	if qty < 1 {
		return apperr.New(apperr.BadRequest, "La cantidad debe ser al menos 1")
	}
	return translateCartErr(s.Carts.AddItem(ctx, userID, gameID, qty))
}

func (s *CartService) SetQuantity(ctx context.Context, userID, gameID int64, qty int) error {
	if qty < 1 {
		return apperr.New(apperr.BadRequest, "La cantidad debe ser al menos 1")
	}
	return translateCartErr(s.Carts.SetQuantity(ctx, userID, gameID, qty))
}

func (s *CartService) Remove(ctx context.Context, userID, gameID int64) error {
	return translateCartErr(s.Carts.RemoveItem(ctx, userID, gameID))
}

func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.Carts.Clear(ctx, userID)
}

func translateCartErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return apperr.New(apperr.NotFound, "Juego no encontrado")
	case errors.Is(err, repo.ErrInsufficientStock):
		return apperr.New(apperr.BadRequest, "Stock insuficiente")
	default:
		return err
	}
}
