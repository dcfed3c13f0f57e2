package entity

import "time"

// ModeratorDiscountPercent is the marketplace discount applied to moderator carts.
const ModeratorDiscountPercent = 15

// Cart holds at most one CartItem per game; re-adding a game increments its quantity.
type Cart struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuario_id"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// CartItem snapshots the catalog price at add-time; it is never re-read later.
type CartItem struct {
	ID        int64  `json:"id"`
	CartID    int64  `json:"-"`
	GameID    int64  `json:"juego_id"`
	GameName  string `json:"nombre"`
	UnitPrice int64  `json:"precio_unitario"`
	Quantity  int    `json:"cantidad"`
}

func (i *CartItem) Subtotal() int64 { return i.UnitPrice * int64(i.Quantity) }

// CartTotals is the deterministic money breakdown of a cart.
type CartTotals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"descuento"`
	Total    int64 `json:"total"`
}

// ComputeTotals sums line subtotals and applies the moderator discount.
func ComputeTotals(items []CartItem, role Role) CartTotals {
	var subtotal int64
	for i := range items {
		subtotal += items[i].Subtotal()
	}
	var discount int64
	if role.IsModerator() {
		discount = subtotal * ModeratorDiscountPercent / 100
	}
	return CartTotals{Subtotal: subtotal, Discount: discount, Total: subtotal - discount}
}

// ItemCount is the total unit count across all lines.
func ItemCount(items []CartItem) int {
	n := 0
	for i := range items {
		n += items[i].Quantity
	}
	return n
}
