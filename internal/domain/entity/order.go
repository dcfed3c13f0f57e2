package entity

import "time"

// OrderStatus is the bank-transfer checkout state machine. Orders only move
// forward; approved, rejected and cancelled are terminal.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pendiente_pago"
	OrderInReview       OrderStatus = "en_revision"
	OrderApproved       OrderStatus = "aprobada"
	OrderRejected       OrderStatus = "rechazada"
	OrderCancelled      OrderStatus = "cancelada"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderApproved || s == OrderRejected || s == OrderCancelled
}

// Description returns the human-readable Spanish label used by the frontend.
func (s OrderStatus) Description() string {
	switch s {
	case OrderPendingPayment:
		return "Pendiente de pago"
	case OrderInReview:
		return "En revisión"
	case OrderApproved:
		return "Aprobada"
	case OrderRejected:
		return "Rechazada"
	case OrderCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	GameID    int64  `json:"juego_id"`
	Name      string `json:"nombre"`
	UnitPrice int64  `json:"precio_unitario"`
	Quantity  int    `json:"cantidad"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is created from a non-empty cart snapshot and paid by bank transfer.
type Order struct {
	ID               int64       `json:"id"`
	Number           string      `json:"numero_orden"`
	UserID           int64       `json:"usuario_id"`
	Items            []OrderItem `json:"items"`
	Subtotal         int64       `json:"subtotal"`
	Discount         int64       `json:"descuento"`
	Total            int64       `json:"total"`
	Status           OrderStatus `json:"estado"`
	PaymentMethod    string      `json:"metodo_pago"`
	ProofURL         string      `json:"comprobante_url,omitempty"`
	ProofUploadedAt  *time.Time  `json:"fecha_subida_comprobante,omitempty"`
	ModeratorID      *int64      `json:"moderador_id,omitempty"`
	ModeratorComment string      `json:"comentario_moderador,omitempty"`
	ReviewedAt       *time.Time  `json:"fecha_revision,omitempty"`
	CreatedAt        time.Time   `json:"fecha_creacion"`
	UpdatedAt        time.Time   `json:"fecha_actualizacion"`
}

func (o *Order) CanUploadProof() bool { return o.Status == OrderPendingPayment }
func (o *Order) CanReview() bool      { return o.Status == OrderInReview }
func (o *Order) CanCancel() bool      { return o.Status == OrderPendingPayment }
