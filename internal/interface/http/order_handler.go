package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orugalabs/gaming-server/internal/application"
	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
	"github.com/orugalabs/gaming-server/pkg/response"
	"github.com/orugalabs/gaming-server/pkg/validation"
)

type OrderHandler struct {
	Svc    *app.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *app.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type checkoutRequest struct {
	PaymentMethod string `json:"metodo_pago"`
}

func orderMeta(o *entity.Order) gin.H {
	return gin.H{
		"estado_descripcion": o.Status.Description(),
		"total_formateado":   entity.FormatCLP(o.Total),
	}
}

// Checkout converts the caller's cart into a pending order.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	o, err := h.Svc.Checkout(c.Request.Context(), middleware.UserID(c), middleware.Role(c), req.PaymentMethod)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, o, "Orden creada, pendiente de pago", orderMeta(o))
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "Mis órdenes", gin.H{"total": len(orders)})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Get(c.Request.Context(), middleware.UserID(c), middleware.Role(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o, "Orden", orderMeta(o))
}

// UploadProof receives the transfer receipt and moves the order into review.
func (h *OrderHandler) UploadProof(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("comprobante")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Falta el archivo de comprobante", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "No se pudo leer el archivo", nil)
		return
	}
	defer src.Close()

	o, err := h.Svc.UploadProof(c.Request.Context(), middleware.UserID(c), middleware.Role(c), id,
		file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o, "Comprobante recibido, orden en revisión", orderMeta(o))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Cancel(c.Request.Context(), middleware.UserID(c), middleware.Role(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o, "Orden cancelada", orderMeta(o))
}

// BankInfo returns the transfer destination account.
func (h *OrderHandler) BankInfo(c *gin.Context) {
	b, err := h.Svc.BankInfo(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b, "Datos bancarios", nil)
}
