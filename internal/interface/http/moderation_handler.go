package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orugalabs/gaming-server/internal/application"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
	"github.com/orugalabs/gaming-server/pkg/response"
	"github.com/orugalabs/gaming-server/pkg/validation"
)

// ModerationHandler groups the moderator console: order review and account
// suspension. Route access is already restricted by the authorization policy.
type ModerationHandler struct {
	Orders *app.OrderService
	Users  *app.UserService
	Logger *logrus.Logger
}

func NewModerationHandler(orders *app.OrderService, users *app.UserService, logger *logrus.Logger) *ModerationHandler {
	return &ModerationHandler{Orders: orders, Users: users, Logger: logger}
}

type reviewRequest struct {
	Approve bool   `json:"aprobar"`
	Comment string `json:"comentario" binding:"max=500"`
}

type banRequest struct {
	Reason string `json:"razon" binding:"required,min=3,max=300"`
}

func (h *ModerationHandler) PendingOrders(c *gin.Context) {
	orders, err := h.Orders.PendingReview(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "Órdenes en revisión", gin.H{"total": len(orders)})
}

// ReviewOrder approves or rejects an order under review.
func (h *ModerationHandler) ReviewOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	o, err := h.Orders.Review(c.Request.Context(), middleware.UserID(c), id, req.Approve, req.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}
	msg := "Orden rechazada"
	if req.Approve {
		msg = "Orden aprobada"
	}
	response.Success(c, http.StatusOK, o, msg, orderMeta(o))
}

func (h *ModerationHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}
	response.Success(c, http.StatusOK, views, "Usuarios", gin.H{"total": len(views)})
}

func (h *ModerationHandler) BanUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req banRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	if err := h.Users.Ban(c.Request.Context(), middleware.UserID(c), id, req.Reason); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"baneado": true}, "Usuario suspendido", nil)
}

func (h *ModerationHandler) UnbanUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Unban(c.Request.Context(), middleware.UserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"baneado": false}, "Suspensión levantada", nil)
}
