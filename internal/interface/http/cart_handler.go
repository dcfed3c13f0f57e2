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

type CartHandler struct {
	Svc    *app.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *app.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addItemRequest struct {
	GameID   int64 `json:"juego_id" binding:"required,min=1"`
	Quantity int   `json:"cantidad" binding:"required,min=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"cantidad" binding:"required,min=1"`
}

func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.Svc.Get(c.Request.Context(), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "Carrito", nil)
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	uid := middleware.UserID(c)
	if err := h.Svc.Add(c.Request.Context(), uid, req.GameID, req.Quantity); err != nil {
		response.FromError(c, err)
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), uid, middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "Juego agregado al carrito", nil)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	gameID, ok := pathID(c, "juegoId")
	if !ok {
		return
	}
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	uid := middleware.UserID(c)
	if err := h.Svc.SetQuantity(c.Request.Context(), uid, gameID, req.Quantity); err != nil {
		response.FromError(c, err)
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), uid, middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "Cantidad actualizada", nil)
}

func (h *CartHandler) Remove(c *gin.Context) {
	gameID, ok := pathID(c, "juegoId")
	if !ok {
		return
	}
	uid := middleware.UserID(c)
	if err := h.Svc.Remove(c.Request.Context(), uid, gameID); err != nil {
		response.FromError(c, err)
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), uid, middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "Juego eliminado del carrito", nil)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"vaciado": true}, "Carrito vaciado", nil)
}
