package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orugalabs/gaming-server/internal/container"
	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
)

type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule {
	return &OrderModule{Handler: h}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	checkoutLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUser())

	rg.POST("/ordenes", checkoutLimiter, m.Handler.Checkout)
	rg.GET("/ordenes", m.Handler.ListMine)
	rg.GET("/ordenes/datos-bancarios", m.Handler.BankInfo)
	rg.GET("/ordenes/:id", m.Handler.Get)
	rg.POST("/ordenes/:id/comprobante", m.Handler.UploadProof)
	rg.POST("/ordenes/:id/cancelar", m.Handler.Cancel)
}
