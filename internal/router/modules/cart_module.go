package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
)

type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCartModule(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.GET("/carrito", m.Handler.Get)
	rg.POST("/carrito/items", m.Handler.Add)
	rg.PUT("/carrito/items/:juegoId", m.Handler.SetQuantity)
	rg.DELETE("/carrito/items/:juegoId", m.Handler.Remove)
	rg.DELETE("/carrito", m.Handler.Clear)
}
