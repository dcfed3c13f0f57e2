package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
)

type GameModule struct {
	Handler *handlers.GameHandler
}

func NewGameModule(h *handlers.GameHandler) *GameModule {
	return &GameModule{Handler: h}
}

func (m *GameModule) Register(rg *gin.RouterGroup) {
	// Reads are public by policy; writes require the moderator role, enforced
	// in the service.
	rg.GET("/juegos", m.Handler.List)
	rg.GET("/juegos/buscar", m.Handler.Search)
	rg.GET("/juegos/:id", m.Handler.Get)
	rg.POST("/juegos", m.Handler.Create)
	rg.PUT("/juegos/:id", m.Handler.Update)
	rg.POST("/juegos/:id/imagen", m.Handler.UploadImage)
}
