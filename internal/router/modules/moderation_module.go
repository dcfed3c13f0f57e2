package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
)

// ModerationModule registers the moderator console. The authorization policy
// restricts every /moderacion route to the moderator role.
type ModerationModule struct {
	Handler *handlers.ModerationHandler
}

func NewModerationModule(h *handlers.ModerationHandler) *ModerationModule {
	return &ModerationModule{Handler: h}
}

func (m *ModerationModule) Register(rg *gin.RouterGroup) {
	rg.GET("/moderacion/ordenes", m.Handler.PendingOrders)
	rg.PUT("/moderacion/ordenes/:id", m.Handler.ReviewOrder)
	rg.GET("/moderacion/usuarios", m.Handler.ListUsers)
	rg.POST("/moderacion/usuarios/:id/ban", m.Handler.BanUser)
	rg.POST("/moderacion/usuarios/:id/unban", m.Handler.UnbanUser)
}
