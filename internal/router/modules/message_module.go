package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orugalabs/gaming-server/internal/container"
	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
)

type MessageModule struct {
	Handler *handlers.MessageHandler
}

func NewMessageModule(h *handlers.MessageHandler) *MessageModule {
	return &MessageModule{Handler: h}
}

func (m *MessageModule) Register(rg *gin.RouterGroup) {
	sendLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUser())

	rg.POST("/mensajes", sendLimiter, m.Handler.Send)
	rg.GET("/mensajes/grupal", m.Handler.GroupHistory)
	rg.GET("/mensajes/conversaciones", m.Handler.Conversations)
	rg.GET("/mensajes/no-leidos", m.Handler.UnreadCount)
	rg.PUT("/mensajes/leidos", m.Handler.MarkRead)
	rg.GET("/mensajes/privados/:usuarioId", m.Handler.PrivateHistory)
	rg.POST("/mensajes/imagen", m.Handler.UploadImage)
	rg.DELETE("/mensajes/:id", m.Handler.Delete)
}
