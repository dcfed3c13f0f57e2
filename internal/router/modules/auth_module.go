package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orugalabs/gaming-server/internal/container"
	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight IP-based limits.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/registro", registerLimiter, m.Handler.Register)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/me", m.Handler.Me)
}
