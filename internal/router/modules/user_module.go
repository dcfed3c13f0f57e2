package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/usuarios/:id", m.Handler.Get)
	rg.PUT("/usuarios/perfil", m.Handler.UpdateProfile)
	rg.POST("/usuarios/avatar", m.Handler.UploadAvatar)
}
