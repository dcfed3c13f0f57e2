package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
)

type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/publicaciones", m.Handler.List)
	rg.POST("/publicaciones", m.Handler.Create)
	rg.GET("/publicaciones/buscar", m.Handler.Search)
	rg.GET("/publicaciones/anuncios", m.Handler.ListAnnouncements)
	rg.POST("/publicaciones/imagen", m.Handler.UploadImage)
	rg.GET("/publicaciones/:id", m.Handler.Get)
	rg.DELETE("/publicaciones/:id", m.Handler.Delete)
	rg.POST("/publicaciones/:id/like", m.Handler.Like)
	rg.GET("/publicaciones/:id/comentarios", m.Handler.ListComments)
	rg.POST("/publicaciones/:id/comentarios", m.Handler.CreateComment)
	rg.DELETE("/publicaciones/comentarios/:comentarioId", m.Handler.DeleteComment)
}
