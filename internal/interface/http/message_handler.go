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

type MessageHandler struct {
	Svc    *app.MessageService
	Logger *logrus.Logger
}

func NewMessageHandler(svc *app.MessageService, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Svc: svc, Logger: logger}
}

type sendMessageRequest struct {
	RecipientID *int64 `json:"destinatario_id" binding:"omitempty,min=1"`
	Content     string `json:"contenido" binding:"max=2000"`
	ImageURL    string `json:"imagen_url"`
}

// Send posts to the group chat, or to a private thread when destinatario_id
// is present.
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	uid := middleware.UserID(c)
	ctx := c.Request.Context()

	var err error
	var m any
	if req.RecipientID != nil {
		m, err = h.Svc.SendPrivate(ctx, uid, *req.RecipientID, req.Content, req.ImageURL)
	} else {
		m, err = h.Svc.SendGroup(ctx, uid, req.Content, req.ImageURL)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m, "Mensaje enviado", nil)
}

func (h *MessageHandler) GroupHistory(c *gin.Context) {
	msgs, err := h.Svc.GroupHistory(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs, "Chat grupal", gin.H{"total": len(msgs)})
}

func (h *MessageHandler) PrivateHistory(c *gin.Context) {
	otherID, ok := pathID(c, "usuarioId")
	if !ok {
		return
	}
	msgs, err := h.Svc.PrivateHistory(c.Request.Context(), middleware.UserID(c), otherID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs, "Conversación", gin.H{"total": len(msgs)})
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	convs, err := h.Svc.Conversations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, convs, "Conversaciones", gin.H{"total": len(convs)})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	n, err := h.Svc.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"no_leidos": n}, "Mensajes no leídos", nil)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"marcados": true}, "Mensajes marcados como leídos", nil)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), middleware.Role(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"eliminado": true}, "Mensaje eliminado", nil)
}

// UploadImage stores a chat image and returns its URL for attachment.
func (h *MessageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("imagen")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Falta el archivo de imagen", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "No se pudo leer el archivo", nil)
		return
	}
	defer src.Close()

	url, err := h.Svc.UploadImage(c.Request.Context(), middleware.UserID(c), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"imagen_url": url}, "Imagen subida", nil)
}
