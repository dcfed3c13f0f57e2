package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orugalabs/gaming-server/internal/application"
	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
	"github.com/orugalabs/gaming-server/pkg/response"
	"github.com/orugalabs/gaming-server/pkg/validation"
)

type UserHandler struct {
	Svc    *app.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *app.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// userView is the public projection of an account; the password hash never
// leaves this layer.
func userView(u *entity.User) gin.H {
	return gin.H{
		"id":                     u.ID,
		"email":                  u.Email,
		"nombre_usuario":         u.Username,
		"rol":                    u.Role,
		"avatar_url":             u.AvatarURL,
		"biografia":              u.Bio,
		"steam_id":               u.SteamID,
		"discord_id":             u.DiscordID,
		"esta_conectado":         u.Online,
		"ultima_conexion":        u.LastSeenAt,
		"baneado":                u.Banned,
		"razon_ban":              u.BanReason,
		"cantidad_publicaciones": u.PostCount,
		"cantidad_mensajes":      u.MessageCount,
		"fecha_registro":         u.CreatedAt,
	}
}

type updateProfileRequest struct {
	Username  string `json:"nombre_usuario" binding:"omitempty,min=3,max=30"`
	Bio       string `json:"biografia" binding:"max=500"`
	SteamID   string `json:"steam_id"`
	DiscordID string `json:"discord_id"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	return parseID(c, c.Param(name))
}

func queryID(c *gin.Context, raw string) (int64, bool) {
	return parseID(c, raw)
}

func parseID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		response.Error[any](c, http.StatusBadRequest, "Identificador inválido", nil)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "Perfil", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.UserID(c), app.ProfileUpdate{
		Username:  req.Username,
		Bio:       req.Bio,
		SteamID:   req.SteamID,
		DiscordID: req.DiscordID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "Perfil actualizado", nil)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
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

	u, err := h.Svc.UploadAvatar(c.Request.Context(), middleware.UserID(c), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "Avatar actualizado", nil)
}
