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

type AuthHandler struct {
	Auth   *app.AuthService
	Users  *app.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *app.AuthService, users *app.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users, Logger: logger}
}

type registerRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,pwd"`
	Username      string `json:"nombre_usuario" binding:"required,min=3,max=30"`
	ModeratorCode string `json:"codigo_moderador"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func authPayload(res *app.AuthResult) gin.H {
	return gin.H{
		"token":     res.Token,
		"expira_en": res.ExpiresAt,
		"usuario":   userView(res.User),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	res, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password, req.Username, req.ModeratorCode)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, authPayload(res), "Registro exitoso", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, authPayload(res), "Inicio de sesión exitoso", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"sesion_cerrada": true}, "Sesión cerrada", nil)
}

// Me returns the authenticated caller's own profile.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "Perfil", nil)
}
