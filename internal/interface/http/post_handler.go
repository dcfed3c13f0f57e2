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

type PostHandler struct {
	Svc    *app.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *app.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title        string `json:"titulo" binding:"required,min=1,max=200"`
	Content      string `json:"contenido" binding:"required,min=1"`
	ImageURL     string `json:"imagen_url"`
	Announcement bool   `json:"es_anuncio"`
}

type createCommentRequest struct {
	Content string `json:"contenido" binding:"required,min=1"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), middleware.Role(c),
		req.Title, req.Content, req.ImageURL, req.Announcement)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "Publicación creada", nil)
}

// List serves the feed; ?q= searches, ?autor= filters by author.
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if q := c.Query("q"); q != "" {
		posts, err := h.Svc.Search(ctx, q)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, posts, "Resultados de búsqueda", gin.H{"total": len(posts)})
		return
	}
	if author := c.Query("autor"); author != "" {
		authorID, ok := queryID(c, author)
		if !ok {
			return
		}
		posts, err := h.Svc.ListByAuthor(ctx, authorID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, posts, "Publicaciones del autor", gin.H{"total": len(posts)})
		return
	}

	posts, err := h.Svc.List(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "Publicaciones", gin.H{"total": len(posts)})
}

// Search runs a full-text forum search on ?q=.
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "Falta el parámetro q", nil)
		return
	}
	posts, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "Resultados de búsqueda", gin.H{"total": len(posts)})
}

func (h *PostHandler) ListAnnouncements(c *gin.Context) {
	posts, err := h.Svc.ListAnnouncements(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "Anuncios", gin.H{"total": len(posts)})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "Publicación", nil)
}

func (h *PostHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Like(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "Like registrado", nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), middleware.Role(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"eliminada": true}, "Publicación eliminada", nil)
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.Comment(c.Request.Context(), middleware.UserID(c), postID, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment, "Comentario creado", nil)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.Svc.Comments(c.Request.Context(), postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "Comentarios", gin.H{"total": len(comments)})
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "comentarioId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteComment(c.Request.Context(), middleware.UserID(c), middleware.Role(c), commentID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"eliminado": true}, "Comentario eliminado", nil)
}

// UploadImage stores a forum image and returns its URL so the client can
// attach it to a new publication.
func (h *PostHandler) UploadImage(c *gin.Context) {
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
