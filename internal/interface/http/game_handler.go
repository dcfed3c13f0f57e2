package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/orugalabs/gaming-server/internal/application"
	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/interface/middleware"
	"github.com/orugalabs/gaming-server/pkg/response"
	"github.com/orugalabs/gaming-server/pkg/validation"
)

type GameHandler struct {
	Svc    *app.GameService
	Logger *logrus.Logger
}

func NewGameHandler(svc *app.GameService, logger *logrus.Logger) *GameHandler {
	return &GameHandler{Svc: svc, Logger: logger}
}

type gameRequest struct {
	Name        string  `json:"nombre" binding:"required,min=1,max=200"`
	Description string  `json:"descripcion"`
	Genre       string  `json:"genero" binding:"required"`
	Price       int64   `json:"precio" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	ImageURL    string  `json:"imagen_url"`
	Platforms   string  `json:"plataformas"`
	Developer   string  `json:"desarrollador"`
	ReleaseDate string  `json:"fecha_lanzamiento"`
	Rating      float64 `json:"calificacion" binding:"min=0,max=10"`
}

func (r *gameRequest) toEntity() *entity.Game {
	return &entity.Game{
		Name:        r.Name,
		Description: r.Description,
		Genre:       r.Genre,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		Platforms:   r.Platforms,
		Developer:   r.Developer,
		ReleaseDate: r.ReleaseDate,
		Rating:      r.Rating,
	}
}

// List serves the catalog; ?genero= filters and ?q= searches.
func (h *GameHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if q := c.Query("q"); q != "" {
		games, err := h.Svc.Search(ctx, q)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, games, "Resultados de búsqueda", gin.H{"total": len(games)})
		return
	}

	var (
		games []entity.Game
		err   error
	)
	if genre := c.Query("genero"); genre != "" {
		games, err = h.Svc.ListByGenre(ctx, genre)
	} else {
		games, err = h.Svc.List(ctx)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, games, "Catálogo", gin.H{"total": len(games)})
}

// Search runs a full-text catalog search on ?q=.
func (h *GameHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "Falta el parámetro q", nil)
		return
	}
	games, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, games, "Resultados de búsqueda", gin.H{"total": len(games)})
}

func (h *GameHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	g, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g, "Juego", gin.H{"precio_formateado": entity.FormatCLP(g.Price)})
}

func (h *GameHandler) Create(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	g := req.toEntity()
	if err := h.Svc.Create(c.Request.Context(), middleware.Role(c), g); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, g, "Juego creado", nil)
}

func (h *GameHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Datos inválidos", validation.ToDetails(err))
		return
	}
	g := req.toEntity()
	g.ID = id
	g.Active = true
	if err := h.Svc.Update(c.Request.Context(), middleware.Role(c), g); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g, "Juego actualizado", nil)
}

func (h *GameHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
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

	g, err := h.Svc.UploadImage(c.Request.Context(), middleware.Role(c), id, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g, "Imagen actualizada", nil)
}
