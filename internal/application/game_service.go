package application

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
	"github.com/orugalabs/gaming-server/internal/infrastructure/search"
	"github.com/orugalabs/gaming-server/pkg/apperr"
	"github.com/orugalabs/gaming-server/pkg/helpers"
)

// GameService serves the catalog. Writes are moderator-only; reads are public.
// Documents are mirrored into the search index after each write.
type GameService struct {
	Games   repo.GameRepository
	Index   *search.Indexer
	ESIndex string
	Images  FileStore
	Logger  *logrus.Logger
}

func NewGameService(games repo.GameRepository, index *search.Indexer, esIndex string, images FileStore, logger *logrus.Logger) *GameService {
	return &GameService{Games: games, Index: index, ESIndex: esIndex, Images: images, Logger: logger}
}

func (s *GameService) List(ctx context.Context) ([]entity.Game, error) {
	return s.Games.ListActive(ctx)
}

func (s *GameService) ListByGenre(ctx context.Context, genre string) ([]entity.Game, error) {
	return s.Games.ListByGenre(ctx, genre)
}

func (s *GameService) Get(ctx context.Context, id int64) (*entity.Game, error) {
	g, err := s.Games.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Juego no encontrado")
		}
		return nil, err
	}
	return g, nil
}

// Search queries the search index and hydrates hits from the primary store.
// When the index is unavailable it degrades to a substring scan of the
// active catalog.
func (s *GameService) Search(ctx context.Context, query string) ([]entity.Game, error) {
	if s.Index != nil {
		ids, err := s.Index.SearchIDs(ctx, s.ESIndex, query, []string{"nombre^3", "descripcion", "genero", "desarrollador"})
		if err == nil {
			games := make([]entity.Game, 0, len(ids))
			for _, id := range ids {
				g, err := s.Games.GetByID(ctx, id)
				if err != nil {
					continue // index can lag behind deletes
				}
				if g.Active {
					games = append(games, *g)
				}
			}
			return games, nil
		}
		s.Logger.WithError(err).Warn("search index unavailable, falling back to catalog scan")
	}

	all, err := s.Games.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var games []entity.Game
	for i := range all {
		if strings.Contains(strings.ToLower(all[i].Name), q) ||
			strings.Contains(strings.ToLower(all[i].Genre), q) {
			games = append(games, all[i])
		}
	}
	return games, nil
}

func (s *GameService) Create(ctx context.Context, role entity.Role, g *entity.Game) error {
	if !role.IsModerator() {
		return apperr.New(apperr.Forbidden, "Solo los moderadores pueden administrar el catálogo")
	}
	if g.Price < 0 || g.Stock < 0 {
		return apperr.New(apperr.BadRequest, "Precio y stock deben ser positivos")
	}
	g.Active = true
	if err := s.Games.Create(ctx, g); err != nil {
		return err
	}
	s.reindex(ctx, g)
	return nil
}

func (s *GameService) Update(ctx context.Context, role entity.Role, g *entity.Game) error {
	if !role.IsModerator() {
		return apperr.New(apperr.Forbidden, "Solo los moderadores pueden administrar el catálogo")
	}
	if g.Price < 0 || g.Stock < 0 {
		return apperr.New(apperr.BadRequest, "Precio y stock deben ser positivos")
	}
	if err := s.Games.Update(ctx, g); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Juego no encontrado")
		}
		return err
	}
	s.reindex(ctx, g)
	return nil
}

// UploadImage stores a cover image and attaches its URL to the game.
func (s *GameService) UploadImage(ctx context.Context, role entity.Role, gameID int64, filename, contentType string, r io.Reader) (*entity.Game, error) {
	if !role.IsModerator() {
		return nil, apperr.New(apperr.Forbidden, "Solo los moderadores pueden administrar el catálogo")
	}
	g, err := s.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	url, err := s.Images.Upload(ctx, helpers.ObjectPath("juegos", gameID, filename), contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("game_id", gameID).Error("image upload failed")
		return nil, apperr.Wrap(apperr.Internal, err, "no se pudo subir la imagen")
	}
	g.ImageURL = url
	if err := s.Games.Update(ctx, g); err != nil {
		return nil, err
	}
	s.reindex(ctx, g)
	return g, nil
}

func (s *GameService) reindex(ctx context.Context, g *entity.Game) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, s.ESIndex, g.ID, g); err != nil {
		s.Logger.WithError(err).WithField("game_id", g.ID).Warn("search index update failed")
	}
}
