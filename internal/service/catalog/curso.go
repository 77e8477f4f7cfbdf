package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// CursoStore extends the generic store with the parent lookup: cursos hold
// a weak reference to their area and are fetched by it on demand.
type CursoStore interface {
	Store[domain.Curso]
	ByArea(ctx context.Context, areaID int64) ([]domain.Curso, error)
	WithoutArea(ctx context.Context) ([]domain.Curso, error)
}

// CursoService is the pipeline instantiated for Curso, plus the
// area-scoped listing.
type CursoService struct {
	*Service[domain.Curso, *domain.Curso]
	store CursoStore
}

// NewCursoService creates the Curso instantiation of the pipeline.
func NewCursoService(log *slog.Logger, store CursoStore) *CursoService {
	return &CursoService{
		Service: New[domain.Curso, *domain.Curso](log, store, "curso"),
		store:   store,
	}
}

// FindByArea returns all cursos referencing the given area.
func (s *CursoService) FindByArea(ctx context.Context, areaID int64) ([]domain.Curso, error) {
	cursos, err := s.store.ByArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("list cursos by area: %w", err)
	}
	return cursos, nil
}

// FindWithoutArea returns all cursos that reference no area.
func (s *CursoService) FindWithoutArea(ctx context.Context) ([]domain.Curso, error) {
	cursos, err := s.store.WithoutArea(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cursos without area: %w", err)
	}
	return cursos, nil
}
