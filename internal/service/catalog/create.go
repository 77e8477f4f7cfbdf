package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// Create persists a new record. The input must not carry an id; the store
// issues one on first save. Name, status, and createdAt are persisted
// verbatim; no inactivity bookkeeping happens here.
func (s *Service[T, PT]) Create(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	s.log.DebugContext(ctx, "create requested", slog.String("name", p.GetName()))

	if p.GetID() != nil {
		return nil, domain.NewValidationError("id", "must not be set on create")
	}

	taken, err := s.isNameTaken(ctx, p.GetName(), nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &domain.DuplicateNameError{Entity: s.entity, Name: p.GetName()}
	}

	saved, err := s.store.Save(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", s.entity, err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.Int64("id", *PT(saved).GetID()),
		slog.String("name", p.GetName()),
	)

	return saved, nil
}
