package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// Update replaces all mutable fields of an existing record from the
// caller-supplied complete representation. The inactivity timestamp is
// resolved from the incoming status and the incoming inactiveAt (the value
// the caller read and resubmitted) before the uniqueness scan runs. An id
// that no longer exists yields domain.ErrNotFound from the save.
func (s *Service[T, PT]) Update(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	id := p.GetID()
	if id == nil {
		return nil, domain.NewValidationError("id", "required")
	}
	s.log.DebugContext(ctx, "update requested", slog.Int64("id", *id))

	p.SetInactiveAt(ResolveInactiveAt(p.GetStatus(), p.GetInactiveAt(), s.now()))

	taken, err := s.isNameTaken(ctx, p.GetName(), id)
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

	s.log.InfoContext(ctx, "record updated", slog.Int64("id", *id))

	return saved, nil
}
