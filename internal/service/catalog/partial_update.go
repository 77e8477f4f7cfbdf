package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// PartialUpdate loads the addressed record and overwrites only the fields
// the patch explicitly supplies, then saves. A missing id yields
// domain.ErrNotFound before any write. Deliberately skips both the
// uniqueness scan and the inactivity resolver: a patch that flips status
// alone leaves inactiveAt as it was.
func (s *Service[T, PT]) PartialUpdate(ctx context.Context, patch Patch[T]) (*T, error) {
	id := patch.TargetID()
	if id == nil {
		return nil, domain.NewValidationError("id", "required")
	}
	s.log.DebugContext(ctx, "partial update requested", slog.Int64("id", *id))

	existing, err := s.store.Get(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.entity, err)
	}

	patch.Apply(existing)

	saved, err := s.store.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", s.entity, err)
	}

	s.log.InfoContext(ctx, "record patched", slog.Int64("id", *id))

	return saved, nil
}
