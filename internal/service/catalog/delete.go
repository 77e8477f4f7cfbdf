package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete physically removes the record. Idempotent: deleting an id that is
// already gone is not an error; any not-found semantics belong to the
// boundary layer.
func (s *Service[T, PT]) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}

	s.log.InfoContext(ctx, "record deleted", slog.Int64("id", id))

	return nil
}
