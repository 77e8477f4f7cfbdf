package catalog

import (
	"context"
	"fmt"
	"strings"
)

// isNameTaken reports whether another record of this type already carries
// name, comparing case-insensitively. excludeID skips the record under edit
// so an update does not collide with itself; pass nil on create. The scan
// walks the full collection on every call. It is racy by contract: nothing
// prevents a colliding write between this check and the subsequent save.
func (s *Service[T, PT]) isNameTaken(ctx context.Context, name string, excludeID *int64) (bool, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("scan %s names: %w", s.entity, err)
	}

	for i := range all {
		rec := PT(&all[i])
		if !strings.EqualFold(rec.GetName(), name) {
			continue
		}
		id := rec.GetID()
		if excludeID != nil && id != nil && *id == *excludeID {
			continue
		}
		return true, nil
	}

	return false, nil
}
