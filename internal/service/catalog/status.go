package catalog

import (
	"time"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// ResolveInactiveAt derives the inactivity timestamp to persist on a full
// update. A record turning INACTIVE gets stamped with now; a record turning
// back ACTIVE has the stamp cleared; in every other case the caller-supplied
// value is preserved, including an explicit value on an already-inactive
// record. Pure function; create and partial update never call it.
func ResolveInactiveAt(status domain.Status, current *time.Time, now time.Time) *time.Time {
	switch {
	case status == domain.StatusInactive && current == nil:
		return &now
	case status == domain.StatusActive && current != nil:
		return nil
	default:
		return current
	}
}
