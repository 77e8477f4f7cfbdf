// Package catalog implements the lifecycle pipeline shared by the two
// catalog entities (Area and Curso): case-insensitive name uniqueness,
// inactivity-timestamp bookkeeping on full updates, merge-patch partial
// updates, and paginated reads. The pipeline is written once as a generic
// service and instantiated per entity.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// Record is the pointer-receiver surface a catalog entity exposes to the
// shared pipeline: identifier, human-readable name, status, and the derived
// inactivity timestamp.
type Record[T any] interface {
	*T
	GetID() *int64
	GetName() string
	GetStatus() domain.Status
	GetInactiveAt() *time.Time
	SetInactiveAt(*time.Time)
}

// Store is the persistence surface the service composes. All calls are
// sequential within one operation; the service takes no locks and opens no
// transactions, so a concurrent writer may interleave between the uniqueness
// scan and the save. Save inserts when the record has no id and updates
// otherwise, returning domain.ErrNotFound for an update of a missing id.
type Store[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	List(ctx context.Context, page domain.PageRequest) ([]T, error)
	Save(ctx context.Context, rec *T) (*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Patch is a partial representation applied during PartialUpdate.
type Patch[T any] interface {
	TargetID() *int64
	Apply(*T)
}

// Service orchestrates the lifecycle operations for one entity type.
type Service[T any, PT Record[T]] struct {
	store  Store[T]
	entity string
	now    func() time.Time
	log    *slog.Logger
}

// New creates a Service for one entity type. The entity name is used in
// error values and log attributes.
func New[T any, PT Record[T]](log *slog.Logger, store Store[T], entity string) *Service[T, PT] {
	return &Service[T, PT]{
		store:  store,
		entity: entity,
		now:    time.Now,
		log:    log.With("service", entity),
	}
}

// AreaService is the pipeline instantiated for Area.
type AreaService = Service[domain.Area, *domain.Area]

// NewAreaService creates the Area instantiation of the pipeline.
func NewAreaService(log *slog.Logger, store Store[domain.Area]) *AreaService {
	return New[domain.Area, *domain.Area](log, store, "area")
}
