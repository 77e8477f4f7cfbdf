package catalog

import (
	"context"
	"fmt"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// FindAll returns one page of records ordered per the request. The total
// count for pagination metadata is exposed separately via Count.
func (s *Service[T, PT]) FindAll(ctx context.Context, page domain.PageRequest) ([]T, error) {
	recs, err := s.store.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.entity, err)
	}
	return recs, nil
}

// Count returns the total number of records.
func (s *Service[T, PT]) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %ss: %w", s.entity, err)
	}
	return n, nil
}

// FindOne returns the record or domain.ErrNotFound.
func (s *Service[T, PT]) FindOne(ctx context.Context, id int64) (*T, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.entity, err)
	}
	return rec, nil
}

// Exists reports whether a record with the given id is persisted.
func (s *Service[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check %s exists: %w", s.entity, err)
	}
	return ok, nil
}
