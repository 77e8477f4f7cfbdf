package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "area", 1); got != nil {
		t.Errorf("nil error must map to nil, got %v", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "area", 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("pgx.ErrNoRows should map to ErrNotFound, got %v", err)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		err := MapError(fmt.Errorf("query: %w", ctxErr), "curso", 1)
		if !errors.Is(err, ctxErr) {
			t.Errorf("context error should pass through, got %v", err)
		}
		if errors.Is(err, domain.ErrNotFound) {
			t.Errorf("context error must not be remapped, got %v", err)
		}
	}
}

func TestMapError_IntegrityViolations(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"23505", "23503", "23514"} {
		err := MapError(&pgconn.PgError{Code: code}, "curso", 7)
		if !errors.Is(err, domain.ErrConstraintViolation) {
			t.Errorf("code %s should map to ErrConstraintViolation, got %v", code, err)
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("code %s must stay distinct from ErrAlreadyExists", code)
		}
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("connection refused")
	err := MapError(base, "area", 3)
	if !errors.Is(err, base) {
		t.Errorf("unknown errors must propagate wrapped, got %v", err)
	}
}
