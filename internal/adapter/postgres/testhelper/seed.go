package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedArea inserts an active area with a unique name and returns the filled record.
func SeedArea(t *testing.T, pool *pgxpool.Pool) domain.Area {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := "Area description " + suffix

	area := domain.Area{
		Name:        "Area " + suffix,
		Description: &description,
		Status:      domain.StatusActive,
		CreatedAt:   now,
	}

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO area (name, description, status, created_at, inactive_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		area.Name, area.Description, area.Status.String(), area.CreatedAt, area.InactiveAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedArea insert: %v", err)
	}

	area.ID = &id
	return area
}

// SeedCurso inserts an active curso and returns the filled record. When area
// is non-nil the curso references it and the returned record carries the
// reduced {id, name} projection.
func SeedCurso(t *testing.T, pool *pgxpool.Pool, area *domain.Area) domain.Curso {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := "Curso description " + suffix

	curso := domain.Curso{
		Name:        "Curso " + suffix,
		Description: &description,
		Status:      domain.StatusActive,
		CreatedAt:   now,
	}
	if area != nil {
		name := area.Name
		curso.Area = &domain.AreaRef{ID: *area.ID, Name: &name}
	}

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO curso (name, description, status, created_at, inactive_at, area_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		curso.Name, curso.Description, curso.Status.String(), curso.CreatedAt, curso.InactiveAt, curso.AreaID(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedCurso insert: %v", err)
	}

	curso.ID = &id
	return curso
}
