// Package area implements the Area store using PostgreSQL.
package area

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mfigueiredo/cursos-backend/internal/adapter/postgres"
	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// Repo provides area persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new area repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const areaColumns = "id, name, description, status, created_at, inactive_at"

// sortColumns whitelists the sortable properties of the list endpoint and
// maps them to column names.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"status":      "status",
	"createdAt":   "created_at",
	"inactiveAt":  "inactive_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getAreaSQL = `SELECT ` + areaColumns + ` FROM area WHERE id = $1`

// Get returns an area by primary key, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getAreaSQL, id)
	a, err := scanArea(row)
	if err != nil {
		return nil, postgres.MapError(err, "area", id)
	}

	return a, nil
}

const getAllAreasSQL = `SELECT ` + areaColumns + ` FROM area`

// GetAll returns every area, unordered. This feeds the uniqueness scan,
// which walks the whole collection by contract.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getAllAreasSQL)
	if err != nil {
		return nil, fmt.Errorf("get all areas: %w", err)
	}
	defer rows.Close()

	areas, err := scanAreas(rows)
	if err != nil {
		return nil, fmt.Errorf("get all areas: %w", err)
	}

	return areas, nil
}

// List returns one page of areas ordered per the request. Uses the
// whitelist above; unknown sort properties are ignored. A trailing id
// ordering keeps pages stable across requests.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) ([]domain.Area, error) {
	qb := sq.Select("id", "name", "description", "status", "created_at", "inactive_at").
		From("area").
		PlaceholderFormat(sq.Dollar)

	for _, order := range page.Sort {
		col, ok := sortColumns[order.Property]
		if !ok {
			continue
		}
		dir := " ASC"
		if order.Desc {
			dir = " DESC"
		}
		qb = qb.OrderBy(col + dir)
	}
	qb = qb.OrderBy("id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset()))

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	areas, err := scanAreas(rows)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}

	return areas, nil
}

const areaExistsSQL = `SELECT EXISTS (SELECT 1 FROM area WHERE id = $1)`

// Exists reports whether an area with the given id is persisted.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, areaExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("area exists: %w", err)
	}

	return exists, nil
}

const countAreasSQL = `SELECT count(*) FROM area`

// Count returns the total number of areas.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := q.QueryRow(ctx, countAreasSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count areas: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertAreaSQL = `
INSERT INTO area (name, description, status, created_at, inactive_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + areaColumns

const updateAreaSQL = `
UPDATE area
SET name = $2, description = $3, status = $4, created_at = $5, inactive_at = $6
WHERE id = $1
RETURNING ` + areaColumns

// Save inserts the area when it has no id and updates it otherwise.
// Updating an id that is gone returns domain.ErrNotFound (soft outcome,
// no row is written).
func (r *Repo) Save(ctx context.Context, a *domain.Area) (*domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row pgx.Row
	if a.ID == nil {
		row = q.QueryRow(ctx, insertAreaSQL,
			a.Name, a.Description, a.Status.String(), a.CreatedAt, a.InactiveAt)
	} else {
		row = q.QueryRow(ctx, updateAreaSQL,
			*a.ID, a.Name, a.Description, a.Status.String(), a.CreatedAt, a.InactiveAt)
	}

	saved, err := scanArea(row)
	if err != nil {
		id := int64(0)
		if a.ID != nil {
			id = *a.ID
		}
		return nil, postgres.MapError(err, "area", id)
	}

	return saved, nil
}

const deleteAreaSQL = `DELETE FROM area WHERE id = $1`

// Delete removes the area. Deleting a missing id is not an error.
// Cursos referencing the area are left untouched.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteAreaSQL, id); err != nil {
		return postgres.MapError(err, "area", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanArea(row pgx.Row) (*domain.Area, error) {
	var (
		id          int64
		name        string
		description pgtype.Text
		status      string
		createdAt   time.Time
		inactiveAt  pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &description, &status, &createdAt, &inactiveAt); err != nil {
		return nil, err
	}

	return buildArea(id, name, description, status, createdAt, inactiveAt), nil
}

func scanAreas(rows pgx.Rows) ([]domain.Area, error) {
	var result []domain.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Area{}
	}

	return result, nil
}

func buildArea(id int64, name string, description pgtype.Text, status string, createdAt time.Time, inactiveAt pgtype.Timestamptz) *domain.Area {
	a := &domain.Area{
		ID:        &id,
		Name:      name,
		Status:    domain.Status(status),
		CreatedAt: createdAt,
	}

	if description.Valid {
		a.Description = &description.String
	}
	if inactiveAt.Valid {
		t := inactiveAt.Time
		a.InactiveAt = &t
	}

	return a
}
