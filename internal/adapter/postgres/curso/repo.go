// Package curso implements the Curso store using PostgreSQL. Reads join
// the parent area to fill the reduced {id, name} projection; the relation
// itself is a plain nullable foreign key column with no cascade semantics.
package curso

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

// Repo provides curso persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new curso repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const cursoJoinColumns = `
    c.id, c.name, c.description, c.status, c.created_at, c.inactive_at,
    c.area_id, a.name`

const cursoFromJoin = `
FROM curso c
LEFT JOIN area a ON a.id = c.area_id`

var sortColumns = map[string]string{
	"id":          "c.id",
	"name":        "c.name",
	"description": "c.description",
	"status":      "c.status",
	"createdAt":   "c.created_at",
	"inactiveAt":  "c.inactive_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getCursoSQL = `SELECT` + cursoJoinColumns + cursoFromJoin + `
WHERE c.id = $1`

// Get returns a curso by primary key, or domain.ErrNotFound. The parent
// projection carries a nil name when the referenced area no longer exists.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Curso, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getCursoSQL, id)
	c, err := scanCurso(row)
	if err != nil {
		return nil, postgres.MapError(err, "curso", id)
	}

	return c, nil
}

const getAllCursosSQL = `SELECT` + cursoJoinColumns + cursoFromJoin

// GetAll returns every curso, unordered. Feeds the uniqueness scan.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Curso, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getAllCursosSQL)
	if err != nil {
		return nil, fmt.Errorf("get all cursos: %w", err)
	}
	defer rows.Close()

	cursos, err := scanCursos(rows)
	if err != nil {
		return nil, fmt.Errorf("get all cursos: %w", err)
	}

	return cursos, nil
}

// List returns one page of cursos ordered per the request, with the parent
// projection joined in.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) ([]domain.Curso, error) {
	qb := sq.Select(
		"c.id", "c.name", "c.description", "c.status", "c.created_at", "c.inactive_at",
		"c.area_id", "a.name").
		From("curso c").
		LeftJoin("area a ON a.id = c.area_id").
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
	qb = qb.OrderBy("c.id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset()))

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list cursos: %w", err)
	}
	defer rows.Close()

	cursos, err := scanCursos(rows)
	if err != nil {
		return nil, fmt.Errorf("list cursos: %w", err)
	}

	return cursos, nil
}

const byAreaSQL = `SELECT` + cursoJoinColumns + cursoFromJoin + `
WHERE c.area_id = $1
ORDER BY c.name`

// ByArea returns all cursos referencing one area, ordered by name.
// Returns an empty slice (not nil) when the area has no cursos.
func (r *Repo) ByArea(ctx context.Context, areaID int64) ([]domain.Curso, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, byAreaSQL, areaID)
	if err != nil {
		return nil, fmt.Errorf("cursos by area: %w", err)
	}
	defer rows.Close()

	cursos, err := scanCursos(rows)
	if err != nil {
		return nil, fmt.Errorf("cursos by area: %w", err)
	}

	return cursos, nil
}

const withoutAreaSQL = `SELECT` + cursoJoinColumns + cursoFromJoin + `
WHERE c.area_id IS NULL
ORDER BY c.name`

// WithoutArea returns all cursos that reference no area, ordered by name.
func (r *Repo) WithoutArea(ctx context.Context) ([]domain.Curso, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, withoutAreaSQL)
	if err != nil {
		return nil, fmt.Errorf("cursos without area: %w", err)
	}
	defer rows.Close()

	cursos, err := scanCursos(rows)
	if err != nil {
		return nil, fmt.Errorf("cursos without area: %w", err)
	}

	return cursos, nil
}

const cursoExistsSQL = `SELECT EXISTS (SELECT 1 FROM curso WHERE id = $1)`

// Exists reports whether a curso with the given id is persisted.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, cursoExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("curso exists: %w", err)
	}

	return exists, nil
}

const countCursosSQL = `SELECT count(*) FROM curso`

// Count returns the total number of cursos.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := q.QueryRow(ctx, countCursosSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cursos: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertCursoSQL = `
INSERT INTO curso (name, description, status, created_at, inactive_at, area_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const updateCursoSQL = `
UPDATE curso
SET name = $2, description = $3, status = $4, created_at = $5, inactive_at = $6, area_id = $7
WHERE id = $1
RETURNING id`

// Save inserts the curso when it has no id and updates it otherwise, then
// re-reads through the join so the returned record carries the parent
// projection. Updating an id that is gone returns domain.ErrNotFound.
func (r *Repo) Save(ctx context.Context, c *domain.Curso) (*domain.Curso, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		row pgx.Row
		id  int64
	)
	if c.ID == nil {
		row = q.QueryRow(ctx, insertCursoSQL,
			c.Name, c.Description, c.Status.String(), c.CreatedAt, c.InactiveAt, c.AreaID())
	} else {
		row = q.QueryRow(ctx, updateCursoSQL,
			*c.ID, c.Name, c.Description, c.Status.String(), c.CreatedAt, c.InactiveAt, c.AreaID())
	}

	if err := row.Scan(&id); err != nil {
		prev := int64(0)
		if c.ID != nil {
			prev = *c.ID
		}
		return nil, postgres.MapError(err, "curso", prev)
	}

	return r.Get(ctx, id)
}

const deleteCursoSQL = `DELETE FROM curso WHERE id = $1`

// Delete removes the curso. Deleting a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteCursoSQL, id); err != nil {
		return postgres.MapError(err, "curso", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanCurso(row pgx.Row) (*domain.Curso, error) {
	var (
		id          int64
		name        string
		description pgtype.Text
		status      string
		createdAt   time.Time
		inactiveAt  pgtype.Timestamptz
		areaID      pgtype.Int8
		areaName    pgtype.Text
	)

	if err := row.Scan(&id, &name, &description, &status, &createdAt, &inactiveAt, &areaID, &areaName); err != nil {
		return nil, err
	}

	c := &domain.Curso{
		ID:        &id,
		Name:      name,
		Status:    domain.Status(status),
		CreatedAt: createdAt,
	}

	if description.Valid {
		c.Description = &description.String
	}
	if inactiveAt.Valid {
		t := inactiveAt.Time
		c.InactiveAt = &t
	}
	if areaID.Valid {
		ref := &domain.AreaRef{ID: areaID.Int64}
		if areaName.Valid {
			ref.Name = &areaName.String
		}
		c.Area = ref
	}

	return c, nil
}

func scanCursos(rows pgx.Rows) ([]domain.Curso, error) {
	var result []domain.Curso
	for rows.Next() {
		c, err := scanCurso(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Curso{}
	}

	return result, nil
}
