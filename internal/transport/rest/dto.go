package rest

import (
	"time"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// AreaDTO is the wire representation of an Area.
type AreaDTO struct {
	ID          *int64     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	InactiveAt  *time.Time `json:"inactiveAt,omitempty"`
}

// AreaRefDTO is the reduced {id, name} projection of a related Area.
type AreaRefDTO struct {
	ID   int64   `json:"id"`
	Name *string `json:"name,omitempty"`
}

// CursoDTO is the wire representation of a Curso.
type CursoDTO struct {
	ID          *int64      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	InactiveAt  *time.Time  `json:"inactiveAt,omitempty"`
	Area        *AreaRefDTO `json:"area,omitempty"`
}

func (d AreaDTO) validate() error {
	return validateCommon(d.Name, d.Status, d.CreatedAt)
}

func (d CursoDTO) validate() error {
	return validateCommon(d.Name, d.Status, d.CreatedAt)
}

func validateCommon(name, status string, createdAt time.Time) error {
	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if !domain.Status(status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE or INACTIVE"})
	}
	if createdAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "createdAt", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (d AreaDTO) toDomain() *domain.Area {
	return &domain.Area{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		CreatedAt:   d.CreatedAt,
		InactiveAt:  d.InactiveAt,
	}
}

func toAreaDTO(a *domain.Area) AreaDTO {
	return AreaDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Status:      a.Status.String(),
		CreatedAt:   a.CreatedAt,
		InactiveAt:  a.InactiveAt,
	}
}

func toAreaDTOs(areas []domain.Area) []AreaDTO {
	out := make([]AreaDTO, 0, len(areas))
	for i := range areas {
		out = append(out, toAreaDTO(&areas[i]))
	}
	return out
}

func (d CursoDTO) toDomain() *domain.Curso {
	c := &domain.Curso{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		CreatedAt:   d.CreatedAt,
		InactiveAt:  d.InactiveAt,
	}
	if d.Area != nil {
		c.Area = &domain.AreaRef{ID: d.Area.ID, Name: d.Area.Name}
	}
	return c
}

func toCursoDTO(c *domain.Curso) CursoDTO {
	d := CursoDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status.String(),
		CreatedAt:   c.CreatedAt,
		InactiveAt:  c.InactiveAt,
	}
	if c.Area != nil {
		d.Area = &AreaRefDTO{ID: c.Area.ID, Name: c.Area.Name}
	}
	return d
}

func toCursoDTOs(cursos []domain.Curso) []CursoDTO {
	out := make([]CursoDTO, 0, len(cursos))
	for i := range cursos {
		out = append(out, toCursoDTO(&cursos[i]))
	}
	return out
}

// AreaPatchDTO is the merge-patch body for an Area: absent fields leave the
// record unchanged.
type AreaPatchDTO struct {
	ID          *int64     `json:"id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	InactiveAt  *time.Time `json:"inactiveAt,omitempty"`
}

func (d AreaPatchDTO) validate() error {
	return validatePatchStatus(d.Status)
}

func (d AreaPatchDTO) toDomain(id int64) domain.AreaPatch {
	p := domain.AreaPatch{
		ID:          &id,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		InactiveAt:  d.InactiveAt,
	}
	if d.Status != nil {
		st := domain.Status(*d.Status)
		p.Status = &st
	}
	return p
}

// CursoPatchDTO is the merge-patch body for a Curso. An absent area leaves
// the relation unchanged.
type CursoPatchDTO struct {
	ID          *int64      `json:"id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *string     `json:"status,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
	InactiveAt  *time.Time  `json:"inactiveAt,omitempty"`
	Area        *AreaRefDTO `json:"area,omitempty"`
}

func (d CursoPatchDTO) validate() error {
	return validatePatchStatus(d.Status)
}

func (d CursoPatchDTO) toDomain(id int64) domain.CursoPatch {
	p := domain.CursoPatch{
		ID:          &id,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		InactiveAt:  d.InactiveAt,
	}
	if d.Status != nil {
		st := domain.Status(*d.Status)
		p.Status = &st
	}
	if d.Area != nil {
		p.Area = &domain.AreaRef{ID: d.Area.ID, Name: d.Area.Name}
	}
	return p
}

func validatePatchStatus(status *string) error {
	if status != nil && !domain.Status(*status).IsValid() {
		return domain.NewValidationError("status", "must be ACTIVE or INACTIVE")
	}
	return nil
}
