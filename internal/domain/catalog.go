package domain

import (
	"time"
)

// Status is the activity state of a catalog record.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// Area is a subject area grouping courses.
// ID is nil until the record is first persisted.
type Area struct {
	ID          *int64
	Name        string
	Description *string
	Status      Status
	CreatedAt   time.Time
	InactiveAt  *time.Time
}

// Equal reports identity equality: two areas are equal iff both carry the
// same non-nil ID. Records that were never persisted are never equal.
func (a Area) Equal(other Area) bool {
	if a.ID == nil || other.ID == nil {
		return false
	}
	return *a.ID == *other.ID
}

func (a *Area) GetID() *int64             { return a.ID }
func (a *Area) GetName() string           { return a.Name }
func (a *Area) GetStatus() Status         { return a.Status }
func (a *Area) GetInactiveAt() *time.Time { return a.InactiveAt }

func (a *Area) SetInactiveAt(t *time.Time) { a.InactiveAt = t }

// AreaRef is the reduced projection of an Area carried by a Curso:
// the foreign key plus the parent's name for presentation. Name is nil
// when the referenced area no longer exists (deleting an area does not
// touch its cursos).
type AreaRef struct {
	ID   int64
	Name *string
}

// Curso is a course, optionally belonging to one Area. The relation is a
// weak reference: the curso stores the area id and resolves the parent by
// lookup, it never owns the parent.
type Curso struct {
	ID          *int64
	Name        string
	Description *string
	Status      Status
	CreatedAt   time.Time
	InactiveAt  *time.Time
	Area        *AreaRef
}

// Equal reports identity equality, same rules as Area.Equal.
func (c Curso) Equal(other Curso) bool {
	if c.ID == nil || other.ID == nil {
		return false
	}
	return *c.ID == *other.ID
}

func (c *Curso) GetID() *int64             { return c.ID }
func (c *Curso) GetName() string           { return c.Name }
func (c *Curso) GetStatus() Status         { return c.Status }
func (c *Curso) GetInactiveAt() *time.Time { return c.InactiveAt }

func (c *Curso) SetInactiveAt(t *time.Time) { c.InactiveAt = t }

// AreaID returns the id of the referenced area, or nil when the curso has none.
func (c *Curso) AreaID() *int64 {
	if c.Area == nil {
		return nil
	}
	return &c.Area.ID
}
