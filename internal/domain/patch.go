package domain

import "time"

// Merge-patch semantics: a nil field means "leave the target unchanged",
// a non-nil field overwrites. The target's ID is authoritative and is
// never overwritten. Because nil doubles as "absent", a patch cannot
// clear Description or the Curso→Area relation; callers that need
// clear-intent must use a full update.

// AreaPatch is a partial representation of an Area.
type AreaPatch struct {
	ID          *int64
	Name        *string
	Description *string
	Status      *Status
	CreatedAt   *time.Time
	InactiveAt  *time.Time
}

// TargetID returns the id of the record the patch addresses.
func (p AreaPatch) TargetID() *int64 { return p.ID }

// Apply copies every non-nil patch field onto the target.
func (p AreaPatch) Apply(a *Area) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.CreatedAt != nil {
		a.CreatedAt = *p.CreatedAt
	}
	if p.InactiveAt != nil {
		a.InactiveAt = p.InactiveAt
	}
}

// CursoPatch is a partial representation of a Curso.
type CursoPatch struct {
	ID          *int64
	Name        *string
	Description *string
	Status      *Status
	CreatedAt   *time.Time
	InactiveAt  *time.Time
	Area        *AreaRef
}

// TargetID returns the id of the record the patch addresses.
func (p CursoPatch) TargetID() *int64 { return p.ID }

// Apply copies every non-nil patch field onto the target. A nil Area means
// "relation unchanged", not "detach".
func (p CursoPatch) Apply(c *Curso) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.CreatedAt != nil {
		c.CreatedAt = *p.CreatedAt
	}
	if p.InactiveAt != nil {
		c.InactiveAt = p.InactiveAt
	}
	if p.Area != nil {
		c.Area = p.Area
	}
}
