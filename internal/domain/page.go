package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortOrder is one ordering criterion of a page request.
type SortOrder struct {
	Property string
	Desc     bool
}

// PageRequest describes one page of a listing: zero-based page index,
// page size, and ordering. Use Normalize before handing it to a store.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Normalize clamps the request into valid bounds: negative pages become 0,
// a non-positive size becomes DefaultPageSize, sizes above MaxPageSize are
// capped.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int { return p.Page * p.Size }
