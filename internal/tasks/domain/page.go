package domain

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// MaxPageNumber keeps Offset from overflowing at any valid limit.
	MaxPageNumber = math.MaxInt / MaxPageLimit
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage clamps a requested page to sane bounds; non-positive values take
// the defaults, limits above MaxPageLimit are capped and page numbers above
// MaxPageNumber are capped.
func NewPage(number, limit int) Page {
	switch {
	case number < 1:
		number = 1
	case number > MaxPageNumber:
		number = MaxPageNumber
	}
	switch {
	case limit < 1:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int { return (p.Number - 1) * p.Limit }

type Pagination struct {
	Current int
	Pages   int
	Total   int
	Limit   int
}

// Paginate describes page p of total items. Pages is ceil(total/limit).
func Paginate(p Page, total int) Pagination {
	return Pagination{
		Current: p.Number,
		Pages:   (total + p.Limit - 1) / p.Limit,
		Total:   total,
		Limit:   p.Limit,
	}
}
