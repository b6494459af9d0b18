// Package paginator turns page/limit query values into a row offset and the
// page metadata returned alongside listings.
package paginator

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type Paginator struct {
	Page  int
	Limit int
}

type Metadata struct {
	TotalRecords int `json:"totalRecords"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	TotalPages   int `json:"totalPages"`
	Page         int `json:"page"`
	Limit        int `json:"limit"`
}

// New replaces values below 1 with the defaults. There is no upper bound on
// limit.
func New(page, limit int) Paginator {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Paginator{Page: page, Limit: limit}
}

// FromOptional is New for values that may be missing.
func FromOptional(page, limit *int) Paginator {
	p, l := 0, 0
	if page != nil {
		p = *page
	}
	if limit != nil {
		l = *limit
	}
	return New(p, l)
}

// Offset saturates at math.MaxInt instead of overflowing.
func (p Paginator) Offset() int {
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func (p Paginator) TotalPages(totalRecords int) int {
	if totalRecords <= 0 {
		return 0
	}
	pages := totalRecords / p.Limit
	if totalRecords%p.Limit != 0 {
		pages++
	}
	return pages
}

func (p Paginator) Metadata(totalRecords int) Metadata {
	if totalRecords <= 0 {
		return Metadata{Page: p.Page, Limit: p.Limit}
	}
	pages := p.TotalPages(totalRecords)
	return Metadata{
		TotalRecords: totalRecords,
		FirstPage:    1,
		LastPage:     pages,
		TotalPages:   pages,
		Page:         p.Page,
		Limit:        p.Limit,
	}
}
