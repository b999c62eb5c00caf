package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params selects one 1-based page of a list.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Meta describes the selected page for the client pager.
type Meta struct {
	CurrentPage  int  `json:"current_page"`
	PerPage      int  `json:"per_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// Parse reads ?page= and ?limit=. Malformed values fall back to defaults.
func Parse(r *http.Request) Params {
	q := r.URL.Query()
	return Params{Page: positive(q.Get("page")), Limit: positive(q.Get("limit"))}.normalized()
}

func positive(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func (p Params) normalized() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}

// Paginate returns the page of items selected by p with its metadata. Pages
// past the end are empty.
func Paginate[T any](items []T, p Params) ([]T, Meta) {
	p = p.normalized()
	total := len(items)

	pages := (total + p.Limit - 1) / p.Limit
	if pages < 1 {
		pages = 1
	}
	meta := Meta{
		CurrentPage:  p.Page,
		PerPage:      p.Limit,
		TotalPages:   pages,
		TotalRecords: total,
		HasNext:      p.Page < pages,
		HasPrevious:  p.Page > 1,
	}

	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []T{}, meta
	}
	end := min(start+p.Limit, total)
	return items[start:end], meta
}
