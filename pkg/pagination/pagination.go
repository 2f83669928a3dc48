// Package pagination slices result sets into pages.
//
// Paginate works on an in-memory slice. Stores that page in the database use
// Window to compute offset and limit, then New to wrap the loaded page.
package pagination

import "math"

// DefaultPerPage matches the site's ui.itemsPerPage.
const DefaultPerPage = 12

// MaxPerPage caps client supplied page sizes.
const MaxPerPage = 100

// MaxPage caps client supplied page numbers so Page*PerPage never
// overflows int.
const MaxPage = math.MaxInt / MaxPerPage

// Params are the paging query parameters.
type Params struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// Normalize clamps p to valid values: 1 <= page <= MaxPage and
// 1 <= perPage <= MaxPerPage, defaulting perPage to def.
func (p Params) Normalize(def int) Params {
	if def <= 0 {
		def = DefaultPerPage
	}
	p.Page = min(max(p.Page, 1), MaxPage)
	if p.PerPage < 1 {
		p.PerPage = def
	}
	p.PerPage = min(p.PerPage, MaxPerPage)
	return p
}

// Page is one page of T.
type Page[T any] struct {
	Data         []T  `json:"data"`
	TotalItems   int  `json:"totalItems"`
	TotalPages   int  `json:"totalPages"`
	CurrentPage  int  `json:"currentPage"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// Window returns the offset and limit of page for perPage items per page.
func Window(page, perPage int) (offset, limit int) {
	p := Params{Page: page, PerPage: perPage}.Normalize(DefaultPerPage)
	return (p.Page - 1) * p.PerPage, p.PerPage
}

// New wraps an already loaded page. data is used as is.
func New[T any](data []T, totalItems, page, perPage int) Page[T] {
	p := Params{Page: page, PerPage: perPage}.Normalize(DefaultPerPage)
	if data == nil {
		data = []T{}
	}
	end := p.Page * p.PerPage
	return Page[T]{
		Data:         data,
		TotalItems:   totalItems,
		TotalPages:   (totalItems + p.PerPage - 1) / p.PerPage,
		CurrentPage:  p.Page,
		ItemsPerPage: p.PerPage,
		HasNext:      end < totalItems,
		HasPrev:      p.Page > 1,
	}
}

// Paginate returns page of items. Pages past the end are empty.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	offset, limit := Window(page, perPage)
	start := min(offset, len(items))
	end := min(offset+limit, len(items))

	data := make([]T, end-start)
	copy(data, items[start:end])
	return New(data, len(items), page, perPage)
}
