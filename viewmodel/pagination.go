package viewmodel

import "sbweb/lmsapi"

// Pager is the rendered pagination state for a page envelope. The page index
// never goes negative; prev is disabled on the first page and next on the
// last.
type Pager struct {
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	HasPrev       bool  `json:"hasPrev"`
	HasNext       bool  `json:"hasNext"`
}

func NewPager[T any](p lmsapi.Page[T]) Pager {
	page := p.Page
	if page < 0 {
		page = 0
	}
	return Pager{
		Page:          page,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		HasPrev:       !p.First && page > 0,
		HasNext:       !p.Last,
	}
}
