// Package support holds request and bookkeeping helpers shared by the application services.
package support

import "github.com/aims/backend/internal/domain/shared"

// ListRequest carries the search, sort and paging options of a list endpoint.
// The same struct binds query strings and JSON bodies.
type ListRequest struct {
	SearchText    string `json:"searchtext" form:"searchtext"`
	SortField     string `json:"sort_field" form:"sort_field"`
	SortDirection string `json:"sort_direction" form:"sort_direction"`
	PerPage       int    `json:"per_page" form:"per_page"`
	Page          int    `json:"page" form:"page"`
}

// Filter converts the request to a normalized repository filter. A custom
// sort applies only when both field and direction are given.
func (r ListRequest) Filter() shared.Filter {
	f := shared.DefaultFilter()
	f.Search = r.SearchText
	if r.SortField != "" && r.SortDirection != "" {
		f.OrderBy = r.SortField
		f.OrderDir = r.SortDirection
	}
	if r.PerPage > 0 {
		f.PageSize = r.PerPage
	}
	if r.Page > 0 {
		f.Page = r.Page
	}
	return f.Normalize()
}
