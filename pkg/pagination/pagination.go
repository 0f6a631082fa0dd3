package pagination

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/superbowl/pkg/query"
)

// Query parameter names read by PageRequestFromQuery.
const (
	ParamPage     = "page"
	ParamPageSize = "pageSize"
	ParamSearch   = "search"
	ParamSort     = "sort"
)

// PageRequest is one requested page of a listing such as the bowl portfolio.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps the request to the configured page sizes. Pages start at 1.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, pageSize, search and sort from values.
// sort is comma separated with a "-" prefix for descending terms.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get(ParamPage))
	size, _ := strconv.Atoi(values.Get(ParamPageSize))

	req := PageRequest{
		Page:     page,
		PageSize: size,
		Sort:     query.ParseSortFields(values.Get(ParamSort)),
	}
	if s := values.Get(ParamSearch); s != "" {
		req.Search = &s
	}

	req.Normalize(cfg)
	return req
}

// PageResult is a page of T with the neighbouring page numbers. Previous
// and Next are 0 when there is no such page.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Previous   int `json:"previousPage"`
	Next       int `json:"nextPage"`
}

func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	pages := 1
	if pageSize > 0 && total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	result := PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
	if page > 1 {
		result.Previous = min(page-1, pages)
	}
	if page < pages {
		result.Next = page + 1
	}
	return result
}
