package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 12, MaxPageSize: 48}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"defaults", "", 1, 12, 0},
		{"explicit", "page=3&pageSize=20", 3, 20, 40},
		{"clamped", "page=-2&pageSize=500", 1, 48, 0},
		{"garbage", "page=abc&pageSize=x", 1, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.page || req.PageSize != tt.pageSize {
				t.Errorf("page = %d/%d, want %d/%d", req.Page, req.PageSize, tt.page, tt.pageSize)
			}
			if got := req.Offset(); got != tt.offset {
				t.Errorf("Offset() = %d, want %d", got, tt.offset)
			}
		})
	}
}

func TestPageRequestFromQuery_SearchSort(t *testing.T) {
	values, _ := url.ParseQuery("search=esche&sort=-Year,Ordinal")
	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Search == nil || *req.Search != "esche" {
		t.Errorf("Search = %v, want esche", req.Search)
	}
	if len(req.Sort) != 2 || req.Sort[0].Field != "Year" || !req.Sort[0].Descending {
		t.Errorf("Sort = %v, want [-Year Ordinal]", req.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		pages    int
		previous int
		next     int
	}{
		{"empty", 0, 1, 1, 0, 0},
		{"first of three", 30, 1, 3, 0, 2},
		{"middle", 30, 2, 3, 1, 3},
		{"last partial", 25, 3, 3, 2, 0},
		{"past the end", 25, 9, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pagination.NewPageResult[int](nil, tt.total, tt.page, 12)

			if r.Data == nil {
				t.Error("Data = nil, want empty slice")
			}
			if r.TotalPages != tt.pages || r.Previous != tt.previous || r.Next != tt.next {
				t.Errorf("pages/previous/next = %d/%d/%d, want %d/%d/%d",
					r.TotalPages, r.Previous, r.Next, tt.pages, tt.previous, tt.next)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "24")

	c := pagination.Config{}
	if err := c.Finalize(&pagination.Env{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if c.DefaultPageSize != 24 || c.MaxPageSize != 96 {
		t.Errorf("config = %+v, want 24/96", c)
	}

	bad := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() error = nil, want error")
	}
}
