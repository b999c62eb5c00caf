package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", DefaultPage, DefaultLimit},
		{"?page=3&limit=5", 3, 5},
		{"?page=-1&limit=abc", DefaultPage, DefaultLimit},
		{"?limit=1000", DefaultPage, MaxLimit},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/patients"+tt.query, nil)
		p := Parse(r)
		if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
			t.Errorf("Parse(%q) = %+v, want page=%d limit=%d", tt.query, p, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, Params{Page: 2, Limit: 2})
	if len(page) != 2 || page[0] != 3 {
		t.Errorf("Unexpected page 2: %v", page)
	}
	if meta.TotalPages != 3 || !meta.HasNext || !meta.HasPrevious || meta.TotalRecords != 5 {
		t.Errorf("Unexpected meta %+v", meta)
	}

	page, meta = Paginate(items, Params{Page: 3, Limit: 2})
	if len(page) != 1 || page[0] != 5 || meta.HasNext {
		t.Errorf("Unexpected last page: %v %+v", page, meta)
	}

	if page, _ := Paginate(items, Params{Page: 9, Limit: 2}); len(page) != 0 {
		t.Errorf("Expected empty page, got %v", page)
	}
}

func TestPaginate_ZeroParams(t *testing.T) {
	page, meta := Paginate([]string{}, Params{})
	if len(page) != 0 {
		t.Errorf("Expected empty page, got %v", page)
	}
	if meta.TotalPages != 1 || meta.PerPage != DefaultLimit || meta.CurrentPage != DefaultPage || meta.HasNext {
		t.Errorf("Unexpected meta for empty set: %+v", meta)
	}
}
