package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/contacts", nil)
	p := Parse(r)
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Errorf("Parse() = %+v, want page 1 limit %d", p, DefaultLimit)
	}
	if p.Skip() != 0 {
		t.Errorf("Skip() = %d, want 0", p.Skip())
	}
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		url       string
		wantPage  int
		wantLimit int
		wantSkip  int64
	}{
		{"/contacts?page=3&limit=10", 3, 10, 20},
		{"/contacts?page=2", 2, DefaultLimit, 10},
		{"/contacts?page=0&limit=-5", 1, DefaultLimit, 0},
		{"/contacts?page=abc&limit=xyz", 1, DefaultLimit, 0},
		{"/contacts?limit=500", 1, MaxLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := Parse(r)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("Parse() = %+v, want page %d limit %d", p, tt.wantPage, tt.wantLimit)
			}
			if p.Skip() != tt.wantSkip {
				t.Errorf("Skip() = %d, want %d", p.Skip(), tt.wantSkip)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Meta
	}{
		{
			name: "first of three pages",
			page: 1, limit: 10, total: 25,
			want: Meta{CurrentPage: 1, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "last partial page",
			page: 3, limit: 10, total: 25,
			want: Meta{CurrentPage: 3, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "empty collection",
			page: 1, limit: 10, total: 0,
			want: Meta{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 10, HasNext: false, HasPrev: false},
		},
		{
			name: "exact page boundary",
			page: 2, limit: 10, total: 20,
			want: Meta{CurrentPage: 2, TotalPages: 2, TotalItems: 20, ItemsPerPage: 10, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeta(Params{Page: tt.page, Limit: tt.limit}, tt.total)
			if got != tt.want {
				t.Errorf("NewMeta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
