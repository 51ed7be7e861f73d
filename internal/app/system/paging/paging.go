// Package paging implements the 1-indexed page/limit pagination used by all
// list endpoints. Lists are small (site content, inbound inquiries), so
// offset pagination with a total count is fine here; there is no need for
// keyset cursors.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size when the client does not send one.
const DefaultLimit = 10

// MaxLimit caps client-supplied page sizes.
const MaxLimit = 100

// Params holds the parsed pagination inputs for a list query.
type Params struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Parse extracts "page" and "limit" query parameters. Missing or invalid
// values fall back to page 1 / DefaultLimit; limit is clamped to MaxLimit.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Meta is the pagination block returned alongside list payloads.
type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// NewMeta computes the pagination block for a total count and params.
func NewMeta(p Params, total int64) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		HasNext:      p.Page < totalPages,
		HasPrev:      p.Page > 1,
	}
}
