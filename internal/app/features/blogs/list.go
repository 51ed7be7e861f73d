package blogs

import (
	"context"
	"net/http"

	blogstore "github.com/dalemusser/firmsite/internal/app/store/blogs"
	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// List handles GET /api/blogs. Public listing: only published posts, with
// optional category and search filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)
	f := blogstore.Filter{
		Category:      query.Get(r, "category"),
		Search:        query.Get(r, "search"),
		PublishedOnly: true,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	blogs, total, err := h.Store.List(ctx, f, p)
	if err != nil {
		h.Log.Error("blog list failed", zap.Error(err))
		respond.Internal(w, "Error fetching blogs", err)
		return
	}

	respond.OK(w, "", respond.Body{
		"blogs":      blogs,
		"pagination": paging.NewMeta(p, total),
	})
}

// ListByCategory handles GET /api/blogs/category/{category}.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)
	f := blogstore.Filter{
		Category:      chi.URLParam(r, "category"),
		PublishedOnly: true,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	blogs, total, err := h.Store.List(ctx, f, p)
	if err != nil {
		h.Log.Error("blog list by category failed",
			zap.String("category", f.Category),
			zap.Error(err))
		respond.Internal(w, "Error fetching blogs by category", err)
		return
	}

	respond.OK(w, "", respond.Body{
		"blogs":      blogs,
		"pagination": paging.NewMeta(p, total),
	})
}
