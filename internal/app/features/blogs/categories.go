package blogs

import (
	"context"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Categories handles GET /api/blogs/categories: the distinct categories
// across published posts.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	categories, err := h.Store.Categories(ctx)
	if err != nil {
		h.Log.Error("blog categories failed", zap.Error(err))
		respond.Internal(w, "Error fetching categories", err)
		return
	}

	respond.OK(w, "", respond.Body{"categories": categories})
}
