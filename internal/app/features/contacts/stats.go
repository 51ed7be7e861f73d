package contacts

import (
	"context"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Stats handles GET /api/contacts/stats: the admin dashboard summary.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Store.Stats(ctx)
	if err != nil {
		h.Log.Error("contact stats failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{"data": stats})
}
