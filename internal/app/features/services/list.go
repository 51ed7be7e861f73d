package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// List handles GET /api/services. An absent isActive param returns services
// in both states.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	var isActive *bool
	if s := query.Get(r, "isActive"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			isActive = &v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	services, total, err := h.Store.List(ctx, isActive, p)
	if err != nil {
		h.Log.Error("service list failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{
		"data":       services,
		"pagination": paging.NewMeta(p, total),
	})
}
