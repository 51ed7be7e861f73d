package team

import (
	"context"
	"net/http"
	"strconv"

	teamstore "github.com/dalemusser/firmsite/internal/app/store/team"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// List handles GET /api/team. Defaults to active members; department and
// role filter case-insensitively, with "all" meaning no filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := teamstore.Filter{IsActive: true}

	if s := query.Get(r, "isActive"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			f.IsActive = v
		}
	}
	if d := query.Get(r, "department"); d != "" && d != "all" {
		f.Department = d
	}
	if role := query.Get(r, "role"); role != "" && role != "all" {
		f.Role = role
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Store.List(ctx, f)
	if err != nil {
		h.Log.Error("team list failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{
		"count": len(members),
		"data":  members,
	})
}
