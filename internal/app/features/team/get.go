package team

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/inputval"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Get handles GET /api/team/{empId}. Soft-deleted members read as not found.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if !inputval.IsValidEmpID(empID) {
		respond.BadRequest(w, "Invalid employee ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.GetActiveByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Team member not found")
			return
		}
		h.Log.Error("team member fetch failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{"data": m})
}
