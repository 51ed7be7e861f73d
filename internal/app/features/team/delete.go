package team

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/inputval"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/app/system/uploads"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SoftDelete handles DELETE /api/team/{empId}: marks the member inactive.
// The document and its image asset stay so the member can be restored.
func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if !inputval.IsValidEmpID(empID) {
		respond.BadRequest(w, "Invalid employee ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.SoftDelete(ctx, empID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Team member not found")
			return
		}
		h.Log.Error("team member soft delete failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Team member deleted successfully", nil)
}

// PermanentDelete handles DELETE /api/team/{empId}/permanent: removes the
// document and its image asset. Works on soft-deleted members too.
func (h *Handler) PermanentDelete(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if !inputval.IsValidEmpID(empID) {
		respond.BadRequest(w, "Invalid employee ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	m, err := h.Store.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Team member not found")
			return
		}
		h.Log.Error("team member fetch failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	uploads.Remove(ctx, h.Storage, m.Image.PublicID, h.Log)

	if _, err := h.Store.Delete(ctx, empID); err != nil {
		h.Log.Error("team member delete failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Team member permanently deleted", nil)
}
