package contacts

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type statusInput struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contacts/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid contact ID")
		return
	}

	var in statusInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if !models.ValidContactStatus(in.Status) {
		respond.BadRequest(w, "Invalid status. Valid statuses are: pending, in-progress, resolved, closed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Contact inquiry not found")
			return
		}
		h.Log.Error("contact status update failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Contact status updated successfully", respond.Body{"data": updated})
}

// ToggleRead handles PATCH /api/contacts/{id}/read-status: flips the read
// flag.
func (h *Handler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid contact ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	contact, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Contact inquiry not found")
			return
		}
		h.Log.Error("contact fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	updated, err := h.Store.SetRead(ctx, id, !contact.IsRead)
	if err != nil {
		h.Log.Error("contact read toggle failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	msg := "Contact marked as unread"
	if updated.IsRead {
		msg = "Contact marked as read"
	}
	respond.OK(w, msg, respond.Body{"data": updated})
}
