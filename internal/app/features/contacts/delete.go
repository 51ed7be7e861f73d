package contacts

import (
	"context"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Delete handles DELETE /api/contacts/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid contact ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("contact delete failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}
	if deleted == 0 {
		respond.NotFound(w, "Contact inquiry not found")
		return
	}

	respond.OK(w, "Contact inquiry deleted successfully", nil)
}
