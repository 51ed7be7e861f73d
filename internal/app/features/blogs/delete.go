package blogs

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/app/system/uploads"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Delete handles DELETE /api/blogs/{id}. The cover image asset is removed
// best-effort before the document.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid blog ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	blog, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Blog not found")
			return
		}
		h.Log.Error("blog fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Error deleting blog", err)
		return
	}

	uploads.Remove(ctx, h.Storage, blog.ImagePublicID, h.Log)

	if _, err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("blog delete failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Error deleting blog", err)
		return
	}

	respond.OK(w, "Blog deleted successfully", nil)
}
