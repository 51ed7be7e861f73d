package blogs

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Get handles GET /api/blogs/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid blog ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	blog, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Blog not found")
			return
		}
		h.Log.Error("blog fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Error fetching blog", err)
		return
	}

	respond.OK(w, "", respond.Body{"blog": blog})
}
