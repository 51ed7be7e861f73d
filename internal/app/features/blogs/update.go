package blogs

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/firmsite/internal/app/system/fieldparse"
	"github.com/dalemusser/firmsite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/app/system/uploads"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Update handles PUT /api/blogs/{id}. Partial update: only supplied fields
// change. A new image replaces the old asset; content changes recompute
// readTime.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid blog ID")
		return
	}

	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	blog, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Blog not found")
			return
		}
		h.Log.Error("blog fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Error updating blog", err)
		return
	}

	set := bson.M{}
	if v := r.FormValue("title"); v != "" {
		set["title"] = v
	}
	if v := r.FormValue("content"); v != "" {
		set["content"] = htmlsanitize.Sanitize(v)
		set["read_time"] = ReadTime(v)
	}
	if v := r.FormValue("author"); v != "" {
		set["author"] = v
	}
	if _, ok := r.Form["category"]; ok {
		set["category"] = r.FormValue("category")
	}
	if tags := fieldparse.List(r.Form["tags"]); tags != nil {
		set["tags"] = tags
	}
	if s := r.FormValue("isPublished"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			set["is_published"] = v
		}
	}

	if file, header, ok := uploads.Image(r); ok {
		defer file.Close()

		// Replace: old asset goes first, best-effort.
		uploads.Remove(ctx, h.Storage, blog.ImagePublicID, h.Log)

		asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.Log.Error("blog image upload failed", zap.Error(err))
			respond.Internal(w, "Error uploading image", nil)
			return
		}
		set["image"] = asset.URL
		set["image_public_id"] = asset.PublicID
	}

	updated, err := h.Store.Update(ctx, id, set)
	if err != nil {
		h.Log.Error("blog update failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Error updating blog", err)
		return
	}

	respond.OK(w, "Blog updated successfully", respond.Body{"blog": updated})
}
