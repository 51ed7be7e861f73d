package services

import (
	"context"
	"errors"
	"net/http"

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

// Update handles PUT /api/services/{id}. Partial update; a new image
// replaces the stored asset.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid service ID")
		return
	}

	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	svc, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Service not found")
			return
		}
		h.Log.Error("service fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	set := bson.M{}
	if v := r.FormValue("serviceName"); v != "" {
		set["service_name"] = v
	}
	if v := r.FormValue("description"); v != "" {
		set["description"] = htmlsanitize.Sanitize(v)
	}
	if v := r.FormValue("beneficiary"); v != "" {
		set["beneficiary"] = v
	}
	if benefits := fieldparse.ListJSONFirst(r.Form["detailBenefits"]); benefits != nil {
		set["detail_benefits"] = benefits
	}

	if file, header, ok := uploads.Image(r); ok {
		defer file.Close()

		uploads.Remove(ctx, h.Storage, imagePublicID(svc), h.Log)

		asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.Log.Error("service image upload failed", zap.Error(err))
			respond.Internal(w, "Error uploading image", nil)
			return
		}
		set["image"] = asset.URL
		set["image_public_id"] = asset.PublicID
	}

	updated, err := h.Store.Update(ctx, id, set)
	if err != nil {
		h.Log.Error("service update failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Service updated successfully", respond.Body{"data": updated})
}
