package clientage

import (
	"context"
	"errors"
	"net/http"

	categorystore "github.com/dalemusser/firmsite/internal/app/store/clientage"
	"github.com/dalemusser/firmsite/internal/app/system/fieldparse"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type categoryInput struct {
	CategoryName string   `json:"categoryName"`
	ClientTypes  []string `json:"clientTypes"`
}

// Create handles POST /api/clientage.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	if in.CategoryName == "" {
		respond.BadRequest(w, "Category name is required")
		return
	}
	if len(in.CategoryName) > 100 {
		respond.BadRequest(w, "Category name cannot exceed 100 characters")
		return
	}
	clientTypes := fieldparse.Compact(in.ClientTypes)
	if len(clientTypes) == 0 {
		respond.BadRequest(w, "Client types array is required and cannot be empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Pre-check gives a clean message; the folded unique index backstops the
	// race.
	if _, err := h.Store.FindByNameCI(ctx, in.CategoryName); err == nil {
		respond.BadRequest(w, "Category with this name already exists")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("category lookup failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	created, err := h.Store.Create(ctx, models.ClientageCategory{
		CategoryName: in.CategoryName,
		ClientTypes:  clientTypes,
	})
	if err != nil {
		if errors.Is(err, categorystore.ErrDuplicateCategoryName) {
			respond.BadRequest(w, "Category with this name already exists")
			return
		}
		h.Log.Error("category create failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.Created(w, "Category created successfully", respond.Body{"data": created})
}

// List handles GET /api/clientage.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	categories, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("category list failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{"data": categories})
}

// Get handles GET /api/clientage/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	category, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Category not found")
			return
		}
		h.Log.Error("category fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{"data": category})
}

// Update handles PUT /api/clientage/{id}. Partial update; a rename is
// checked for collisions against other categories.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid category ID")
		return
	}

	var in categoryInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	category, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Category not found")
			return
		}
		h.Log.Error("category fetch failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	set := bson.M{}
	if in.CategoryName != "" && in.CategoryName != category.CategoryName {
		if len(in.CategoryName) > 100 {
			respond.BadRequest(w, "Category name cannot exceed 100 characters")
			return
		}
		if existing, err := h.Store.FindByNameCI(ctx, in.CategoryName); err == nil && existing.ID != id {
			respond.BadRequest(w, "Category with this name already exists")
			return
		} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("category lookup failed", zap.Error(err))
			respond.Internal(w, "Internal server error", err)
			return
		}
		set["category_name"] = in.CategoryName
	}
	if in.ClientTypes != nil {
		set["client_types"] = fieldparse.Compact(in.ClientTypes)
	}

	updated, err := h.Store.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, categorystore.ErrDuplicateCategoryName) {
			respond.BadRequest(w, "Category with this name already exists")
			return
		}
		h.Log.Error("category update failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Category updated successfully", respond.Body{"data": updated})
}

// Delete handles DELETE /api/clientage/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("category delete failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}
	if deleted == 0 {
		respond.NotFound(w, "Category not found")
		return
	}

	respond.OK(w, "Category deleted successfully", nil)
}
