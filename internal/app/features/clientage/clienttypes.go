package clientage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type clientTypeInput struct {
	ClientType string `json:"clientType"`
}

// AddClientType handles POST /api/clientage/{id}/client-types. A client type
// already present in the category (exact match) is rejected.
func (h *Handler) AddClientType(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid category ID")
		return
	}

	var in clientTypeInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	clientType := strings.TrimSpace(in.ClientType)
	if clientType == "" {
		respond.BadRequest(w, "Client type is required")
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

	for _, existing := range category.ClientTypes {
		if existing == clientType {
			respond.BadRequest(w, "Client type already exists in this category")
			return
		}
	}

	updated, err := h.Store.SetClientTypes(ctx, id, append(category.ClientTypes, clientType))
	if err != nil {
		h.Log.Error("client type add failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Client type added successfully", respond.Body{"data": updated})
}

// RemoveClientType handles DELETE /api/clientage/{id}/client-types. Removal
// is by exact match; removing an absent type is a no-op, as the upstream API
// behaves.
func (h *Handler) RemoveClientType(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid category ID")
		return
	}

	var in clientTypeInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}
	if in.ClientType == "" {
		respond.BadRequest(w, "Client type is required")
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

	remaining := make([]string, 0, len(category.ClientTypes))
	for _, t := range category.ClientTypes {
		if t != in.ClientType {
			remaining = append(remaining, t)
		}
	}

	updated, err := h.Store.SetClientTypes(ctx, id, remaining)
	if err != nil {
		h.Log.Error("client type remove failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Client type removed successfully", respond.Body{"data": updated})
}
