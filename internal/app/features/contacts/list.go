package contacts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	contactstore "github.com/dalemusser/firmsite/internal/app/store/contacts"
	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// List handles GET /api/contacts. The admin inbox: filters plus an embedded
// statistics block (status breakdown and unread count) beside the page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)
	f := contactstore.Filter{
		Status:  query.Get(r, "status"),
		Service: query.Get(r, "service"),
		Search:  query.Get(r, "search"),
	}
	if s := query.Get(r, "isRead"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			f.IsRead = &v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	contacts, total, err := h.Store.List(ctx, f, p)
	if err != nil {
		h.Log.Error("contact list failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	breakdown, err := h.Store.StatusBreakdown(ctx)
	if err != nil {
		h.Log.Error("contact status breakdown failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}
	unread, err := h.Store.CountUnread(ctx)
	if err != nil {
		h.Log.Error("contact unread count failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "", respond.Body{
		"data":       contacts,
		"pagination": paging.NewMeta(p, total),
		"statistics": respond.Body{
			"statusBreakdown": breakdown,
			"unreadCount":     unread,
		},
	})
}

// Get handles GET /api/contacts/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "Invalid contact ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	respond.OK(w, "", respond.Body{"data": contact})
}
