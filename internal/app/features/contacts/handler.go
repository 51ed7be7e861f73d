// Package contacts serves the contact inquiry API: a public submission
// endpoint and the admin triage surface (list with embedded statistics,
// status and read-state changes, dashboard stats).
package contacts

import (
	"encoding/json"
	"net/http"

	contactstore "github.com/dalemusser/firmsite/internal/app/store/contacts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all contact handlers.
type Handler struct {
	Store *contactstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a contact Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: contactstore.New(db),
		Log:   logger,
	}
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
