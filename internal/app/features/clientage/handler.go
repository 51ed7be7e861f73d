// Package clientage serves the clientage category API: named groups of
// client types shown on the firm's clientage page. Bodies are JSON; this
// resource carries no images.
package clientage

import (
	"encoding/json"
	"net/http"

	categorystore "github.com/dalemusser/firmsite/internal/app/store/clientage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all clientage handlers.
type Handler struct {
	Store *categorystore.Store
	Log   *zap.Logger
}

// NewHandler constructs a clientage Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: categorystore.New(db),
		Log:   logger,
	}
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
