// Package services serves the firm's service-listing API.
package services

import (
	"strings"

	servicestore "github.com/dalemusser/firmsite/internal/app/store/services"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// imageFolder prefixes storage paths for service images.
const imageFolder = "services"

// Handler owns all service handlers.
type Handler struct {
	Store   *servicestore.Store
	Storage storage.Store
	Log     *zap.Logger
}

// NewHandler constructs a service Handler.
func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   servicestore.New(db),
		Storage: store,
		Log:     logger,
	}
}

// imagePublicID resolves the storage key of a service's image. Documents
// written before ImagePublicID existed carry only the URL; for those the key
// is derived from the URL's trailing path segment, same as the upstream API
// derived it. Returns "" when nothing usable can be recovered.
func imagePublicID(svc models.Service) string {
	if svc.ImagePublicID != "" {
		return svc.ImagePublicID
	}
	if svc.Image == "" {
		return ""
	}
	base := svc.Image[strings.LastIndex(svc.Image, "/")+1:]
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	if base == "" {
		return ""
	}
	return imageFolder + "/" + base
}
