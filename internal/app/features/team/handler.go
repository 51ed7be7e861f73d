// Package team serves the team member API. Members are addressed by their
// employee ID (EMP001 style) rather than their Mongo ID.
package team

import (
	teamstore "github.com/dalemusser/firmsite/internal/app/store/team"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// imageFolder prefixes storage paths for member profile images.
const imageFolder = "team-members"

// Handler owns all team handlers.
type Handler struct {
	Store   *teamstore.Store
	Storage storage.Store
	Log     *zap.Logger
}

// NewHandler constructs a team Handler.
func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   teamstore.New(db),
		Storage: store,
		Log:     logger,
	}
}
