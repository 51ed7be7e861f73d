// Package blogs serves the blog post API.
package blogs

import (
	blogstore "github.com/dalemusser/firmsite/internal/app/store/blogs"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// imageFolder prefixes storage paths for blog cover images.
const imageFolder = "blog_images"

// Handler owns all blog handlers.
type Handler struct {
	Store   *blogstore.Store
	Storage storage.Store
	Log     *zap.Logger
}

// NewHandler constructs a blog Handler.
func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   blogstore.New(db),
		Storage: store,
		Log:     logger,
	}
}
