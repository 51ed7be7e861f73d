// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	blogsfeature "github.com/dalemusser/firmsite/internal/app/features/blogs"
	clientagefeature "github.com/dalemusser/firmsite/internal/app/features/clientage"
	contactsfeature "github.com/dalemusser/firmsite/internal/app/features/contacts"
	healthfeature "github.com/dalemusser/firmsite/internal/app/features/health"
	servicesfeature "github.com/dalemusser/firmsite/internal/app/features/services"
	teamfeature "github.com/dalemusser/firmsite/internal/app/features/team"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Every resource mounts under /api, matching the
// paths the site's frontend calls.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
		api.Route("/health", healthHandler.MountRoutes)

		blogsHandler := blogsfeature.NewHandler(deps.MongoDatabase, deps.Storage, logger)
		api.Route("/blogs", blogsHandler.MountRoutes)

		servicesHandler := servicesfeature.NewHandler(deps.MongoDatabase, deps.Storage, logger)
		api.Route("/services", servicesHandler.MountRoutes)

		teamHandler := teamfeature.NewHandler(deps.MongoDatabase, deps.Storage, logger)
		api.Route("/team", teamHandler.MountRoutes)

		clientageHandler := clientagefeature.NewHandler(deps.MongoDatabase, logger)
		api.Route("/clientage", clientageHandler.MountRoutes)

		contactsHandler := contactsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Route("/contacts", contactsHandler.MountRoutes)
	})

	return r, nil
}
