package blogs

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all blog routes on the given router. The categories
// routes are registered before /{id} so they are not captured as IDs.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Get("/category/{category}", h.ListByCategory)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
