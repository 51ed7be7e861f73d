package clientage

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all clientage routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/client-types", h.AddClientType)
	r.Delete("/{id}/client-types", h.RemoveClientType)
}
