package services

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all service routes on the given router. The
// toggle-status route is registered before /{id} handlers that would
// otherwise shadow it.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/{id}/toggle-status", h.ToggleStatus)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
