package contacts

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all contact routes on the given router. /stats is
// registered before /{id} so it is not captured as an ID.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	r.Get("/", h.List)
	r.Patch("/{id}/read-status", h.ToggleRead)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}
