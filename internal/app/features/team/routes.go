package team

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all team routes on the given router. /stats is
// registered before /{empId} so it is not captured as an employee ID.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/stats", h.Stats)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{empId}", h.Get)
	r.Put("/{empId}", h.Update)
	r.Delete("/{empId}", h.SoftDelete)
	r.Delete("/{empId}/permanent", h.PermanentDelete)
}
