// internal/app/features/admin/routes.go
package admin

import "github.com/go-chi/chi/v5"

// Routes wires the admin pages. Bootstrap mounts this under /admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Get("/new", h.ServeNew)
	r.Post("/new", h.HandleCreate)

	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	r.Get("/{id}/delete", h.ServeDelete)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
