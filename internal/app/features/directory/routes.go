// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes mounts the directory at whatever base path the caller chooses
// (the site root from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (live search + HTMX card grid swap; ?selected= opens the map panel)
	r.Get("/", h.ServeList)

	return r
}
