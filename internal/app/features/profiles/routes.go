// internal/app/features/profiles/routes.go
package profiles

import "github.com/go-chi/chi/v5"

// Routes mounts the detail page under whatever base path the caller
// chooses (typically "/profile" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.ServeDetail)
	return r
}
