// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderNotFound shows a friendly "not found" page with a message and a
// back action. The user retries by navigating; nothing is automatic.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", newPageData("Not found", msg, backURL))
}

// RenderBadRequest shows a friendly page for malformed input (bad ids,
// unparseable forms).
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_page", newPageData("Bad request", msg, backURL))
}

// RenderServerError shows a friendly page for backend failures. The cause
// is logged by the caller (see ErrorLogger); the page only carries the
// user-facing message.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", newPageData("Something went wrong", msg, backURL))
}
