// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dmfarley/profilemap/internal/domain/models"
)

// pageData is the basic view model for error pages.
type pageData struct {
	SiteName string
	Title    string
	Message  string
	BackURL  string
}

func newPageData(title, message, backURL string) pageData {
	if backURL == "" {
		backURL = "/"
	}
	return pageData{
		SiteName: models.DefaultSiteName,
		Title:    title,
		Message:  message,
		BackURL:  backURL,
	}
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the catch-all page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "The page you are looking for does not exist.", "/")
}
