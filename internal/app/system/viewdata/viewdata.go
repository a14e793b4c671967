// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/dmfarley/profilemap/internal/app/system/flash"
	"github.com/dmfarley/profilemap/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// ActiveNav highlights the header link for the current section
	// ("directory" or "admin").
	ActiveNav string

	// One-shot notices queued by the previous request.
	Flashes []flash.Message
}

// NewBaseVM creates a populated BaseVM for a page. ActiveNav is derived from
// the request path; Flashes are attached separately by handlers that own a
// flash manager.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    models.DefaultSiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		ActiveNav:   activeNav(r.URL.Path),
	}
}

func activeNav(path string) string {
	if path == "/admin" || strings.HasPrefix(path, "/admin/") {
		return "admin"
	}
	return "directory"
}
