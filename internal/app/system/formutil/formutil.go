// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form is re-rendered with:
// - The user's previously entered values (echoed back)
// - An error banner and per-field messages explaining what went wrong
//
// This package provides a Base struct that can be embedded in form view
// models to handle the common fields.
//
// Example usage:
//
//	type profileFormVM struct {
//	    formutil.Base
//	    Name  string
//	    Photo string
//	}
//
//	// In your handler:
//	data := profileFormVM{Name: name, Photo: photo}
//	formutil.SetBase(&data.Base, r, "Add Profile", "/admin")
//	data.SetError("Photo URL must be a valid URL.")
//	templates.Render(w, r, "admin_form", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/dmfarley/profilemap/internal/domain/models"
)

// Base contains common fields for form pages that can be embedded in form
// view models.
type Base struct {
	SiteName    string
	Title       string
	BackURL     string
	CurrentPath string
	Error       template.HTML

	// Fields maps struct field name -> message for inline display next to
	// each input.
	Fields map[string]string
}

// SetBase populates the common Base fields from the request.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.SiteName = models.DefaultSiteName
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
}

// SetError sets the banner error message.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// FieldError returns the inline message for one field, or "". Value
// receiver so templates can call it on the embedded struct directly.
func (b Base) FieldError(name string) string {
	return b.Fields[name]
}
