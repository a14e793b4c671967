// internal/app/features/admin/new.go
package admin

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dmfarley/profilemap/internal/app/system/formutil"
	"github.com/dmfarley/profilemap/internal/app/system/navigation"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
)

// ServeNew renders the empty add-profile form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Action: "/admin/new",
		Submit: "Add Profile",
	}
	formutil.SetBase(&data.Base, r, "Add Profile", navigation.SafeBackURL(r, navigation.AdminBackURL))
	templates.Render(w, r, "admin_form", data)
}

// HandleCreate validates the submitted form and inserts a new profile.
// On validation failure the form re-renders with the entered values and
// nothing is written.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse create form failed", err, "The submitted form could not be read.", "/admin")
		return
	}

	data, p, res := parseProfileForm(r)
	data.Action = "/admin/new"
	data.Submit = "Add Profile"
	formutil.SetBase(&data.Base, r, "Add Profile", navigation.SafeBackURL(r, navigation.AdminBackURL))

	if res.HasErrors() {
		data.SetError(res.First())
		data.Fields = res.Fields()
		templates.Render(w, r, "admin_form", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Profiles.Create(ctx, p); err != nil {
		h.ErrLog.LogServerError(w, r, "create profile failed", err, "Could not save the profile.", "/admin")
		return
	}

	h.Flash.Success(w, r, "Profile created.")
	ret := navigation.SafeBackURL(r, navigation.AdminBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
