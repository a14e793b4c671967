// internal/app/features/admin/edit.go
package admin

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"github.com/dmfarley/profilemap/internal/app/system/formutil"
	"github.com/dmfarley/profilemap/internal/app/system/navigation"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
)

// ServeEdit renders the edit form pre-filled from the stored profile.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, found, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile for edit failed", err, "Could not load this profile.", "/admin")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Profile not found.", "/admin")
		return
	}

	data := fillForm(p)
	data.ID = p.ID
	data.Action = editAction(p.ID)
	data.Submit = "Save Changes"
	formutil.SetBase(&data.Base, r, "Edit Profile", navigation.SafeBackURL(r, navigation.AdminBackURL))
	templates.Render(w, r, "admin_form", data)
}

// HandleEdit validates the submitted form and replaces the stored profile.
// Optional fields left blank are cleared, not preserved: the form is the
// whole record.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse edit form failed", err, "The submitted form could not be read.", "/admin")
		return
	}

	data, p, res := parseProfileForm(r)
	data.ID = id
	data.Action = editAction(id)
	data.Submit = "Save Changes"
	formutil.SetBase(&data.Base, r, "Edit Profile", navigation.SafeBackURL(r, navigation.AdminBackURL))

	if res.HasErrors() {
		data.SetError(res.First())
		data.Fields = res.Fields()
		templates.Render(w, r, "admin_form", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err := h.Profiles.Update(ctx, id, p)
	if errors.Is(err, profilestore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "Profile not found.", "/admin")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update profile failed", err, "Could not save the profile.", "/admin")
		return
	}

	h.Flash.Success(w, r, "Profile updated.")
	ret := navigation.SafeBackURL(r, navigation.AdminBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func editAction(id string) string {
	return "/admin/" + url.PathEscape(id) + "/edit"
}
