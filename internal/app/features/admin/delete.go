// internal/app/features/admin/delete.go
package admin

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	"github.com/dmfarley/profilemap/internal/app/system/navigation"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
)

// ServeDelete shows the confirm page before a profile is removed.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, found, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile for delete failed", err, "Could not load this profile.", "/admin")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Profile not found.", "/admin")
		return
	}

	data := deleteData{
		BaseVM:    viewdata.NewBaseVM(r, "Delete Profile", "/admin"),
		ID:        p.ID,
		Name:      p.Name,
		City:      p.Address.City,
		State:     p.Address.State,
		ActionURL: "/admin/" + url.PathEscape(p.ID) + "/delete",
		CancelURL: "/admin",
	}
	templates.Render(w, r, "admin_confirm_delete", data)
}

// HandleDelete removes the profile. Deleting an id that is already gone is
// treated as done, not as an error.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Profiles.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete profile failed", err, "Could not delete the profile.", "/admin")
		return
	}

	h.Flash.Success(w, r, "Profile deleted.")
	ret := navigation.SafeBackURL(r, navigation.AdminBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
