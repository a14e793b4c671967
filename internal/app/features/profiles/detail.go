// internal/app/features/profiles/detail.go
package profiles

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	"github.com/dmfarley/profilemap/internal/app/system/htmlsanitize"
	"github.com/dmfarley/profilemap/internal/app/system/mapview"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
)

// detailData is the view model for the profile detail page.
type detailData struct {
	viewdata.BaseVM

	ID          string
	Name        string
	Photo       string
	Description template.HTML // sanitized before rendering

	Street  string
	City    string
	State   string
	Country string

	HasContact bool
	Email      string
	Phone      string

	Interests []string

	Map mapview.Panel
}

// ServeDetail renders one profile with a map centered on its coordinates.
// An unknown id gets the not-found page with a back action; retrying is
// manual (navigate back and forth).
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, found, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get profile failed", err, "Could not load this profile.", "/")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Profile not found.", "/")
		return
	}

	center := mapview.NewPoint(p.Address.Coordinates.Lat, p.Address.Coordinates.Lng)

	data := detailData{
		BaseVM:      viewdata.NewBaseVM(r, p.Name, "/"),
		ID:          p.ID,
		Name:        p.Name,
		Photo:       p.Photo,
		Description: template.HTML(htmlsanitize.Sanitize(p.Description)),
		Street:      p.Address.Street,
		City:        p.Address.City,
		State:       p.Address.State,
		Country:     p.Address.Country,
		Interests:   p.Interests,
		Map: mapview.New(center, h.MapZoom, []mapview.Marker{
			{Position: center, Title: p.Name},
		}, h.MapsAPIKey),
	}
	if p.HasContactInfo() {
		data.HasContact = true
		data.Email = p.ContactInfo.Email
		data.Phone = p.ContactInfo.Phone
	}

	templates.Render(w, r, "profile_detail", data)
}
