// internal/app/features/directory/list.go
package directory

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dmfarley/profilemap/internal/app/system/filter"
	"github.com/dmfarley/profilemap/internal/app/system/mapview"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
	"github.com/dmfarley/profilemap/internal/domain/models"
)

// ServeList displays the profile directory.
//
// The text filter narrows the fetched list on the server; it never issues a
// store search. Live typing swaps the card grid via HTMX. At most one
// profile is selected for the map panel at a time (?selected=), and
// selecting another replaces it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	selectedID := query.Get(r, "selected")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Profiles.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list profiles failed", err, "Could not load profiles.", "/")
		return
	}

	matched := filter.Apply(all, q, filter.Fields{})

	cards := make([]cardItem, 0, len(matched))
	for _, p := range matched {
		cards = append(cards, cardItem{
			ID:          p.ID,
			Name:        p.Name,
			Photo:       p.Photo,
			Description: p.Description,
			City:        p.Address.City,
			State:       p.Address.State,
			Country:     p.Address.Country,
			Interests:   p.Interests,
			DetailURL:   "/profile/" + url.PathEscape(p.ID),
			SelectURL:   listURL(q, p.ID),
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Profile Directory", "/"),
		Q:      q,
		Cards:  cards,
		Shown:  len(cards),
		Total:  len(all),
	}

	// The selection comes from the full list, not the filtered one, so a
	// selected card stays on the map while the user keeps typing.
	if sel, ok := findProfile(all, selectedID); ok {
		center := mapview.NewPoint(sel.Address.Coordinates.Lat, sel.Address.Coordinates.Lng)
		data.HasSelection = true
		data.Selected = selectedVM{
			Name:     sel.Name,
			City:     sel.Address.City,
			State:    sel.Address.State,
			CloseURL: listURL(q, ""),
		}
		data.Map = mapview.New(center, h.MapZoom, []mapview.Marker{
			{Position: center, Title: sel.Name},
		}, h.MapsAPIKey)
	}

	// HTMX partial card grid refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "profile-cards" {
		templates.RenderSnippet(w, "directory_cards", data)
		return
	}

	templates.Render(w, r, "directory_list", data)
}

func findProfile(list []models.Profile, id string) (models.Profile, bool) {
	if id == "" {
		return models.Profile{}, false
	}
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return models.Profile{}, false
}

// listURL rebuilds the directory URL for a given filter and selection.
func listURL(q, selected string) string {
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	if selected != "" {
		v.Set("selected", selected)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}
