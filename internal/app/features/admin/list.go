// internal/app/features/admin/list.go
package admin

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dmfarley/profilemap/internal/app/system/filter"
	"github.com/dmfarley/profilemap/internal/app/system/timeouts"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
)

// ServeList shows the admin table of all profiles with a text filter.
// Unlike the public directory, the filter here also matches country.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Profiles.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin list profiles failed", err, "Could not load profiles.", "/admin")
		return
	}

	matched := filter.Apply(all, q, filter.Fields{Country: true})

	rows := make([]rowItem, 0, len(matched))
	for _, p := range matched {
		id := url.PathEscape(p.ID)
		rows = append(rows, rowItem{
			ID:        p.ID,
			Name:      p.Name,
			Photo:     p.Photo,
			City:      p.Address.City,
			State:     p.Address.State,
			Country:   p.Address.Country,
			EditURL:   "/admin/" + id + "/edit",
			DeleteURL: "/admin/" + id + "/delete",
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Admin Panel", "/admin"),
		Q:      q,
		Rows:   rows,
		Shown:  len(rows),
		Total:  len(all),
	}
	data.Flashes = h.Flash.Pop(w, r)

	// HTMX partial table refresh while typing in the filter box
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "profile-table" {
		templates.RenderSnippet(w, "admin_table", data)
		return
	}

	templates.Render(w, r, "admin_list", data)
}
