// internal/app/features/admin/types.go
package admin

import (
	"github.com/dmfarley/profilemap/internal/app/system/formutil"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
)

// rowItem is one table row in the admin list.
type rowItem struct {
	ID      string
	Name    string
	Photo   string
	City    string
	State   string
	Country string

	EditURL   string
	DeleteURL string
}

// listData feeds the admin_list template (and the admin_table snippet for
// HTMX filter refreshes).
type listData struct {
	viewdata.BaseVM

	Q     string
	Rows  []rowItem
	Shown int
	Total int
}

// formData feeds the admin_form template for both the add and edit pages.
// The value fields echo back whatever the user submitted so a validation
// failure never loses their work.
type formData struct {
	formutil.Base

	// "" for add, the profile id for edit; the template posts back to
	// Action either way.
	ID     string
	Action string
	Submit string

	Name        string
	Photo       string
	Description string
	Street      string
	City        string
	State       string
	Country     string
	Lat         string
	Lng         string
	Email       string
	Phone       string

	// Interests round-trip through one hidden comma-joined field; the
	// chip UI in the browser is sugar over it.
	Interests       []string
	InterestsJoined string
}

// deleteData feeds the confirm-delete page.
type deleteData struct {
	viewdata.BaseVM

	ID        string
	Name      string
	City      string
	State     string
	ActionURL string
	CancelURL string
}
