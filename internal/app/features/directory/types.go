// internal/app/features/directory/types.go
package directory

import (
	"github.com/dmfarley/profilemap/internal/app/system/mapview"
	"github.com/dmfarley/profilemap/internal/app/system/viewdata"
)

// cardItem is one profile summary card in the directory grid.
type cardItem struct {
	ID          string
	Name        string
	Photo       string
	Description string
	City        string
	State       string
	Country     string
	Interests   []string

	// Card actions: open the detail page, or select for the map panel.
	DetailURL string
	SelectURL string
}

// selectedVM describes the profile currently shown in the map panel.
// Selection is pure view state carried in the URL; closing just drops the
// query parameter.
type selectedVM struct {
	Name     string
	City     string
	State    string
	CloseURL string
}

// listData provides template data for the directory page.
type listData struct {
	viewdata.BaseVM

	Q     string
	Cards []cardItem
	Shown int
	Total int

	HasSelection bool
	Selected     selectedVM
	Map          mapview.Panel
}
