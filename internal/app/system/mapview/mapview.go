// Package mapview builds the view model for the shared map panel template.
//
// The panel is a pure function of its inputs: a center coordinate, a zoom
// level, and a list of titled markers. It keeps no state and fetches
// nothing; the embedding page supplies everything, and the template renders
// the third-party map widget from it.
package mapview

import (
	"encoding/json"
	"html/template"

	"github.com/paulmach/orb"
)

// DefaultZoom matches the zoom the directory and detail pages use.
const DefaultZoom = 12

// Marker is one titled point on the map. The title is shown as the marker
// tooltip.
type Marker struct {
	Position orb.Point
	Title    string
}

// Panel is the full view model for the map_panel template.
type Panel struct {
	Center  orb.Point
	Zoom    int
	Markers []Marker
	APIKey  string
}

// NewPoint builds an orb.Point from the lat/lng order used by profile
// records. orb stores points as (lng, lat).
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// New builds a panel centered on the given point. A zero zoom falls back to
// DefaultZoom.
func New(center orb.Point, zoom int, markers []Marker, apiKey string) Panel {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return Panel{Center: center, Zoom: zoom, Markers: markers, APIKey: apiKey}
}

// FitCenter derives a center from the markers' bounding box, for callers
// that have markers but no explicit center. With no markers it returns the
// zero point.
func FitCenter(markers []Marker) orb.Point {
	if len(markers) == 0 {
		return orb.Point{}
	}
	mp := make(orb.MultiPoint, 0, len(markers))
	for _, m := range markers {
		mp = append(mp, m.Position)
	}
	return mp.Bound().Center()
}

// CenterLat and CenterLng expose the center in the lat/lng order the map
// widget expects.
func (p Panel) CenterLat() float64 { return p.Center.Lat() }
func (p Panel) CenterLng() float64 { return p.Center.Lon() }

type markerJSON struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Title string  `json:"title"`
}

// MarkersJSON renders the marker list as a JSON array for the template's
// inline script. Marshaling []markerJSON cannot fail, so errors collapse to
// an empty array.
func (p Panel) MarkersJSON() template.JS {
	out := make([]markerJSON, 0, len(p.Markers))
	for _, m := range p.Markers {
		out = append(out, markerJSON{Lat: m.Position.Lat(), Lng: m.Position.Lon(), Title: m.Title})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}
