package mapview_test

import (
	"strings"
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/mapview"
)

func TestNewPoint_Order(t *testing.T) {
	p := mapview.NewPoint(40.7128, -74.0060)
	if p.Lat() != 40.7128 {
		t.Errorf("Lat: got %v", p.Lat())
	}
	if p.Lon() != -74.0060 {
		t.Errorf("Lon: got %v", p.Lon())
	}
}

func TestNew_DefaultZoom(t *testing.T) {
	center := mapview.NewPoint(40.0, -75.0)

	panel := mapview.New(center, 0, nil, "key")
	if panel.Zoom != mapview.DefaultZoom {
		t.Errorf("zoom: got %d, want %d", panel.Zoom, mapview.DefaultZoom)
	}

	panel = mapview.New(center, 8, nil, "key")
	if panel.Zoom != 8 {
		t.Errorf("zoom: got %d, want 8", panel.Zoom)
	}
}

func TestPanel_CenterAccessors(t *testing.T) {
	panel := mapview.New(mapview.NewPoint(47.6062, -122.3321), 12, nil, "")
	if panel.CenterLat() != 47.6062 {
		t.Errorf("CenterLat: got %v", panel.CenterLat())
	}
	if panel.CenterLng() != -122.3321 {
		t.Errorf("CenterLng: got %v", panel.CenterLng())
	}
}

func TestFitCenter(t *testing.T) {
	center := mapview.FitCenter([]mapview.Marker{
		{Position: mapview.NewPoint(40.0, -70.0)},
		{Position: mapview.NewPoint(44.0, -74.0)},
	})
	if center.Lat() != 42.0 {
		t.Errorf("center lat: got %v, want 42", center.Lat())
	}
	if center.Lon() != -72.0 {
		t.Errorf("center lng: got %v, want -72", center.Lon())
	}
}

func TestFitCenter_Empty(t *testing.T) {
	center := mapview.FitCenter(nil)
	if center.Lat() != 0 || center.Lon() != 0 {
		t.Errorf("expected zero point, got %v", center)
	}
}

func TestMarkersJSON(t *testing.T) {
	panel := mapview.New(mapview.NewPoint(40.0, -75.0), 12, []mapview.Marker{
		{Position: mapview.NewPoint(40.7128, -74.0060), Title: "John Doe"},
	}, "")

	js := string(panel.MarkersJSON())
	if !strings.Contains(js, `"lat":40.7128`) {
		t.Errorf("missing lat in %s", js)
	}
	if !strings.Contains(js, `"title":"John Doe"`) {
		t.Errorf("missing title in %s", js)
	}
}

func TestMarkersJSON_EmptyIsArray(t *testing.T) {
	panel := mapview.New(mapview.NewPoint(0, 0), 12, nil, "")
	if got := string(panel.MarkersJSON()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}
