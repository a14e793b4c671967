package navigation_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dmfarley/profilemap/internal/app/system/navigation"
)

func TestSafeBackURL_AllowsPrefixedPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/new?return=/admin%3Fq%3Dann", nil)
	got := navigation.SafeBackURL(req, navigation.AdminBackURL)
	if got != "/admin?q=ann" {
		t.Errorf("got %q, want %q", got, "/admin?q=ann")
	}
}

func TestSafeBackURL_RejectsWrongPrefix(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/new?return=/profile/1", nil)
	got := navigation.SafeBackURL(req, navigation.AdminBackURL)
	if got != "/admin" {
		t.Errorf("got %q, want fallback %q", got, "/admin")
	}
}

func TestSafeBackURL_RejectsActionSubpaths(t *testing.T) {
	// Returning to an edit page would loop; fall back to the list.
	req := httptest.NewRequest("GET", "/admin/new?return=/admin/1/edit", nil)
	got := navigation.SafeBackURL(req, navigation.AdminBackURL)
	if got != "/admin" {
		t.Errorf("got %q, want fallback %q", got, "/admin")
	}
}

func TestSafeBackURL_RejectsAbsoluteURL(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/new?return=https://evil.example.com/", nil)
	got := navigation.SafeBackURL(req, navigation.AdminBackURL)
	if got != "/admin" {
		t.Errorf("got %q, want fallback %q", got, "/admin")
	}
}

func TestSafeBackURL_Fallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/new", nil)
	got := navigation.SafeBackURL(req, navigation.AdminBackURL)
	if got != "/admin" {
		t.Errorf("got %q, want %q", got, "/admin")
	}
}
