package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dmfarley/profilemap/internal/app/system/flash"
)

func newManager() *flash.Manager {
	return flash.NewManager("test-signing-key-0123456789ABCDEF", "profilemap-session", "", false, zap.NewNop())
}

// carryCookies copies the Set-Cookie headers from a response onto a fresh
// request, simulating the browser's next visit.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestAddThenPop(t *testing.T) {
	m := newManager()

	// First request queues the notice.
	req := httptest.NewRequest("POST", "/admin/new", nil)
	rec := httptest.NewRecorder()
	m.Success(rec, req, "Profile created.")

	// Next request sees it once.
	req = carryCookies(t, rec, "/admin")
	rec2 := httptest.NewRecorder()
	msgs := m.Pop(rec2, req)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Kind != "success" || msgs[0].Text != "Profile created." {
		t.Errorf("got %+v", msgs[0])
	}

	// And not again after that.
	req = carryCookies(t, rec2, "/admin")
	msgs = m.Pop(httptest.NewRecorder(), req)
	if len(msgs) != 0 {
		t.Errorf("expected messages to be consumed, got %v", msgs)
	}
}

func TestPop_NoCookie(t *testing.T) {
	m := newManager()
	req := httptest.NewRequest("GET", "/admin", nil)
	if msgs := m.Pop(httptest.NewRecorder(), req); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestPop_TamperedCookie(t *testing.T) {
	m := newManager()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "profilemap-session", Value: "garbage"})
	if msgs := m.Pop(httptest.NewRecorder(), req); len(msgs) != 0 {
		t.Errorf("expected tampered cookie to yield nothing, got %v", msgs)
	}
}
