// Package flash carries one-shot notices across the admin view's
// Post/Redirect/Get cycles ("Profile created.", "Profile deleted.").
//
// Messages ride in a signed session cookie and are consumed on first read.
// There is no authentication in this app; the cookie holds nothing but the
// pending notices.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Message is one pending notice. Kind is "success" or "error" and selects
// the banner style.
type Message struct {
	Kind string
	Text string
}

func init() {
	gob.Register(Message{})
}

// Manager reads and writes flash messages through a cookie session store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing with key. An empty key gets a random
// one, which is fine for dev but invalidates pending notices on restart.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) *Manager {
	b := []byte(key)
	if len(b) == 0 {
		b = securecookie.GenerateRandomKey(32)
		logger.Warn("flash: no session key configured, using a random key")
	}
	cs := sessions.NewCookieStore(b)
	cs.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: cs, name: name, log: logger}
}

// Add queues a notice for the next rendered page.
func (m *Manager) Add(w http.ResponseWriter, r *http.Request, kind, text string) {
	s, _ := m.store.Get(r, m.name)
	s.AddFlash(Message{Kind: kind, Text: text})
	if err := s.Save(r, w); err != nil {
		m.log.Warn("flash: save failed", zap.Error(err))
	}
}

// Success queues a success notice.
func (m *Manager) Success(w http.ResponseWriter, r *http.Request, text string) {
	m.Add(w, r, "success", text)
}

// Pop returns and clears all pending notices. A tampered or stale cookie
// just yields no messages.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) []Message {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		m.log.Warn("flash: clear failed", zap.Error(err))
	}
	msgs := make([]Message, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(Message); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
