package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/hmse-unipi/portal/internal/config"
)

const pageCookieName = "portal_session"

// PageStore keeps entries in server-side session data, read by page
// handlers to render session-dependent UI. Entries carry no expiry of
// their own; the whole session lives for config.Session.Lifetime.
//
// Every request reaching Get, Set or Delete must have passed through
// Wrap.
type PageStore struct {
	impl *scs.SessionManager
}

func NewPageStore(c *config.Config) *PageStore {
	sm := scs.New()
	if c.Session.Lifetime > 0 {
		sm.Lifetime = c.Session.Lifetime
	}
	sm.Cookie.Name = pageCookieName
	sm.Cookie.Persist = true
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = c.Session.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode

	return &PageStore{impl: sm}
}

func (s *PageStore) Wrap(next http.Handler) http.Handler {
	return s.impl.LoadAndSave(next)
}

func (s *PageStore) Name() string {
	return "page"
}

func (s *PageStore) Get(r *http.Request, key string) (string, bool) {
	v := s.impl.GetString(r.Context(), key)
	return v, v != ""
}

func (s *PageStore) Check(_, _ string) error {
	return nil
}

func (s *PageStore) Set(_ http.ResponseWriter, r *http.Request, key, value string, _ time.Duration) error {
	s.impl.Put(r.Context(), key, value)
	return nil
}

func (s *PageStore) Delete(_ http.ResponseWriter, r *http.Request, key string) {
	s.impl.Remove(r.Context(), key)
}

// Pop returns the value under key and removes it.
func (s *PageStore) Pop(r *http.Request, key string) string {
	return s.impl.PopString(r.Context(), key)
}

// Renew issues a new session id, keeping the data.
func (s *PageStore) Renew(r *http.Request) error {
	return s.impl.RenewToken(r.Context())
}
