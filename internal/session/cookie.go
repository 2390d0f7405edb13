package session

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Browsers drop cookies over 4096 bytes (name plus value).
const maxCookieSize = 4096

// CookieStore keeps entries in request cookies. It is the only store
// visible to the route guard.
type CookieStore struct {
	Path     string
	Secure   bool
	SameSite http.SameSite

	now func() time.Time
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		now:      time.Now,
	}
}

func (s *CookieStore) Name() string {
	return "cookie"
}

// Get returns the unescaped cookie value. A value that cannot be
// unescaped is reported as absent.
func (s *CookieStore) Get(r *http.Request, key string) (string, bool) {
	c, err := r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}

	v, err := url.QueryUnescape(c.Value)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *CookieStore) Check(key, value string) error {
	if n := len(key) + len(url.QueryEscape(value)); n > maxCookieSize {
		return fmt.Errorf("%s: %d bytes: %w", key, n, ErrCookieTooLarge)
	}
	return nil
}

// Set writes the entry with the given lifetime. A zero ttl writes a
// browser-session cookie.
func (s *CookieStore) Set(w http.ResponseWriter, _ *http.Request, key, value string, ttl time.Duration) error {
	if err := s.Check(key, value); err != nil {
		return err
	}

	c := s.cookie(key, url.QueryEscape(value))
	if ttl > 0 {
		c.Expires = s.now().Add(ttl)
		c.MaxAge = int(ttl.Seconds())
	}

	http.SetCookie(w, c)
	return nil
}

func (s *CookieStore) Delete(w http.ResponseWriter, _ *http.Request, key string) {
	c := s.cookie(key, "")
	c.Expires = time.Unix(0, 0)
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func (s *CookieStore) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     s.Path,
		Secure:   s.Secure,
		HttpOnly: true,
		SameSite: s.SameSite,
	}
}
