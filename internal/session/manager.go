package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/config"
	"github.com/hmse-unipi/portal/internal/model"
)

const keyReturnTo = "return_to"

var errNullUser = errors.New("user is null")

// Manager is the facade over both stores. Reads prefer the page store
// and fall back to cookies; writes and clears touch both.
type Manager struct {
	log *zap.Logger

	page   *PageStore
	cookie *CookieStore
	stores []Store

	ttlDays int
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Config *config.Config
}

func NewManager(p Params) (*Manager, error) {
	page := NewPageStore(p.Config)
	cookie := NewCookieStore(p.Config.Session.SecureCookies)

	return &Manager{
		log:     p.Log,
		page:    page,
		cookie:  cookie,
		stores:  []Store{page, cookie},
		ttlDays: p.Config.Session.CookieTTLDays,
	}, nil
}

func (m *Manager) Wrap(next http.Handler) http.Handler {
	return m.page.Wrap(next)
}

// TTLDays is the configured cookie lifetime for WriteSession.
func (m *Manager) TTLDays() int {
	return m.ttlDays
}

func (m *Manager) ReadToken(r *http.Request) (string, bool) {
	v, _, ok := m.read(r, KeyToken)
	return v, ok
}

// ReadUser returns the stored profile. A stored value that does not
// parse is logged and reported as absent.
func (m *Manager) ReadUser(r *http.Request) (*model.User, bool) {
	raw, from, ok := m.read(r, KeyUser)
	if !ok {
		return nil, false
	}

	u, err := parseUser(raw)
	if err != nil {
		m.log.Warn("discarding unreadable user entry",
			zap.String("store", from), zap.Error(err))
		return nil, false
	}
	return u, true
}

// ReadSession is the merged read used for in-page UI.
func (m *Manager) ReadSession(r *http.Request) (*model.Session, bool) {
	token, _ := m.ReadToken(r)
	user, _ := m.ReadUser(r)

	s := &model.Session{Token: token, User: user}
	if !s.Valid() {
		return nil, false
	}
	return s, true
}

// CookieSession reads the cookie store only. Corruption of either entry
// yields no session.
func (m *Manager) CookieSession(r *http.Request) (*model.Session, bool) {
	token, ok := m.cookie.Get(r, KeyToken)
	if !ok {
		return nil, false
	}

	raw, ok := m.cookie.Get(r, KeyUser)
	if !ok {
		return nil, false
	}

	u, err := parseUser(raw)
	if err != nil {
		m.log.Warn("discarding unreadable user cookie", zap.Error(err))
		return nil, false
	}

	return &model.Session{Token: token, User: u}, true
}

// WriteSession stores token and user in both stores. Entries are checked
// against every store before anything is written, so either both stores
// receive the session or neither does.
func (m *Manager) WriteSession(w http.ResponseWriter, r *http.Request, token string, user *model.User, ttlDays int) error {
	if token == "" {
		return ErrEmptyToken
	}
	if user == nil {
		return ErrNilUser
	}

	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	entries := []struct{ key, value string }{
		{KeyToken, token},
		{KeyUser, string(b)},
	}

	for _, s := range m.stores {
		for _, e := range entries {
			if err := s.Check(e.key, e.value); err != nil {
				return fmt.Errorf("%s store: %w", s.Name(), err)
			}
		}
	}

	if err := m.page.Renew(r); err != nil {
		return fmt.Errorf("renew page session: %w", err)
	}

	ttl := time.Duration(ttlDays) * 24 * time.Hour
	for _, s := range m.stores {
		for _, e := range entries {
			if err := s.Set(w, r, e.key, e.value, ttl); err != nil {
				return fmt.Errorf("%s store: %w", s.Name(), err)
			}
		}
	}

	m.log.Debug("session written", zap.Int("user_id", int(user.ID)), zap.String("role", string(user.Role)))
	return nil
}

// ClearSession removes token and user from both stores. Absent entries
// are fine.
func (m *Manager) ClearSession(w http.ResponseWriter, r *http.Request) {
	for _, s := range m.stores {
		s.Delete(w, r, KeyToken)
		s.Delete(w, r, KeyUser)
	}
}

// RememberReturnTo records the page to resume after login.
func (m *Manager) RememberReturnTo(r *http.Request, path string) {
	_ = m.page.Set(nil, r, keyReturnTo, path, 0)
}

// PopReturnTo returns and forgets the page recorded by RememberReturnTo.
func (m *Manager) PopReturnTo(r *http.Request) string {
	return m.page.Pop(r, keyReturnTo)
}

func (m *Manager) read(r *http.Request, key string) (string, string, bool) {
	for _, s := range m.stores {
		if v, ok := s.Get(r, key); ok {
			return v, s.Name(), true
		}
	}
	return "", "", false
}

func parseUser(raw string) (*model.User, error) {
	var u *model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errNullUser
	}
	return u, nil
}
