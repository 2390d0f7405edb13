package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/hmse-unipi/portal/internal/config"
	"github.com/hmse-unipi/portal/internal/route"
	"github.com/hmse-unipi/portal/internal/session"
)

func newTestGuard(t *testing.T) *Guard {
	t.Helper()

	log := zaptest.NewLogger(t)
	sessions, err := session.NewManager(session.Params{Log: log, Config: config.Default()})
	require.NoError(t, err)

	return NewGuard(GuardParams{Log: log, Sessions: sessions, Routes: route.DefaultTable()})
}

func cookies(kv ...string) []*http.Cookie {
	var out []*http.Cookie
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, &http.Cookie{Name: kv[i], Value: url.QueryEscape(kv[i+1])})
	}
	return out
}

type wrapper interface {
	Wrap(http.Handler) http.Handler
}

func run(h wrapper, path string, jar []*http.Cookie) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range jar {
		req.AddCookie(c)
	}

	calledNext := false
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calledNext = true
	})

	rr := httptest.NewRecorder()
	h.Wrap(next).ServeHTTP(rr, req)
	return rr, calledNext
}

func TestGuard_scenarios(t *testing.T) {
	member := cookies("token", "abc", "user", `{"role":"member"}`)
	admin := cookies("token", "abc", "user", `{"role":"admin"}`)

	tests := []struct {
		name     string
		path     string
		jar      []*http.Cookie
		location string
	}{
		{"member dashboard", "/dashboard/events", member, ""},
		{"member admin area", "/dashboard/admin/payments", member, "/dashboard/events"},
		{"anonymous login", "/login", nil, ""},
		{"admin login", "/login", admin, "/dashboard/admin/reports"},
		{"member daftar", "/daftar", member, "/dashboard/events"},
		{"anonymous dashboard", "/dashboard/payments", nil, "/login"},
		{"anonymous admin area", "/dashboard/admin/reports", nil, "/login"},
		{"admin admin area", "/dashboard/admin/reports", admin, ""},
		{"public page", "/events", nil, ""},
		{"corrupt user cookie", "/dashboard/events", cookies("token", "abc", "user", "{not valid json"), "/login"},
		{"corrupt user on login", "/login", cookies("token", "abc", "user", "{not valid json"), ""},
		{"token only", "/dashboard/events", cookies("token", "abc"), "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			g := newTestGuard(t)

			var (
				rr         *httptest.ResponseRecorder
				calledNext bool
			)
			assert.NotPanics(func() {
				rr, calledNext = run(g, tt.path, tt.jar)
			})

			if tt.location == "" {
				assert.True(calledNext)
				assert.Equal(http.StatusOK, rr.Code)
				return
			}

			assert.False(calledNext)
			assert.Equal(http.StatusSeeOther, rr.Code)
			assert.Equal(tt.location, rr.Result().Header.Get("Location"))
		})
	}
}

type adminOnly struct{ g *Guard }

func (a adminOnly) Wrap(next http.Handler) http.Handler { return a.g.RequireAdmin(next) }

func TestGuard_RequireAdmin(t *testing.T) {
	g := newTestGuard(t)

	rr, calledNext := run(adminOnly{g}, "/dashboard/master/blog", cookies("token", "abc", "user", `{"role":"user"}`))
	assert.False(t, calledNext)
	assert.Equal(t, "/dashboard/events", rr.Result().Header.Get("Location"))

	rr, calledNext = run(adminOnly{g}, "/dashboard/master/blog", nil)
	assert.False(t, calledNext)
	assert.Equal(t, "/login", rr.Result().Header.Get("Location"))

	_, calledNext = run(adminOnly{g}, "/dashboard/master/blog", cookies("token", "abc", "user", `{"role":"admin"}`))
	assert.True(t, calledNext)
}

func TestLogger(t *testing.T) {
	called := false
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
