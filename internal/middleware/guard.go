package middleware

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/model"
	"github.com/hmse-unipi/portal/internal/route"
)

// CookieSessions reads the session from request cookies only.
type CookieSessions interface {
	CookieSession(r *http.Request) (*model.Session, bool)
}

// Guard redirects navigations the route table does not allow for the
// current cookie session. It is a UX gate; the REST API authorizes
// every call itself.
type Guard struct {
	log      *zap.Logger
	sessions CookieSessions
	routes   *route.Table
}

type GuardParams struct {
	fx.In

	Log      *zap.Logger
	Sessions CookieSessions
	Routes   *route.Table
}

func NewGuard(p GuardParams) *Guard {
	return &Guard{
		log:      p.Log,
		sessions: p.Sessions,
		routes:   p.Routes,
	}
}

// Wrap decides once per request, before the handler runs.
func (g *Guard) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.serve(w, r, next, g.routes.Classify(r.URL.Path))
	})
}

// RequireAdmin treats every request it wraps as protected-admin,
// whatever the route table says.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.serve(w, r, next, route.ProtectedAdmin)
	})
}

func (g *Guard) serve(w http.ResponseWriter, r *http.Request, next http.Handler, c route.Classification) {
	s, _ := g.sessions.CookieSession(r)

	d := g.routes.DecideFor(c, s)
	if d.Allowed() {
		next.ServeHTTP(w, r)
		return
	}

	g.log.Debug("navigation redirected",
		zap.String("path", r.URL.Path),
		zap.Stringer("classification", c),
		zap.String("location", d.Location))

	http.Redirect(w, r, d.Location, http.StatusSeeOther)
}
