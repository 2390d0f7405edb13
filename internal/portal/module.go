package portal

import (
	"go.uber.org/fx"

	"github.com/hmse-unipi/portal/internal/api"
	"github.com/hmse-unipi/portal/internal/middleware"
	"github.com/hmse-unipi/portal/internal/route"
	"github.com/hmse-unipi/portal/internal/session"
	"github.com/hmse-unipi/portal/internal/template"
)

var Module = fx.Options(
	fx.Provide(
		route.New,
		session.NewManager,
		cookieSessions,
		middleware.NewGuard,
		template.New,
		api.New,
		New,
	),
)

// The guard only sees the cookie side of the session manager.
func cookieSessions(m *session.Manager) middleware.CookieSessions {
	return m
}
