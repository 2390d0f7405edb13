package portal

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/api"
	"github.com/hmse-unipi/portal/internal/config"
	"github.com/hmse-unipi/portal/internal/middleware"
	"github.com/hmse-unipi/portal/internal/route"
	"github.com/hmse-unipi/portal/internal/session"
	"github.com/hmse-unipi/portal/internal/template"
	"github.com/hmse-unipi/portal/web"
)

// Portal is the browser-facing web server.
type Portal struct {
	log     *zap.Logger
	handler http.Handler
	server  *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Sessions *session.Manager
	Guard    *middleware.Guard
	Routes   *route.Table
	API      *api.Client
	Renderer *template.Renderer
}

func New(p Params) (*Portal, error) {
	h := &handlers{
		log:      p.Log,
		sessions: p.Sessions,
		routes:   p.Routes,
		api:      p.API,
		renderer: p.Renderer,
		validate: validator.New(),
		whatsapp: p.Config.WhatsApp.Number,
	}

	root := chi.NewRouter()
	root.Use(chimw.RequestID)
	root.Use(chimw.RealIP)
	root.Use(middleware.Logger(p.Log))
	root.Use(chimw.Recoverer)
	root.Use(p.Sessions.Wrap)
	root.Use(p.Guard.Wrap)

	root.Get("/", h.home)
	root.Get("/events", h.events)
	root.Get("/blog", h.blog)
	root.Get("/about", h.about)

	root.Get("/login", h.loginPage)
	root.Post("/login", h.login)
	root.Get("/daftar", h.registerPage)
	root.Post("/daftar", h.register)
	root.HandleFunc("/logout", h.logout)

	root.Get("/checkout/{eventID}", h.checkoutPage)
	root.Post("/checkout/{eventID}", h.checkout)

	root.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.dashboardHome)
		r.Get("/events", h.myEvents)
		r.Get("/payments", h.myPayments)

		r.Get("/admin/reports", h.reports)
		r.Get("/admin/payments", h.pendingPayments)
		r.Post("/admin/payments/{registrationID}", h.confirmPayment)

		// Not covered by the admin rule of the route table.
		r.Group(func(r chi.Router) {
			r.Use(p.Guard.RequireAdmin)

			r.Get("/master/blog-category", h.categories)
			r.Post("/master/blog-category", h.createCategory)
			r.Post("/master/blog-category/{id}", h.updateCategory)
			r.Post("/master/blog-category/{id}/delete", h.deleteCategory)

			r.Get("/master/blog", h.blogs)
			r.Post("/master/blog", h.createBlog)
			r.Post("/master/blog/{id}", h.updateBlog)
			r.Post("/master/blog/{id}/delete", h.deleteBlog)
		})
	})

	root.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(web.Static()))))

	return &Portal{
		log:     p.Log,
		handler: root,
		server: &http.Server{
			Addr:    p.Config.Server.Addr(),
			Handler: root,
		},
	}, nil
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, p *Portal) {
	lc.Append(fx.Hook{
		OnStart: p.Start,
		OnStop:  p.server.Shutdown,
	})
}

func (p *Portal) Start(_ context.Context) error {
	p.log.Info("portal listening", zap.String("addr", p.server.Addr))
	go func() {
		err := p.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.log.Error("error running server", zap.Error(err))
		}
	}()
	return nil
}

func (p *Portal) Handler() http.Handler {
	return p.handler
}
