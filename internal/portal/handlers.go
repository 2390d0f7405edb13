package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/api"
	"github.com/hmse-unipi/portal/internal/model"
	"github.com/hmse-unipi/portal/internal/route"
	"github.com/hmse-unipi/portal/internal/session"
	"github.com/hmse-unipi/portal/internal/template"
	"github.com/hmse-unipi/portal/internal/whatsapp"
)

type handlers struct {
	log      *zap.Logger
	sessions *session.Manager
	routes   *route.Table
	api      *api.Client
	renderer *template.Renderer
	validate *validator.Validate
	whatsapp string
}

// data starts the template data for a page. Session-dependent view
// state is derived from the page store on every request.
func (h *handlers) data(r *http.Request, title string, page any) *template.Data {
	d := &template.Data{
		PageTitle: title,
		Path:      r.URL.Path,
		WhatsApp:  h.whatsapp,
		Page:      page,
	}
	if s, ok := h.sessions.ReadSession(r); ok {
		d.User = s.User
		d.Home = h.routes.HomeFor(s.User)
	}
	return d
}

// apiContext carries the page-store token to the REST API.
func (h *handlers) apiContext(r *http.Request) context.Context {
	token, ok := h.sessions.ReadToken(r)
	if !ok {
		return r.Context()
	}
	return api.WithToken(r.Context(), token)
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, d *template.Data) {
	if err := h.renderer.Render(w, status, page, d); err != nil {
		h.log.Error("error rendering page",
			zap.String("page", page),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// fail renders page with an error state for err. An API rejection of
// the credential ends the session instead.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error, page string, d *template.Data, msg string) {
	if api.IsUnauthorized(err) {
		h.log.Info("api rejected session token", zap.String("path", r.URL.Path))
		h.sessions.ClearSession(w, r)
		if r.Method == http.MethodGet {
			h.sessions.RememberReturnTo(r, r.URL.RequestURI())
		}
		http.Redirect(w, r, h.routes.Login, http.StatusSeeOther)
		return
	}

	h.log.Warn("api call failed", zap.String("path", r.URL.Path), zap.Error(err))
	d.Error = api.Message(err, msg)
	h.render(w, r, statusFor(err), page, d)
}

func statusFor(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// invalid renders page with the validation failures of err.
func (h *handlers) invalid(w http.ResponseWriter, r *http.Request, err error, page string, d *template.Data) {
	d.Error = validationMessage(err)
	h.render(w, r, http.StatusUnprocessableEntity, page, d)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Sprintf("Periksa kembali isian: %s", strings.Join(fields, ", "))
}

func (h *handlers) requireSession(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	s, ok := h.sessions.ReadSession(r)
	if !ok {
		h.sessions.RememberReturnTo(r, r.URL.RequestURI())
		http.Redirect(w, r, h.routes.Login, http.StatusSeeOther)
		return nil, false
	}
	return s, true
}

func idParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// eventCard is an event as listed on public pages.
type eventCard struct {
	model.Event
	WhatsAppLink string
}

func (h *handlers) cards(events []model.Event) []eventCard {
	out := make([]eventCard, 0, len(events))
	for i := range events {
		out = append(out, eventCard{
			Event:        events[i],
			WhatsAppLink: whatsapp.RegistrationLink(h.whatsapp, &events[i]),
		})
	}
	return out
}

// localPath reports whether p is safe to redirect to after login.
func localPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
