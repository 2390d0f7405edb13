package portal

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hmse-unipi/portal/internal/api"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	Name            string `validate:"required,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

type loginPage struct {
	Email string
}

type registerPage struct {
	Name  string
	Email string
}

func (h *handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	d := h.data(r, "Login", loginPage{})
	if r.URL.Query().Get("registered") != "" {
		d.Flash = "Pendaftaran berhasil, silakan login."
	}
	h.render(w, r, http.StatusOK, "login.html", d)
}

// login stores the API's token and user in both session stores, then
// sends the browser to its landing page. The next request rebuilds every
// session-dependent view from the new session.
func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	d := h.data(r, "Login", loginPage{Email: form.Email})

	if err := h.validate.Struct(form); err != nil {
		h.invalid(w, r, err, "login.html", d)
		return
	}

	res, err := h.api.Auth.Login(r.Context(), api.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		d.Error = api.Message(err, "Login failed. Please check your credentials.")
		h.render(w, r, statusFor(err), "login.html", d)
		return
	}
	if res.Token == "" || res.User == nil {
		h.log.Error("login response without token or user")
		d.Error = "Login failed. Please try again."
		h.render(w, r, http.StatusBadGateway, "login.html", d)
		return
	}

	if err := h.sessions.WriteSession(w, r, res.Token, res.User, h.sessions.TTLDays()); err != nil {
		h.log.Error("error writing session", zap.Error(err))
		d.Error = "Login failed. Please try again."
		h.render(w, r, http.StatusInternalServerError, "login.html", d)
		return
	}

	target := h.sessions.PopReturnTo(r)
	if !localPath(target) {
		target = h.routes.HomeFor(res.User)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *handlers) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "daftar.html", h.data(r, "Daftar", registerPage{}))
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	d := h.data(r, "Daftar", registerPage{Name: form.Name, Email: form.Email})

	if err := h.validate.Struct(form); err != nil {
		h.invalid(w, r, err, "daftar.html", d)
		return
	}

	err := h.api.Auth.Register(r.Context(), api.Registration{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		d.Error = api.Message(err, "Registration failed. Please try again.")
		h.render(w, r, statusFor(err), "daftar.html", d)
		return
	}

	http.Redirect(w, r, h.routes.Login+"?registered=1", http.StatusSeeOther)
}

// logout clears both stores and starts over from the home page.
func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
