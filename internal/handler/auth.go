package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"attendadmin/internal/api"
	"attendadmin/internal/entity"
	"attendadmin/internal/middleware"
	"attendadmin/internal/session"
)

type AuthHandler struct {
	sessions *session.Manager
	api      *api.Client
	validate *validator.Validate
}

func NewAuthHandler(sessions *session.Manager, client *api.Client) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		api:      client,
		validate: validator.New(),
	}
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// RootRedirect sends / to the dashboard or the login screen depending on the
// session.
func RootRedirect(restorer middleware.Restorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if restorer.Restore(r).Kind == session.KindAuthenticated {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Restore(r).Kind == session.KindAuthenticated {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	render(w, r, "login.html", map[string]any{
		"Title":   "Sign in",
		"Email":   "",
		"Message": r.URL.Query().Get("message"),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.renderLoginError(w, r, form.Email, "Enter a valid email address and a password.")
		return
	}

	if _, err := h.sessions.Login(w, r, form.Email, form.Password); err != nil {
		msg := "Login failed. Please try again."
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			msg = "Invalid email or password."
		}
		slog.Warn("login failed", "email", form.Email, "error", err)
		h.renderLoginError(w, r, form.Email, msg)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, email, msg string) {
	render(w, r, "login.html", map[string]any{
		"Title": "Sign in",
		"Email": email,
		"Error": msg,
	})
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "register.html", map[string]any{"Title": "Register"})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := registerForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	data := map[string]any{"Title": "Register", "Name": form.Name, "Email": form.Email}

	if err := h.validate.Struct(form); err != nil {
		data["Error"] = "All fields are required, the password needs at least 6 characters."
		render(w, r, "register.html", data)
		return
	}

	payload := entity.Registration{Name: form.Name, Email: form.Email, Password: form.Password}
	if err := h.api.Post(r.Context(), "", "/auth/register", payload, nil); err != nil {
		slog.Warn("registration failed", "email", form.Email, "error", err)
		data["Error"] = "Registration failed. Please try again."
		render(w, r, "register.html", data)
		return
	}

	q := url.Values{"message": {"Account created. Sign in to continue."}}
	http.Redirect(w, r, "/login?"+q.Encode(), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
