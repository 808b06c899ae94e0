package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"attendadmin/internal/api"
	"attendadmin/internal/session"
)

var handlerTestKey = []byte("0123456789abcdef0123456789abcdef")

func newAuthHandler(apiURL string) *AuthHandler {
	client := api.NewClient(apiURL)
	sessions := session.NewManager(client, handlerTestKey, "attend-session", false)
	return NewAuthHandler(sessions, client)
}

func loginRequest(email, password string) *http.Request {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSuccessSetsSessionAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"_id":"u1","name":"Staff","role":"admin","token":"tok-abc"}`))
	}))
	defer srv.Close()

	h := newAuthHandler(srv.URL)
	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest("a@b.com", "pw"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("successful login set no session cookie")
	}
}

func TestLoginFailureRendersErrorWithoutRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	h := newAuthHandler(srv.URL)
	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest("a@b.com", "wrong"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid email or password.") {
		t.Error("error message missing")
	}
	if !strings.Contains(body, "a@b.com") {
		t.Error("form did not keep the submitted email")
	}
}

func TestLoginValidationSkipsAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API call %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	h := newAuthHandler(srv.URL)
	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest("not-an-email", "pw"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", rec.Code)
	}
}

func TestRegisterSuccessRedirectsToLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	h := newAuthHandler(srv.URL)
	rec := httptest.NewRecorder()
	form := url.Values{"name": {"Staff"}, "email": {"a@b.com"}, "password": {"secret1"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Register(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?") {
		t.Errorf("Location = %q, want /login with a message", loc)
	}
}

func TestRootRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"u1","name":"Staff","role":"admin","token":"tok-abc"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	sessions := session.NewManager(client, handlerTestKey, "attend-session", false)

	// Anonymous visitors land on the login screen.
	rec := httptest.NewRecorder()
	RootRedirect(sessions)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("anonymous Location = %q, want /login", loc)
	}

	// Authenticated visitors land on the dashboard.
	loginRec := httptest.NewRecorder()
	if _, err := sessions.Login(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec = httptest.NewRecorder()
	RootRedirect(sessions)(rec, req)
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("authenticated Location = %q, want /dashboard", loc)
	}
}
