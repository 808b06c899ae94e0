package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"attendadmin/internal/entity"
	"attendadmin/internal/middleware"
	"attendadmin/internal/session"
)

// authedRequest builds a request as the access gate would deliver it to a
// protected handler.
func authedRequest(t *testing.T, method, target string, form url.Values) *http.Request {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	state := session.State{
		Kind:  session.KindAuthenticated,
		User:  &entity.User{ID: "u1", Name: "Staff", Role: "admin"},
		Token: "tok",
	}
	return req.WithContext(middleware.WithState(req.Context(), state))
}

func muxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}
