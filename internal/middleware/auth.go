package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"attendadmin/internal/session"
)

// Restorer settles the session state for a request.
type Restorer interface {
	Restore(r *http.Request) session.State
}

type ctxKey int

const stateKey ctxKey = iota

// WithState returns a context carrying a settled session state.
func WithState(ctx context.Context, state session.State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

// StateFrom returns the session state the gate injected for this request.
func StateFrom(ctx context.Context) (session.State, bool) {
	state, ok := ctx.Value(stateKey).(session.State)
	return state, ok
}

// RequireSession gates protected screens. The decision is re-made on every
// request, so a logout takes effect on the next navigation. While the state
// is still loading no redirect decision is made, a plain placeholder is
// served instead.
func RequireSession(restorer Restorer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := restorer.Restore(r)

			switch state.Kind {
			case session.KindAuthenticated:
				next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
			case session.KindAnonymous:
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			default:
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Write([]byte("<p>Loading...</p>"))
			}
		})
	}
}
