package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"attendadmin/internal/api"
	"attendadmin/internal/entity"
)

// Kind is the discriminant of a session state.
type Kind int

const (
	// KindLoading is the zero value, before a restore has settled the state.
	KindLoading Kind = iota
	KindAnonymous
	KindAuthenticated
)

// State describes who is logged in for one request. User and Token are set
// only when Kind is KindAuthenticated.
type State struct {
	Kind  Kind
	User  *entity.User
	Token string
}

// Session cookie value names. Token and identity are written together on
// login and removed together on logout.
const (
	valueToken = "token"
	valueUser  = "user"
)

// Manager is the only component that reads or writes the session cookie.
type Manager struct {
	store *sessions.CookieStore
	api   *api.Client
	name  string
}

func NewManager(client *api.Client, key []byte, name string, secure bool) *Manager {
	store := sessions.NewCookieStore(key)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode

	return &Manager{store: store, api: client, name: name}
}

// Restore settles the session state for a request from the cookie alone, no
// network call. A missing cookie, an undecodable cookie or a malformed stored
// identity all restore to anonymous, never to an error. The returned state is
// never KindLoading.
func (m *Manager) Restore(r *http.Request) State {
	// Get returns a fresh empty session when decoding fails.
	sess, _ := m.store.Get(r, m.name)

	token, _ := sess.Values[valueToken].(string)
	raw, _ := sess.Values[valueUser].(string)
	if token == "" || raw == "" {
		return State{Kind: KindAnonymous}
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return State{Kind: KindAnonymous}
	}
	return State{Kind: KindAuthenticated, User: &user, Token: token}
}

// Login authenticates against the remote auth endpoint and, on success,
// persists the token and the full identity in the session cookie. On failure
// the error is returned as-is and the cookie is left untouched.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, email, password string) (*entity.User, error) {
	var user entity.User
	err := m.api.Post(r.Context(), "", "/auth/login", entity.Credentials{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(&user)
	if err != nil {
		return nil, err
	}

	sess, _ := m.store.Get(r, m.name)
	sess.Values[valueToken] = user.Token
	sess.Values[valueUser] = string(raw)
	if err := sess.Save(r, w); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout removes both stored values and expires the cookie. No network call,
// safe to call when already logged out.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.store.Get(r, m.name)
	delete(sess.Values, valueToken)
	delete(sess.Values, valueUser)
	sess.Options.MaxAge = -1
	sess.Save(r, w)
}
