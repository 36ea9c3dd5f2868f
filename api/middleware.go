package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/lakonic/chequetext/webutil"
)

const basicAuthChallenge = `Basic realm="Login Required"`

// AuthGuard validates request credentials before a protected handler runs.
type AuthGuard interface {
	Check(username, password string) bool
}

// CredentialsGuard is an AuthGuard backed by a single fixed username and
// password pair, as configured from the environment.
type CredentialsGuard struct {
	username string
	password string
}

func NewCredentialsGuard(username, password string) *CredentialsGuard {
	return &CredentialsGuard{username: username, password: password}
}

// Check compares the supplied credentials in constant time.
func (g *CredentialsGuard) Check(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	return userMatch && passMatch
}

// RequireAuth is a middleware that gates its handlers behind HTTP Basic
// authentication. Requests with absent or invalid credentials are
// short-circuited with a 401 JSON response carrying the Basic challenge.
func RequireAuth(guard AuthGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !guard.Check(username, password) {
				slog.Warn("Authentication failed", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
				authErr := webutil.ErrUnauthorized("Authentication required")
				w.Header().Set(webutil.HeaderWWWAuthenticate, basicAuthChallenge)
				webutil.RespondWithError(w, authErr.Code, authErr.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
