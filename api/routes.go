package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	rh "github.com/lakonic/chequetext/route-handlers"
	"github.com/lakonic/chequetext/webutil"
)

const (
	healthPath      = "/health"
	extractTextPath = "/extract-text"
)

const requestTimeout = 60 * time.Second

// SetupRoutes builds the service router: an unauthenticated health check and
// the extraction endpoint behind the basic-auth guard.
func SetupRoutes(extractHandler *rh.ExtractHandler, guard AuthGuard) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(middleware.Timeout(requestTimeout))

	r.Get(healthPath, handleHealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(guard))
		r.Post(extractTextPath, webutil.MakeHandler(extractHandler.HandleExtractText))
	})

	return r
}

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
