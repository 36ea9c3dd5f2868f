package webutil

import (
	"errors"
	"log/slog"
	"net/http"
)

// AppHandler represents a handler function that returns an error.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to the standard http.HandlerFunc
// signature. It executes the AppHandler and handles any returned error by
// logging appropriately and sending a standardized JSON error response.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			// The handler is assumed to have written its own
			// successful response.
			return
		}

		var httpErr *HTTPError
		var publicMessage string
		var statusCode int

		if errors.As(err, &httpErr) {
			// An HTTPError we explicitly created (e.g. ErrBadRequest).
			statusCode = httpErr.Code
			publicMessage = httpErr.Message
			logLevel := slog.LevelWarn // client errors are warnings server-side
			if statusCode >= 500 {
				logLevel = slog.LevelError
			}
			attrs := []any{
				"code", httpErr.Code,
				"msg", httpErr.Message,
				"path", r.URL.Path,
				"method", r.Method,
			}
			// Log the underlying cause if present and different from
			// the public message.
			if cause := errors.Unwrap(httpErr); cause != nil && cause.Error() != publicMessage {
				attrs = append(attrs, "cause", cause)
			}
			slog.Log(r.Context(), logLevel, "Client error response", attrs...)
		} else {
			// Anything the handler did not classify is an internal
			// processing failure; the response carries the message
			// text but no further internal state.
			statusCode = http.StatusInternalServerError
			publicMessage = "Error processing request: " + err.Error()
			slog.Error("Unhandled processing error", "path", r.URL.Path, "method", r.Method, "error", err)
		}

		if HasResponseWriterSentHeader(w) {
			slog.Warn("Handler returned error after writing response header",
				"path", r.URL.Path,
				"method", r.Method,
				"error", err,
			)
			return
		}

		RespondWithJSON(w, statusCode, map[string]string{"error": publicMessage})
	}
}
