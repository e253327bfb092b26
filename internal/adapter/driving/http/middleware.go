package httphandler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

// statusWriter records the response status and, for list commands, the
// outcome the handler reported through SetOutcome.
type statusWriter struct {
	http.ResponseWriter
	status  int
	outcome model.Outcome
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.status = status
	sw.ResponseWriter.WriteHeader(status)
}

// SetOutcome tags the request log line with the command's outcome. Both the
// JSON API and the HTML handlers call it via an anonymous interface.
func (sw *statusWriter) SetOutcome(o model.Outcome) {
	sw.outcome = o
}

// outcomeSetter is satisfied by statusWriter; handlers must tolerate a plain
// ResponseWriter when the middleware is not installed (tests).
type outcomeSetter interface {
	SetOutcome(model.Outcome)
}

func reportOutcome(w http.ResponseWriter, o model.Outcome) {
	if s, ok := w.(outcomeSetter); ok {
		s.SetOutcome(o)
	}
}

// loggingMiddleware logs one line per request. Server errors log at error
// level and client errors at warn, so a failing list write stands out.
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Round(time.Microsecond),
		}
		if sw.outcome != "" {
			attrs = append(attrs, "outcome", string(sw.outcome))
		}

		level := slog.LevelInfo
		switch {
		case sw.status >= http.StatusInternalServerError:
			level = slog.LevelError
		case sw.status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "http request", attrs...)
	})
}

// recoveryMiddleware turns a handler panic into a 500. API callers get the
// JSON error envelope; browser routes get a plain text page.
func recoveryMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic recovered",
					"panic", v,
					"path", r.URL.Path,
				)
				if strings.HasPrefix(r.URL.Path, "/api/") {
					writeError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				http.Error(w, "The grocery list hit an internal error. Reload to try again.", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
