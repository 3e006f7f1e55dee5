package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// cors lets browser frontends call the API from any origin and answers
// preflight requests before the method guards reject OPTIONS. Tighten the
// allowed origins before serving untrusted networks.
func (a *App) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// middleware attaches a request ID, logs each request, records request
// metrics, and converts handler panics into a 500 with the message
// embedded (reported to Sentry when enabled).
func (a *App) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				if a.sentryEnabled {
					sentry.CurrentHub().Recover(rec)
				}
				a.log.Errorw("handler panicked",
					"request_id", requestID, "path", r.URL.Path, "panic", rec)
				a.writeError(sw, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", rec))
			}

			duration := time.Since(start)
			a.rec.ObserveRequest(r.URL.Path, sw.status, duration)
			a.log.Infow("request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", duration,
			)
		}()

		next.ServeHTTP(sw, r)
	})
}
