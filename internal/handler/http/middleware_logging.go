package http

import (
	"net/http"
	"time"

	"github.com/mycareerassist/careerctl/internal/logger"
)

// withLogging logs one line per handled request. Liveness probes log at
// debug so a watched configd does not flood the operator's terminal.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		if r.URL.Path == "/healthz" {
			event = log.Debug()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
