package http

import (
	"net/http"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
)

// withLogging emits one access-log line per request after the handler chain
// finished, carrying the final status and response size.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		remoteAddr := r.RemoteAddr

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Str("remote_addr", remoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}
