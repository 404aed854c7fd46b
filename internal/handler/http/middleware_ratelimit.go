// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/utils"
	"github.com/fintest/plaidbox/models"
)

// rateLimiter counts requests per source address inside a fixed window.
// When the window rolls over, every counter resets at once; a burst right
// across the boundary can therefore see up to 2x the limit, which is an
// accepted property of the fixed-window approach for this endpoint.
type rateLimiter struct {
	mu sync.Mutex

	limit  int
	window time.Duration

	windowStart time.Time
	counts      map[string]int

	// now is swappable for tests.
	now func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// allow counts one request for ip and reports whether it fits the window.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.windowStart) >= rl.window {
		rl.windowStart = now
		rl.counts = make(map[string]int)
	}

	rl.counts[ip]++
	return rl.counts[ip] <= rl.limit
}

// withRateLimit builds the ingestion rate-limit middleware from the webhook
// configuration. One limiter instance is shared by every request.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	rl := newRateLimiter(h.webhooks.RateLimit, h.webhooks.RateWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := h.sourceIP(r)
			if !rl.allow(ip) {
				logger.FromRequest(r).Warn().Str("source_ip", ip).Msg("ingestion rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				utils.WriteJSON(w, models.APIResponse{
					Success: false,
					Error:   "too many requests",
				}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
