package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// vendor-facing ingestion, rate limited per source address
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit())
		r.Post("/webhooks", h.ingestWebhook)
	})

	// credential lifecycle and misc, no session required
	router.Group(func(r chi.Router) {
		r.Post("/api/credentials", h.storeCredentials)
		r.Post("/api/credentials/logout", h.logout)
		r.Get("/api/credentials/status", h.credentialStatus)
		r.Get("/api/version", h.getServerVersion)
	})

	// management API, session credentials required
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/api/webhooks", h.listWebhooks)
		r.Delete("/api/webhooks", h.clearWebhooks)
		r.Get("/api/webhooks/stats", h.webhookStats)
		r.Get("/api/webhooks/export", h.exportWebhooks)

		r.Post("/api/items", h.registerItem)
		r.Post("/api/link/token", h.createLinkToken)
		r.Post("/api/link/exchange", h.exchangePublicToken)

		r.Get("/api/accounts", h.getAccounts)
		r.Get("/api/identity", h.getIdentity)
		r.Get("/api/auth", h.getAuth)
		r.Get("/api/balance", h.getBalance)
	})

	return router
}
