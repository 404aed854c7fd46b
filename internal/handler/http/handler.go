package http

import (
	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/service"
	"github.com/fintest/plaidbox/internal/session"
)

type Handler struct {
	services    *service.Services
	credentials *session.CredentialStore

	webhooks config.Webhooks

	// devMode widens error responses with internal detail. Never set in
	// production.
	devMode bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, credentials *session.CredentialStore, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		credentials: credentials,
		webhooks:    cfg.Webhooks,
		devMode:     !cfg.App.IsProduction(),
		logger:      logger,
	}
}
