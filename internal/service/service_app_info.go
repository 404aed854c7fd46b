package service

import (
	"context"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
)

// appInfoService serves the build metadata surfaced by the version endpoint.
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService requires a non-empty version: the harness refuses to
// start advertising an unknown build.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
