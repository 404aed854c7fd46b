package workers

import (
	"context"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/session"
	"github.com/fintest/plaidbox/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the harness's background loops: expired-registry
// sweeping and session-file reaping.
func NewWorkers(storages *store.Storages, files *session.FileStore, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRegistrySweeper(storages.Items, cfg.Webhooks.RegistrySweepInterval, logger),
			NewSessionReaper(files, cfg.Session.ReapInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
