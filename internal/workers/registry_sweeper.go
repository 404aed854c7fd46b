// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/store"
)

const defaultSweepInterval = time.Hour

// registrySweeper periodically evicts expired item registrations. Lookup
// already treats expired entries as absent; the sweeper only reclaims the
// memory.
type registrySweeper struct {
	registry store.ItemRegistry
	interval time.Duration

	logger *logger.Logger
}

func NewRegistrySweeper(registry store.ItemRegistry, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &registrySweeper{
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

func (s *registrySweeper) Run(ctx context.Context) {
	go func() {
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("registry sweeper stopped")
				return
			case <-t.C:
				if removed := s.registry.Sweep(); removed > 0 {
					s.logger.Info().Int("removed", removed).Msg("expired item registrations swept")
				}
			}
		}
	}()
}
