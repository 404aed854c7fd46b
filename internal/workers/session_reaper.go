// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/session"
)

const defaultReapInterval = time.Hour

// sessionReaper removes expired session files on a timer. Load already
// drops expired sessions on sight; the reaper cleans up the ones nobody
// asks for again.
type sessionReaper struct {
	files    *session.FileStore
	interval time.Duration

	logger *logger.Logger
}

func NewSessionReaper(files *session.FileStore, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultReapInterval
	}

	return &sessionReaper{
		files:    files,
		interval: interval,
		logger:   logger,
	}
}

func (r *sessionReaper) Run(ctx context.Context) {
	go func() {
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				r.logger.Info().Msg("session reaper stopped")
				return
			case <-t.C:
				removed, err := r.files.Reap()
				if err != nil {
					r.logger.Warn().Err(err).Msg("session reap failed")
					continue
				}
				if removed > 0 {
					r.logger.Info().Int("removed", removed).Msg("expired sessions reaped")
				}
			}
		}
	}()
}
