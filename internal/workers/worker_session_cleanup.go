// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/store"
)

// sessionCleanupWorker periodically purges expired rows from the sessions
// table. Expired sessions are already rejected at resolution time, so the
// worker only keeps the table from growing without bound.
type sessionCleanupWorker struct {
	sessionRepository store.SessionRepository
	interval          time.Duration
	logger            *logger.Logger
}

func newSessionCleanupWorker(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *sessionCleanupWorker {
	return &sessionCleanupWorker{
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run starts the cleanup loop in its own goroutine. The loop stops when ctx
// is cancelled.
func (w *sessionCleanupWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("session cleanup worker stopped")
				return
			case <-ticker.C:
				purged, err := w.sessionRepository.DeleteExpiredSessions(ctx, time.Now())
				if err != nil {
					w.logger.Err(err).Msg("expired session purge failed")
					continue
				}
				if purged > 0 {
					w.logger.Info().Int64("purged", purged).Msg("expired sessions purged")
				}
			}
		}
	}()
}
