// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-locker/internal/logger"
)

// periodicWorker calls task once at start and then on every tick. A failed
// run is logged and the next tick is waited for.
type periodicWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error

	logger *logger.Logger
}

func newPeriodicWorker(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *periodicWorker {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", name)
	})

	return &periodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   l,
	}
}

func (w *periodicWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Msg("worker disabled: interval is not positive")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("worker started")
	defer w.logger.Info().Msg("worker stopped")

	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *periodicWorker) runOnce(ctx context.Context) {
	if err := w.task(ctx); err != nil && ctx.Err() == nil {
		w.logger.Err(err).Msg("worker run failed")
	}
}
