// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/service"
)

// HealthChecker refreshes a health status. It is satisfied by the gRPC
// handler.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background workers. health may be nil when
// no gRPC health service is served.
func NewWorkers(sessions service.SessionService, health HealthChecker, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	w.workers = append(w.workers, newPeriodicWorker("session_cleanup", cfg.SessionCleanupInterval, func(ctx context.Context) error {
		_, err := sessions.RemoveExpiredSessions(ctx)
		return err
	}, logger))

	if health != nil {
		w.workers = append(w.workers, newPeriodicWorker("health_check", cfg.HealthCheckInterval, health.CheckHealth, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and waits for all of them
// to return after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
