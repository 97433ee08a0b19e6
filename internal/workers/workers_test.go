// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/mock"
)

// countingWorker is a test implementation of the Worker interface
// that counts runs and blocks until its context is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// runFor runs ws until d elapses and fails the test if Run does not
// return shortly after cancellation.
func runFor(t *testing.T, ws *Workers, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(d + 2*time.Second):
		t.Fatal("workers did not stop after cancellation")
	}
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	runFor(t, ws, 20*time.Millisecond)

	for i, w := range []*countingWorker{w1, w2, w3} {
		if got := w.runs.Load(); got != 1 {
			t.Errorf("worker[%d]: expected 1 run, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately on an empty workers list
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers_SessionCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)

	var calls atomic.Int32
	sessions.EXPECT().RemoveExpiredSessions(gomock.Any()).
		DoAndReturn(func(context.Context) (int64, error) {
			calls.Add(1)
			return 2, nil
		}).MinTimes(2)

	ws := NewWorkers(sessions, nil, config.Workers{
		SessionCleanupInterval: 10 * time.Millisecond,
		HealthCheckInterval:    10 * time.Millisecond,
	}, logger.Nop())
	if len(ws.workers) != 1 {
		t.Fatalf("expected only the cleanup worker, got %d", len(ws.workers))
	}

	runFor(t, ws, 60*time.Millisecond)

	if calls.Load() < 2 {
		t.Errorf("expected at least 2 cleanup runs, got %d", calls.Load())
	}
}

func TestNewWorkers_HealthCheckKeepsRunningAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().RemoveExpiredSessions(gomock.Any()).Return(int64(0), errors.New("db down")).AnyTimes()

	var checks atomic.Int32
	health := healthFunc(func(context.Context) error {
		checks.Add(1)
		return errors.New("db down")
	})

	ws := NewWorkers(sessions, health, config.Workers{
		SessionCleanupInterval: time.Hour,
		HealthCheckInterval:    10 * time.Millisecond,
	}, logger.Nop())

	runFor(t, ws, 60*time.Millisecond)

	if checks.Load() < 2 {
		t.Errorf("expected repeated health checks, got %d", checks.Load())
	}
}

func TestPeriodicWorker_DisabledInterval(t *testing.T) {
	called := false
	w := newPeriodicWorker("noop", 0, func(context.Context) error {
		called = true
		return nil
	}, logger.Nop())

	// returns at once without calling the task
	w.Run(context.Background())

	if called {
		t.Error("task must not run with a non-positive interval")
	}
}
