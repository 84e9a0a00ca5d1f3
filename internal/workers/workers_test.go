// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

// mockSessionRepository counts purge calls; the remaining methods are unused
// by the cleanup worker.
type mockSessionRepository struct {
	purgeCalls atomic.Int64
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return nil
}

func (m *mockSessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	return models.Session{}, nil
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	m.purgeCalls.Add(1)
	return 1, nil
}

func TestSessionCleanupWorker_PurgesOnTicks(t *testing.T) {
	sessions := &mockSessionRepository{}
	worker := newSessionCleanupWorker(sessions, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Run(ctx)

	deadline := time.After(time.Second)
	for sessions.purgeCalls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 purge calls, got %d", sessions.purgeCalls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSessionCleanupWorker_StopsOnCancel(t *testing.T) {
	sessions := &mockSessionRepository{}
	worker := newSessionCleanupWorker(sessions, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	worker.Run(ctx)
	cancel()

	// allow the loop to observe cancellation, then verify no more purges run
	time.Sleep(20 * time.Millisecond)
	after := sessions.purgeCalls.Load()
	time.Sleep(30 * time.Millisecond)

	if got := sessions.purgeCalls.Load(); got != after {
		t.Errorf("purges continued after cancel: %d -> %d", after, got)
	}
}
