// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// spyRunner counts Start calls and can hold each run for a while.
type spyRunner struct {
	calls   atomic.Int64
	running atomic.Int64
	maxPar  atomic.Int64
	delay   time.Duration
	err     error
	opts    atomic.Value
	ctxErr  atomic.Value
}

func (s *spyRunner) Start(ctx context.Context, opts models.SyncOptions) (bool, error) {
	n := s.running.Add(1)
	defer s.running.Add(-1)
	if n > s.maxPar.Load() {
		s.maxPar.Store(n)
	}

	s.calls.Add(1)
	s.opts.Store(opts)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if ctx.Err() != nil {
		s.ctxErr.Store(ctx.Err())
	}
	return s.err == nil, s.err
}

func (s *spyRunner) Cancel() {}

func (s *spyRunner) State() models.SessionState { return models.SessionIdle }

func newTestScheduler(runner SyncRunner, interval time.Duration) *autoSyncScheduler {
	return NewAutoSyncScheduler(runner, interval, logger.Nop()).(*autoSyncScheduler)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestAutoSyncScheduler_Start_RunsFullSync(t *testing.T) {
	spy := &spyRunner{}
	job := newTestScheduler(spy, 10*time.Millisecond)

	// 10ms interval, about 5 ticks in 55ms
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several runs, got %d", got)
	assert.Equal(t, models.SyncOptions{Type: models.SyncTypeFull}, spy.opts.Load())
}

func TestAutoSyncScheduler_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRunner{}
	job := newTestScheduler(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no runs after Stop")
	assert.False(t, job.Running())
}

func TestAutoSyncScheduler_Stop_WaitsForInFlightTick(t *testing.T) {
	spy := &spyRunner{delay: 50 * time.Millisecond}
	job := newTestScheduler(spy, 5*time.Millisecond)

	job.Start(context.Background())
	require.Eventually(t, func() bool { return spy.running.Load() == 1 }, time.Second, time.Millisecond)

	job.Stop()

	assert.Zero(t, spy.running.Load(), "Stop returns after the tick finished")
	assert.Nil(t, spy.ctxErr.Load(), "the in-flight run is not cancelled")
	assert.EqualValues(t, 1, spy.calls.Load())
}

func TestAutoSyncScheduler_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTestScheduler(&spyRunner{}, time.Second)

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestAutoSyncScheduler_DefaultInterval(t *testing.T) {
	spy := &spyRunner{}

	for _, interval := range []time.Duration{0, -time.Second} {
		job := newTestScheduler(spy, interval)
		assert.Equal(t, DefaultSyncInterval, job.interval)

		// the default 5m interval does not tick within 20ms
		job.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		job.Stop()
	}

	assert.Zero(t, spy.calls.Load())
}

func TestAutoSyncScheduler_Restart(t *testing.T) {
	spy := &spyRunner{}
	job := newTestScheduler(spy, 10*time.Millisecond)
	ctx := context.Background()

	job.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Positive(t, callsBefore)

	// a second Start stops the running ticker first
	job.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
	assert.LessOrEqual(t, spy.maxPar.Load(), int64(1), "runs never overlap")
}

func TestAutoSyncScheduler_ContextCancel_StopsJob(t *testing.T) {
	job := newTestScheduler(&spyRunner{}, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after the context was cancelled")
	}
}

func TestAutoSyncScheduler_ErrorsDoNotStopJob(t *testing.T) {
	spy := &spyRunner{err: assert.AnError}
	job := newTestScheduler(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

// ── Trigger / Pause ──────────────────────────────────────────────────────────

func TestAutoSyncScheduler_Trigger(t *testing.T) {
	spy := &spyRunner{}
	job := newTestScheduler(spy, time.Hour)

	job.Start(context.Background())
	defer job.Stop()

	job.Trigger()
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestAutoSyncScheduler_PauseResume(t *testing.T) {
	spy := &spyRunner{}
	job := newTestScheduler(spy, 10*time.Millisecond)

	job.Start(context.Background())
	resume := job.Pause()
	assert.False(t, job.Running())

	paused := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, paused, spy.calls.Load(), "no ticks while paused")

	resume()
	assert.True(t, job.Running())
	require.Eventually(t, func() bool { return spy.calls.Load() > paused }, time.Second, time.Millisecond)
	job.Stop()
}

func TestAutoSyncScheduler_PauseWhenStopped(t *testing.T) {
	job := newTestScheduler(&spyRunner{}, 10*time.Millisecond)

	resume := job.Pause()
	resume()

	assert.False(t, job.Running(), "a stopped scheduler stays stopped")
}
