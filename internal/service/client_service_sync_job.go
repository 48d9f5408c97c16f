package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// DefaultSyncInterval is used when the scheduler is given no interval.
const DefaultSyncInterval = 5 * time.Minute

type autoSyncScheduler struct {
	runner   SyncRunner
	interval time.Duration
	logger   *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	parent context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoSyncScheduler creates a scheduler that runs a full sync on runner
// every interval. If interval is zero or negative it defaults to
// [DefaultSyncInterval]. The scheduler is idle until Start is called.
func NewAutoSyncScheduler(runner SyncRunner, interval time.Duration, logger *logger.Logger) AutoSyncScheduler {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &autoSyncScheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Start implements AutoSyncScheduler. It stops any previously running loop,
// then launches a goroutine that syncs every interval and on Trigger. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *autoSyncScheduler) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.parent = ctx
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-j.trigger:
			}

			// Stop may have won the race with the tick
			if jobCtx.Err() != nil {
				return
			}
			j.tick(ctx)
		}
	}()
}

// tick runs one sync with the parent context so that Stop does not cancel
// a run that has already started.
func (j *autoSyncScheduler) tick(ctx context.Context) {
	if _, err := j.runner.Start(ctx, models.SyncOptions{Type: models.SyncTypeFull}); err != nil {
		j.logger.Err(err).Str("func", "autoSyncScheduler.tick").Msg("auto-sync failed")
	}
}

// Stop implements AutoSyncScheduler. It cancels the loop and blocks until
// the goroutine, including an in-flight tick, has exited. Safe to call
// when the scheduler is not running.
func (j *autoSyncScheduler) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Pause implements AutoSyncScheduler.
func (j *autoSyncScheduler) Pause() func() {
	j.mu.Lock()
	wasRunning := j.cancel != nil
	parent := j.parent
	j.mu.Unlock()

	j.Stop()

	return func() {
		if wasRunning && parent.Err() == nil {
			j.Start(parent)
		}
	}
}

// Trigger implements AutoSyncScheduler. Requests made while one is pending
// are coalesced.
func (j *autoSyncScheduler) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Running implements AutoSyncScheduler.
func (j *autoSyncScheduler) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
