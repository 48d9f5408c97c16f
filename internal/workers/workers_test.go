// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker runs until its context ends and counts its runs.
type blockingWorker struct {
	runs atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersRunUntilCancel(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := New(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_Run_FirstFailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	other := &blockingWorker{}

	ws := New(other, WorkerFunc(func(context.Context) error { return boom }))

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), other.runs.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}
