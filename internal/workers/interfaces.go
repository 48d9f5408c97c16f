// Package workers runs long-lived background loops of the client daemon.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the first one fails or the context ends.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx ends or the worker
// fails; returning nil on cancellation is expected.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
