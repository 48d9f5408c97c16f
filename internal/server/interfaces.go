package server

import "context"

// Server is the lifecycle of the reference sync server.
type Server interface {
	// Run serves until ctx is cancelled or the listener fails, then shuts
	// down. A bind error is returned before anything is served.
	Run(ctx context.Context) error

	// Shutdown closes hub connections and drains HTTP requests.
	Shutdown()
}
