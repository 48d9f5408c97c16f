package connection

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAuthRequired is returned when no access token is available for a
	// (re)connect. Nothing is dialed in that case.
	ErrAuthRequired = errors.New("failed to get access token")

	// ErrConnectionTimeout matches every [*TimeoutError].
	ErrConnectionTimeout = errors.New("connection timeout")

	// ErrSyncUnavailable wraps every transport level failure.
	ErrSyncUnavailable = errors.New("sync server unavailable")

	// ErrNotConnected is returned by Invoke when there is no connection.
	ErrNotConnected = errors.New("not connected")

	// ErrConnectionStopped fails invocations pending on a connection that
	// was stopped on purpose.
	ErrConnectionStopped = errors.New("connection stopped")

	// ErrServerTimeout aborts a connection that received nothing within the
	// server timeout.
	ErrServerTimeout = errors.New("server timeout")
)

// TimeoutError is returned when a connect attempt does not finish in time.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("sync timed out in %dms", e.Timeout.Milliseconds())
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrConnectionTimeout
}

// RemoteError carries an error reported by the server.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
