package service

import "errors"

var (
	// ErrDeviceNotRegistered is returned when no device id could be obtained
	// after registration.
	ErrDeviceNotRegistered = errors.New("device not registered")

	// ErrEncryptionKeyMissing aborts the fetch step when no data key is
	// installed.
	ErrEncryptionKeyMissing = errors.New("encryption key missing")

	// ErrInvalidBatch is returned for a transfer batch that cannot be
	// processed.
	ErrInvalidBatch = errors.New("invalid transfer batch")
)

// User-facing sync error messages.
const (
	MsgSyncUnavailable    = "Could not connect to the Sync server. Please try again."
	MsgSyncTimeout        = "Sync timed out in %dms."
	MsgAccessTokenMissing = "Failed to get access token."
	MsgEncryptionKey      = "Your session has expired. Please log in again."
)

// SyncError is the single error type surfaced by [SyncFacade]. Message is
// meant for the user; Err keeps the cause.
type SyncError struct {
	Message string
	Err     error
}

func (e *SyncError) Error() string {
	return e.Message
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Errors of the reference server services.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	// ErrDeviceUnknown is returned by the sync service for a device that is
	// not registered. Its text is shown to the user.
	ErrDeviceUnknown = errors.New("device is not registered")

	// ErrValidation wraps every rejected sync payload.
	ErrValidation = errors.New("validation failed")
)
