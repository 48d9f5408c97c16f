// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/connection"
)

// hubExceptionPrefix precedes the message of an exception thrown by a hub
// method on the server.
const hubExceptionPrefix = "HubException: "

// emailNotConfirmedText is part of the error the server reports while it
// still believes the account email is unconfirmed.
const emailNotConfirmedText = "confirm your email"

// mapSyncError translates a sync run failure into the user-facing
// [SyncError].
func mapSyncError(err error) *SyncError {
	if err == nil {
		return nil
	}

	var (
		timeoutErr *connection.TimeoutError
		remoteErr  *connection.RemoteError
		syncErr    *SyncError
	)

	switch {
	case errors.As(err, &syncErr):
		return syncErr

	case errors.As(err, &timeoutErr):
		return &SyncError{Message: fmt.Sprintf(MsgSyncTimeout, timeoutErr.Timeout.Milliseconds()), Err: err}

	case errors.Is(err, connection.ErrAuthRequired), errors.Is(err, adapter.ErrNoToken):
		return &SyncError{Message: MsgAccessTokenMissing, Err: err}

	case errors.Is(err, connection.ErrSyncUnavailable):
		return &SyncError{Message: MsgSyncUnavailable, Err: err}

	case errors.Is(err, ErrEncryptionKeyMissing):
		return &SyncError{Message: MsgEncryptionKey, Err: err}

	case errors.As(err, &remoteErr):
		return &SyncError{Message: extractBody(remoteErr.Message), Err: err}
	}

	return &SyncError{Message: err.Error(), Err: err}
}

// isEmailNotConfirmed reports whether err is the server's stale
// email-confirmation error.
func isEmailNotConfirmed(err error) bool {
	var remoteErr *connection.RemoteError
	return errors.As(err, &remoteErr) && strings.Contains(strings.ToLower(remoteErr.Message), emailNotConfirmedText)
}

// extractBody extracts the message from a server error of the form
// "...HubException: <message>".
func extractBody(msg string) string {
	if idx := strings.LastIndex(msg, hubExceptionPrefix); idx != -1 {
		return strings.TrimSpace(msg[idx+len(hubExceptionPrefix):])
	}
	return msg
}
