// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the REST side of the sync client's communication
// with the server: token refresh, device registration, the account profile,
// and the attachment upload queue. The item exchange itself runs over the
// hub connection (see package connection).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSupplier hands out bearer tokens for REST requests and hub
// connections.
type TokenSupplier interface {
	// GetAccessToken returns a usable access token, refreshing it first when
	// it is missing or about to expire. Fails with [ErrNoToken] when there is
	// nothing to refresh with.
	GetAccessToken(ctx context.Context) (string, error)

	// RefreshToken exchanges the refresh token for a new token pair. Without
	// force a still valid access token is kept.
	RefreshToken(ctx context.Context, force bool) error
}

// DeviceAPI registers installations with the server.
type DeviceAPI interface {
	// RegisterDevice makes deviceID known to the server so that fetch and
	// push state can be tracked for it.
	RegisterDevice(ctx context.Context, deviceID string) error

	// UnregisterDevice drops the server-side state of deviceID.
	UnregisterDevice(ctx context.Context, deviceID string) error
}

// UserAPI reads the authenticated account.
type UserAPI interface {
	// GetUser returns the account the access token belongs to.
	GetUser(ctx context.Context) (*models.User, error)
}

// AttachmentUploader hands files to the external transfer subsystem.
type AttachmentUploader interface {
	// QueueUploads enqueues the files for upload under tag.
	QueueUploads(ctx context.Context, uploads []models.AttachmentUpload, tag string) error
}

// ServerAdapter is the whole REST surface used by the sync client.
type ServerAdapter interface {
	TokenSupplier
	DeviceAPI
	UserAPI
	AttachmentUploader
}
