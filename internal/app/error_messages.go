// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// reference server handlers, middleware and sync hub.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, hub error results or log entries to describe the
// outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgUserAlreadyExists = "user already exists"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID was given"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDeviceNotRegistered is the hub error for a device id the user has
	// not registered, or whose registration was dropped.
	MsgDeviceNotRegistered = "Device is not registered."

	// MsgPushNotInitialized is the hub error for PushItems sent before
	// InitializePush on the same connection.
	MsgPushNotInitialized = "Push was not initialized."

	// MsgServerShuttingDown is the close reason sent to hub connections
	// when the server stops.
	MsgServerShuttingDown = "server is shutting down"
)
