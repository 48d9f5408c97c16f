// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the auth middleware for unusable credentials.
var (
	// ErrEmptyAuthorizationHeader means the request carried neither an
	// Authorization header nor an access_token parameter.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme means a scheme other than Bearer was used.
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken means the Bearer scheme was given without a token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
