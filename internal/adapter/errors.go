package adapter

import "errors"

var (
	// ErrNoToken is returned when neither an access token nor a refresh
	// token is available.
	ErrNoToken = errors.New("no token available")

	// Sentinels for REST answers, matched by status code in mapHTTPError.
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
