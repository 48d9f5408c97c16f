package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errServerNotStarted    = errors.New("server is not listening")
)
