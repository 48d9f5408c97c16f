// Package server runs the reference sync server: it binds the listener,
// serves the chi router and shuts everything down when the run context
// ends. Hub connections are closed with a close frame before the HTTP
// server drains.
package server
