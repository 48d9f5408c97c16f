// Package http serves the reference sync server: the REST endpoints for
// devices, tokens and upload manifests, and the websocket hub that carries
// the push and fetch protocol.
//
// Requests pass through trace id, access log and bearer auth middleware
// before reaching the handlers.
package http
