package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	require.NotNil(t, h.hub)
	assert.Equal(t, svc, h.hub.services)
	assert.Equal(t, defaultAckTimeout, h.hub.ackTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.hub, h2.hub)
}

func TestHandler_CloseWithoutConnections(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	assert.NotPanics(t, h.Close)
}
