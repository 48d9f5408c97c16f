package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 3 * time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	t.Run("configured", func(t *testing.T) {
		srv, err := NewServer(handlers, cfg, logger.Nop())
		require.NoError(t, err)

		s := srv.(*server)
		assert.Equal(t, cfg.HTTPAddress, s.httpServer.server.Addr)
		assert.Equal(t, cfg.RequestTimeout, s.httpServer.server.ReadHeaderTimeout)
	})

	t.Run("no handlers", func(t *testing.T) {
		_, err := NewServer(&handler.Handlers{}, cfg, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("no address", func(t *testing.T) {
		_, err := NewServer(handlers, config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, srv.Shutdown)
}

func newRunnableServer(t *testing.T) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	s := newRunnableServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-s.httpServer.ready:
	case <-time.After(time.Second):
		t.Fatal("server did not bind")
	}

	url := fmt.Sprintf("http://%s/api/missing", s.httpServer.listener.Addr())
	resp, err := http.Get(url)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReportsBindError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.ErrorContains(t, err, "listen")
}

func TestHTTPServer_ServeWithoutListen(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, h.serve(), errServerNotStarted)
}
