package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
	// ready is closed once listener is bound.
	ready  chan struct{}
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		ready:  make(chan struct{}),
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = l
	close(h.ready)
	return nil
}

// serve blocks until the server is shut down. A closed server is not an
// error.
func (h *httpServer) serve() error {
	if h.listener == nil {
		return errServerNotStarted
	}
	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("Launching HTTP server")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
