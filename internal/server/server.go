package server

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	handlers   *handler.Handlers
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		handlers:   handlers,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	if err := s.httpServer.listen(); err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.httpServer.serve)
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

// Shutdown closes hub connections first: hijacked connections are not
// tracked by http.Server.Shutdown.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.handlers.HTTP.Close()
		s.httpServer.Shutdown()
	})
}
