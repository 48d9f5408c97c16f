package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

var errSyncNotCompleted = errors.New("sync did not complete")

// App runs the sync engine either once or as a daemon.
type App struct {
	services *service.ClientServices
	cfg      config.ClientSync
	pushes   <-chan struct{}
	logger   *logger.Logger
}

// NewApp returns an App over the assembled engine. pushes receives a value
// whenever another device completed a push; it is only read in daemon mode.
func NewApp(services *service.ClientServices, cfg config.ClientSync, pushes <-chan struct{}, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services")
	}

	return &App{
		services: services,
		cfg:      cfg,
		pushes:   pushes,
		logger:   logger,
	}, nil
}

// Run performs a one-shot sync, or in daemon mode keeps syncing until the
// process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	defer a.services.Close()

	if !a.cfg.Daemon {
		return a.runOnce(ctx, a.cfg.Options)
	}

	return a.runDaemon(ctx)
}

func (a *App) runOnce(ctx context.Context, opts models.SyncOptions) error {
	completed, err := a.services.Facade.Start(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	if !completed {
		return errSyncNotCompleted
	}

	a.logger.Info().Str("type", string(opts.Type)).Bool("force", opts.Force).Msg("sync completed")
	return nil
}

// runDaemon runs the scheduler next to a worker answering push
// notifications of other devices with a fetch.
func (a *App) runDaemon(ctx context.Context) error {
	if err := a.runOnce(ctx, a.cfg.Options); err != nil {
		a.logger.Err(err).Msg("initial sync failed")
	}

	err := workers.New(
		workers.WorkerFunc(a.autoSync),
		workers.WorkerFunc(a.fetchOnPush),
	).Run(ctx)

	a.logger.Info().Msg("auto-sync stopped")
	return err
}

func (a *App) autoSync(ctx context.Context) error {
	a.services.Scheduler.Start(ctx)
	a.logger.Info().Msg("auto-sync started")

	<-ctx.Done()
	return nil
}

func (a *App) fetchOnPush(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.pushes:
			if err := a.runOnce(ctx, models.SyncOptions{Type: models.SyncTypeFetch}); err != nil {
				a.logger.Err(err).Msg("fetch after remote push failed")
			}
		}
	}
}

// PushSignal is a SyncObserver that forwards PushRequested to a channel
// without blocking.
type PushSignal struct {
	service.NopObserver
	C chan struct{}
}

// NewPushSignal returns a PushSignal with a buffered channel.
func NewPushSignal() *PushSignal {
	return &PushSignal{C: make(chan struct{}, 1)}
}

func (p *PushSignal) PushRequested() {
	select {
	case p.C <- struct{}{}:
	default:
	}
}
