package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// SyncFacade is the entry point of the sync engine for applications.
type SyncFacade struct {
	session   SyncRunner
	scheduler AutoSyncScheduler
	tokens    adapter.TokenSupplier
	users     adapter.UserAPI
	logger    *logger.Logger
}

// NewSyncFacade returns a SyncFacade running session and pausing scheduler
// around exclusive work.
func NewSyncFacade(session SyncRunner, scheduler AutoSyncScheduler, tokens adapter.TokenSupplier, users adapter.UserAPI, logger *logger.Logger) *SyncFacade {
	return &SyncFacade{
		session:   session,
		scheduler: scheduler,
		tokens:    tokens,
		users:     users,
		logger:    logger,
	}
}

// Start runs one sync and reports whether it completed. Failures are
// returned as [*SyncError]. When the server rejects the run for an
// unconfirmed email although the account is confirmed, the access token is
// refreshed once and Start returns false without error.
func (f *SyncFacade) Start(ctx context.Context, opts models.SyncOptions) (bool, error) {
	ok, err := f.session.Start(ctx, opts)
	if err == nil {
		return ok, nil
	}

	if isEmailNotConfirmed(err) && f.recoverEmailConfirmation(ctx) {
		return false, nil
	}

	return false, mapSyncError(err)
}

// recoverEmailConfirmation refreshes the token when the account turns out
// to be confirmed. It reports whether the refresh happened.
func (f *SyncFacade) recoverEmailConfirmation(ctx context.Context) bool {
	user, err := f.users.GetUser(ctx)
	if err != nil {
		f.logger.Err(err).Str("func", "SyncFacade.Start").Msg("failed to read user")
		return false
	}
	if !user.IsEmailConfirmed {
		return false
	}

	if err = f.tokens.RefreshToken(ctx, true); err != nil {
		f.logger.Err(err).Str("func", "SyncFacade.Start").Msg("failed to refresh token")
		return false
	}

	f.logger.Info().Str("func", "SyncFacade.Start").Msg("email confirmed, token refreshed")
	return true
}

// Stop cancels a running sync by closing the connection.
func (f *SyncFacade) Stop() {
	f.session.Cancel()
}

// AcquireLock runs fn with the auto-sync scheduler paused. The scheduler is
// resumed when fn returns, also on failure or panic.
func (f *SyncFacade) AcquireLock(ctx context.Context, fn func(ctx context.Context) error) error {
	resume := f.scheduler.Pause()
	defer resume()

	return fn(ctx)
}
