package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/models"
)

type facadeMocks struct {
	session   *mock.MockSyncRunner
	scheduler *mock.MockAutoSyncScheduler
	tokens    *mock.MockTokenSupplier
	users     *mock.MockUserAPI
}

func newTestFacade(t *testing.T) (*SyncFacade, facadeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := facadeMocks{
		session:   mock.NewMockSyncRunner(ctrl),
		scheduler: mock.NewMockAutoSyncScheduler(ctrl),
		tokens:    mock.NewMockTokenSupplier(ctrl),
		users:     mock.NewMockUserAPI(ctrl),
	}
	return NewSyncFacade(m.session, m.scheduler, m.tokens, m.users, logger.Nop()), m
}

var fullSync = models.SyncOptions{Type: models.SyncTypeFull}

func TestSyncFacade_Start(t *testing.T) {
	f, m := newTestFacade(t)
	ctx := context.Background()

	m.session.EXPECT().Start(ctx, fullSync).Return(true, nil)

	ok, err := f.Start(ctx, fullSync)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSyncFacade_Start_WrapsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "transport",
			err:  fmt.Errorf("%w: %w", connection.ErrSyncUnavailable, errors.New("dial tcp: refused")),
			msg:  MsgSyncUnavailable,
		},
		{
			name: "timeout",
			err:  fmt.Errorf("%w: %w", connection.ErrSyncUnavailable, &connection.TimeoutError{Timeout: 30 * time.Second}),
			msg:  "Sync timed out in 30000ms.",
		},
		{
			name: "auth",
			err:  fmt.Errorf("%w: %w", connection.ErrAuthRequired, adapter.ErrNoToken),
			msg:  MsgAccessTokenMissing,
		},
		{
			name: "remote exception",
			err:  fmt.Errorf("push items: %w", &connection.RemoteError{Message: "An unexpected error occurred. HubException: Device is not registered."}),
			msg:  "Device is not registered.",
		},
		{
			name: "other",
			err:  ErrDeviceNotRegistered,
			msg:  "device not registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, m := newTestFacade(t)
			ctx := context.Background()

			m.session.EXPECT().Start(ctx, fullSync).Return(false, tt.err)

			ok, err := f.Start(ctx, fullSync)
			assert.False(t, ok)

			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, tt.msg, syncErr.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSyncFacade_Start_StaleEmailConfirmation(t *testing.T) {
	emailErr := &connection.RemoteError{Message: "HubException: Please confirm your email to sync."}

	t.Run("confirmed account refreshes once", func(t *testing.T) {
		f, m := newTestFacade(t)
		ctx := context.Background()

		gomock.InOrder(
			m.session.EXPECT().Start(ctx, fullSync).Return(false, emailErr),
			m.users.EXPECT().GetUser(ctx).Return(&models.User{ID: "u1", IsEmailConfirmed: true}, nil),
			m.tokens.EXPECT().RefreshToken(ctx, true).Return(nil),
		)

		ok, err := f.Start(ctx, fullSync)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unconfirmed account surfaces the error", func(t *testing.T) {
		f, m := newTestFacade(t)
		ctx := context.Background()

		m.session.EXPECT().Start(ctx, fullSync).Return(false, emailErr)
		m.users.EXPECT().GetUser(ctx).Return(&models.User{ID: "u1"}, nil)

		_, err := f.Start(ctx, fullSync)
		var syncErr *SyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, "Please confirm your email to sync.", syncErr.Message)
	})

	t.Run("refresh failure surfaces the error", func(t *testing.T) {
		f, m := newTestFacade(t)
		ctx := context.Background()

		m.session.EXPECT().Start(ctx, fullSync).Return(false, emailErr)
		m.users.EXPECT().GetUser(ctx).Return(&models.User{ID: "u1", IsEmailConfirmed: true}, nil)
		m.tokens.EXPECT().RefreshToken(ctx, true).Return(adapter.ErrUnauthorized)

		_, err := f.Start(ctx, fullSync)
		assert.Error(t, err)
	})
}

func TestSyncFacade_Stop(t *testing.T) {
	f, m := newTestFacade(t)
	m.session.EXPECT().Cancel()

	f.Stop()
}

func TestSyncFacade_AcquireLock(t *testing.T) {
	t.Run("pauses and resumes around fn", func(t *testing.T) {
		f, m := newTestFacade(t)
		var order []string

		m.scheduler.EXPECT().Pause().DoAndReturn(func() func() {
			order = append(order, "pause")
			return func() { order = append(order, "resume") }
		})

		err := f.AcquireLock(context.Background(), func(context.Context) error {
			order = append(order, "fn")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"pause", "fn", "resume"}, order)
	})

	t.Run("resumes on failure", func(t *testing.T) {
		f, m := newTestFacade(t)
		resumed := false

		m.scheduler.EXPECT().Pause().Return(func() { resumed = true })

		err := f.AcquireLock(context.Background(), func(context.Context) error { return assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
		assert.True(t, resumed)
	})

	t.Run("resumes on panic", func(t *testing.T) {
		f, m := newTestFacade(t)
		resumed := false

		m.scheduler.EXPECT().Pause().Return(func() { resumed = true })

		assert.Panics(t, func() {
			_ = f.AcquireLock(context.Background(), func(context.Context) error { panic("boom") })
		})
		assert.True(t, resumed)
	})
}

func TestSyncFacade_AcquireLockExcludesScheduledRuns(t *testing.T) {
	spy := &spyRunner{delay: 20 * time.Millisecond}
	scheduler := NewAutoSyncScheduler(spy, 5*time.Millisecond, logger.Nop())
	f := NewSyncFacade(spy, scheduler, nil, nil, logger.Nop())

	scheduler.Start(context.Background())
	defer scheduler.Stop()

	err := f.AcquireLock(context.Background(), func(ctx context.Context) error {
		assert.Zero(t, spy.running.Load(), "no scheduled run while the lock is held")
		_, err := spy.Start(ctx, models.SyncOptions{Type: models.SyncTypeSend})
		return err
	})
	require.NoError(t, err)
	assert.True(t, scheduler.Running())
	assert.LessOrEqual(t, spy.maxPar.Load(), int64(1))
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "boom", extractBody("x HubException: boom"))
	assert.Equal(t, "plain", extractBody("plain"))
}

func TestIsEmailNotConfirmed(t *testing.T) {
	assert.True(t, isEmailNotConfirmed(&connection.RemoteError{Message: "Please Confirm Your Email first"}))
	assert.False(t, isEmailNotConfirmed(errors.New("please confirm your email")), "only server errors count")
	assert.False(t, isEmailNotConfirmed(&connection.RemoteError{Message: "other"}))
}
