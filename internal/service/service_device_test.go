package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		setup    func(v *mock.MockVaultRepository)
		wantErr  error
	}{
		{
			name:     "registered",
			deviceID: "0190f4a2-7c1e-7a3b-9d4e-5f6a7b8c9d0e",
			setup: func(v *mock.MockVaultRepository) {
				v.EXPECT().AddDevice(gomock.Any(), "user-1", "0190f4a2-7c1e-7a3b-9d4e-5f6a7b8c9d0e").Return(nil)
			},
		},
		{
			name:     "empty id",
			deviceID: "",
			wantErr:  ErrValidation,
		},
		{
			name:     "oversized id",
			deviceID: strings.Repeat("d", 65),
			wantErr:  ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vaults := mock.NewMockVaultRepository(ctrl)
			if tt.setup != nil {
				tt.setup(vaults)
			}

			svc := NewDeviceService(vaults, logger.Nop())
			err := svc.RegisterDevice(context.Background(), "user-1", models.DeviceIdentity{DeviceID: tt.deviceID})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeviceService_RegisterDevice_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	vaults := mock.NewMockVaultRepository(ctrl)
	storeErr := errors.New("vault unavailable")
	vaults.EXPECT().AddDevice(gomock.Any(), "user-1", "dev-1").Return(storeErr)

	err := NewDeviceService(vaults, logger.Nop()).RegisterDevice(context.Background(), "user-1", models.DeviceIdentity{DeviceID: "dev-1"})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	t.Run("known device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vaults := mock.NewMockVaultRepository(ctrl)
		vaults.EXPECT().RemoveDevice(gomock.Any(), "user-1", "dev-1").Return(nil)

		require.NoError(t, NewDeviceService(vaults, logger.Nop()).UnregisterDevice(context.Background(), "user-1", "dev-1"))
	})

	t.Run("unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vaults := mock.NewMockVaultRepository(ctrl)
		vaults.EXPECT().RemoveDevice(gomock.Any(), "user-1", "ghost").Return(store.ErrDeviceNotFound)

		err := NewDeviceService(vaults, logger.Nop()).UnregisterDevice(context.Background(), "user-1", "ghost")
		assert.ErrorIs(t, err, ErrDeviceUnknown)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vaults := mock.NewMockVaultRepository(ctrl)
		vaults.EXPECT().RemoveDevice(gomock.Any(), "user-1", "dev-1").Return(assert.AnError)

		err := NewDeviceService(vaults, logger.Nop()).UnregisterDevice(context.Background(), "user-1", "dev-1")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrDeviceUnknown)
	})
}

func TestDeviceService_ReRegistrationRefetchesEverything(t *testing.T) {
	s := newTestServerServices(t, 10)
	ctx := context.Background()
	register(t, s, "user-1", "dev-a", "dev-b")

	ok, err := s.SyncService.PushItems(ctx, "user-1", "dev-a", pushed(models.ItemTypeNote, "n1"))
	require.NoError(t, err)
	require.True(t, ok)

	plan, err := s.SyncService.PlanFetch(ctx, "user-1", "dev-b")
	require.NoError(t, err)
	require.NoError(t, s.SyncService.CompleteFetch(ctx, "user-1", "dev-b", plan.Checkpoint))

	plan, err = s.SyncService.PlanFetch(ctx, "user-1", "dev-b")
	require.NoError(t, err)
	assert.Empty(t, plan.Batches)

	require.NoError(t, s.DeviceService.RegisterDevice(ctx, "user-1", models.DeviceIdentity{DeviceID: "dev-b"}))

	plan, err = s.SyncService.PlanFetch(ctx, "user-1", "dev-b")
	require.NoError(t, err)
	require.Len(t, plan.Batches, 1)
	assert.Equal(t, "n1", plan.Batches[0].Items[0].ID)
}
