package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestDeviceRegistry(t *testing.T) (DeviceRegistry, *mock.MockDeviceAPI, *mock.MockKVStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockDeviceAPI(ctrl)
	kv := mock.NewMockKVStore(ctrl)
	return NewDeviceRegistry(api, kv, fixedIDs{id: "dev-new"}, logger.Nop()), api, kv
}

func TestDeviceRegistry_Init_StoredID(t *testing.T) {
	reg, _, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-1", true, nil)

	id, err := reg.Init(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", id)
}

func TestDeviceRegistry_Init_RegistersWhenMissing(t *testing.T) {
	reg, api, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil),
		api.EXPECT().RegisterDevice(ctx, "dev-new").Return(nil),
		kv.EXPECT().Set(ctx, deviceIDKey, "dev-new").Return(nil),
		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-new", true, nil),
	)

	id, err := reg.Init(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "dev-new", id)
}

func TestDeviceRegistry_Init_NotRegisteredAfterRegistration(t *testing.T) {
	reg, api, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil),
		api.EXPECT().RegisterDevice(ctx, "dev-new").Return(nil),
		kv.EXPECT().Set(ctx, deviceIDKey, "dev-new").Return(nil),
		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil),
	)

	_, err := reg.Init(ctx, false)
	assert.ErrorIs(t, err, ErrDeviceNotRegistered)
}

func TestDeviceRegistry_Init_RegisterFails(t *testing.T) {
	reg, api, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil)
	api.EXPECT().RegisterDevice(ctx, "dev-new").Return(adapter.ErrBadGateway)

	_, err := reg.Init(ctx, false)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestDeviceRegistry_Init_ForceResync(t *testing.T) {
	reg, api, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-old", true, nil),
		api.EXPECT().UnregisterDevice(ctx, "dev-old").Return(nil),
		kv.EXPECT().Delete(ctx, deviceIDKey).Return(nil),
		api.EXPECT().RegisterDevice(ctx, "dev-new").Return(nil),
		kv.EXPECT().Set(ctx, deviceIDKey, "dev-new").Return(nil),
		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-new", true, nil),
	)

	id, err := reg.Init(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "dev-new", id)
}

func TestDeviceRegistry_Init_ForceResyncWithoutStoredID(t *testing.T) {
	reg, api, kv := newTestDeviceRegistry(t)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil),
		api.EXPECT().RegisterDevice(ctx, "dev-new").Return(nil),
		kv.EXPECT().Set(ctx, deviceIDKey, "dev-new").Return(nil),
		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-new", true, nil),
	)

	id, err := reg.Init(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "dev-new", id)
}

func TestDeviceRegistry_Unregister(t *testing.T) {
	t.Run("unknown on server", func(t *testing.T) {
		reg, api, kv := newTestDeviceRegistry(t)
		ctx := context.Background()

		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-1", true, nil)
		api.EXPECT().UnregisterDevice(ctx, "dev-1").Return(adapter.ErrNotFound)
		kv.EXPECT().Delete(ctx, deviceIDKey).Return(nil)

		assert.NoError(t, reg.Unregister(ctx))
	})

	t.Run("server failure keeps the id", func(t *testing.T) {
		reg, api, kv := newTestDeviceRegistry(t)
		ctx := context.Background()

		kv.EXPECT().Get(ctx, deviceIDKey).Return("dev-1", true, nil)
		api.EXPECT().UnregisterDevice(ctx, "dev-1").Return(adapter.ErrInternalServerError)

		assert.ErrorIs(t, reg.Unregister(ctx), adapter.ErrInternalServerError)
	})

	t.Run("nothing stored", func(t *testing.T) {
		reg, _, kv := newTestDeviceRegistry(t)
		ctx := context.Background()

		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, nil)

		assert.NoError(t, reg.Unregister(ctx))
	})

	t.Run("kv failure", func(t *testing.T) {
		reg, _, kv := newTestDeviceRegistry(t)
		ctx := context.Background()
		boom := errors.New("boom")

		kv.EXPECT().Get(ctx, deviceIDKey).Return("", false, boom)

		assert.ErrorIs(t, reg.Unregister(ctx), boom)
	})
}
