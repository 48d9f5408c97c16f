package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// deviceIDKey is the kv key of the stored device id.
const deviceIDKey = "deviceId"

// IDGenerator produces new device ids.
type IDGenerator interface {
	Generate() string
}

type deviceRegistry struct {
	api    adapter.DeviceAPI
	kv     store.KVStore
	ids    IDGenerator
	logger *logger.Logger
}

// NewDeviceRegistry returns a DeviceRegistry persisting the device id in kv.
func NewDeviceRegistry(api adapter.DeviceAPI, kv store.KVStore, ids IDGenerator, logger *logger.Logger) DeviceRegistry {
	return &deviceRegistry{api: api, kv: kv, ids: ids, logger: logger}
}

func (d *deviceRegistry) Init(ctx context.Context, forceResync bool) (string, error) {
	if forceResync {
		if err := d.Unregister(ctx); err != nil {
			return "", err
		}
		if err := d.register(ctx); err != nil {
			return "", err
		}
		return d.storedID(ctx)
	}

	id, ok, err := d.kv.Get(ctx, deviceIDKey)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	if err = d.register(ctx); err != nil {
		return "", err
	}
	return d.storedID(ctx)
}

func (d *deviceRegistry) Unregister(ctx context.Context) error {
	id, ok, err := d.kv.Get(ctx, deviceIDKey)
	if err != nil {
		return fmt.Errorf("read device id: %w", err)
	}
	if !ok || id == "" {
		return nil
	}

	// the server may already have forgotten the device
	if err = d.api.UnregisterDevice(ctx, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		d.logger.Err(err).Str("func", "deviceRegistry.Unregister").Str("device_id", id).Msg("failed to unregister device")
		return fmt.Errorf("unregister device: %w", err)
	}

	if err = d.kv.Delete(ctx, deviceIDKey); err != nil {
		return fmt.Errorf("delete device id: %w", err)
	}

	d.logger.Info().Str("func", "deviceRegistry.Unregister").Str("device_id", id).Msg("device unregistered")
	return nil
}

func (d *deviceRegistry) register(ctx context.Context) error {
	id := d.ids.Generate()
	if err := d.api.RegisterDevice(ctx, id); err != nil {
		d.logger.Err(err).Str("func", "deviceRegistry.register").Msg("failed to register device")
		return fmt.Errorf("register device: %w", err)
	}
	if err := d.kv.Set(ctx, deviceIDKey, id); err != nil {
		return fmt.Errorf("store device id: %w", err)
	}

	d.logger.Info().Str("func", "deviceRegistry.register").Str("device_id", id).Msg("device registered")
	return nil
}

func (d *deviceRegistry) storedID(ctx context.Context) (string, error) {
	id, ok, err := d.kv.Get(ctx, deviceIDKey)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if !ok || id == "" {
		return "", ErrDeviceNotRegistered
	}
	return id, nil
}
