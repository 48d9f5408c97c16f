package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type deviceService struct {
	vaults    store.VaultRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewDeviceService returns a DeviceService storing devices in vaults.
func NewDeviceService(vaults store.VaultRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		vaults:    vaults,
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

// RegisterDevice registers device for userID. A device that registers
// again starts fetching from scratch.
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, device models.DeviceIdentity) error {
	if err := s.validator.Validate(ctx, device); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.vaults.AddDevice(ctx, userID, device.DeviceID); err != nil {
		return fmt.Errorf("register device: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("device_id", device.DeviceID).Msg("device registered")
	return nil
}

// UnregisterDevice returns ErrDeviceUnknown for an unknown device.
func (s *deviceService) UnregisterDevice(ctx context.Context, userID, deviceID string) error {
	err := s.vaults.RemoveDevice(ctx, userID, deviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return ErrDeviceUnknown
	}
	if err != nil {
		return fmt.Errorf("unregister device: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("device_id", deviceID).Msg("device unregistered")
	return nil
}
