package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

// SyncValidationService validates device payloads before they reach the
// wrapped SyncService.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
	logger    *logger.Logger
}

func NewSyncValidationService(logger *logger.Logger) SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

func (v *SyncValidationService) PlanFetch(ctx context.Context, userID, deviceID string) (models.FetchPlan, error) {
	if err := v.validateDevice(ctx, deviceID); err != nil {
		return models.FetchPlan{}, err
	}
	return v.inner.PlanFetch(ctx, userID, deviceID)
}

func (v *SyncValidationService) CompleteFetch(ctx context.Context, userID, deviceID string, checkpoint uint64) error {
	if err := v.validateDevice(ctx, deviceID); err != nil {
		return err
	}
	return v.inner.CompleteFetch(ctx, userID, deviceID, checkpoint)
}

func (v *SyncValidationService) InitializePush(ctx context.Context, userID string, req models.InitializePushRequest) error {
	return v.inner.InitializePush(ctx, userID, req)
}

// PushItems rejects an invalid batch with ErrValidation before storing
// anything.
func (v *SyncValidationService) PushItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) (bool, error) {
	if err := v.validateDevice(ctx, deviceID); err != nil {
		return false, err
	}

	if err := v.validator.Validate(ctx, batch); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("device_id", deviceID).
			Str("type", string(batch.Type)).
			Msg("pushed batch rejected")
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.PushItems(ctx, userID, deviceID, batch)
}

func (v *SyncValidationService) QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error {
	if tag == "" {
		return fmt.Errorf("%w: empty upload tag", ErrValidation)
	}
	if err := v.validator.Validate(ctx, uploads); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.QueueUploads(ctx, userID, tag, uploads)
}

func (v *SyncValidationService) Wrap(inner SyncService) SyncService {
	v.inner = inner
	return v
}

func (v *SyncValidationService) validateDevice(ctx context.Context, deviceID string) error {
	if err := v.validator.Validate(ctx, models.DeviceIdentity{DeviceID: deviceID}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
