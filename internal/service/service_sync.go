package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// defaultFetchBatchSize is used when no batch size is configured.
const defaultFetchBatchSize = 100

// syncService is the concrete implementation of SyncService on top of a
// VaultRepository.
type syncService struct {
	vaults    store.VaultRepository
	batchSize int
	logger    *logger.Logger
}

// NewSyncService returns a SyncService streaming at most batchSize items
// per fetch batch.
func NewSyncService(vaults store.VaultRepository, batchSize int, logger *logger.Logger) SyncService {
	if batchSize <= 0 {
		batchSize = defaultFetchBatchSize
	}
	return &syncService{vaults: vaults, batchSize: batchSize, logger: logger}
}

// PlanFetch implements SyncService.
//
// Pending items arrive ordered by sequence number. A batch holds items of a
// single type, so a new batch starts whenever the type changes or the
// current batch is full. Sequence order is kept across batches: a later
// edit is never delivered before an earlier one.
func (s *syncService) PlanFetch(ctx context.Context, userID, deviceID string) (models.FetchPlan, error) {
	pending, checkpoint, err := s.vaults.PendingItems(ctx, userID, deviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return models.FetchPlan{}, ErrDeviceUnknown
	}
	if err != nil {
		return models.FetchPlan{}, fmt.Errorf("pending items: %w", err)
	}

	key, err := s.vaults.VaultKey(ctx, userID)
	if err != nil {
		return models.FetchPlan{}, fmt.Errorf("vault key: %w", err)
	}

	plan := models.FetchPlan{Checkpoint: checkpoint, VaultKey: key}
	var cur *models.SyncTransferItem
	for _, it := range pending {
		if err = ctx.Err(); err != nil {
			return models.FetchPlan{}, err
		}

		if cur == nil || cur.Type != it.Type || len(cur.Items) == s.batchSize {
			plan.Batches = append(plan.Batches, models.SyncTransferItem{Type: it.Type})
			cur = &plan.Batches[len(plan.Batches)-1]
		}
		cur.Items = append(cur.Items, it.Item)
		cur.Count++
	}

	logger.FromContext(ctx).Debug().
		Str("device_id", deviceID).
		Int("items", len(pending)).
		Int("batches", len(plan.Batches)).
		Msg("fetch planned")

	return plan, nil
}

func (s *syncService) CompleteFetch(ctx context.Context, userID, deviceID string, checkpoint uint64) error {
	err := s.vaults.Acknowledge(ctx, userID, deviceID, checkpoint)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return ErrDeviceUnknown
	}
	if err != nil {
		return fmt.Errorf("acknowledge fetch: %w", err)
	}
	return nil
}

func (s *syncService) InitializePush(ctx context.Context, userID string, req models.InitializePushRequest) error {
	if !req.VaultKey.Valid() {
		return nil
	}

	stored, err := s.vaults.SetVaultKey(ctx, userID, *req.VaultKey)
	if err != nil {
		return fmt.Errorf("store vault key: %w", err)
	}
	if stored {
		logger.FromContext(ctx).Info().Str("user_id", userID).Msg("vault key stored")
	}
	return nil
}

func (s *syncService) PushItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) (bool, error) {
	err := s.vaults.PutItems(ctx, userID, deviceID, batch)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return false, ErrDeviceUnknown
	}
	if err != nil {
		return false, fmt.Errorf("put items: %w", err)
	}
	return true, nil
}

func (s *syncService) QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error {
	if err := s.vaults.QueueUploads(ctx, userID, tag, uploads); err != nil {
		return fmt.Errorf("queue uploads: %w", err)
	}
	return nil
}
