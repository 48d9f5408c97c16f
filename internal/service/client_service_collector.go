package service

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/migration"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// KeyProvider hands out the data key.
type KeyProvider interface {
	EncryptionKey() ([]byte, bool)
}

type collector struct {
	items  store.ItemStore
	cipher crypto.ItemCipher
	keys   KeyProvider
	logger *logger.Logger
}

// NewCollector returns a Collector reading changes from items.
func NewCollector(items store.ItemStore, cipher crypto.ItemCipher, keys KeyProvider, logger *logger.Logger) Collector {
	return &collector{items: items, cipher: cipher, keys: keys, logger: logger}
}

// Collect implements [Collector]. Types are scanned in
// [models.SyncItemTypes] order; the store is queried for a type only when
// iteration reaches it.
func (c *collector) Collect(ctx context.Context, batchSize int, force bool) iter.Seq2[*models.SyncTransferItem, error] {
	if batchSize <= 0 {
		batchSize = 1
	}

	return func(yield func(*models.SyncTransferItem, error) bool) {
		key, ok := c.keys.EncryptionKey()
		if !ok {
			yield(nil, ErrEncryptionKeyMissing)
			return
		}

		for _, itemType := range models.SyncItemTypes {
			changed, err := c.items.Changed(ctx, itemType, force)
			if err != nil {
				yield(nil, fmt.Errorf("collect %s items: %w", itemType, err))
				return
			}

			for chunk := range slices.Chunk(changed, batchSize) {
				batch, err := c.encryptBatch(key, itemType, chunk)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(batch, nil) {
					return
				}
			}
		}
	}
}

func (c *collector) encryptBatch(key []byte, itemType models.ItemType, items []*models.Item) (*models.SyncTransferItem, error) {
	plaintexts := make([]string, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(outgoing(item))
		if err != nil {
			return nil, fmt.Errorf("encode item %s: %w", item.ID, err)
		}
		plaintexts = append(plaintexts, string(raw))
	}

	ciphertexts, err := c.cipher.EncryptMulti(key, plaintexts)
	if err != nil {
		c.logger.Err(err).Str("func", "collector.encryptBatch").Str("type", string(itemType)).Msg("failed to encrypt batch")
		return nil, fmt.Errorf("encrypt %s batch: %w", itemType, err)
	}

	batch := &models.SyncTransferItem{
		Type:  itemType,
		Items: make([]models.EncryptedItem, 0, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		v := item.Version
		if v == 0 {
			v = migration.CurrentVersion
		}
		batch.Items = append(batch.Items, models.EncryptedItem{
			ID:     item.ID,
			V:      v,
			Cipher: ciphertexts[i].Cipher,
			IV:     ciphertexts[i].IV,
			Alg:    ciphertexts[i].Alg,
			Length: ciphertexts[i].Length,

			DateModified: item.DateModified,
		})
	}

	return batch, nil
}

// outgoing strips the local-only state of an item before it is pushed.
func outgoing(item *models.Item) *models.Item {
	out := item.Clone()
	out.Remote = false
	out.Synced = true
	out.Conflicted = false
	out.Local = nil
	if out.IsTombstone() {
		return &models.Item{ID: out.ID, Type: out.Type, Deleted: true, Synced: true, DateModified: out.DateModified}
	}
	return out
}
