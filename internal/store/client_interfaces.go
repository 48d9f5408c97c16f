package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ItemStore is the local encrypted item store consumed by the sync core.
type ItemStore interface {
	// Records returns the stored items (live or tombstones) for ids. Unknown
	// ids are absent from the result.
	Records(ctx context.Context, ids []string) (map[string]models.MaybeDeletedItem, error)

	// Put upserts items in one transaction: either every item is written or
	// none is.
	Put(ctx context.Context, items []models.MaybeDeletedItem) error

	// Changed returns the items of one routing type that still have to be
	// pushed. With force every item of the type is returned.
	Changed(ctx context.Context, itemType models.ItemType, force bool) ([]*models.Item, error)

	// MarkSynced flags the given revisions as acknowledged by the server.
	// A row edited after its revision was collected stays unsynced.
	MarkSynced(ctx context.Context, revisions []models.ItemRevision) error

	// PendingUploads lists attachments whose files have not been uploaded.
	PendingUploads(ctx context.Context) ([]models.AttachmentUpload, error)
}

// KVStore is a small string key/value table next to the items.
type KVStore interface {
	// Get returns the value of key; ok is false when it is not set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FileStore holds downloaded attachment files, addressed by content hash.
type FileStore interface {
	Exists(ctx context.Context, hash string) (bool, error)
	Delete(ctx context.Context, hash string) error
}
