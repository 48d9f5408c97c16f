package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository holds the accounts known to the reference server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUser(ctx context.Context, userID string) (models.User, error)
}

// VaultRepository holds the per-user sync state of the reference server:
// registered devices with their fetch cursors, the encrypted items, the
// vault key and the attachment upload queue.
type VaultRepository interface {
	// AddDevice registers deviceID for userID with an empty fetch cursor.
	// Registering a known device resets its cursor.
	AddDevice(ctx context.Context, userID, deviceID string) error

	// RemoveDevice forgets deviceID. Returns [ErrDeviceNotFound] for an
	// unknown device.
	RemoveDevice(ctx context.Context, userID, deviceID string) error

	// HasDevice reports whether deviceID is registered for userID.
	HasDevice(ctx context.Context, userID, deviceID string) (bool, error)

	// PutItems stores a pushed batch on behalf of deviceID.
	PutItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) error

	// PendingItems returns the items deviceID has not fetched yet, ordered
	// by sequence number, and the sequence number to acknowledge once they
	// are delivered.
	PendingItems(ctx context.Context, userID, deviceID string) ([]VaultItem, uint64, error)

	// Acknowledge advances the fetch cursor of deviceID to seq.
	Acknowledge(ctx context.Context, userID, deviceID string, seq uint64) error

	// VaultKey returns the stored vault key or nil.
	VaultKey(ctx context.Context, userID string) (*models.VaultKey, error)

	// SetVaultKey stores key unless a vault key is already present. It
	// reports whether key was stored.
	SetVaultKey(ctx context.Context, userID string, key models.VaultKey) (bool, error)

	// QueueUploads appends uploads to the queue named tag.
	QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error

	// Uploads returns the queue named tag.
	Uploads(ctx context.Context, userID, tag string) ([]models.AttachmentUpload, error)
}

// VaultItem is one encrypted item as the server stores it.
type VaultItem struct {
	Type models.ItemType
	Item models.EncryptedItem
	// Seq orders every write of a vault.
	Seq uint64
	// Origin is the device that pushed the current version.
	Origin string
}
