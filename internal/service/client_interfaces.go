package service

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Connection is the hub connection used by a sync session. It is
// implemented by [connection.Manager].
type Connection interface {
	// EnsureConnected connects unless already connected. Concurrent callers
	// share a single attempt.
	EnsureConnected(ctx context.Context) error

	// Connected reports whether the connection is established.
	Connected() bool

	// Invoke calls target on the server and decodes its result into result.
	Invoke(ctx context.Context, target string, result any, args ...any) error

	// On subscribes handler to server invocations of target until the
	// returned func is called.
	On(target string, handler connection.Handler) func()

	// Stop closes the connection.
	Stop()
}

// SyncObserver receives fire-and-forget notifications about sync runs.
// Implementations must not block.
type SyncObserver interface {
	// SyncAborted is published when the connection is lost or the server
	// reports an error.
	SyncAborted(err error)

	// SyncCompleted is published once per finished run.
	SyncCompleted()

	// SessionExpired is published when the data key is missing and the
	// user has to log in again.
	SessionExpired()

	// ItemMerged is published for every merged and persisted remote item.
	ItemMerged(item *models.Item)

	// PushRequested is published when another device pushed changes.
	PushRequested()

	// Progress reports the cumulative number of items transferred in the
	// current step.
	Progress(kind models.ProgressKind, done int)
}

// SyncPolicy is the external enablement check of sync runs.
type SyncPolicy interface {
	// SyncEnabled reports whether sync runs are allowed at all.
	SyncEnabled(ctx context.Context) bool

	// AutoSyncEnabled reports whether the connection stays open after a run
	// to receive push notifications.
	AutoSyncEnabled(ctx context.Context) bool

	// RefreshSharedArtifacts rebuilds data derived from synced items, such
	// as public sharing links, after a completed run.
	RefreshSharedArtifacts(ctx context.Context)
}

// Keys holds the data key and the vault key material. It is implemented
// by [crypto.KeyStore].
type Keys interface {
	EncryptionKey() ([]byte, bool)
	VaultKey() *models.VaultKey
	SetVaultKey(vaultKey models.VaultKey)
}

// DeviceRegistry manages the per-installation device id.
type DeviceRegistry interface {
	// Init returns the device id of this installation, registering a new
	// one when none is stored. With forceResync the stored id is
	// unregistered and replaced.
	Init(ctx context.Context, forceResync bool) (string, error)

	// Unregister drops the device id on the server and locally (logout).
	Unregister(ctx context.Context) error
}

// Collector selects outgoing changes.
type Collector interface {
	// Collect yields encrypted batches of changed (with force: all) local
	// items, at most batchSize items each. Every call re-reads the store.
	Collect(ctx context.Context, batchSize int, force bool) iter.Seq2[*models.SyncTransferItem, error]
}

// ItemDeserializer turns a decrypted payload into an item ready to merge.
type ItemDeserializer interface {
	// Deserialize parses payload written with schema version and migrates
	// it to the current version. It returns nil, nil for items that must be
	// dropped. declared is the type of the batch the payload arrived in.
	Deserialize(ctx context.Context, payload string, version float64, declared models.ItemType) (*models.Item, error)
}

// Merger reconciles remote items with their local counterparts.
type Merger interface {
	// MergeContent merges a content item, flagging concurrent edits as
	// conflicts.
	MergeContent(remote, local *models.Item) *models.Item

	// MergeItemAsync merges an item whose merge has a side effect.
	MergeItemAsync(ctx context.Context, remote, local *models.Item, itemType models.ItemType) (*models.Item, error)

	// MergeItemSync merges every other item field-wise, remote winning.
	MergeItemSync(remote, local *models.Item, itemType models.ItemType) *models.Item
}

// SyncRunner runs sync sessions.
type SyncRunner interface {
	// Start runs one sync. It reports whether the run completed.
	Start(ctx context.Context, opts models.SyncOptions) (bool, error)

	// Cancel stops the connection, failing an in-flight run.
	Cancel()

	// State returns the step the session is executing.
	State() models.SessionState
}

// AutoSyncScheduler runs full syncs in the background.
type AutoSyncScheduler interface {
	// Start launches the background loop. A running loop is restarted.
	Start(ctx context.Context)

	// Stop prevents further ticks and waits for an in-flight tick to
	// finish.
	Stop()

	// Pause stops the loop and returns a func restarting it when it was
	// running.
	Pause() (resume func())

	// Trigger requests a run as soon as possible.
	Trigger()

	// Running reports whether the loop is active.
	Running() bool
}
