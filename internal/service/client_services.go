package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/migration"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// ClientServices is the assembled sync engine of the client.
type ClientServices struct {
	Devices   DeviceRegistry
	Session   SyncRunner
	Scheduler AutoSyncScheduler
	Facade    *SyncFacade

	releasePush func()
}

// ClientOptions tune the assembled engine.
type ClientOptions struct {
	BatchSize    int
	SyncInterval time.Duration
	Policy       SyncPolicy
	Observer     SyncObserver
}

// NewClientServices wires the sync engine on top of the local storages, the
// REST adapter and the hub connection. Server push notifications are
// published as PushRequested until Close is called.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, conn Connection, keys *crypto.KeyStore, opts ClientOptions, logger *logger.Logger) *ClientServices {
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Policy == nil {
		opts.Policy = StaticPolicy{Sync: true}
	}

	cipher := crypto.NewItemCipher()
	devices := NewDeviceRegistry(serverAdapter, storages.KV, utils.NewUUIDGenerator(), logger)

	session := NewSyncSession(SyncSessionDeps{
		Conn:         conn,
		Tokens:       serverAdapter,
		Uploader:     serverAdapter,
		Devices:      devices,
		Collector:    NewCollector(storages.Items, cipher, keys, logger),
		Deserializer: NewItemDeserializer(migration.NewService()),
		Merger:       NewMerger(storages.Files, logger),
		Items:        storages.Items,
		KV:           storages.KV,
		Keys:         keys,
		Cipher:       cipher,
		Policy:       opts.Policy,
		Observer:     opts.Observer,
		BatchSize:    opts.BatchSize,
	}, logger)

	scheduler := NewAutoSyncScheduler(session, opts.SyncInterval, logger)

	observer := opts.Observer
	release := conn.On(connection.TargetPushCompleted, func(context.Context, []json.RawMessage) (any, error) {
		observer.PushRequested()
		return nil, nil
	})

	return &ClientServices{
		Devices:     devices,
		Session:     session,
		Scheduler:   scheduler,
		Facade:      NewSyncFacade(session, scheduler, serverAdapter, serverAdapter, logger),
		releasePush: release,
	}
}

// Close stops the scheduler and the connection.
func (s *ClientServices) Close() {
	if s.releasePush != nil {
		s.releasePush()
	}
	s.Scheduler.Stop()
	s.Session.Cancel()
}
