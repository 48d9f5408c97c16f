// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/migration"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// fakeHub is an in-process Connection that plays the server side of the
// hub protocol.
type fakeHub struct {
	mu         sync.Mutex
	connected  bool
	connectErr error
	handlers   map[string]map[int]connection.Handler
	nextID     int

	// remote is delivered through SendItems on RequestFetch.
	remote   []*models.SyncTransferItem
	vaultKey *models.VaultKey
	// beforeBatch runs before batch i is delivered.
	beforeBatch func(i int)
	// pushResult decides the outcome of PushItems.
	pushResult func(batch *models.SyncTransferItem) (bool, error)

	calls   []string
	pushed  []*models.SyncTransferItem
	acks    []bool
	stopped int
}

func newFakeHub() *fakeHub {
	return &fakeHub{handlers: make(map[string]map[int]connection.Handler)}
}

func (h *fakeHub) EnsureConnected(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connectErr != nil {
		return h.connectErr
	}
	h.connected = true
	return nil
}

func (h *fakeHub) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connected
}

func (h *fakeHub) setConnected(v bool) {
	h.mu.Lock()
	h.connected = v
	h.mu.Unlock()
}

func (h *fakeHub) On(target string, handler connection.Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	if h.handlers[target] == nil {
		h.handlers[target] = make(map[int]connection.Handler)
	}
	h.handlers[target][id] = handler
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers[target], id)
	}
}

func (h *fakeHub) handlerCount(target string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers[target])
}

func (h *fakeHub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = false
	h.stopped++
}

func (h *fakeHub) Invoke(ctx context.Context, target string, result any, args ...any) error {
	h.mu.Lock()
	h.calls = append(h.calls, target)
	h.mu.Unlock()

	switch target {
	case connection.TargetRequestFetch:
		for i, batch := range h.remote {
			if h.beforeBatch != nil {
				h.beforeBatch(i)
			}
			raw, err := json.Marshal(batch)
			if err != nil {
				return err
			}

			h.mu.Lock()
			var hs []connection.Handler
			for _, fn := range h.handlers[connection.TargetSendItems] {
				hs = append(hs, fn)
			}
			h.mu.Unlock()

			for _, fn := range hs {
				res, err := fn(ctx, []json.RawMessage{raw})
				if err != nil {
					return &connection.RemoteError{Message: "client failed: " + err.Error()}
				}
				ack, _ := res.(bool)
				h.mu.Lock()
				h.acks = append(h.acks, ack)
				h.mu.Unlock()
			}
		}
		if resp, ok := result.(*models.FetchResponse); ok {
			resp.VaultKey = h.vaultKey
		}

	case connection.TargetPushItems:
		batch := args[1].(*models.SyncTransferItem)
		ack, err := true, error(nil)
		if h.pushResult != nil {
			ack, err = h.pushResult(batch)
		}
		if err != nil {
			return err
		}
		h.mu.Lock()
		h.pushed = append(h.pushed, batch)
		h.mu.Unlock()
		*result.(*bool) = ack
	}

	return nil
}

func (h *fakeHub) called(target string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.calls {
		if c == target {
			n++
		}
	}
	return n
}

// recordingObserver counts notifications.
type recordingObserver struct {
	mu        sync.Mutex
	completed int
	expired   int
	aborted   []error
	merged    []*models.Item
	pushes    int
	progress  map[models.ProgressKind]int
}

func (o *recordingObserver) SyncAborted(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.aborted = append(o.aborted, err)
}

func (o *recordingObserver) SyncCompleted() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed++
}

func (o *recordingObserver) SessionExpired() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.expired++
}

func (o *recordingObserver) ItemMerged(item *models.Item) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.merged = append(o.merged, item)
}

func (o *recordingObserver) PushRequested() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pushes++
}

func (o *recordingObserver) Progress(kind models.ProgressKind, done int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.progress == nil {
		o.progress = make(map[models.ProgressKind]int)
	}
	o.progress[kind] = done
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) GetAccessToken(context.Context) (string, error) { return s.token, s.err }
func (s staticTokens) RefreshToken(context.Context, bool) error       { return s.err }

type sessionFixture struct {
	session  *syncSession
	hub      *fakeHub
	storages *store.ClientStorages
	keys     *crypto.KeyStore
	observer *recordingObserver
	uploader *mock.MockAttachmentUploader
	policy   *StaticPolicy
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	require.NoError(t, storages.KV.Set(ctx, deviceIDKey, "dev-1"))

	keys := newTestKeys(t)
	cipher := crypto.NewItemCipher()
	hub := newFakeHub()
	observer := &recordingObserver{}
	uploader := mock.NewMockAttachmentUploader(gomock.NewController(t))
	policy := &StaticPolicy{Sync: true}

	s := NewSyncSession(SyncSessionDeps{
		Conn:         hub,
		Tokens:       staticTokens{token: "token"},
		Uploader:     uploader,
		Devices:      NewDeviceRegistry(nil, storages.KV, fixedIDs{id: "dev-x"}, log),
		Collector:    NewCollector(storages.Items, cipher, keys, log),
		Deserializer: NewItemDeserializer(migration.NewService()),
		Merger:       NewMerger(storages.Files, log),
		Items:        storages.Items,
		KV:           storages.KV,
		Keys:         keys,
		Cipher:       cipher,
		Policy:       policy,
		Observer:     observer,
		BatchSize:    10,
	}, log).(*syncSession)
	s.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	return &sessionFixture{session: s, hub: hub, storages: storages, keys: keys, observer: observer, uploader: uploader, policy: policy}
}

// remoteBatch encrypts items the way another device would push them.
func (f *sessionFixture) remoteBatch(t *testing.T, itemType models.ItemType, version float64, payloads ...string) *models.SyncTransferItem {
	t.Helper()
	key, _ := f.keys.EncryptionKey()
	cts, err := crypto.NewItemCipher().EncryptMulti(key, payloads)
	require.NoError(t, err)

	batch := &models.SyncTransferItem{Type: itemType, Count: len(payloads)}
	for i, p := range payloads {
		var head struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(p), &head))
		batch.Items = append(batch.Items, models.EncryptedItem{
			ID: head.ID, V: version, Cipher: cts[i].Cipher, IV: cts[i].IV, Alg: cts[i].Alg, Length: cts[i].Length,
		})
	}
	return batch
}

func (f *sessionFixture) put(t *testing.T, items ...*models.Item) {
	t.Helper()
	require.NoError(t, f.storages.Items.Put(context.Background(), items))
}

func (f *sessionFixture) records(t *testing.T, ids ...string) map[string]*models.Item {
	t.Helper()
	got, err := f.storages.Items.Records(context.Background(), ids)
	require.NoError(t, err)
	return got
}

func (f *sessionFixture) noUploads() {
	f.uploader.EXPECT().QueueUploads(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
}

// ── scenarios ────────────────────────────────────────────────────────────────

func TestSyncSession_FullSyncFetchesRemoteNotes(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctx := context.Background()

	f.hub.remote = []*models.SyncTransferItem{f.remoteBatch(t, models.ItemTypeNote, 5.9,
		`{"id":"n1","type":"note","title":"one","v":5.9}`,
		`{"id":"n2","type":"note","title":"two","v":5.9}`,
		`{"id":"n3","type":"note","title":"three","v":5.9}`,
	)}

	ok, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.records(t, "n1", "n2", "n3")
	require.Len(t, got, 3)
	for _, item := range got {
		assert.True(t, item.Remote)
		assert.True(t, item.Synced)
	}

	assert.Equal(t, 3, f.observer.progress[models.ProgressDownload])
	assert.Len(t, f.observer.merged, 3)
	assert.Zero(t, f.hub.called(connection.TargetInitializePush), "nothing to push")
	assert.Zero(t, f.hub.called(connection.TargetPushItems))
	assert.Equal(t, 1, f.observer.completed)
	assert.Equal(t, models.SessionIdle, f.session.State())

	sent, err := f.session.send(ctx, "dev-1", false)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSyncSession_SendPushesPendingNote(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctx := context.Background()

	f.put(t, &models.Item{ID: "n1", Type: models.ItemTypeNote, Title: "draft", Synced: false, DateModified: 5})

	ok, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeSend})
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, f.hub.pushed, 1)
	assert.Equal(t, []string{"n1"}, f.hub.pushed[0].IDs())
	assert.Equal(t, models.ItemTypeNote, f.hub.pushed[0].Type)
	assert.Zero(t, f.hub.called(connection.TargetRequestFetch))
	assert.Equal(t, []string{
		connection.TargetInitializePush,
		connection.TargetPushItems,
		connection.TargetPushCompleted,
	}, f.hub.calls)

	assert.True(t, f.records(t, "n1")["n1"].Synced)
	assert.Equal(t, 1, f.observer.progress[models.ProgressUpload])
}

func TestSyncSession_SendIsIdempotent(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctx := context.Background()

	f.put(t, &models.Item{ID: "n1", Type: models.ItemTypeNote, Synced: false})

	first, err := f.session.send(ctx, "dev-1", false)
	require.NoError(t, err)
	second, err := f.session.send(ctx, "dev-1", false)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, f.hub.called(connection.TargetPushCompleted))
}

func TestSyncSession_ConnectTimeout(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	f.hub.connectErr = errors.Join(connection.ErrSyncUnavailable, &connection.TimeoutError{Timeout: 30 * time.Second})
	f.hub.remote = []*models.SyncTransferItem{f.remoteBatch(t, models.ItemTypeNote, 5.9, `{"id":"n1","type":"note"}`)}

	ok, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	assert.False(t, ok)
	assert.ErrorIs(t, err, connection.ErrConnectionTimeout)
	assert.Equal(t, "Sync timed out in 30000ms.", mapSyncError(err).Message)

	assert.Empty(t, f.records(t, "n1"), "nothing committed")
	assert.Empty(t, f.hub.calls)
	assert.Zero(t, f.observer.completed)
	assert.Equal(t, models.SessionAborted, f.session.State())
}

// ── fetch ────────────────────────────────────────────────────────────────────

func TestSyncSession_FetchDropsUnresolvedTypes(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.hub.remote = []*models.SyncTransferItem{
		f.remoteBatch(t, models.ItemTypeNote, 5.9,
			`{"id":"n1","type":"note","v":5.9}`,
			`{"id":"s1","type":"settings","v":5.9}`,
			`{"id":"e1","v":5.9}`,
		),
		f.remoteBatch(t, models.ItemTypeNotebook, 5.5,
			`{"id":"t1","type":"topic","title":"retired"}`,
			`{"id":"b1","type":"notebook","title":"kept","topics":[]}`,
		),
	}

	ok, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.records(t, "n1", "s1", "e1", "t1", "b1")
	assert.Len(t, got, 2)
	assert.Contains(t, got, "n1")
	assert.Contains(t, got, "b1")
	assert.False(t, got["b1"].Synced, "migrated notebook is pushed again")
	assert.Equal(t, 5, f.observer.progress[models.ProgressDownload])
	assert.Zero(t, f.hub.handlerCount(connection.TargetSendItems), "handler released")
}

func TestSyncSession_FetchConflictKeepsBothVersions(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.put(t, &models.Item{ID: "c1", Type: models.ItemTypeContent, NoteID: "n1", Data: "local edit", Synced: false})
	f.hub.remote = []*models.SyncTransferItem{f.remoteBatch(t, models.ItemTypeContent, 5.9,
		`{"id":"c1","type":"content","noteId":"n1","data":"remote edit","v":5.9}`,
	)}

	_, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	got := f.records(t, "c1")["c1"]
	require.NotNil(t, got)
	assert.True(t, got.Conflicted)
	assert.Equal(t, "remote edit", got.Data)
	require.NotNil(t, got.Local)
	assert.Equal(t, "local edit", got.Local.Data)
}

func TestSyncSession_FetchTombstoneWins(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.put(t, &models.Item{ID: "n1", Type: models.ItemTypeNote, Title: "local", Synced: false})
	f.hub.remote = []*models.SyncTransferItem{f.remoteBatch(t, models.ItemTypeNote, 5.9, `{"id":"n1","deleted":true}`)}

	_, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	got := f.records(t, "n1")["n1"]
	require.NotNil(t, got)
	assert.True(t, got.IsTombstone())
}

func TestSyncSession_FetchTrashedNoteBothMigrations(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.hub.remote = []*models.SyncTransferItem{f.remoteBatch(t, models.ItemTypeNote, 5.6,
		`{"id":"n1","type":"trash","itemType":"note","title":"old","notebooks":["x"],"readonly":true,"dateModified":9}`,
	)}

	_, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	got := f.records(t, "n1")["n1"]
	require.NotNil(t, got)
	_, hasReadonly := got.Field("readonly")
	assert.False(t, hasReadonly, "inner note migration ran in backup context")
	_, hasDeleted := got.Field("dateDeleted")
	assert.False(t, hasDeleted, "wrapper migration ran in sync context")
	assert.False(t, got.Synced)
}

func TestSyncSession_FetchInstallsVaultKey(t *testing.T) {
	f := newSessionFixture(t)
	f.hub.vaultKey = &models.VaultKey{Cipher: "c", IV: "i", Salt: "s", Length: 32}

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	assert.Equal(t, f.hub.vaultKey, f.keys.VaultKey())
}

func TestSyncSession_FetchIgnoresIncompleteVaultKey(t *testing.T) {
	f := newSessionFixture(t)
	f.hub.vaultKey = &models.VaultKey{Cipher: "c", IV: "i", Salt: "s", Length: 0}

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	assert.Nil(t, f.keys.VaultKey())
}

func TestSyncSession_FetchDiscardsBatchAfterDisconnect(t *testing.T) {
	f := newSessionFixture(t)

	f.hub.remote = []*models.SyncTransferItem{
		f.remoteBatch(t, models.ItemTypeNote, 5.9, `{"id":"n1","type":"note"}`),
		f.remoteBatch(t, models.ItemTypeNote, 5.9, `{"id":"n2","type":"note"}`),
	}
	f.hub.beforeBatch = func(i int) {
		if i == 1 {
			f.hub.setConnected(false)
		}
	}

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)

	got := f.records(t, "n1", "n2")
	assert.Contains(t, got, "n1")
	assert.NotContains(t, got, "n2")
	assert.Equal(t, []bool{true, false}, f.hub.acks)
}

func TestSyncSession_FetchProcessingErrorAbortsRun(t *testing.T) {
	f := newSessionFixture(t)

	bad := f.remoteBatch(t, models.ItemTypeNote, 5.9, `{"id":"n1","type":"note"}`)
	bad.Items[0].Cipher = "AAAA"
	f.hub.remote = []*models.SyncTransferItem{bad}

	ok, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Zero(t, f.hub.handlerCount(connection.TargetSendItems), "handler released on failure")
	assert.Zero(t, f.observer.completed)
	assert.Equal(t, models.SessionAborted, f.session.State())
}

func TestSyncSession_FetchWithoutKeyExpiresSession(t *testing.T) {
	f := newSessionFixture(t)
	f.keys.Clear()
	f.hub.remote = []*models.SyncTransferItem{}

	ok, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFetch})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.observer.expired)
	assert.Zero(t, f.hub.called(connection.TargetRequestFetch))
	assert.Equal(t, 1, f.observer.completed)
}

// ── send ─────────────────────────────────────────────────────────────────────

func TestSyncSession_SendSkipsRejectedBatch(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	f.session.BatchSize = 1
	ctx := context.Background()

	f.put(t,
		&models.Item{ID: "n1", Type: models.ItemTypeNote, Synced: false, DateModified: 1},
		&models.Item{ID: "n2", Type: models.ItemTypeNote, Synced: false, DateModified: 2},
		&models.Item{ID: "n3", Type: models.ItemTypeNote, Synced: false, DateModified: 3},
	)
	f.hub.pushResult = func(batch *models.SyncTransferItem) (bool, error) {
		switch batch.Items[0].ID {
		case "n1":
			return false, &connection.RemoteError{Message: "HubException: quota exceeded"}
		case "n2":
			return false, nil
		}
		return true, nil
	}

	sent, err := f.session.send(ctx, "dev-1", false)
	require.NoError(t, err)
	assert.True(t, sent)

	got := f.records(t, "n1", "n2", "n3")
	assert.False(t, got["n1"].Synced, "failed batch is collected again next run")
	assert.False(t, got["n2"].Synced)
	assert.True(t, got["n3"].Synced)
	assert.Equal(t, 1, f.hub.called(connection.TargetPushCompleted))
}

func TestSyncSession_SendStopsOnConnectionLoss(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()

	f.put(t, &models.Item{ID: "n1", Type: models.ItemTypeNote, Synced: false})
	f.hub.pushResult = func(*models.SyncTransferItem) (bool, error) {
		return false, connection.ErrSyncUnavailable
	}

	_, err := f.session.send(context.Background(), "dev-1", false)
	assert.ErrorIs(t, err, connection.ErrSyncUnavailable)
	assert.Zero(t, f.hub.called(connection.TargetPushCompleted))
}

func TestSyncSession_SendQueuesPendingUploads(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.put(t, &models.Item{ID: "a1", Type: models.ItemTypeAttachment, Hash: "h1", Synced: true})
	f.uploader.EXPECT().
		QueueUploads(gomock.Any(), []models.AttachmentUpload{{Hash: "h1", ChunkSize: store.DefaultChunkSize}}, uploadTag).
		Return(nil)

	sent, err := f.session.send(ctx, "dev-1", false)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSyncSession_SendForcePushesEverything(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()

	f.put(t, &models.Item{ID: "n1", Type: models.ItemTypeNote, Synced: true})

	sent, err := f.session.send(context.Background(), "dev-1", true)
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, f.hub.pushed, 1)
}

// ── gates & finalize ─────────────────────────────────────────────────────────

func TestSyncSession_DisabledStopsConnection(t *testing.T) {
	f := newSessionFixture(t)
	f.policy.Sync = false

	ok, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, f.hub.stopped)
	assert.Empty(t, f.hub.calls)
}

func TestSyncSession_NotLoggedIn(t *testing.T) {
	f := newSessionFixture(t)
	f.session.Tokens = staticTokens{err: adapter.ErrNoToken}

	ok, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.hub.Connected())
}

func TestSyncSession_TokenFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.session.Tokens = staticTokens{err: adapter.ErrUnauthorized}

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	assert.ErrorIs(t, err, connection.ErrAuthRequired)
	assert.Equal(t, MsgAccessTokenMissing, mapSyncError(err).Message)
}

func TestSyncSession_FinalizeStoresLastSynced(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctx := context.Background()

	_, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)

	last, err := LastSynced(ctx, f.storages.KV)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), last.UnixMilli())
	assert.Equal(t, 1, f.hub.stopped, "connection closed without auto-sync")
}

func TestSyncSession_FinalizeKeepsConnectionForAutoSync(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	f.policy.AutoSync = true

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)
	assert.Zero(t, f.hub.stopped)
	assert.True(t, f.hub.Connected())
}

func TestSyncSession_FinalizeRefreshesSharedArtifacts(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctx := context.Background()

	policy := mock.NewMockSyncPolicy(gomock.NewController(t))
	gomock.InOrder(
		policy.EXPECT().SyncEnabled(gomock.Any()).Return(true),
		policy.EXPECT().RefreshSharedArtifacts(gomock.Any()).Times(1),
		policy.EXPECT().AutoSyncEnabled(gomock.Any()).Return(false),
	)
	f.session.Policy = policy

	ok, err := f.session.Start(ctx, models.SyncOptions{Type: models.SyncTypeFull})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.observer.completed)
}

func TestSyncSession_ForceReregistersDevice(t *testing.T) {
	f := newSessionFixture(t)
	f.noUploads()
	ctrl := gomock.NewController(t)
	api := mock.NewMockDeviceAPI(ctrl)
	f.session.Devices = NewDeviceRegistry(api, f.storages.KV, fixedIDs{id: "dev-2"}, logger.Nop())

	api.EXPECT().UnregisterDevice(gomock.Any(), "dev-1").Return(nil)
	api.EXPECT().RegisterDevice(gomock.Any(), "dev-2").Return(nil)

	_, err := f.session.Start(context.Background(), models.SyncOptions{Type: models.SyncTypeFull, Force: true})
	require.NoError(t, err)

	id, ok, err := f.storages.KV.Get(context.Background(), deviceIDKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dev-2", id)
}

func TestSyncSession_Cancel(t *testing.T) {
	f := newSessionFixture(t)
	f.hub.setConnected(true)

	f.session.Cancel()

	assert.False(t, f.hub.Connected())
	assert.Equal(t, 1, f.hub.stopped)
}

func TestLastSynced_NeverSynced(t *testing.T) {
	f := newSessionFixture(t)
	last, err := LastSynced(context.Background(), f.storages.KV)
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}
