// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// lastSyncedKey is the kv key of the last-synced timestamp (unix ms).
	lastSyncedKey = "lastSynced"

	// uploadTag groups the attachment uploads queued by a sync run.
	uploadTag = "sync-uploads"
)

// SyncSessionDeps are the collaborators of a sync session.
type SyncSessionDeps struct {
	Conn         Connection
	Tokens       adapter.TokenSupplier
	Uploader     adapter.AttachmentUploader
	Devices      DeviceRegistry
	Collector    Collector
	Deserializer ItemDeserializer
	Merger       Merger
	Items        store.ItemStore
	KV           store.KVStore
	Keys         Keys
	Cipher       crypto.ItemCipher
	Policy       SyncPolicy
	Observer     SyncObserver
	BatchSize    int
}

type syncSession struct {
	SyncSessionDeps

	now    func() time.Time
	logger *logger.Logger

	// runMu keeps a single run at a time.
	runMu sync.Mutex

	mu    sync.Mutex
	state models.SessionState
}

// NewSyncSession returns an idle SyncRunner.
func NewSyncSession(deps SyncSessionDeps, logger *logger.Logger) SyncRunner {
	if deps.BatchSize <= 0 {
		deps.BatchSize = 100
	}
	if deps.Observer == nil {
		deps.Observer = NopObserver{}
	}

	return &syncSession{
		SyncSessionDeps: deps,
		now:             time.Now,
		logger:          logger,
		state:           models.SessionIdle,
	}
}

func (s *syncSession) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *syncSession) setState(state models.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Cancel implements [SyncRunner].
func (s *syncSession) Cancel() {
	s.Conn.Stop()
	s.logger.Info().Str("func", "syncSession.Cancel").Msg("sync cancelled")
}

// Start implements [SyncRunner]. It runs init, fetch, send and finalize as
// selected by opts. A disabled sync or a missing login is not an error.
func (s *syncSession) Start(ctx context.Context, opts models.SyncOptions) (bool, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if !s.Policy.SyncEnabled(ctx) {
		s.Conn.Stop()
		return false, nil
	}

	if _, err := s.Tokens.GetAccessToken(ctx); err != nil {
		if errors.Is(err, adapter.ErrNoToken) {
			s.logger.Debug().Str("func", "syncSession.Start").Msg("not logged in, skipping sync")
			return false, nil
		}
		return false, s.abort(fmt.Errorf("%w: %w", connection.ErrAuthRequired, err))
	}

	s.logger.Info().Str("func", "syncSession.Start").
		Str("type", string(opts.Type)).
		Bool("force", opts.Force).
		Msg("sync started")

	deviceID, err := s.init(ctx, opts.Force)
	if err != nil {
		return false, s.abort(err)
	}

	if opts.Fetches() {
		s.setState(models.SessionFetching)
		if err = s.fetch(ctx, deviceID); err != nil {
			if !errors.Is(err, ErrEncryptionKeyMissing) {
				return false, s.abort(err)
			}
			s.logger.Warn().Str("func", "syncSession.Start").Msg("no encryption key, fetch skipped")
			s.Observer.SessionExpired()
		}
	}

	if opts.Sends() {
		s.setState(models.SessionSending)
		if _, err = s.send(ctx, deviceID, opts.Force); err != nil {
			return false, s.abort(err)
		}
	}

	if err = s.finalize(ctx); err != nil {
		return false, s.abort(err)
	}

	return true, nil
}

func (s *syncSession) abort(err error) error {
	s.setState(models.SessionAborted)
	s.logger.Err(err).Str("func", "syncSession.Start").Msg("sync aborted")
	return err
}

// init connects and resolves the device id of the run.
func (s *syncSession) init(ctx context.Context, forceResync bool) (string, error) {
	s.setState(models.SessionConnecting)

	if err := s.Conn.EnsureConnected(ctx); err != nil {
		return "", err
	}

	deviceID, err := s.Devices.Init(ctx, forceResync)
	if err != nil {
		return "", fmt.Errorf("init device: %w", err)
	}

	return deviceID, nil
}

// fetch requests the pending remote items of deviceID. The server delivers
// them as SendItems invocations before it completes the request.
func (s *syncSession) fetch(ctx context.Context, deviceID string) error {
	key, ok := s.Keys.EncryptionKey()
	if !ok {
		return ErrEncryptionKeyMissing
	}

	var (
		mu         sync.Mutex
		count      int
		handlerErr error
	)

	release := s.Conn.On(connection.TargetSendItems, func(hctx context.Context, args []json.RawMessage) (any, error) {
		mu.Lock()
		defer mu.Unlock()

		if handlerErr != nil {
			return false, nil
		}
		if !s.Conn.Connected() {
			s.logger.Warn().Str("func", "syncSession.fetch").Msg("connection lost, batch discarded")
			return false, nil
		}

		batch, err := decodeBatch(args)
		if err == nil {
			err = s.processBatch(ctx, key, batch)
		}
		if err != nil {
			handlerErr = err
			return nil, err
		}

		count += len(batch.Items)
		s.Observer.Progress(models.ProgressDownload, count)
		return true, nil
	})
	defer release()

	var resp models.FetchResponse
	err := s.Conn.Invoke(ctx, connection.TargetRequestFetch, &resp, deviceID)

	mu.Lock()
	defer mu.Unlock()
	if handlerErr != nil {
		return fmt.Errorf("process fetched batch: %w", handlerErr)
	}
	if err != nil {
		return fmt.Errorf("request fetch: %w", err)
	}

	if resp.VaultKey.Valid() {
		s.Keys.SetVaultKey(*resp.VaultKey)
	}

	s.logger.Info().Str("func", "syncSession.fetch").Int("items", count).Msg("fetch completed")
	return nil
}

// processBatch decrypts, deserializes and merges one fetched batch and
// persists the result with a single put.
func (s *syncSession) processBatch(ctx context.Context, key []byte, batch *models.SyncTransferItem) error {
	if batch.Count != len(batch.Items) {
		s.logger.Warn().Str("func", "syncSession.processBatch").
			Int("count", batch.Count).
			Int("items", len(batch.Items)).
			Msg("batch count mismatch")
	}
	if len(batch.Items) == 0 {
		return nil
	}

	ciphertexts := make([]crypto.Ciphertext, 0, len(batch.Items))
	for _, it := range batch.Items {
		ciphertexts = append(ciphertexts, crypto.Ciphertext{Cipher: it.Cipher, IV: it.IV, Alg: it.Alg, Length: it.Length})
	}
	plaintexts, err := s.Cipher.DecryptMulti(key, ciphertexts)
	if err != nil {
		return fmt.Errorf("decrypt %s batch: %w", batch.Type, err)
	}

	remote := make([]*models.Item, 0, len(plaintexts))
	ids := make([]string, 0, len(plaintexts))
	for i, p := range plaintexts {
		item, err := s.Deserializer.Deserialize(ctx, p, batch.Items[i].V, batch.Type)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		remote = append(remote, item)
		ids = append(ids, item.ID)
	}
	if len(remote) == 0 {
		return nil
	}

	local, err := s.Items.Records(ctx, ids)
	if err != nil {
		return fmt.Errorf("load local records: %w", err)
	}

	merged := make([]models.MaybeDeletedItem, 0, len(remote))
	for _, item := range remote {
		out, err := s.merge(ctx, item, local[item.ID])
		if err != nil {
			return err
		}
		merged = append(merged, out)
	}

	if err = s.Items.Put(ctx, merged); err != nil {
		return fmt.Errorf("persist merged items: %w", err)
	}

	for _, item := range merged {
		s.Observer.ItemMerged(item)
	}
	return nil
}

func (s *syncSession) merge(ctx context.Context, remote, local *models.Item) (*models.Item, error) {
	switch itemType := remote.RoutingType(); itemType {
	case models.ItemTypeContent:
		return s.Merger.MergeContent(remote, local), nil
	case models.ItemTypeAttachment:
		return s.Merger.MergeItemAsync(ctx, remote, local, itemType)
	default:
		return s.Merger.MergeItemSync(remote, local, itemType), nil
	}
}

// send pushes the changed local items. It reports whether anything was
// pushed. A batch the server rejects is logged and left unsynced for the
// next run.
func (s *syncSession) send(ctx context.Context, deviceID string, force bool) (bool, error) {
	uploads, err := s.Items.PendingUploads(ctx)
	if err != nil {
		return false, fmt.Errorf("list pending uploads: %w", err)
	}
	if len(uploads) > 0 {
		if err = s.Uploader.QueueUploads(ctx, uploads, uploadTag); err != nil {
			return false, fmt.Errorf("queue uploads: %w", err)
		}
	}

	initialized := false
	pushed := 0
	for batch, err := range s.Collector.Collect(ctx, s.BatchSize, force) {
		if err != nil {
			return false, err
		}

		if !initialized {
			req := models.InitializePushRequest{VaultKey: s.Keys.VaultKey(), Synced: false}
			if err = s.Conn.Invoke(ctx, connection.TargetInitializePush, nil, req); err != nil {
				return false, fmt.Errorf("initialize push: %w", err)
			}
			initialized = true
		}

		var ack bool
		err = s.Conn.Invoke(ctx, connection.TargetPushItems, &ack, deviceID, batch)
		var remoteErr *connection.RemoteError
		switch {
		case errors.As(err, &remoteErr) && !errors.Is(err, connection.ErrSyncUnavailable):
			s.logger.Err(err).Str("func", "syncSession.send").Str("type", string(batch.Type)).Msg("push batch failed")
			continue
		case err != nil:
			return false, fmt.Errorf("push items: %w", err)
		case !ack:
			s.logger.Warn().Str("func", "syncSession.send").Str("type", string(batch.Type)).Msg("push batch not acknowledged")
			continue
		}

		if err = s.Items.MarkSynced(ctx, batch.Revisions()); err != nil {
			return false, fmt.Errorf("mark pushed items synced: %w", err)
		}
		pushed += len(batch.Items)
		s.Observer.Progress(models.ProgressUpload, pushed)
	}

	if !initialized {
		return false, nil
	}

	if err = s.Conn.Invoke(ctx, connection.TargetPushCompleted, nil); err != nil {
		return false, fmt.Errorf("complete push: %w", err)
	}

	s.logger.Info().Str("func", "syncSession.send").Int("items", pushed).Msg("send completed")
	return true, nil
}

// finalize records the run and closes the connection unless auto-sync
// keeps it open.
func (s *syncSession) finalize(ctx context.Context) error {
	s.setState(models.SessionFinalizing)
	s.Policy.RefreshSharedArtifacts(ctx)

	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.KV.Set(ctx, lastSyncedKey, ts); err != nil {
		return fmt.Errorf("store last synced time: %w", err)
	}

	s.Observer.SyncCompleted()

	if !s.Policy.AutoSyncEnabled(ctx) {
		s.Conn.Stop()
	}

	s.setState(models.SessionIdle)
	s.logger.Info().Str("func", "syncSession.finalize").Msg("sync completed")
	return nil
}

// LastSynced returns the time of the last completed run, or the zero time.
func LastSynced(ctx context.Context, kv store.KVStore) (time.Time, error) {
	v, ok, err := kv.Get(ctx, lastSyncedKey)
	if err != nil || !ok {
		return time.Time{}, err
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last synced time: %w", err)
	}
	return time.UnixMilli(ms), nil
}

func decodeBatch(args []json.RawMessage) (*models.SyncTransferItem, error) {
	if len(args) == 0 {
		return nil, ErrInvalidBatch
	}
	var batch models.SyncTransferItem
	if err := json.Unmarshal(args[0], &batch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}
	return &batch, nil
}
