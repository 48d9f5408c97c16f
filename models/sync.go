// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncType selects which steps a sync run performs.
type SyncType string

const (
	// SyncTypeFull fetches remote changes, then sends local ones.
	SyncTypeFull SyncType = "full"
	// SyncTypeFetch only pulls remote changes.
	SyncTypeFetch SyncType = "fetch"
	// SyncTypeSend only pushes local changes.
	SyncTypeSend SyncType = "send"
)

// SyncOptions is the per-run configuration of a sync. It is never persisted.
type SyncOptions struct {
	// Type selects the steps of the run.
	Type SyncType `json:"type"`

	// Force re-registers the device and collects every local item instead of
	// only the changed ones.
	Force bool `json:"force,omitempty"`
}

// Fetches reports whether the run pulls remote changes.
func (o SyncOptions) Fetches() bool {
	return o.Type == SyncTypeFull || o.Type == SyncTypeFetch
}

// Sends reports whether the run pushes local changes.
func (o SyncOptions) Sends() bool {
	return o.Type == SyncTypeFull || o.Type == SyncTypeSend
}

// EncryptedItem is a single encrypted payload as it travels over the wire.
type EncryptedItem struct {
	// ID is the identifier of the item; it is not encrypted.
	ID string `json:"id"`

	// V is the schema version the plaintext was written with.
	V float64 `json:"v"`

	// Cipher is the base64 ciphertext.
	Cipher string `json:"cipher"`

	// IV is the base64 nonce used for Cipher.
	IV string `json:"iv"`

	// Alg names the encryption algorithm.
	Alg string `json:"alg"`

	// Length is the plaintext length in bytes.
	Length int `json:"length"`

	// DateModified is the local revision the payload was collected at. It
	// stays on the sending device.
	DateModified int64 `json:"-"`
}

// ItemRevision names one stored version of an item.
type ItemRevision struct {
	ID           string
	DateModified int64
}

// SyncTransferItem is one batch of encrypted items of a single type. It is
// the unit of both fetch delivery and push submission.
type SyncTransferItem struct {
	// Type is the type discriminant shared by every item of the batch.
	Type ItemType `json:"type"`

	// Items are the encrypted payloads.
	Items []EncryptedItem `json:"items"`

	// Count is len(Items); sent so the receiver can validate the batch.
	Count int `json:"count"`
}

// IDs returns the identifiers of the batch items in order.
func (s *SyncTransferItem) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

// Revisions returns the id and collected revision of every batch item.
func (s *SyncTransferItem) Revisions() []ItemRevision {
	revs := make([]ItemRevision, 0, len(s.Items))
	for _, it := range s.Items {
		revs = append(revs, ItemRevision{ID: it.ID, DateModified: it.DateModified})
	}
	return revs
}

// VaultKey is the encrypted key material of the user's vault.
type VaultKey struct {
	Cipher string `json:"cipher"`
	IV     string `json:"iv"`
	Salt   string `json:"salt"`
	Alg    string `json:"alg,omitempty"`
	Length int    `json:"length"`
}

// Valid reports whether the key carries usable material.
func (k *VaultKey) Valid() bool {
	return k != nil && k.Cipher != "" && k.IV != "" && k.Salt != "" && k.Length > 0
}

// FetchResponse is the completion of a RequestFetch invocation.
type FetchResponse struct {
	// VaultKey is set when the server holds vault key material for the user.
	VaultKey *VaultKey `json:"vaultKey,omitempty"`
}

// InitializePushRequest opens a push session on the server.
type InitializePushRequest struct {
	VaultKey *VaultKey `json:"vaultKey,omitempty"`
	Synced   bool      `json:"synced"`
}

// AttachmentUpload identifies a file waiting to be uploaded.
type AttachmentUpload struct {
	// Hash identifies the file.
	Hash string `json:"hash"`

	// ChunkSize is the size of the upload chunks in bytes.
	ChunkSize int64 `json:"chunkSize"`
}

// FetchPlan is the server's split of the items a device has not fetched
// yet.
type FetchPlan struct {
	// Batches are delivered in order, each one after the previous one was
	// acknowledged.
	Batches []SyncTransferItem
	// Checkpoint is acknowledged after the last batch.
	Checkpoint uint64
	// VaultKey is the stored vault key, if any.
	VaultKey *VaultKey
}

// UploadQueueRequest announces attachment files a device is about to
// upload.
type UploadQueueRequest struct {
	Tag   string             `json:"tag"`
	Files []AttachmentUpload `json:"files"`
}

// ConnectionState is the state of the sync connection.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// SessionState is the step a sync session is executing.
type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionConnecting SessionState = "connecting"
	SessionFetching   SessionState = "fetching"
	SessionSending    SessionState = "sending"
	SessionFinalizing SessionState = "finalizing"
	SessionAborted    SessionState = "aborted"
)

// ProgressKind tells whether reported progress counts downloaded or
// uploaded items.
type ProgressKind string

const (
	ProgressDownload ProgressKind = "download"
	ProgressUpload   ProgressKind = "upload"
)
