package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type merger struct {
	files  store.FileStore
	logger *logger.Logger
}

// NewMerger returns a Merger. files holds downloaded attachment files;
// stale ones are removed when an attachment's hash changes remotely.
func NewMerger(files store.FileStore, logger *logger.Logger) Merger {
	return &merger{files: files, logger: logger}
}

// MergeContent implements [Merger]. Remote wins unless the local copy has
// unsynced edits that differ from it; then the remote body is kept and the
// local state is preserved in Local with Conflicted set. An unresolved
// conflict stays conflicted and keeps its Local across remote updates.
func (m *merger) MergeContent(remote, local *models.Item) *models.Item {
	if settled := mergeDeletion(remote, local); settled != nil {
		return settled
	}

	if local.Conflicted && local.Local != nil {
		merged := remote.Clone()
		merged.Conflicted = true
		merged.Local = local.Local.Clone()
		return merged
	}

	if local.Synced || local.Data == remote.Data {
		return remote
	}

	localState := local.Clone()
	localState.Local = nil
	localState.Conflicted = false

	merged := remote.Clone()
	merged.Conflicted = true
	merged.Local = localState
	return merged
}

// MergeItemAsync implements [Merger]. For attachments whose file changed
// remotely the stale local file is deleted before the merge completes.
func (m *merger) MergeItemAsync(ctx context.Context, remote, local *models.Item, itemType models.ItemType) (*models.Item, error) {
	if itemType == models.ItemTypeAttachment && local != nil && !local.IsTombstone() && local.Hash != "" {
		if remote.IsTombstone() || remote.Hash != local.Hash {
			if err := m.files.Delete(ctx, local.Hash); err != nil {
				m.logger.Err(err).Str("func", "merger.MergeItemAsync").Str("hash", local.Hash).Msg("failed to delete stale attachment file")
				return nil, fmt.Errorf("delete stale attachment %s: %w", local.ID, err)
			}
		}
	}

	return m.MergeItemSync(remote, local, itemType), nil
}

// MergeItemSync implements [Merger]. Typed fields come from remote; untyped
// fields known only locally are kept.
func (m *merger) MergeItemSync(remote, local *models.Item, _ models.ItemType) *models.Item {
	if settled := mergeDeletion(remote, local); settled != nil {
		return settled
	}

	merged := remote.Clone()
	for k, v := range local.Fields {
		if _, ok := merged.Fields[k]; ok {
			continue
		}
		if merged.Fields == nil {
			merged.Fields = make(map[string]json.RawMessage, len(local.Fields))
		}
		merged.Fields[k] = v
	}
	return merged
}

// mergeDeletion settles the merges decided by existence alone: no local
// copy, a remote tombstone, or a local tombstone. It returns nil when both
// sides are live.
func mergeDeletion(remote, local *models.Item) *models.Item {
	switch {
	case local == nil:
		return remote
	case remote.IsTombstone():
		return remote
	case local.IsTombstone():
		return local
	}
	return nil
}
