package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// DefaultChunkSize is the upload chunk size of attachments that do not
// declare one.
const DefaultChunkSize int64 = 512 * 1024

type localItemRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalItemRepository(db *DB, logger *logger.Logger) ItemStore {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localItemRepository) Records(ctx context.Context, ids []string) (map[string]models.MaybeDeletedItem, error) {
	log := logger.FromContext(ctx)

	result := make(map[string]models.MaybeDeletedItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := buildSelectItemsByIDsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Records").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Records").
			Int("items", len(ids)).
			Msg("failed to execute query for getting records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   string
			data string
		)
		if err = rows.Scan(&id, &data); err != nil {
			log.Err(err).Str("func", "localItemRepository.Records").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		item, err := decodeItem(data)
		if err != nil {
			log.Err(err).Str("func", "localItemRepository.Records").Str("id", id).Msg("failed to decode stored item")
			return nil, err
		}
		result[id] = item
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "localItemRepository.Records").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (l *localItemRepository) Put(ctx context.Context, items []models.MaybeDeletedItem) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Put").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, item := range items {
		if item == nil || item.ID == "" {
			return ErrItemWithoutID
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode item %s: %w", item.ID, err)
		}

		query, args, err := buildUpsertItemQuery(item.ID, item.RoutingType(), data, item.Synced, item.Deleted, item.DateModified)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localItemRepository.Put").
				Str("id", item.ID).
				Msg("failed to execute upsert for item")
			return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localItemRepository.Put").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localItemRepository) Changed(ctx context.Context, itemType models.ItemType, force bool) ([]*models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChangedQuery(itemType, force)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := l.queryItems(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Changed").
			Str("type", string(itemType)).
			Bool("force", force).
			Msg("failed to get changed items")
		return nil, err
	}

	return items, nil
}

func (l *localItemRepository) MarkSynced(ctx context.Context, revisions []models.ItemRevision) error {
	log := logger.FromContext(ctx)

	if len(revisions) == 0 {
		return nil
	}

	query, args, err := buildMarkSyncedQuery(revisions)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localItemRepository.MarkSynced").
			Int("ids", len(revisions)).
			Msg("failed to mark items as synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localItemRepository) PendingUploads(ctx context.Context) ([]models.AttachmentUpload, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLiveAttachmentsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attachments, err := l.queryItems(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.PendingUploads").Msg("failed to get attachments")
		return nil, err
	}

	var uploads []models.AttachmentUpload
	for _, a := range attachments {
		if a.Hash == "" {
			continue
		}
		if _, uploaded := a.Field("dateUploaded"); uploaded {
			continue
		}

		chunkSize := DefaultChunkSize
		if raw, ok := a.Field("chunkSize"); ok {
			var v int64
			if err = json.Unmarshal(raw, &v); err == nil && v > 0 {
				chunkSize = v
			}
		}

		uploads = append(uploads, models.AttachmentUpload{Hash: a.Hash, ChunkSize: chunkSize})
	}

	return uploads, nil
}

func (l *localItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var data string
		if err = rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		item, err := decodeItem(data)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func decodeItem(data string) (*models.Item, error) {
	var item models.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingItem, err)
	}
	return &item, nil
}

type localKVRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalKVRepository(db *DB, logger *logger.Logger) KVStore {
	return &localKVRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetKVQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Get").Str("key", key).Msg("failed to get value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (l *localKVRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetKVQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Set").Str("key", key).Msg("failed to set value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localKVRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteKVQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
