// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. Every write of a user's vault takes the next numbers
// of the per-user sequence in "vaults"; devices fetch by comparing that
// sequence with their stored cursor.
type vaultRepository struct {
	*PostgresDB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *PostgresDB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{PostgresDB: db, logger: logger}
}

// AddDevice resets the cursor of a device that is already registered.
func (v *vaultRepository) AddDevice(ctx context.Context, userID, deviceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDeviceQuery(userID, deviceID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "vaultRepository.AddDevice").Str("device_id", deviceID).Msg("failed to register device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (v *vaultRepository) RemoveDevice(ctx context.Context, userID, deviceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDeviceQuery(userID, deviceID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.RemoveDevice").Str("device_id", deviceID).Msg("failed to delete device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

func (v *vaultRepository) HasDevice(ctx context.Context, userID, deviceID string) (bool, error) {
	_, err := v.cursor(ctx, v.DB, userID, deviceID, false)
	switch {
	case errors.Is(err, ErrDeviceNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// PutItems stores batch in one transaction. The device row is locked for
// the duration so an unregister cannot interleave with the write.
func (v *vaultRepository) PutItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) error {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.PutItems").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = v.cursor(ctx, tx, userID, deviceID, true); err != nil {
		return err
	}

	if len(batch.Items) > 0 {
		query, args, err := buildReserveSeqQuery(userID, len(batch.Items))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var last int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
			log.Err(err).Str("func", "vaultRepository.PutItems").Str("user_id", userID).Msg("failed to reserve sequence numbers")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		seq := uint64(last) - uint64(len(batch.Items))
		for _, item := range batch.Items {
			seq++
			query, args, err := buildUpsertVaultItemQuery(userID, deviceID, batch.Type, item, seq)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "vaultRepository.PutItems").
					Str("id", item.ID).
					Msg("failed to execute upsert for vault item")
				return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, item.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRepository.PutItems").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// PendingItems reads the vault sequence before the items and bounds the
// item query by it, so the returned sequence never covers an item that was
// not returned.
func (v *vaultRepository) PendingItems(ctx context.Context, userID, deviceID string) ([]VaultItem, uint64, error) {
	log := logger.FromContext(ctx)

	cursor, err := v.cursor(ctx, v.DB, userID, deviceID, false)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := buildSelectVaultSeqQuery(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var upTo int64
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&upTo)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, 0, nil
	case err != nil:
		log.Err(err).Str("func", "vaultRepository.PendingItems").Msg("failed to read vault sequence")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildSelectPendingItemsQuery(userID, deviceID, cursor, uint64(upTo))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.PendingItems").Str("device_id", deviceID).Msg("failed to query pending items")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pending []VaultItem
	for rows.Next() {
		var (
			it       VaultItem
			itemType string
			seq      int64
		)
		if err = rows.Scan(&itemType, &it.Item.ID, &it.Item.V, &it.Item.Cipher, &it.Item.IV, &it.Item.Alg, &it.Item.Length, &seq, &it.Origin); err != nil {
			log.Err(err).Str("func", "vaultRepository.PendingItems").Msg("failed to scan vault item row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		it.Type = models.ItemType(itemType)
		it.Seq = uint64(seq)
		pending = append(pending, it)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "vaultRepository.PendingItems").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pending, uint64(upTo), nil
}

// Acknowledge never moves a cursor backwards.
func (v *vaultRepository) Acknowledge(ctx context.Context, userID, deviceID string, seq uint64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAcknowledgeQuery(userID, deviceID, seq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Acknowledge").Str("device_id", deviceID).Msg("failed to advance cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

func (v *vaultRepository) VaultKey(ctx context.Context, userID string) (*models.VaultKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultKeyQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		cipher, iv, salt, alg sql.NullString
		length                sql.NullInt64
	)
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&cipher, &iv, &salt, &alg, &length)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "vaultRepository.VaultKey").Str("user_id", userID).Msg("failed to read vault key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !cipher.Valid {
		return nil, nil
	}

	return &models.VaultKey{
		Cipher: cipher.String,
		IV:     iv.String,
		Salt:   salt.String,
		Alg:    alg.String,
		Length: int(length.Int64),
	}, nil
}

func (v *vaultRepository) SetVaultKey(ctx context.Context, userID string, key models.VaultKey) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetVaultKeyQuery(userID, key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.SetVaultKey").Str("user_id", userID).Msg("failed to store vault key")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

func (v *vaultRepository) QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error {
	log := logger.FromContext(ctx)

	if len(uploads) == 0 {
		return nil
	}

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.QueueUploads").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, upload := range uploads {
		query, args, err := buildQueueUploadQuery(userID, tag, upload)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "vaultRepository.QueueUploads").Str("hash", upload.Hash).Msg("failed to queue upload")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRepository.QueueUploads").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (v *vaultRepository) Uploads(ctx context.Context, userID, tag string) ([]models.AttachmentUpload, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUploadsQuery(userID, tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Uploads").Str("tag", tag).Msg("failed to query uploads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var uploads []models.AttachmentUpload
	for rows.Next() {
		var u models.AttachmentUpload
		if err = rows.Scan(&u.Hash, &u.ChunkSize); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		uploads = append(uploads, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return uploads, nil
}

// querier is the subset of *sql.DB and *sql.Tx the cursor lookup needs.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// cursor returns the fetch cursor of deviceID or [ErrDeviceNotFound].
func (v *vaultRepository) cursor(ctx context.Context, q querier, userID, deviceID string, forUpdate bool) (uint64, error) {
	query, args, err := buildSelectDeviceCursorQuery(userID, deviceID, forUpdate)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cursor int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&cursor)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrDeviceNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "vaultRepository.cursor").Str("device_id", deviceID).Msg("failed to read device cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return uint64(cursor), nil
}

// requireAffected maps an UPDATE or DELETE that matched no device row to
// [ErrDeviceNotFound].
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrDeviceNotFound
	}
	return nil
}
