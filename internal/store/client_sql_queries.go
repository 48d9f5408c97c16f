// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	itemsTable = "items"
	kvTable    = "kv"
)

// psql is the statement builder for SQLite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectItemsByIDsQuery(ids []string) (string, []any, error) {
	return psql.
		Select("id", "data").
		From(itemsTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildUpsertItemQuery(id string, itemType models.ItemType, data []byte, synced, deleted bool, dateModified int64) (string, []any, error) {
	return psql.
		Insert(itemsTable).
		Columns("id", "type", "data", "synced", "deleted", "date_modified").
		Values(id, string(itemType), string(data), synced, deleted, dateModified).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			data = excluded.data,
			synced = excluded.synced,
			deleted = excluded.deleted,
			date_modified = excluded.date_modified`).
		ToSql()
}

func buildSelectChangedQuery(itemType models.ItemType, force bool) (string, []any, error) {
	q := psql.
		Select("data").
		From(itemsTable).
		Where(sq.Eq{"type": string(itemType)}).
		OrderBy("date_modified", "id")
	if !force {
		q = q.Where(sq.Eq{"synced": false})
	}
	return q.ToSql()
}

func buildMarkSyncedQuery(revisions []models.ItemRevision) (string, []any, error) {
	match := make(sq.Or, 0, len(revisions))
	for _, rev := range revisions {
		match = append(match, sq.And{sq.Eq{"id": rev.ID}, sq.Eq{"date_modified": rev.DateModified}})
	}

	return psql.
		Update(itemsTable).
		Set("synced", true).
		Set("data", sq.Expr(`json_set(data, '$.synced', json('true'))`)).
		Where(match).
		ToSql()
}

func buildSelectLiveAttachmentsQuery() (string, []any, error) {
	return psql.
		Select("data").
		From(itemsTable).
		Where(sq.Eq{"type": string(models.ItemTypeAttachment), "deleted": false}).
		OrderBy("id").
		ToSql()
}

func buildGetKVQuery(key string) (string, []any, error) {
	return psql.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
}

func buildSetKVQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteKVQuery(key string) (string, []any, error) {
	return psql.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
}
