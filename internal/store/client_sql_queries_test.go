// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

func Test_buildSelectItemsByIDsQuery(t *testing.T) {
	query, args, err := buildSelectItemsByIDsQuery([]string{"a", "b", "c"})
	require.NoError(t, err)

	// squirrel generates IN (?,?,?) for a slice.
	assert.Equal(t, "SELECT id, data FROM items WHERE id IN (?,?,?)", query)
	assert.Equal(t, []any{"a", "b", "c"}, args)
}

func Test_buildSelectChangedQuery(t *testing.T) {
	tests := []struct {
		name     string
		force    bool
		contains []string
		args     int
	}{
		{name: "changed only", force: false, contains: []string{"type = ?", "synced = ?"}, args: 2},
		{name: "forced", force: true, contains: []string{"type = ?"}, args: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectChangedQuery(models.ItemTypeNote, tt.force)
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, !tt.force, strings.Contains(query, "synced"))
			assert.Len(t, args, tt.args)
			assert.Equal(t, "note", args[0])
			assert.Contains(t, query, "ORDER BY date_modified, id")
		})
	}
}

func Test_buildUpsertItemQuery(t *testing.T) {
	query, args, err := buildUpsertItemQuery("n1", models.ItemTypeNote, []byte(`{"id":"n1"}`), true, false, 5)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO items (id,type,data,synced,deleted,date_modified) VALUES (?,?,?,?,?,?)"))
	assert.Contains(t, query, "ON CONFLICT(id) DO UPDATE")
	assert.Equal(t, []any{"n1", "note", `{"id":"n1"}`, true, false, int64(5)}, args)
}

func Test_buildMarkSyncedQuery(t *testing.T) {
	query, args, err := buildMarkSyncedQuery([]models.ItemRevision{{ID: "a", DateModified: 1}, {ID: "b", DateModified: 2}})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE items SET synced = ?")
	assert.Contains(t, query, "json_set(data, '$.synced', json('true'))")
	assert.Contains(t, query, "WHERE ((id = ? AND date_modified = ?) OR (id = ? AND date_modified = ?))")
	assert.Equal(t, []any{true, "a", int64(1), "b", int64(2)}, args)
}

func Test_buildKVQueries(t *testing.T) {
	query, args, err := buildSetKVQuery("k", "v")
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	assert.Equal(t, []any{"k", "v"}, args)

	query, args, err = buildDeleteKVQuery("k")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv WHERE key = ?", query)
	assert.Equal(t, []any{"k"}, args)
}
