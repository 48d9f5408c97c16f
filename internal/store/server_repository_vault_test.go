package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	selectCursor  = "SELECT fetch_cursor FROM devices"
	selectSeq     = "SELECT seq FROM vaults"
	selectPending = "SELECT type, id, v, cipher, iv, alg, length, seq, origin FROM vault_items"
)

func newTestVaultRepo(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestPostgresMock(t)
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })
	return NewVaultRepository(db, logger.Nop()), mock
}

func cursorRows(cursor ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"fetch_cursor"})
	for _, c := range cursor {
		rows.AddRow(c)
	}
	return rows
}

func TestVaultRepository_Devices(t *testing.T) {
	ctx := context.Background()

	t.Run("add resets the cursor", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO devices (user_id,device_id,fetch_cursor) VALUES ($1,$2,$3) ON CONFLICT (user_id, device_id) DO UPDATE SET fetch_cursor = 0")).
			WithArgs("u1", "d1", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.AddDevice(ctx, "u1", "d1"))
	})

	t.Run("remove", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectExec("DELETE FROM devices").WithArgs("u1", "d1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM devices").WithArgs("u1", "d1").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.RemoveDevice(ctx, "u1", "d1"))
		assert.ErrorIs(t, repo.RemoveDevice(ctx, "u1", "d1"), ErrDeviceNotFound)
	})

	t.Run("has device", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery(selectCursor).WithArgs("u1", "d1").WillReturnRows(cursorRows(4))
		mock.ExpectQuery(selectCursor).WithArgs("u1", "d2").WillReturnRows(cursorRows())

		ok, err := repo.HasDevice(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.HasDevice(ctx, "u1", "d2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVaultRepository_PutItems(t *testing.T) {
	ctx := context.Background()
	batch := models.SyncTransferItem{
		Type: models.ItemTypeNote,
		Items: []models.EncryptedItem{
			{ID: "n1", V: 5.9, Cipher: "c1", IV: "iv1", Alg: "aes", Length: 3},
			{ID: "n2", V: 5.9, Cipher: "c2", IV: "iv2", Alg: "aes", Length: 4},
		},
		Count: 2,
	}

	t.Run("assigns consecutive sequence numbers", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(selectCursor+".*FOR UPDATE").WithArgs("u1", "d1").WillReturnRows(cursorRows(0))
		mock.ExpectQuery("INSERT INTO vaults").WithArgs("u1", 2).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(7)))
		mock.ExpectExec("INSERT INTO vault_items").
			WithArgs("u1", "n1", "note", 5.9, "c1", "iv1", "aes", 3, int64(6), "d1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO vault_items").
			WithArgs("u1", "n2", "note", 5.9, "c2", "iv2", "aes", 4, int64(7), "d1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.PutItems(ctx, "u1", "d1", batch))
	})

	t.Run("unknown device", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(selectCursor).WithArgs("u1", "ghost").WillReturnRows(cursorRows())
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.PutItems(ctx, "u1", "ghost", batch), ErrDeviceNotFound)
	})

	t.Run("failed upsert rolls back", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(selectCursor).WillReturnRows(cursorRows(0))
		mock.ExpectQuery("INSERT INTO vaults").WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(2)))
		mock.ExpectExec("INSERT INTO vault_items").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.PutItems(ctx, "u1", "d1", batch)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectBegin().WillReturnError(assert.AnError)

		assert.ErrorIs(t, repo.PutItems(ctx, "u1", "d1", batch), ErrBeginningTransaction)
	})
}

func TestVaultRepository_PendingItems(t *testing.T) {
	ctx := context.Background()
	itemColumns := []string{"type", "id", "v", "cipher", "iv", "alg", "length", "seq", "origin"}

	t.Run("bounded by the vault sequence", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery(selectCursor).WithArgs("u1", "d1").WillReturnRows(cursorRows(3))
		mock.ExpectQuery(selectSeq).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(9)))
		mock.ExpectQuery(regexp.QuoteMeta(selectPending)).
			WithArgs("u1", int64(3), int64(9), "d1").
			WillReturnRows(sqlmock.NewRows(itemColumns).
				AddRow("note", "n1", 5.9, "c1", "iv1", "aes", 3, int64(4), "d2").
				AddRow("content", "c1", 5.9, "c2", "iv2", "aes", 9, int64(8), "d2"))

		pending, seq, err := repo.PendingItems(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.Equal(t, uint64(9), seq)
		require.Len(t, pending, 2)
		assert.Equal(t, VaultItem{
			Type:   models.ItemTypeNote,
			Item:   models.EncryptedItem{ID: "n1", V: 5.9, Cipher: "c1", IV: "iv1", Alg: "aes", Length: 3},
			Seq:    4,
			Origin: "d2",
		}, pending[0])
		assert.Equal(t, models.ItemTypeContent, pending[1].Type)
		assert.Equal(t, uint64(8), pending[1].Seq)
	})

	t.Run("empty vault", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery(selectCursor).WillReturnRows(cursorRows(0))
		mock.ExpectQuery(selectSeq).WillReturnRows(sqlmock.NewRows([]string{"seq"}))

		pending, seq, err := repo.PendingItems(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.Empty(t, pending)
		assert.Zero(t, seq)
	})

	t.Run("unknown device", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery(selectCursor).WillReturnRows(cursorRows())

		_, _, err := repo.PendingItems(ctx, "u1", "ghost")
		assert.ErrorIs(t, err, ErrDeviceNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery(selectCursor).WillReturnRows(cursorRows(0))
		mock.ExpectQuery(selectSeq).WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(1)))
		mock.ExpectQuery(regexp.QuoteMeta(selectPending)).WillReturnError(assert.AnError)

		_, _, err := repo.PendingItems(ctx, "u1", "d1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestVaultRepository_Acknowledge(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestVaultRepo(t)

	ack := regexp.QuoteMeta("UPDATE devices SET fetch_cursor = GREATEST(fetch_cursor, $1)")
	mock.ExpectExec(ack).WithArgs(int64(5), "u1", "d1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(ack).WithArgs(int64(5), "u1", "ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Acknowledge(ctx, "u1", "d1", 5))
	assert.ErrorIs(t, repo.Acknowledge(ctx, "u1", "ghost", 5), ErrDeviceNotFound)
}

func TestVaultRepository_VaultKey(t *testing.T) {
	ctx := context.Background()
	keyColumns := []string{"key_cipher", "key_iv", "key_salt", "key_alg", "key_length"}
	key := models.VaultKey{Cipher: "c", IV: "iv", Salt: "s", Alg: "a", Length: 32}

	t.Run("first key is stored", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectExec("INSERT INTO vaults").
			WithArgs("u1", "c", "iv", "s", "a", 32).
			WillReturnResult(sqlmock.NewResult(0, 1))

		stored, err := repo.SetVaultKey(ctx, "u1", key)
		require.NoError(t, err)
		assert.True(t, stored)
	})

	t.Run("existing key is kept", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectExec("INSERT INTO vaults").WillReturnResult(sqlmock.NewResult(0, 0))

		stored, err := repo.SetVaultKey(ctx, "u1", key)
		require.NoError(t, err)
		assert.False(t, stored)
	})

	t.Run("read", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery("SELECT key_cipher").WithArgs("u1").
			WillReturnRows(sqlmock.NewRows(keyColumns).AddRow("c", "iv", "s", "a", int64(32)))

		got, err := repo.VaultKey(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, &key, got)
	})

	t.Run("vault without key", func(t *testing.T) {
		repo, mock := newTestVaultRepo(t)
		mock.ExpectQuery("SELECT key_cipher").WillReturnRows(sqlmock.NewRows(keyColumns).AddRow(nil, nil, nil, nil, nil))
		mock.ExpectQuery("SELECT key_cipher").WillReturnRows(sqlmock.NewRows(keyColumns))

		got, err := repo.VaultKey(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.VaultKey(ctx, "u2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestVaultRepository_Uploads(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO uploads").WithArgs("u1", "sync", "h1", int64(512)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO uploads").WithArgs("u1", "sync", "h2", int64(0)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT hash, chunk_size FROM uploads").WithArgs("u1", "sync").
		WillReturnRows(sqlmock.NewRows([]string{"hash", "chunk_size"}).AddRow("h1", int64(512)).AddRow("h2", int64(0)))

	require.NoError(t, repo.QueueUploads(ctx, "u1", "sync", []models.AttachmentUpload{{Hash: "h1", ChunkSize: 512}, {Hash: "h2"}}))
	require.NoError(t, repo.QueueUploads(ctx, "u1", "sync", nil))

	got, err := repo.Uploads(ctx, "u1", "sync")
	require.NoError(t, err)
	assert.Equal(t, []models.AttachmentUpload{{Hash: "h1", ChunkSize: 512}, {Hash: "h2"}}, got)
}

func TestServerStorages_Close(t *testing.T) {
	assert.NoError(t, NewServerStorages(logger.Nop()).Close())

	db, mock := newTestPostgresMock(t)
	mock.ExpectClose()
	s := newPostgresServerStorages(db, logger.Nop())
	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
