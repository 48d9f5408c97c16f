package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func noteBatch(ids ...string) models.SyncTransferItem {
	b := models.SyncTransferItem{Type: models.ItemTypeNote, Count: len(ids)}
	for _, id := range ids {
		b.Items = append(b.Items, models.EncryptedItem{ID: id, V: 5.6, Cipher: "c-" + id, IV: "iv"})
	}
	return b
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	user, err := repo.CreateUser(ctx, models.User{Email: "me@example.com", IsEmailConfirmed: true})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	_, err = repo.CreateUser(ctx, models.User{Email: " ME@example.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := repo.FindUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = repo.FindUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryVaultRepository_Devices(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultRepository(logger.Nop())

	ok, err := repo.HasDevice(ctx, "u1", "d1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.AddDevice(ctx, "u1", "d1"))
	ok, _ = repo.HasDevice(ctx, "u1", "d1")
	assert.True(t, ok)

	ok, _ = repo.HasDevice(ctx, "u2", "d1")
	assert.False(t, ok, "devices are scoped per user")

	require.NoError(t, repo.RemoveDevice(ctx, "u1", "d1"))
	assert.ErrorIs(t, repo.RemoveDevice(ctx, "u1", "d1"), ErrDeviceNotFound)
	assert.ErrorIs(t, repo.PutItems(ctx, "u1", "d1", noteBatch("n1")), ErrDeviceNotFound)
}

func TestMemoryVaultRepository_PendingItems(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultRepository(logger.Nop())

	require.NoError(t, repo.AddDevice(ctx, "u1", "a"))
	require.NoError(t, repo.AddDevice(ctx, "u1", "b"))

	require.NoError(t, repo.PutItems(ctx, "u1", "a", noteBatch("n1", "n2")))
	require.NoError(t, repo.PutItems(ctx, "u1", "b", noteBatch("n3")))

	pending, seq, err := repo.PendingItems(ctx, "u1", "b")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), seq)
	require.Len(t, pending, 2, "own pushes are not fetched back")
	assert.Equal(t, "n1", pending[0].Item.ID)
	assert.Equal(t, "n2", pending[1].Item.ID)
	assert.Equal(t, models.ItemTypeNote, pending[0].Type)

	require.NoError(t, repo.Acknowledge(ctx, "u1", "b", seq))
	pending, _, err = repo.PendingItems(ctx, "u1", "b")
	require.NoError(t, err)
	assert.Empty(t, pending)

	// A stale acknowledgement never moves the cursor back.
	require.NoError(t, repo.Acknowledge(ctx, "u1", "b", 1))
	pending, _, _ = repo.PendingItems(ctx, "u1", "b")
	assert.Empty(t, pending)

	// Editing n1 on device a makes it pending for b again.
	require.NoError(t, repo.PutItems(ctx, "u1", "a", noteBatch("n1")))
	pending, _, _ = repo.PendingItems(ctx, "u1", "b")
	require.Len(t, pending, 1)
	assert.Equal(t, uint64(4), pending[0].Seq)

	// Re-registration resets the cursor.
	require.NoError(t, repo.AddDevice(ctx, "u1", "b"))
	pending, _, _ = repo.PendingItems(ctx, "u1", "b")
	assert.Len(t, pending, 2)

	_, _, err = repo.PendingItems(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestMemoryVaultRepository_VaultKey(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultRepository(logger.Nop())

	key, err := repo.VaultKey(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, key)

	first := models.VaultKey{Cipher: "c", IV: "iv", Salt: "s", Length: 32}
	stored, err := repo.SetVaultKey(ctx, "u1", first)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = repo.SetVaultKey(ctx, "u1", models.VaultKey{Cipher: "other", IV: "iv", Salt: "s", Length: 32})
	require.NoError(t, err)
	assert.False(t, stored, "the first vault key wins")

	key, err = repo.VaultKey(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &first, key)
}

func TestMemoryVaultRepository_Uploads(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultRepository(logger.Nop())

	up := []models.AttachmentUpload{{Hash: "h1", ChunkSize: 512}, {Hash: "h2", ChunkSize: 512}}
	require.NoError(t, repo.QueueUploads(ctx, "u1", "sync", up))
	require.NoError(t, repo.QueueUploads(ctx, "u1", "sync", up[:1]))

	queued, err := repo.Uploads(ctx, "u1", "sync")
	require.NoError(t, err)
	assert.Equal(t, up, queued, "queued hashes are not duplicated")

	queued, err = repo.Uploads(ctx, "u1", "other")
	require.NoError(t, err)
	assert.Empty(t, queued)
}
