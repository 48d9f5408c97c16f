package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	usersTable      = "users"
	vaultsTable     = "vaults"
	devicesTable    = "devices"
	vaultItemsTable = "vault_items"
	uploadsTable    = "uploads"
)

// pgsql is the statement builder for PostgreSQL ("$n" placeholders).
var pgsql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return pgsql.
		Insert(usersTable).
		Columns("user_id", "email", "is_email_confirmed").
		Values(user.ID, user.Email, user.IsEmailConfirmed).
		Suffix("RETURNING user_id, email, is_email_confirmed").
		ToSql()
}

func buildSelectUserQuery(userID string) (string, []any, error) {
	return pgsql.
		Select("user_id", "email", "is_email_confirmed").
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertDeviceQuery(userID, deviceID string) (string, []any, error) {
	return pgsql.
		Insert(devicesTable).
		Columns("user_id", "device_id", "fetch_cursor").
		Values(userID, deviceID, 0).
		Suffix("ON CONFLICT (user_id, device_id) DO UPDATE SET fetch_cursor = 0").
		ToSql()
}

func buildDeleteDeviceQuery(userID, deviceID string) (string, []any, error) {
	return pgsql.
		Delete(devicesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
}

func buildSelectDeviceCursorQuery(userID, deviceID string, forUpdate bool) (string, []any, error) {
	q := pgsql.
		Select("fetch_cursor").
		From(devicesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"device_id": deviceID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func buildAcknowledgeQuery(userID, deviceID string, seq uint64) (string, []any, error) {
	return pgsql.
		Update(devicesTable).
		Set("fetch_cursor", sq.Expr("GREATEST(fetch_cursor, ?)", int64(seq))).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
}

// buildReserveSeqQuery advances the vault sequence by n and returns the
// last reserved number. The row lock it takes serializes pushes of a user.
func buildReserveSeqQuery(userID string, n int) (string, []any, error) {
	return pgsql.
		Insert(vaultsTable).
		Columns("user_id", "seq").
		Values(userID, n).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET seq = vaults.seq + excluded.seq RETURNING seq").
		ToSql()
}

func buildSelectVaultSeqQuery(userID string) (string, []any, error) {
	return pgsql.Select("seq").From(vaultsTable).Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildUpsertVaultItemQuery(userID, deviceID string, itemType models.ItemType, item models.EncryptedItem, seq uint64) (string, []any, error) {
	return pgsql.
		Insert(vaultItemsTable).
		Columns("user_id", "id", "type", "v", "cipher", "iv", "alg", "length", "seq", "origin").
		Values(userID, item.ID, string(itemType), item.V, item.Cipher, item.IV, item.Alg, item.Length, int64(seq), deviceID).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			type = excluded.type,
			v = excluded.v,
			cipher = excluded.cipher,
			iv = excluded.iv,
			alg = excluded.alg,
			length = excluded.length,
			seq = excluded.seq,
			origin = excluded.origin`).
		ToSql()
}

// buildSelectPendingItemsQuery selects what deviceID has not fetched: items
// written after cursor up to upTo, except the ones the device pushed itself.
func buildSelectPendingItemsQuery(userID, deviceID string, cursor, upTo uint64) (string, []any, error) {
	return pgsql.
		Select("type", "id", "v", "cipher", "iv", "alg", "length", "seq", "origin").
		From(vaultItemsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"seq": int64(cursor)}).
		Where(sq.LtOrEq{"seq": int64(upTo)}).
		Where(sq.NotEq{"origin": deviceID}).
		OrderBy("seq").
		ToSql()
}

func buildSelectVaultKeyQuery(userID string) (string, []any, error) {
	return pgsql.
		Select("key_cipher", "key_iv", "key_salt", "key_alg", "key_length").
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSetVaultKeyQuery stores key only while the vault has none.
func buildSetVaultKeyQuery(userID string, key models.VaultKey) (string, []any, error) {
	return pgsql.
		Insert(vaultsTable).
		Columns("user_id", "key_cipher", "key_iv", "key_salt", "key_alg", "key_length").
		Values(userID, key.Cipher, key.IV, key.Salt, key.Alg, key.Length).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			key_cipher = excluded.key_cipher,
			key_iv = excluded.key_iv,
			key_salt = excluded.key_salt,
			key_alg = excluded.key_alg,
			key_length = excluded.key_length
		WHERE vaults.key_cipher IS NULL`).
		ToSql()
}

func buildQueueUploadQuery(userID, tag string, upload models.AttachmentUpload) (string, []any, error) {
	return pgsql.
		Insert(uploadsTable).
		Columns("user_id", "tag", "hash", "chunk_size").
		Values(userID, tag, upload.Hash, upload.ChunkSize).
		Suffix("ON CONFLICT (user_id, tag, hash) DO NOTHING").
		ToSql()
}

func buildSelectUploadsQuery(userID, tag string) (string, []any, error) {
	return pgsql.
		Select("hash", "chunk_size").
		From(uploadsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"tag": tag}).
		OrderBy("position").
		ToSql()
}
