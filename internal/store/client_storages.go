package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Items is the SQLite-backed item store.
	Items ItemStore
	// KV holds small client state such as the device id and the last sync
	// time.
	KV KVStore
	// Files holds downloaded attachment files next to the database.
	Files FileStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to the item,
//     key/value and attachment repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, filepath.Join(filepath.Dir(cfg.DB.DSN), "files"), logger), nil
}

func newClientStorages(db *DB, filesDir string, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Items: NewLocalItemRepository(db, logger),
		KV:    NewLocalKVRepository(db, logger),
		Files: NewAttachmentFileStorage(filesDir, logger),
		db:    db,
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
