package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// ServerStorages groups the repositories of the reference server.
type ServerStorages struct {
	Users  UserRepository
	Vaults VaultRepository

	db *PostgresDB
}

// NewServerStorages returns in-memory repositories. State does not survive
// a restart.
func NewServerStorages(logger *logger.Logger) *ServerStorages {
	logger.Info().Msg("creating new in-memory storages...")

	return &ServerStorages{
		Users:  NewMemoryUserRepository(logger),
		Vaults: NewMemoryVaultRepository(logger),
	}
}

// NewPostgresServerStorages connects to the PostgreSQL database of cfg,
// applies the server migrations and returns repositories backed by it.
func NewPostgresServerStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*ServerStorages, error) {
	logger.Info().Msg("creating new postgres storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "NewPostgresServerStorages").Msg("migration failed")
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newPostgresServerStorages(db, logger), nil
}

func newPostgresServerStorages(db *PostgresDB, logger *logger.Logger) *ServerStorages {
	return &ServerStorages{
		Users:  NewUserRepository(db, logger),
		Vaults: NewVaultRepository(db, logger),
		db:     db,
	}
}

// Close releases the database connection, if any.
func (s *ServerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
