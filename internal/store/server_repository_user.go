// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// userRepository is the PostgreSQL-backed implementation of
// [UserRepository] over the "users" table. Emails are unique
// case-insensitively through a unique index on lower(email).
type userRepository struct {
	db     *PostgresDB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *PostgresDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateUser inserts user under a fresh id and returns the stored row.
// A unique_violation (23505) maps to [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	user.Email = strings.TrimSpace(user.Email)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Email, &created.IsEmailConfirmed)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found.ID, &found.Email, &found.IsEmailConfirmed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUser").Str("user_id", userID).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
