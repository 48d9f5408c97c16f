// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migration upgrades item payloads written by older clients to the
// current schema version.
//
// Migrations are registered per schema version and per item type. Migrating
// an item from version `from` to version `to` applies, in ascending order,
// every registered step whose version v satisfies from < v <= to. A step may
// report that the item changed, or that the item must be discarded (its
// type has been retired).
package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=migration.go -destination=../mock/migration_mock.go -package=mock

// CurrentVersion is the schema version written by this client.
const CurrentVersion = 5.9

// Context tells a migration step where the payload came from.
type Context string

const (
	// ContextSync is used for items received from the sync server.
	ContextSync Context = "sync"
	// ContextBackup is used for payloads restored from a wrapper (trash
	// entries carry a backed-up copy of the original item).
	ContextBackup Context = "backup"
)

// Result is the outcome of migrating one item.
type Result int

const (
	// Unchanged means no step modified the item.
	Unchanged Result = iota
	// Changed means at least one step modified the item.
	Changed
	// Skip means the item must be discarded.
	Skip
)

func (r Result) String() string {
	switch r {
	case Changed:
		return "changed"
	case Skip:
		return "skip"
	default:
		return "unchanged"
	}
}

// ErrInvalidVersion is returned for a negative or non-increasing version
// range.
var ErrInvalidVersion = errors.New("invalid migration version range")

// Service migrates decoded items.
type Service interface {
	// MigrateItem upgrades item in place from version from to version to,
	// running the steps registered for itemType.
	MigrateItem(ctx context.Context, item *models.Item, from, to float64, itemType models.ItemType, mctx Context) (Result, error)
}

// stepFunc mutates item and reports the outcome of the step.
type stepFunc func(item *models.Item, mctx Context) Result

// version groups the steps introduced by one schema version.
type version struct {
	version float64
	steps   map[models.ItemType]stepFunc
}

type service struct {
	versions []version
}

// NewService returns a Service with the built-in migration steps.
func NewService() Service {
	return &service{versions: versions}
}

func (s *service) MigrateItem(ctx context.Context, item *models.Item, from, to float64, itemType models.ItemType, mctx Context) (Result, error) {
	if from < 0 || to < 0 {
		return Unchanged, fmt.Errorf("%w: %v -> %v", ErrInvalidVersion, from, to)
	}
	if from >= to {
		return Unchanged, nil
	}

	result := Unchanged
	for _, v := range s.versions {
		if err := ctx.Err(); err != nil {
			return Unchanged, err
		}
		if v.version <= from || v.version > to {
			continue
		}

		step, ok := v.steps[itemType]
		if !ok {
			continue
		}

		switch step(item, mctx) {
		case Skip:
			return Skip, nil
		case Changed:
			result = Changed
		}
	}

	if result == Changed {
		item.Version = to
	}

	return result, nil
}
