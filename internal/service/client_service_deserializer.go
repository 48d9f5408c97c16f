package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/migration"
	"github.com/MKhiriev/go-note-sync/models"
)

type itemDeserializer struct {
	migrations migration.Service
}

// NewItemDeserializer returns an ItemDeserializer migrating items to
// [migration.CurrentVersion].
func NewItemDeserializer(migrations migration.Service) ItemDeserializer {
	return &itemDeserializer{migrations: migrations}
}

func (d *itemDeserializer) Deserialize(ctx context.Context, payload string, version float64, declared models.ItemType) (*models.Item, error) {
	var item models.Item
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	if item.ID == "" {
		return nil, fmt.Errorf("decode item: %w", ErrInvalidBatch)
	}

	item.Remote = true
	item.Synced = true

	// tombstones carry no schema; they only need a type to be routed
	if item.IsTombstone() {
		if item.Type == "" {
			item.Type = declared
		}
		if !syncedType(item.RoutingType()) {
			return nil, nil
		}
		return &item, nil
	}

	changed := false
	if !item.IsCipher() {
		res, err := d.migrations.MigrateItem(ctx, &item, version, migration.CurrentVersion, item.Type, migration.ContextSync)
		if err != nil {
			return nil, fmt.Errorf("migrate item %s: %w", item.ID, err)
		}
		if res == migration.Skip {
			return nil, nil
		}
		changed = res == migration.Changed

		if item.Type == models.ItemTypeTrash && item.ItemType != "" {
			res, err = d.migrations.MigrateItem(ctx, &item, version, migration.CurrentVersion, item.ItemType, migration.ContextBackup)
			if err != nil {
				return nil, fmt.Errorf("migrate trashed item %s: %w", item.ID, err)
			}
			if res == migration.Skip {
				return nil, nil
			}
			changed = changed || res == migration.Changed
		}
	}

	if item.Type == models.ItemTypeTag && models.IsReservedColor(item.Title) {
		item.Type = models.ItemTypeColor
	}

	if !syncedType(item.RoutingType()) {
		return nil, nil
	}

	if changed {
		item.Synced = false
	}

	return &item, nil
}

// syncedType reports whether items of t are first-class synced entities.
func syncedType(t models.ItemType) bool {
	switch t {
	case "", models.ItemTypeTopic, models.ItemTypeSettings:
		return false
	}
	return true
}
