// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// ItemType is the type discriminant of a synced item.
type ItemType string

const (
	ItemTypeNote       ItemType = "note"
	ItemTypeNotebook   ItemType = "notebook"
	ItemTypeTag        ItemType = "tag"
	ItemTypeColor      ItemType = "color"
	ItemTypeContent    ItemType = "content"
	ItemTypeAttachment ItemType = "attachment"
	ItemTypeRelation   ItemType = "relation"
	ItemTypeReminder   ItemType = "reminder"
	ItemTypeShortcut   ItemType = "shortcut"
	ItemTypeTrash      ItemType = "trash"
	ItemTypeTopic      ItemType = "topic"
	ItemTypeSettings   ItemType = "settings"
)

// SyncItemTypes lists the item types exchanged with the server, in the
// order the collector scans them. Attachments go first so that notes never
// reference metadata the server has not seen yet.
var SyncItemTypes = []ItemType{
	ItemTypeAttachment,
	ItemTypeContent,
	ItemTypeNote,
	ItemTypeNotebook,
	ItemTypeTag,
	ItemTypeColor,
	ItemTypeReminder,
	ItemTypeRelation,
	ItemTypeShortcut,
}

// ReservedColors are tag titles that are treated as colors.
var ReservedColors = []string{"red", "orange", "yellow", "green", "blue", "purple", "gray"}

// IsReservedColor reports whether title names a reserved color
// (case-insensitive).
func IsReservedColor(title string) bool {
	for _, c := range ReservedColors {
		if strings.EqualFold(c, title) {
			return true
		}
	}
	return false
}

// Item is a versioned, typed record synced between the local store and the
// server. Well-known attributes are typed fields; every other payload field
// is kept verbatim in Fields so that a decode/encode round trip is lossless.
//
// A tombstone is an Item with Deleted set and only ID (and usually Type)
// populated. See [NewTombstone].
type Item struct {
	// ID is the stable identifier of the item.
	ID string `json:"id"`

	// Type is the stored type discriminant.
	Type ItemType `json:"type"`

	// ItemType is the original type of a trash-wrapped item.
	ItemType ItemType `json:"itemType,omitempty"`

	// Title is the user-visible title (notes, notebooks, tags, colors).
	Title string `json:"title,omitempty"`

	// Data is the body of a content item.
	Data string `json:"data,omitempty"`

	// NoteID links a content item to its note.
	NoteID string `json:"noteId,omitempty"`

	// Hash is the content hash of an attachment's file.
	Hash string `json:"hash,omitempty"`

	// Cipher marks an item whose payload is still opaque (e.g. vault-locked
	// content); such items are never migrated.
	Cipher string `json:"cipher,omitempty"`

	// Version is the schema version the payload was written with.
	Version float64 `json:"v,omitempty"`

	DateCreated  int64 `json:"dateCreated,omitempty"`
	DateModified int64 `json:"dateModified,omitempty"`
	DateEdited   int64 `json:"dateEdited,omitempty"`

	// Remote is set on items that came from the server.
	Remote bool `json:"remote,omitempty"`

	// Synced is false while the item has local changes the server has not
	// acknowledged.
	Synced bool `json:"synced"`

	// Conflicted is set on content items that were edited concurrently on
	// this device and another one.
	Conflicted bool `json:"conflicted,omitempty"`

	// Local holds the local state of a conflicted content item. The item
	// itself carries the remote version.
	Local *Item `json:"localState,omitempty"`

	// Deleted marks a tombstone.
	Deleted bool `json:"deleted,omitempty"`

	// Fields holds every payload field without a typed counterpart.
	Fields map[string]json.RawMessage `json:"-"`
}

// MaybeDeletedItem is either a live item or a tombstone.
type MaybeDeletedItem = *Item

var knownItemKeys = []string{
	"id", "type", "itemType", "title", "data", "noteId", "hash", "cipher", "v",
	"dateCreated", "dateModified", "dateEdited", "remote", "synced",
	"conflicted", "localState", "deleted",
}

// itemAlias drops the custom JSON methods of Item.
type itemAlias Item

// UnmarshalJSON decodes typed fields and keeps the remaining keys in Fields.
func (i *Item) UnmarshalJSON(b []byte) error {
	var alias itemAlias
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, k := range knownItemKeys {
		delete(raw, k)
	}

	*i = Item(alias)
	if len(raw) > 0 {
		i.Fields = raw
	} else {
		i.Fields = nil
	}

	return nil
}

// MarshalJSON encodes typed fields and merges Fields back in. Typed fields
// take precedence over same-named entries in Fields.
func (i Item) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(itemAlias(i))
	if err != nil || len(i.Fields) == 0 {
		return b, err
	}

	var out map[string]json.RawMessage
	if err = json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	for k, v := range i.Fields {
		if _, typed := out[k]; typed || slices.Contains(knownItemKeys, k) {
			continue
		}
		out[k] = v
	}

	return json.Marshal(out)
}

// NewTombstone returns a deletion marker for id.
func NewTombstone(id string, itemType ItemType) *Item {
	return &Item{ID: id, Type: itemType, Deleted: true}
}

// IsTombstone reports whether the item is a deletion marker.
func (i *Item) IsTombstone() bool {
	return i != nil && i.Deleted
}

// IsCipher reports whether the item still carries an opaque cipher payload.
func (i *Item) IsCipher() bool {
	return i.Cipher != ""
}

// RoutingType is the type under which the item is merged, stored and
// batched: the inner type for trash-wrapped items, the stored type
// otherwise.
func (i *Item) RoutingType() ItemType {
	if i.Type == ItemTypeTrash && i.ItemType != "" {
		return i.ItemType
	}
	return i.Type
}

// Field returns the raw value of an untyped payload field.
func (i *Item) Field(name string) (json.RawMessage, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// SetField stores v as the JSON value of an untyped payload field.
func (i *Item) SetField(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if i.Fields == nil {
		i.Fields = make(map[string]json.RawMessage)
	}
	i.Fields[name] = raw
	return nil
}

// DeleteField removes an untyped payload field. It reports whether the
// field was present.
func (i *Item) DeleteField(name string) bool {
	if _, ok := i.Fields[name]; !ok {
		return false
	}
	delete(i.Fields, name)
	return true
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Fields = maps.Clone(i.Fields)
	c.Local = i.Local.Clone()
	return &c
}
