package migration

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// versions must stay sorted by version.
var versions = []version{
	{
		version: 5.2,
		steps: map[models.ItemType]stepFunc{
			// Colors used to be tags with a reserved title; the title is
			// normalized so that lookups by name are case-insensitive.
			models.ItemTypeTag: func(item *models.Item, _ Context) Result {
				lower := strings.ToLower(item.Title)
				if !models.IsReservedColor(item.Title) || lower == item.Title {
					return Unchanged
				}
				item.Title = lower
				return Changed
			},
			models.ItemTypeNote: dropFields("color", "tags"),
		},
	},
	{
		version: 5.6,
		steps: map[models.ItemType]stepFunc{
			models.ItemTypeNotebook: dropFields("topics"),
			models.ItemTypeTopic:    skip,
		},
	},
	{
		version: 5.7,
		steps: map[models.ItemType]stepFunc{
			models.ItemTypeNote: func(item *models.Item, _ Context) Result {
				r := dropFields("notebooks")(item, ContextSync)
				if item.DateEdited == 0 && item.DateModified != 0 {
					item.DateEdited = item.DateModified
					r = Changed
				}
				return r
			},
			models.ItemTypeAttachment: renameField("noteIds", "notes"),
		},
	},
	{
		version: 5.8,
		steps: map[models.ItemType]stepFunc{
			models.ItemTypeShortcut: func(item *models.Item, _ Context) Result {
				if item.ItemType == models.ItemTypeTopic {
					return Skip
				}
				return Unchanged
			},
			models.ItemTypeSettings: skip,
		},
	},
	{
		version: 5.9,
		steps: map[models.ItemType]stepFunc{
			// Trash wrappers written before 5.9 carry no deletion date.
			models.ItemTypeTrash: func(item *models.Item, _ Context) Result {
				if _, ok := item.Field("dateDeleted"); ok {
					return Unchanged
				}
				if err := item.SetField("dateDeleted", item.DateModified); err != nil {
					return Unchanged
				}
				return Changed
			},
			models.ItemTypeNote: func(item *models.Item, mctx Context) Result {
				if mctx != ContextBackup || item.Type != models.ItemTypeTrash {
					return Unchanged
				}
				return dropFields("readonly")(item, mctx)
			},
		},
	},
}

func skip(*models.Item, Context) Result {
	return Skip
}

func dropFields(names ...string) stepFunc {
	return func(item *models.Item, _ Context) Result {
		r := Unchanged
		for _, name := range names {
			if item.DeleteField(name) {
				r = Changed
			}
		}
		return r
	}
}

func renameField(from, to string) stepFunc {
	return func(item *models.Item, _ Context) Result {
		raw, ok := item.Field(from)
		if !ok {
			return Unchanged
		}
		item.DeleteField(from)
		if _, exists := item.Field(to); !exists {
			item.Fields[to] = raw
		}
		return Changed
	}
}
