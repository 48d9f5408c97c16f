package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-note-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldItemType targets the type discriminant of a transfer batch.
	FieldItemType = "type"

	// FieldCount targets the item count announced by a transfer batch.
	FieldCount = "count"

	// FieldItems targets every encrypted item of a transfer batch.
	FieldItems = "items"

	// FieldDeviceID targets a device identifier.
	FieldDeviceID = "device_id"

	// FieldUploads targets the entries of an upload manifest.
	FieldUploads = "uploads"
)

// SyncValidator implements [Validator] for the payloads a device submits to
// the sync server: transfer batches, device identities and upload
// manifests.
type SyncValidator struct {
}

// NewSyncValidator constructs a new SyncValidator and returns it as the
// Validator interface.
func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.SyncTransferItem / *models.SyncTransferItem
//   - models.DeviceIdentity / *models.DeviceIdentity
//   - []models.AttachmentUpload
//
// Returns ErrUnsupportedType for anything else.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncTransferItem:
		return v.validateTransferItem(ctx, value, fields...)
	case *models.SyncTransferItem:
		return v.validateTransferItem(ctx, *value, fields...)

	case models.DeviceIdentity:
		return v.validateDevice(value, fields...)
	case *models.DeviceIdentity:
		return v.validateDevice(*value, fields...)

	case []models.AttachmentUpload:
		return v.validateUploads(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTransferItem validates one pushed batch.
//
// Default validated fields: type, count, items.
func (v *SyncValidator) validateTransferItem(ctx context.Context, batch models.SyncTransferItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemType, FieldCount, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldItemType:
			if !slices.Contains(models.SyncItemTypes, batch.Type) {
				return ErrInvalidItemType
			}
		case FieldCount:
			if batch.Count != len(batch.Items) {
				return ErrCountMismatch
			}
		case FieldItems:
			if len(batch.Items) == 0 {
				return ErrEmptyBatch
			}
			if err := v.validateEncryptedItems(ctx, batch.Items); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateEncryptedItems(ctx context.Context, items []models.EncryptedItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch {
		case it.ID == "":
			return ErrInvalidItemID
		case it.Cipher == "":
			return ErrEmptyCipher
		case it.IV == "":
			return ErrEmptyIV
		case it.V < 0:
			return ErrInvalidVersion
		}

		if _, dup := seen[it.ID]; dup {
			return ErrDuplicateItemID
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

func (v *SyncValidator) validateDevice(device models.DeviceIdentity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if device.DeviceID == "" || len(device.DeviceID) > 64 {
				return ErrInvalidDeviceID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *SyncValidator) validateUploads(uploads []models.AttachmentUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUploads}
	}

	for _, f := range fields {
		if f != FieldUploads {
			return ErrUnknownField
		}
		for _, u := range uploads {
			if u.Hash == "" {
				return ErrInvalidUploadHash
			}
			if u.ChunkSize <= 0 {
				return ErrInvalidChunkSize
			}
		}
	}
	return nil
}
