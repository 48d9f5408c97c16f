package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDeviceID   = errors.New("invalid device ID")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrCountMismatch     = errors.New("batch count does not match its items")
	ErrEmptyBatch        = errors.New("batch has no items")
	ErrInvalidItemID     = errors.New("invalid item ID")
	ErrEmptyCipher       = errors.New("cipher is required")
	ErrEmptyIV           = errors.New("iv is required")
	ErrInvalidVersion    = errors.New("invalid Version")
	ErrDuplicateItemID   = errors.New("duplicate item ID in batch")
	ErrInvalidUploadHash = errors.New("invalid upload hash")
	ErrInvalidChunkSize  = errors.New("invalid upload chunk size")
)
