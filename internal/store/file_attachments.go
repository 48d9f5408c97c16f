package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// attachmentFileStorage is the default implementation of [FileStore]. Every
// attachment file lives at <dir>/<hash>.
type attachmentFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewAttachmentFileStorage constructs a [FileStore] rooted at dir.
func NewAttachmentFileStorage(dir string, logger *logger.Logger) FileStore {
	return &attachmentFileStorage{dir: dir, logger: logger}
}

// Exists reports whether the file of hash has been downloaded.
func (a *attachmentFileStorage) Exists(ctx context.Context, hash string) (bool, error) {
	path, err := a.path(hash)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat attachment file: %w", err)
	}
}

// Delete removes the file of hash. A missing file is not an error.
func (a *attachmentFileStorage) Delete(ctx context.Context, hash string) error {
	path, err := a.path(hash)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "attachmentFileStorage.Delete").
			Str("hash", hash).
			Msg("failed to delete attachment file")
		return fmt.Errorf("delete attachment file: %w", err)
	}

	return nil
}

func (a *attachmentFileStorage) path(hash string) (string, error) {
	if hash == "" || strings.ContainsAny(hash, `/\`) || hash == "." || hash == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileHash, hash)
	}
	return filepath.Join(a.dir, hash), nil
}
