package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewMemoryUserRepository returns an empty in-memory UserRepository.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &memoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// CreateUser stores user under a fresh id. Emails are unique
// case-insensitively.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(user.Email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return models.User{}, ErrUserAlreadyExists
	}

	user.ID = r.ids.Generate()
	r.byID[user.ID] = user
	r.byEmail[email] = user.ID

	return user, nil
}

func (r *memoryUserRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

// vault is the sync state of one user.
type vault struct {
	// devices maps a device id to its fetch cursor.
	devices  map[string]uint64
	items    map[string]VaultItem
	seq      uint64
	vaultKey *models.VaultKey
	uploads  map[string][]models.AttachmentUpload
}

type memoryVaultRepository struct {
	mu     sync.Mutex
	vaults map[string]*vault

	logger *logger.Logger
}

// NewMemoryVaultRepository returns an empty in-memory VaultRepository.
func NewMemoryVaultRepository(logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("VaultRepository created")
	return &memoryVaultRepository{
		vaults: make(map[string]*vault),
		logger: logger,
	}
}

// vault returns the state of userID, creating it on first use. The caller
// holds r.mu.
func (r *memoryVaultRepository) vault(userID string) *vault {
	v, ok := r.vaults[userID]
	if !ok {
		v = &vault{
			devices: make(map[string]uint64),
			items:   make(map[string]VaultItem),
			uploads: make(map[string][]models.AttachmentUpload),
		}
		r.vaults[userID] = v
	}
	return v
}

func (r *memoryVaultRepository) AddDevice(ctx context.Context, userID, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vault(userID).devices[deviceID] = 0
	return nil
}

func (r *memoryVaultRepository) RemoveDevice(ctx context.Context, userID, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	if _, ok := v.devices[deviceID]; !ok {
		return ErrDeviceNotFound
	}
	delete(v.devices, deviceID)
	return nil
}

func (r *memoryVaultRepository) HasDevice(ctx context.Context, userID, deviceID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.vault(userID).devices[deviceID]
	return ok, nil
}

func (r *memoryVaultRepository) PutItems(ctx context.Context, userID, deviceID string, batch models.SyncTransferItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	if _, ok := v.devices[deviceID]; !ok {
		return ErrDeviceNotFound
	}

	for _, it := range batch.Items {
		v.seq++
		v.items[it.ID] = VaultItem{Type: batch.Type, Item: it, Seq: v.seq, Origin: deviceID}
	}
	return nil
}

// PendingItems skips items whose current version was pushed by deviceID
// itself.
func (r *memoryVaultRepository) PendingItems(ctx context.Context, userID, deviceID string) ([]VaultItem, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	cursor, ok := v.devices[deviceID]
	if !ok {
		return nil, 0, ErrDeviceNotFound
	}

	var pending []VaultItem
	for _, it := range v.items {
		if it.Seq > cursor && it.Origin != deviceID {
			pending = append(pending, it)
		}
	}
	slices.SortFunc(pending, func(a, b VaultItem) int {
		return cmp.Compare(a.Seq, b.Seq)
	})

	return pending, v.seq, nil
}

func (r *memoryVaultRepository) Acknowledge(ctx context.Context, userID, deviceID string, seq uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	cursor, ok := v.devices[deviceID]
	if !ok {
		return ErrDeviceNotFound
	}
	if seq > cursor {
		v.devices[deviceID] = seq
	}
	return nil
}

func (r *memoryVaultRepository) VaultKey(ctx context.Context, userID string) (*models.VaultKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.vault(userID).vaultKey
	if key == nil {
		return nil, nil
	}
	cp := *key
	return &cp, nil
}

func (r *memoryVaultRepository) SetVaultKey(ctx context.Context, userID string, key models.VaultKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	if v.vaultKey != nil {
		return false, nil
	}
	v.vaultKey = &key
	return true, nil
}

func (r *memoryVaultRepository) QueueUploads(ctx context.Context, userID, tag string, uploads []models.AttachmentUpload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vault(userID)
	for _, u := range uploads {
		if !slices.ContainsFunc(v.uploads[tag], func(q models.AttachmentUpload) bool { return q.Hash == u.Hash }) {
			v.uploads[tag] = append(v.uploads[tag], u)
		}
	}
	return nil
}

func (r *memoryVaultRepository) Uploads(ctx context.Context, userID, tag string) ([]models.AttachmentUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.vault(userID).uploads[tag]), nil
}
