package crypto

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-sync/models"
)

// KeyStore keeps the user's data key and vault key material in memory.
// It is safe for concurrent use.
type KeyStore struct {
	mu       sync.RWMutex
	key      []byte
	vaultKey *models.VaultKey
}

// NewKeyStore returns an empty KeyStore.
func NewKeyStore() *KeyStore {
	return &KeyStore{}
}

// SetEncryptionKey installs the data key used to encrypt and decrypt items.
func (k *KeyStore) SetEncryptionKey(key []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.key = slices.Clone(key)
}

// EncryptionKey returns the data key; ok is false when none is installed.
func (k *KeyStore) EncryptionKey() (key []byte, ok bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if len(k.key) == 0 {
		return nil, false
	}
	return slices.Clone(k.key), true
}

// SetVaultKey installs the vault key material received from the server.
func (k *KeyStore) SetVaultKey(vaultKey models.VaultKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.vaultKey = &vaultKey
}

// VaultKey returns the installed vault key material, or nil.
func (k *KeyStore) VaultKey() *models.VaultKey {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.vaultKey == nil {
		return nil
	}
	vk := *k.vaultKey
	return &vk
}

// Clear forgets every key (logout).
func (k *KeyStore) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.key)
	k.key = nil
	k.vaultKey = nil
}
