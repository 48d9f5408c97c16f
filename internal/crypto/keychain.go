// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// AlgAESGCM is the algorithm tag written into every [Ciphertext].
const AlgAESGCM = "aes-256-gcm-b64"

// ErrUnsupportedAlg is returned when a payload names an algorithm this
// package cannot decrypt.
var ErrUnsupportedAlg = errors.New("unsupported cipher algorithm")

// Ciphertext is one encrypted payload. Cipher and IV are standard base64.
type Ciphertext struct {
	Cipher string
	IV     string
	Alg    string
	Length int
}

// itemCipher is the private implementation of [ItemCipher].
type itemCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewItemCipher constructs an [ItemCipher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewItemCipher() ItemCipher {
	return &itemCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateKey reads a random 256-bit data key from the OS CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey implements [ItemCipher].
func (c *itemCipher) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// EncryptMulti implements [ItemCipher]. Each payload gets its own random
// 12-byte nonce, returned base64-encoded in IV.
func (c *itemCipher) EncryptMulti(key []byte, plaintexts []string) ([]Ciphertext, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	out := make([]Ciphertext, 0, len(plaintexts))
	for i, plain := range plaintexts {
		nonce := make([]byte, gcm.NonceSize())
		if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
			return nil, fmt.Errorf("generate nonce for payload %d: %w", i, err)
		}

		sealed := gcm.Seal(nil, nonce, []byte(plain), nil)
		out = append(out, Ciphertext{
			Cipher: base64.StdEncoding.EncodeToString(sealed),
			IV:     base64.StdEncoding.EncodeToString(nonce),
			Alg:    AlgAESGCM,
			Length: len(plain),
		})
	}

	return out, nil
}

// DecryptMulti implements [ItemCipher].
func (c *itemCipher) DecryptMulti(key []byte, ciphertexts []Ciphertext) ([]string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ciphertexts))
	for i, ct := range ciphertexts {
		if ct.Alg != "" && ct.Alg != AlgAESGCM {
			return nil, fmt.Errorf("payload %d: %w: %s", i, ErrUnsupportedAlg, ct.Alg)
		}

		nonce, err := base64.StdEncoding.DecodeString(ct.IV)
		if err != nil {
			return nil, fmt.Errorf("decode iv of payload %d: %w", i, err)
		}
		if len(nonce) != gcm.NonceSize() {
			return nil, fmt.Errorf("payload %d: invalid iv length %d", i, len(nonce))
		}

		sealed, err := base64.StdEncoding.DecodeString(ct.Cipher)
		if err != nil {
			return nil, fmt.Errorf("decode cipher of payload %d: %w", i, err)
		}

		// An error here almost always means a wrong key.
		plain, err := gcm.Open(nil, nonce, sealed, nil)
		if err != nil {
			return nil, fmt.Errorf("decrypt payload %d: %w", i, err)
		}

		out = append(out, string(plain))
	}

	return out, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
