package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// ItemCipher encrypts and decrypts item payloads with the user's data key.
// It knows nothing about the network, the store or the item schema; its
// only job is turning plaintext JSON into [Ciphertext] and back.
//
// Scheme:
//
//	Key        = DeriveKey(password, salt)         (argon2id)
//	Ciphertext = EncryptMulti(Key, plaintexts)     (AES-256-GCM, random nonce)
//	Plaintext  = DecryptMulti(Key, ciphertexts)
type ItemCipher interface {
	// DeriveKey derives a 256-bit data key from the user's password and
	// salt using Argon2id.
	DeriveKey(password string, salt []byte) []byte

	// EncryptMulti encrypts every plaintext with key. The result has the
	// same length and order as plaintexts.
	EncryptMulti(key []byte, plaintexts []string) ([]Ciphertext, error)

	// DecryptMulti decrypts every ciphertext with key. It fails on the
	// first payload whose authentication tag does not verify.
	DecryptMulti(key []byte, ciphertexts []Ciphertext) ([]string, error)
}
