package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Password-based authenticated encryption for export files. The output is
// salt || nonce || ciphertext+tag; the key is derived per file from the
// password and a random salt, so encrypting the same plaintext twice
// yields different bytes.

const (
	saltLength  = 16
	keyLength   = 32
	contextInfo = "ShiftTracker-Export"
)

var (
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrInvalidData      = errors.New("encrypted data is invalid or truncated")
)

// Encrypt seals data with a key derived from password and a fresh salt.
func Encrypt(data []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, ErrEncryptionFailed
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, ErrEncryptionFailed
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, ErrEncryptionFailed
	}

	out := make([]byte, 0, saltLength+len(nonce)+len(data)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, data, nil), nil
}

// Decrypt reverses Encrypt. It fails closed: wrong passwords and
// corrupted or too-short input return an error and no plaintext.
func Decrypt(data []byte, password string) ([]byte, error) {
	if len(data) <= saltLength {
		return nil, ErrInvalidData
	}
	salt := data[:saltLength]
	rest := data[saltLength:]

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrInvalidData
	}
	nonce := rest[:gcm.NonceSize()]
	ciphertext := rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := make([]byte, keyLength)
	kdf := hkdf.New(sha256.New, []byte(password), salt, []byte(contextInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
