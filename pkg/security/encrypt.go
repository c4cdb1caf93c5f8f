package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// FieldCipher encrypts sensitive record fields with AES-256-GCM. The key is
// derived per user so one user's data can never decrypt with another's key.
type FieldCipher struct {
	salt string
}

func NewFieldCipher(salt string) *FieldCipher {
	return &FieldCipher{salt: salt}
}

var ErrDecryptFailed = errors.New("decrypt failed")

func (f *FieldCipher) deriveKey(userID string) []byte {
	sum := sha256.Sum256([]byte(userID + f.salt))
	return sum[:]
}

// EncryptField seals plaintext under the user's derived key. The result is
// base64(nonce || ciphertext || tag).
func (f *FieldCipher) EncryptField(userID, plaintext string) (string, error) {
	block, err := aes.NewCipher(f.deriveKey(userID))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptField opens a value produced by EncryptField. A wrong user id fails
// tag verification and returns ErrDecryptFailed.
func (f *FieldCipher) DecryptField(userID, encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecryptFailed
	}

	block, err := aes.NewCipher(f.deriveKey(userID))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(raw) < gcm.NonceSize() {
		return "", ErrDecryptFailed
	}

	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}

	return string(plaintext), nil
}
