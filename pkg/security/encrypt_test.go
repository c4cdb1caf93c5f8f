package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCipherRoundTrip(t *testing.T) {
	cipher := NewFieldCipher("unit-test-salt")

	plaintext := "Dear diary, today was a good day."
	encoded, err := cipher.EncryptField("user-1", plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encoded)

	decoded, err := cipher.DecryptField("user-1", encoded)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decoded)
}

func TestFieldCipherWrongUser(t *testing.T) {
	cipher := NewFieldCipher("unit-test-salt")

	encoded, err := cipher.EncryptField("user-1", "private thoughts")
	require.NoError(t, err)

	_, err = cipher.DecryptField("user-2", encoded)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestFieldCipherNonceUniqueness(t *testing.T) {
	cipher := NewFieldCipher("unit-test-salt")

	a, err := cipher.EncryptField("user-1", "same text")
	require.NoError(t, err)
	b, err := cipher.EncryptField("user-1", "same text")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFieldCipherGarbageInput(t *testing.T) {
	cipher := NewFieldCipher("unit-test-salt")

	_, err := cipher.DecryptField("user-1", "not base64!!")
	assert.ErrorIs(t, err, ErrDecryptFailed)

	_, err = cipher.DecryptField("user-1", "c2hvcnQ=")
	assert.ErrorIs(t, err, ErrDecryptFailed)
}
