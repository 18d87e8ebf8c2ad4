package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	"github.com/allisson/secure/internal/testutil"
)

func TestNewAESGCM(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		cipher, err := NewAESGCM(testutil.RandomKey(t, size))
		require.NoError(t, err, "size %d", size)
		assert.NotNil(t, cipher)
	}

	t.Run("invalid key size", func(t *testing.T) {
		cipher, err := NewAESGCM(make([]byte, 20))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
		assert.Nil(t, cipher)
	})
}

func TestAESGCMCipher_Decrypt(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		key := testutil.RandomKey(t, size)
		cipher, err := NewAESGCM(key)
		require.NoError(t, err)

		plaintext := []byte("Hello, World!")
		payload := sealedPayload(t, cryptoDomain.AESGCM, key, plaintext)
		assert.Len(t, payload.Nonce, 12)

		decrypted, err := cipher.Decrypt(payload.Sealed(), payload.Nonce, payload.Header())
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, plaintext, decrypted)
	}

	key := testutil.RandomKey(t, 32)
	cipher, err := NewAESGCM(key)
	require.NoError(t, err)

	t.Run("tampered ciphertext", func(t *testing.T) {
		payload := sealedPayload(t, cryptoDomain.AESGCM, key, []byte("data"))
		sealed := payload.Sealed()
		sealed[0] ^= 0x01

		decrypted, err := cipher.Decrypt(sealed, payload.Nonce, payload.Header())
		assert.Error(t, err)
		assert.Nil(t, decrypted)
	})

	t.Run("wrong aad", func(t *testing.T) {
		payload := sealedPayload(t, cryptoDomain.AESGCM, key, []byte("data"))

		_, err := cipher.Decrypt(payload.Sealed(), payload.Nonce, []byte{0x02})
		assert.Error(t, err)
	})

	t.Run("wrong nonce size does not panic", func(t *testing.T) {
		payload := sealedPayload(t, cryptoDomain.AESGCM, key, []byte("data"))

		assert.NotPanics(t, func() {
			_, err = cipher.Decrypt(payload.Sealed(), make([]byte, 8), payload.Header())
		})
		assert.Error(t, err)
	})
}
