package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	"github.com/allisson/secure/internal/testutil"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		cipher, err := NewChaCha20Poly1305(testutil.RandomKey(t, 32))
		assert.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("invalid key size", func(t *testing.T) {
		for _, size := range []int{16, 24, 64} {
			cipher, err := NewChaCha20Poly1305(make([]byte, size))
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
			assert.Nil(t, cipher)

			xcipher, err := NewXChaCha20Poly1305(make([]byte, size))
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
			assert.Nil(t, xcipher)
		}
	})
}

func TestChaCha20Poly1305Cipher_Decrypt(t *testing.T) {
	key := testutil.RandomKey(t, 32)

	tests := []struct {
		name      string
		alg       cryptoDomain.Algorithm
		newCipher func([]byte) (*ChaCha20Poly1305Cipher, error)
		nonceSize int
	}{
		{"chacha20", cryptoDomain.ChaCha20, NewChaCha20Poly1305, 12},
		{"xchacha20", cryptoDomain.XChaCha20, NewXChaCha20Poly1305, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := tt.newCipher(key)
			require.NoError(t, err)

			plaintext := []byte("Hello, World!")
			payload := sealedPayload(t, tt.alg, key, plaintext)
			assert.Len(t, payload.Nonce, tt.nonceSize)

			decrypted, err := cipher.Decrypt(payload.Sealed(), payload.Nonce, payload.Header())
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)

			empty := sealedPayload(t, tt.alg, key, nil)
			decrypted, err = cipher.Decrypt(empty.Sealed(), empty.Nonce, empty.Header())
			require.NoError(t, err)
			assert.Empty(t, decrypted)

			tampered := payload.Sealed()
			tampered[len(tampered)-1] ^= 0x80
			_, err = cipher.Decrypt(tampered, payload.Nonce, payload.Header())
			assert.Error(t, err)

			otherCipher, err := tt.newCipher(testutil.RandomKey(t, 32))
			require.NoError(t, err)
			_, err = otherCipher.Decrypt(payload.Sealed(), payload.Nonce, payload.Header())
			assert.Error(t, err)
		})
	}
}
