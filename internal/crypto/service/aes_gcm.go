package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"slices"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES in Galois/Counter Mode.
//
// Security properties:
//   - 128, 192 or 256-bit key
//   - 12-byte nonce
//   - 16-byte authentication tag appended to the ciphertext
//
// The cipher instance is stateless and safe for concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-GCM cipher instance.
// Returns ErrInvalidKey if key is not 16, 24 or 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if !slices.Contains(cryptoDomain.ValidKeySizes, len(key)) {
		return nil, fmt.Errorf(
			"%w: AES-GCM key must be 16, 24 or 32 bytes, got %d",
			cryptoDomain.ErrInvalidKey,
			len(key),
		)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Decrypt verifies the tag and decrypts ciphertext with the provided nonce and AAD.
// No plaintext is returned when verification fails.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce size %d", len(nonce))
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
