// Package service provides the cryptographic services behind payload decoding:
// AEAD ciphers (AES-GCM, ChaCha20-Poly1305, XChaCha20-Poly1305), the payload
// codec, and key resolution from explicit input or process configuration.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// AEAD opens data sealed with Authenticated Encryption with Associated Data.
type AEAD interface {
	// Decrypt verifies and decrypts ciphertext (tag appended) using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyResolver determines which key bytes to use for a decryption call.
type KeyResolver interface {
	// Explicit wraps a caller-supplied key.
	Explicit(key []byte) (*cryptoDomain.SecretKey, error)

	// FromEnvironment resolves the key configured in the process environment.
	FromEnvironment(ctx context.Context) (*cryptoDomain.SecretKey, error)
}

// CipherCodec performs authenticated decryption of raw payload bytes.
type CipherCodec interface {
	// Decrypt parses the payload and returns the authenticated plaintext.
	Decrypt(key *cryptoDomain.SecretKey, payload []byte) ([]byte, error)
}
