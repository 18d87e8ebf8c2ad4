package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// PayloadCodec implements CipherCodec on top of an AEADManager.
//
// The version byte of each payload selects the algorithm and is bound as AEAD
// additional data. Every authentication failure is reported as the single
// ErrDecryptionFailed, so a wrong key and a tampered payload are
// indistinguishable to the caller.
type PayloadCodec struct {
	aeadManager AEADManager
}

// NewCipherCodec creates a PayloadCodec.
func NewCipherCodec(aeadManager AEADManager) *PayloadCodec {
	return &PayloadCodec{aeadManager: aeadManager}
}

// Decrypt parses raw payload bytes and returns the authenticated plaintext.
//
// Returns:
//   - ErrInvalidKey if key is nil or its length does not fit the payload's algorithm
//   - ErrMalformedPayload if the byte layout is inconsistent with its version
//   - ErrDecryptionFailed if tag verification fails
func (c *PayloadCodec) Decrypt(key *cryptoDomain.SecretKey, payload []byte) ([]byte, error) {
	if key == nil || len(key.Key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", cryptoDomain.ErrInvalidKey)
	}

	parsed, err := cryptoDomain.ParseEncryptedPayload(payload)
	if err != nil {
		return nil, err
	}

	alg, ok := parsed.Version.Algorithm()
	if !ok {
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	aead, err := c.aeadManager.CreateCipher(key.Key, alg)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Decrypt(parsed.Sealed(), parsed.Nonce, parsed.Header())
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}
