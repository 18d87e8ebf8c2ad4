package domain

import (
	"github.com/allisson/secure/internal/errors"
)

// Cryptographic error definitions.
//
// These domain-specific errors wrap the base kinds from internal/errors so a
// caller can test for the precise failure or for its category.
var (
	// ErrKeyNotFound indicates no explicit key was supplied and the environment
	// key (KPOW_SECURE_KEY) is unset or empty.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "decryption key not found")

	// ErrInvalidKey indicates the key bytes are empty, cannot be decoded, or have
	// a length the selected cipher does not accept.
	//
	// Accepted lengths: 16, 24 or 32 bytes for AES-GCM and 32 bytes for the
	// ChaCha20 family.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrMalformedPayload indicates the payload is structurally invalid: too short,
	// an unknown version byte, or undecodable base64.
	ErrMalformedPayload = errors.Wrap(errors.ErrInvalidInput, "malformed payload")

	// ErrDecryptionFailed indicates authentication of the payload failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext, nonce, header or tag has been tampered with
	//
	// The specific cause is never disclosed so the decoder cannot be used as an oracle.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
