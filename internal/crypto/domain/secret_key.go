package domain

import (
	"fmt"
	"slices"
)

// KeyProvenance records where a decryption key came from.
type KeyProvenance string

const (
	// ProvenanceExplicit marks a key passed directly by the caller.
	ProvenanceExplicit KeyProvenance = "explicit"
	// ProvenanceEnvironment marks a key resolved from process configuration.
	ProvenanceEnvironment KeyProvenance = "environment"
)

// KeyEncoding names the textual encoding of the environment key.
type KeyEncoding string

const (
	// KeyEncodingBase64 is the default: the variable holds base64 key bytes.
	KeyEncodingBase64 KeyEncoding = "base64"
	// KeyEncodingHex means the variable holds hex key bytes.
	KeyEncodingHex KeyEncoding = "hex"
	// KeyEncodingRaw means the variable value itself is the key.
	KeyEncodingRaw KeyEncoding = "raw"
)

// SecureKeyEnvVar is the environment variable holding the fallback key.
const SecureKeyEnvVar = "KPOW_SECURE_KEY"

// ValidKeySizes lists the key lengths accepted at resolution time.
var ValidKeySizes = []int{16, 24, 32}

// SecretKey holds resolved key material together with its provenance.
//
// A SecretKey is constructed per call and should be closed once the
// decryption completes so the key bytes are zeroed.
type SecretKey struct {
	Key        []byte
	Provenance KeyProvenance
}

// NewSecretKey copies key into a SecretKey after validating its length.
// Returns ErrInvalidKey if key is empty or its length is not in ValidKeySizes.
func NewSecretKey(key []byte, provenance KeyProvenance) (*SecretKey, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if !slices.Contains(ValidKeySizes, len(key)) {
		return nil, fmt.Errorf(
			"%w: key must be 16, 24 or 32 bytes, got %d",
			ErrInvalidKey,
			len(key),
		)
	}

	return &SecretKey{
		Key:        slices.Clone(key),
		Provenance: provenance,
	}, nil
}

// Close zeroes the key material. Safe to call more than once.
func (k *SecretKey) Close() {
	if k == nil {
		return
	}
	Zero(k.Key)
}
