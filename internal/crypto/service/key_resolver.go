package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// KeySource is the environment key configuration, read once at the call
// boundary and injected into the resolver.
type KeySource struct {
	// Value is the raw content of KPOW_SECURE_KEY.
	Value string
	// Encoding is how Value encodes the key bytes.
	Encoding cryptoDomain.KeyEncoding
	// KMSKeyURI, when set, means the decoded Value is a KMS ciphertext that
	// must be unwrapped to obtain the key.
	KMSKeyURI string
}

// EnvKeyResolver implements KeyResolver.
//
// It holds no mutable state. The environment key is taken from the injected
// KeySource, never from os.Getenv, so tests can substitute any source.
type EnvKeyResolver struct {
	source     KeySource
	kmsService KMSService
}

// NewKeyResolver creates a resolver for the given key source. kmsService may be
// nil when source.KMSKeyURI is empty.
func NewKeyResolver(source KeySource, kmsService KMSService) *EnvKeyResolver {
	return &EnvKeyResolver{
		source:     source,
		kmsService: kmsService,
	}
}

// Explicit wraps a caller-supplied key. The bytes are copied.
// Returns ErrInvalidKey if key is empty or has an unsupported length.
func (r *EnvKeyResolver) Explicit(key []byte) (*cryptoDomain.SecretKey, error) {
	return cryptoDomain.NewSecretKey(key, cryptoDomain.ProvenanceExplicit)
}

// FromEnvironment resolves the key held by the configured environment value.
//
// Returns:
//   - ErrKeyNotFound if the value is unset or blank
//   - ErrInvalidKey if the value cannot be decoded, cannot be unwrapped by the
//     KMS, or has an unsupported length
func (r *EnvKeyResolver) FromEnvironment(ctx context.Context) (*cryptoDomain.SecretKey, error) {
	if strings.TrimSpace(r.source.Value) == "" {
		return nil, fmt.Errorf("%w: %s is not set", cryptoDomain.ErrKeyNotFound, cryptoDomain.SecureKeyEnvVar)
	}

	key, err := decodeKey(r.source.Value, r.source.Encoding)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	if r.source.KMSKeyURI != "" {
		unwrapped, err := r.unwrap(ctx, key)
		if err != nil {
			return nil, err
		}
		defer cryptoDomain.Zero(unwrapped)
		key = unwrapped
	}

	return cryptoDomain.NewSecretKey(key, cryptoDomain.ProvenanceEnvironment)
}

// unwrap decrypts a KMS-wrapped key. The keeper is opened and closed per call.
func (r *EnvKeyResolver) unwrap(ctx context.Context, wrapped []byte) ([]byte, error) {
	if r.kmsService == nil {
		return nil, fmt.Errorf("%w: KMS key URI configured without a KMS service", cryptoDomain.ErrInvalidKey)
	}

	keeper, err := r.kmsService.OpenKeeper(ctx, r.source.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKey, err)
	}
	defer func() {
		_ = keeper.Close()
	}()

	key, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unwrap key with KMS: %v", cryptoDomain.ErrInvalidKey, err)
	}
	return key, nil
}

// decodeKey turns the textual environment value into key bytes.
func decodeKey(value string, encoding cryptoDomain.KeyEncoding) ([]byte, error) {
	switch encoding {
	case cryptoDomain.KeyEncodingBase64, "":
		key, err := cryptoDomain.DecodeBase64(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not valid base64", cryptoDomain.ErrInvalidKey, cryptoDomain.SecureKeyEnvVar)
		}
		return key, nil
	case cryptoDomain.KeyEncodingHex:
		key, err := hex.DecodeString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not valid hex", cryptoDomain.ErrInvalidKey, cryptoDomain.SecureKeyEnvVar)
		}
		return key, nil
	case cryptoDomain.KeyEncodingRaw:
		return []byte(value), nil
	default:
		return nil, fmt.Errorf("%w: unsupported key encoding %q", cryptoDomain.ErrInvalidKey, encoding)
	}
}
