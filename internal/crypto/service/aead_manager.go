package service

import (
	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Returns ErrInvalidKey if the key length does not fit the algorithm or
// ErrUnsupportedAlgorithm if algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	var (
		aead AEAD
		err  error
	)

	switch alg {
	case cryptoDomain.AESGCM:
		aead, err = NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		aead, err = NewChaCha20Poly1305(key)
	case cryptoDomain.XChaCha20:
		aead, err = NewXChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, err
	}

	return aead, nil
}
