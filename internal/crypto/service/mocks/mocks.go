// Package mocks provides mock implementations of the crypto service interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// MockKeyResolver is a mock implementation of KeyResolver for testing.
type MockKeyResolver struct {
	mock.Mock
}

// Explicit mocks the Explicit method of KeyResolver.
func (m *MockKeyResolver) Explicit(key []byte) (*cryptoDomain.SecretKey, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.SecretKey), args.Error(1)
}

// FromEnvironment mocks the FromEnvironment method of KeyResolver.
func (m *MockKeyResolver) FromEnvironment(ctx context.Context) (*cryptoDomain.SecretKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.SecretKey), args.Error(1)
}

// MockCipherCodec is a mock implementation of CipherCodec for testing.
type MockCipherCodec struct {
	mock.Mock
}

// Decrypt mocks the Decrypt method of CipherCodec.
func (m *MockCipherCodec) Decrypt(key *cryptoDomain.SecretKey, payload []byte) ([]byte, error) {
	args := m.Called(key, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
