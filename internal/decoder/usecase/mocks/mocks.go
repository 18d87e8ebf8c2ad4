// Package mocks provides mock implementations of the decoder use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// MockDecoderUseCase is a mock implementation of DecoderUseCase for testing.
type MockDecoderUseCase struct {
	mock.Mock
}

// Text mocks the Text method of DecoderUseCase.
func (m *MockDecoderUseCase) Text(ctx context.Context, payload []byte) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// TextWithKey mocks the TextWithKey method of DecoderUseCase.
func (m *MockDecoderUseCase) TextWithKey(ctx context.Context, key, payload []byte) (string, error) {
	args := m.Called(ctx, key, payload)
	return args.String(0), args.Error(1)
}

// Properties mocks the Properties method of DecoderUseCase.
func (m *MockDecoderUseCase) Properties(
	ctx context.Context,
	payload []byte,
) (*propertiesDomain.Properties, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*propertiesDomain.Properties), args.Error(1)
}

// PropertiesWithKey mocks the PropertiesWithKey method of DecoderUseCase.
func (m *MockDecoderUseCase) PropertiesWithKey(
	ctx context.Context,
	key, payload []byte,
) (*propertiesDomain.Properties, error) {
	args := m.Called(ctx, key, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*propertiesDomain.Properties), args.Error(1)
}

// MockFileLoader is a mock implementation of FileLoader for testing.
type MockFileLoader struct {
	mock.Mock
}

// LoadProperties mocks the LoadProperties method of FileLoader.
func (m *MockFileLoader) LoadProperties(
	ctx context.Context,
	keyPath, payloadPath string,
) (*propertiesDomain.Properties, error) {
	args := m.Called(ctx, keyPath, payloadPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*propertiesDomain.Properties), args.Error(1)
}

// LoadText mocks the LoadText method of FileLoader.
func (m *MockFileLoader) LoadText(ctx context.Context, keyPath, payloadPath string) (string, error) {
	args := m.Called(ctx, keyPath, payloadPath)
	return args.String(0), args.Error(1)
}
