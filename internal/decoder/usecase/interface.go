package usecase

import (
	"context"

	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// DecoderUseCase turns encrypted payloads into text or properties.
//
// Payloads are raw wire bytes or their base64 text. Methods without an
// explicit key use the key configured in the environment (KPOW_SECURE_KEY).
type DecoderUseCase interface {
	Text(ctx context.Context, payload []byte) (string, error)
	TextWithKey(ctx context.Context, key, payload []byte) (string, error)
	Properties(ctx context.Context, payload []byte) (*propertiesDomain.Properties, error)
	PropertiesWithKey(ctx context.Context, key, payload []byte) (*propertiesDomain.Properties, error)
}

// FileLoader decodes payloads stored on disk with a key stored on disk.
//
// The key file holds the literal key bytes. Both files are read before any
// decoding starts.
type FileLoader interface {
	LoadProperties(ctx context.Context, keyPath, payloadPath string) (*propertiesDomain.Properties, error)
	LoadText(ctx context.Context, keyPath, payloadPath string) (string, error)
}
