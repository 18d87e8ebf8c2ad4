package usecase

import (
	"context"
	"fmt"
	"os"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderDomain "github.com/allisson/secure/internal/decoder/domain"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// fileLoader implements FileLoader on top of a DecoderUseCase.
type fileLoader struct {
	decoder DecoderUseCase
}

// NewFileLoader creates a FileLoader that delegates decoding to decoder.
func NewFileLoader(decoder DecoderUseCase) FileLoader {
	return &fileLoader{decoder: decoder}
}

// LoadProperties reads the key and payload files and decodes the payload as properties.
//
// Returns ErrFileIO wrapping the *fs.PathError when either file cannot be read;
// decoding errors are returned unchanged.
func (f *fileLoader) LoadProperties(
	ctx context.Context,
	keyPath, payloadPath string,
) (*propertiesDomain.Properties, error) {
	key, payload, err := readKeyAndPayload(keyPath, payloadPath)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return f.decoder.PropertiesWithKey(ctx, key, payload)
}

// LoadText reads the key and payload files and decodes the payload as text.
func (f *fileLoader) LoadText(ctx context.Context, keyPath, payloadPath string) (string, error) {
	key, payload, err := readKeyAndPayload(keyPath, payloadPath)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(key)

	return f.decoder.TextWithKey(ctx, key, payload)
}

// readKeyAndPayload reads the key file first, then the payload file.
func readKeyAndPayload(keyPath, payloadPath string) (key, payload []byte, err error) {
	key, err = ReadKeyFile(keyPath)
	if err != nil {
		return nil, nil, err
	}

	payload, err = ReadPayloadFile(payloadPath)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, nil, err
	}

	return key, payload, nil
}

// ReadKeyFile returns the literal key bytes stored at path, without trimming.
// Returns ErrFileIO wrapping the *fs.PathError when the file cannot be read.
// Callers should zero the key once done.
func ReadKeyFile(path string) ([]byte, error) {
	return readFile("key file", path)
}

// ReadPayloadFile returns the payload bytes stored at path.
// Returns ErrFileIO wrapping the *fs.PathError when the file cannot be read.
func ReadPayloadFile(path string) ([]byte, error) {
	return readFile("payload file", path)
}

func readFile(kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", decoderDomain.ErrFileIO, kind, err)
	}
	return data, nil
}
