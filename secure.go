// Package secure decodes encrypted secret payloads into text or ordered
// .properties maps.
//
// A payload is the wire form [version:1][nonce:N][ciphertext][tag:16], given
// raw or as base64 text. Version 0x01 is AES-GCM (12-byte nonce, 16/24/32-byte
// keys), 0x02 is ChaCha20-Poly1305 (12-byte nonce, 32-byte key) and 0x03 is
// XChaCha20-Poly1305 (24-byte nonce, 32-byte key).
//
// Functions without a key argument use the key in KPOW_SECURE_KEY, base64
// encoded unless SECURE_KEY_ENCODING says otherwise. Configuration is read
// from the process environment when the function is called, and the process
// environment is never modified.
//
//	props, err := secure.DecodePropertiesWithKey(ctx, key, payload)
//	if errors.Is(err, secure.ErrDecryptionFailed) {
//	    // wrong key or tampered payload
//	}
//	password, _ := props.Get("db.password")
package secure

import (
	"context"
	"fmt"

	"github.com/allisson/secure/internal/app"
	"github.com/allisson/secure/internal/config"
	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderDomain "github.com/allisson/secure/internal/decoder/domain"
	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	propertiesService "github.com/allisson/secure/internal/properties/service"
)

// Properties is an ordered string to string map.
type Properties = propertiesDomain.Properties

// Config holds the decoder configuration. LoadConfig fills it from the environment.
type Config = config.Config

// Error kinds returned by the decoder. Test with errors.Is.
var (
	ErrKeyNotFound      = cryptoDomain.ErrKeyNotFound
	ErrInvalidKey       = cryptoDomain.ErrInvalidKey
	ErrMalformedPayload = cryptoDomain.ErrMalformedPayload
	ErrDecryptionFailed = cryptoDomain.ErrDecryptionFailed
	ErrEncoding         = decoderDomain.ErrEncoding
	ErrPropertiesParse  = propertiesDomain.ErrPropertiesParse
	ErrFileIO           = decoderDomain.ErrFileIO
)

// Decoder decodes payloads using a fixed configuration.
// A Decoder is safe for concurrent use.
type Decoder struct {
	container *app.Container
	decoder   decoderUseCase.DecoderUseCase
	loader    decoderUseCase.FileLoader
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() *Config {
	return config.LoadEnv()
}

// New creates a Decoder for cfg. Returns ErrInvalidInput-kind errors when cfg
// does not validate.
func New(cfg *Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)

	decoder, err := container.DecoderUseCase()
	if err != nil {
		return nil, err
	}
	loader, err := container.FileLoader()
	if err != nil {
		return nil, err
	}

	return &Decoder{
		container: container,
		decoder:   decoder,
		loader:    loader,
	}, nil
}

// Text decrypts payload with the environment key.
func (d *Decoder) Text(ctx context.Context, payload []byte) (string, error) {
	return d.decoder.Text(ctx, payload)
}

// TextWithKey decrypts payload with key.
func (d *Decoder) TextWithKey(ctx context.Context, key, payload []byte) (string, error) {
	return d.decoder.TextWithKey(ctx, key, payload)
}

// Properties decrypts payload with the environment key and parses it.
func (d *Decoder) Properties(ctx context.Context, payload []byte) (*Properties, error) {
	return d.decoder.Properties(ctx, payload)
}

// PropertiesWithKey decrypts payload with key and parses it.
func (d *Decoder) PropertiesWithKey(ctx context.Context, key, payload []byte) (*Properties, error) {
	return d.decoder.PropertiesWithKey(ctx, key, payload)
}

// LoadProperties decodes the payload file with the literal key stored in the key file.
func (d *Decoder) LoadProperties(ctx context.Context, keyPath, payloadPath string) (*Properties, error) {
	return d.loader.LoadProperties(ctx, keyPath, payloadPath)
}

// LoadText is LoadProperties without the parsing step.
func (d *Decoder) LoadText(ctx context.Context, keyPath, payloadPath string) (string, error) {
	return d.loader.LoadText(ctx, keyPath, payloadPath)
}

// Close releases resources held by the decoder.
func (d *Decoder) Close(ctx context.Context) error {
	return d.container.Shutdown(ctx)
}

// DecodeText decrypts payload with the environment key.
func DecodeText(ctx context.Context, payload []byte) (string, error) {
	d, err := newFromEnvironment()
	if err != nil {
		return "", err
	}
	defer func() { _ = d.Close(ctx) }()

	return d.Text(ctx, payload)
}

// DecodeTextWithKey decrypts payload with key.
func DecodeTextWithKey(ctx context.Context, key, payload []byte) (string, error) {
	d, err := newFromEnvironment()
	if err != nil {
		return "", err
	}
	defer func() { _ = d.Close(ctx) }()

	return d.TextWithKey(ctx, key, payload)
}

// DecodeProperties decrypts payload with the environment key and parses it.
func DecodeProperties(ctx context.Context, payload []byte) (*Properties, error) {
	d, err := newFromEnvironment()
	if err != nil {
		return nil, err
	}
	defer func() { _ = d.Close(ctx) }()

	return d.Properties(ctx, payload)
}

// DecodePropertiesWithKey decrypts payload with key and parses it.
func DecodePropertiesWithKey(ctx context.Context, key, payload []byte) (*Properties, error) {
	d, err := newFromEnvironment()
	if err != nil {
		return nil, err
	}
	defer func() { _ = d.Close(ctx) }()

	return d.PropertiesWithKey(ctx, key, payload)
}

// LoadProperties reads the key file and the payload file, then decodes the
// payload as properties. The key file holds the literal key bytes.
func LoadProperties(ctx context.Context, keyPath, payloadPath string) (*Properties, error) {
	d, err := newFromEnvironment()
	if err != nil {
		return nil, err
	}
	defer func() { _ = d.Close(ctx) }()

	return d.LoadProperties(ctx, keyPath, payloadPath)
}

// Parse parses properties text.
func Parse(text string) (*Properties, error) {
	return propertiesService.NewParser().Parse(text)
}

// newFromEnvironment builds a one-shot decoder from the current environment.
// Metrics are only collected by long-lived decoders.
func newFromEnvironment() (*Decoder, error) {
	cfg := config.LoadEnv()
	cfg.MetricsEnabled = false
	return New(cfg)
}
