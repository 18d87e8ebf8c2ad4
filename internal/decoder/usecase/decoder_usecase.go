// Package usecase implements payload decoding.
//
// A decode call unwraps the payload transport encoding before it resolves the
// key (explicit or from the environment). The payload is then decrypted and
// checked for valid UTF-8, and properties calls parse the resulting text:
//
//	payload ──► DecodePayload (raw or base64)
//	        ──► CipherCodec.Decrypt (key from KeyResolver)
//	        ──► UTF-8 check
//	        ──► PropertiesParser.Parse (properties only)
//
// Each call is independent. Key material and plaintext buffers are zeroed once
// the result has been produced.
//
// # Usage Example
//
//	decoderUC := usecase.NewDecoderUseCase(keyResolver, cipherCodec, parser)
//
//	// Key from KPOW_SECURE_KEY
//	text, err := decoderUC.Text(ctx, payload)
//
//	// Explicit key
//	props, err := decoderUC.PropertiesWithKey(ctx, key, payload)
//	value, ok := props.Get("db.password")
package usecase

import (
	"context"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	cryptoService "github.com/allisson/secure/internal/crypto/service"
	decoderDomain "github.com/allisson/secure/internal/decoder/domain"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	propertiesService "github.com/allisson/secure/internal/properties/service"
)

// decoderUseCase implements DecoderUseCase.
type decoderUseCase struct {
	keyResolver cryptoService.KeyResolver
	cipherCodec cryptoService.CipherCodec
	parser      propertiesService.PropertiesParser
}

// Text decrypts payload with the environment key and returns it as text.
func (d *decoderUseCase) Text(ctx context.Context, payload []byte) (string, error) {
	raw, err := cryptoDomain.DecodePayload(payload)
	if err != nil {
		return "", err
	}

	key, err := d.keyResolver.FromEnvironment(ctx)
	if err != nil {
		return "", err
	}
	defer key.Close()

	return d.decrypt(key, raw)
}

// TextWithKey decrypts payload with the given key and returns it as text.
func (d *decoderUseCase) TextWithKey(_ context.Context, key, payload []byte) (string, error) {
	raw, err := cryptoDomain.DecodePayload(payload)
	if err != nil {
		return "", err
	}

	secretKey, err := d.keyResolver.Explicit(key)
	if err != nil {
		return "", err
	}
	defer secretKey.Close()

	return d.decrypt(secretKey, raw)
}

// Properties decrypts payload with the environment key and parses it.
func (d *decoderUseCase) Properties(ctx context.Context, payload []byte) (*propertiesDomain.Properties, error) {
	text, err := d.Text(ctx, payload)
	if err != nil {
		return nil, err
	}
	return d.parser.Parse(text)
}

// PropertiesWithKey decrypts payload with the given key and parses it.
func (d *decoderUseCase) PropertiesWithKey(
	ctx context.Context,
	key, payload []byte,
) (*propertiesDomain.Properties, error) {
	text, err := d.TextWithKey(ctx, key, payload)
	if err != nil {
		return nil, err
	}
	return d.parser.Parse(text)
}

// decrypt runs the raw payload through the codec and validates the plaintext.
func (d *decoderUseCase) decrypt(key *cryptoDomain.SecretKey, raw []byte) (string, error) {
	plaintext, err := d.cipherCodec.Decrypt(key, raw)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", decoderDomain.ErrEncoding
	}

	return string(plaintext), nil
}

// NewDecoderUseCase creates a new DecoderUseCase.
func NewDecoderUseCase(
	keyResolver cryptoService.KeyResolver,
	cipherCodec cryptoService.CipherCodec,
	parser propertiesService.PropertiesParser,
) DecoderUseCase {
	return &decoderUseCase{
		keyResolver: keyResolver,
		cipherCodec: cipherCodec,
		parser:      parser,
	}
}
