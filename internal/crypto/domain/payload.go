package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncryptedPayload is the parsed form of a sealed secret.
//
// Wire layout: [version:1][nonce:N][ciphertext:variable][tag:16], where N is
// fixed by the version (12 for AES-GCM and ChaCha20-Poly1305, 24 for
// XChaCha20-Poly1305). The version byte is authenticated as additional data.
//
// Fields share memory with the slice passed to ParseEncryptedPayload.
type EncryptedPayload struct {
	Version    PayloadVersion
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// ParseEncryptedPayload splits raw payload bytes into their fields.
//
// Returns ErrMalformedPayload if the payload is empty, declares an unknown
// version, or is shorter than the minimum size for its version.
func ParseEncryptedPayload(raw []byte) (*EncryptedPayload, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: payload is empty", ErrMalformedPayload)
	}

	version := PayloadVersion(raw[0])
	if !version.IsKnown() {
		return nil, fmt.Errorf("%w: unknown version 0x%02x", ErrMalformedPayload, raw[0])
	}

	if len(raw) < version.MinSize() {
		return nil, fmt.Errorf(
			"%w: version 0x%02x requires at least %d bytes, got %d",
			ErrMalformedPayload,
			raw[0],
			version.MinSize(),
			len(raw),
		)
	}

	nonceEnd := VersionSize + version.NonceSize()
	tagStart := len(raw) - TagSize

	return &EncryptedPayload{
		Version:    version,
		Nonce:      raw[VersionSize:nonceEnd],
		Ciphertext: raw[nonceEnd:tagStart],
		Tag:        raw[tagStart:],
	}, nil
}

// Header returns the authenticated header bytes (the version byte).
func (p *EncryptedPayload) Header() []byte {
	return []byte{byte(p.Version)}
}

// Sealed returns ciphertext followed by tag, the form AEAD implementations open.
func (p *EncryptedPayload) Sealed() []byte {
	sealed := make([]byte, 0, len(p.Ciphertext)+len(p.Tag))
	sealed = append(sealed, p.Ciphertext...)
	return append(sealed, p.Tag...)
}

// payloadEncodings are tried in order when a payload or key arrives as text.
var payloadEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodePayload unwraps the transport encoding of a payload.
//
// A payload whose first byte is a known version byte is already raw and is
// returned as is; version bytes are control characters and never start a
// base64 text. Anything else is trimmed of surrounding whitespace and decoded
// as base64 (standard or URL alphabet, padded or not).
//
// Returns ErrMalformedPayload if the payload is empty or not valid base64.
func DecodePayload(data []byte) ([]byte, error) {
	if len(data) > 0 && PayloadVersion(data[0]).IsKnown() {
		return data, nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("%w: payload is empty", ErrMalformedPayload)
	}

	raw, err := DecodeBase64(text)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is neither raw nor valid base64", ErrMalformedPayload)
	}
	return raw, nil
}

// DecodeBase64 decodes text using the first of the standard or URL alphabets,
// padded or unpadded, that accepts it.
func DecodeBase64(text string) ([]byte, error) {
	var firstErr error
	for _, enc := range payloadEncodings {
		raw, err := enc.DecodeString(text)
		if err == nil {
			return raw, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
