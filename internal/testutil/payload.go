// Package testutil provides helpers for tests that need sealed payloads.
//
// SealPayload is an independent producer of the payload wire format
// ([version:1][nonce:N][ciphertext][tag:16], version byte as AAD). It uses the
// AEAD primitives directly rather than the decoder's own cipher services, so
// round-trip tests exercise the decoder against a separate implementation.
//
//	key := testutil.RandomKey(t, 32)
//	payload := testutil.SealPayload(t, cryptoDomain.AESGCM, key, []byte("a=1"))
//	encoded := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, []byte("a=1"))
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
)

// RandomKey returns size random bytes.
func RandomKey(t *testing.T, size int) []byte {
	t.Helper()
	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

// SealPayload seals plaintext under key and returns the raw wire bytes.
func SealPayload(t *testing.T, alg cryptoDomain.Algorithm, key, plaintext []byte) []byte {
	t.Helper()

	version, ok := cryptoDomain.VersionFor(alg)
	require.True(t, ok, "unsupported algorithm %s", alg)

	var aead cipher.AEAD
	switch alg {
	case cryptoDomain.AESGCM:
		block, err := aes.NewCipher(key)
		require.NoError(t, err)
		aead, err = cipher.NewGCM(block)
		require.NoError(t, err)
	case cryptoDomain.ChaCha20:
		var err error
		aead, err = chacha20poly1305.New(key)
		require.NoError(t, err)
	case cryptoDomain.XChaCha20:
		var err error
		aead, err = chacha20poly1305.NewX(key)
		require.NoError(t, err)
	}

	nonce := make([]byte, aead.NonceSize())
	_, err := rand.Read(nonce)
	require.NoError(t, err)

	header := []byte{byte(version)}
	out := append([]byte{}, header...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, header)
}

// SealPayloadBase64 is SealPayload with standard base64 transport encoding.
func SealPayloadBase64(t *testing.T, alg cryptoDomain.Algorithm, key, plaintext []byte) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(SealPayload(t, alg, key, plaintext))
}

// WriteFile writes data to name inside a fresh temporary directory and returns its path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
