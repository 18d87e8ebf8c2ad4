package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	"github.com/allisson/secure/internal/testutil"
)

// sealedPayload seals plaintext with the test sealer and returns the parsed parts.
func sealedPayload(
	t *testing.T,
	alg cryptoDomain.Algorithm,
	key, plaintext []byte,
) *cryptoDomain.EncryptedPayload {
	t.Helper()
	payload, err := cryptoDomain.ParseEncryptedPayload(testutil.SealPayload(t, alg, key, plaintext))
	require.NoError(t, err)
	return payload
}
