package service

import (
	"context"
	"encoding/base64"
	"testing"

	"gocloud.dev/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/secure/internal/testutil"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	return "base64key://" + base64.URLEncoding.EncodeToString(testutil.RandomKey(t, 32))
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestKMSService_KeeperDecrypt(t *testing.T) {
	ctx := context.Background()
	keyURI := generateLocalSecretsURI(t)

	keeperInterface, err := NewKMSService().OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeperInterface.Close())
	}()

	keeper, ok := keeperInterface.(*secrets.Keeper)
	require.True(t, ok)

	for _, size := range []int{16, 24, 32} {
		dataKey := testutil.RandomKey(t, size)

		wrapped, err := keeper.Encrypt(ctx, dataKey)
		require.NoError(t, err)
		assert.NotEqual(t, dataKey, wrapped)

		unwrapped, err := keeperInterface.Decrypt(ctx, wrapped)
		require.NoError(t, err)
		assert.Equal(t, dataKey, unwrapped)
	}

	t.Run("invalid ciphertext", func(t *testing.T) {
		decrypted, err := keeperInterface.Decrypt(ctx, []byte("not a valid ciphertext"))
		assert.Error(t, err)
		assert.Nil(t, decrypted)
	})
}
