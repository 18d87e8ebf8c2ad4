package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/secure/internal/config"
	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	"github.com/allisson/secure/internal/testutil"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecureKeyEncoding: "base64",
		LogLevel:          "info",
		MetricsNamespace:  "secure_test",
		DecodeConcurrency: 2,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.LogLevel = level
			container := NewContainer(cfg)

			logger := container.Logger()

			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

// TestContainerSingletons verifies lazily created services are reused.
func TestContainerSingletons(t *testing.T) {
	container := NewContainer(newTestConfig())

	assert.Same(t, container.AEADManager(), container.AEADManager())
	assert.Same(t, container.KMSService(), container.KMSService())
	assert.Same(t, container.KeyResolver(), container.KeyResolver())
	assert.Same(t, container.CipherCodec(), container.CipherCodec())
	assert.Same(t, container.PropertiesParser(), container.PropertiesParser())

	uc1, err := container.DecoderUseCase()
	require.NoError(t, err)
	uc2, err := container.DecoderUseCase()
	require.NoError(t, err)
	assert.Same(t, uc1, uc2)

	loader1, err := container.FileLoader()
	require.NoError(t, err)
	loader2, err := container.FileLoader()
	require.NoError(t, err)
	assert.Same(t, loader1, loader2)
}

// TestContainerDecoderUseCase verifies the assembled decoder uses the configured key.
func TestContainerDecoderUseCase(t *testing.T) {
	key := testutil.RandomKey(t, 32)
	cfg := newTestConfig()
	cfg.SecureKey = base64.StdEncoding.EncodeToString(key)
	container := NewContainer(cfg)

	uc, err := container.DecoderUseCase()
	require.NoError(t, err)

	payload := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, []byte("a=1\nb=2"))
	props, err := uc.Properties(context.Background(), []byte(payload))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, props.Keys())
}

// TestContainerMetricsDisabled verifies no provider is created when metrics are off.
func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(newTestConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)

	assert.NoError(t, container.Shutdown(context.Background()))
}

// TestContainerMetricsEnabled verifies decode operations are recorded.
func TestContainerMetricsEnabled(t *testing.T) {
	key := testutil.RandomKey(t, 16)
	cfg := newTestConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)

	uc, err := container.DecoderUseCase()
	require.NoError(t, err)

	payload := testutil.SealPayload(t, cryptoDomain.AESGCM, key, []byte("hello"))
	_, err = uc.TextWithKey(context.Background(), key, payload)
	require.NoError(t, err)

	keyPath := testutil.WriteFile(t, "key.bin", key)
	payloadPath := testutil.WriteFile(t, "payload.enc", payload)
	loader, err := container.FileLoader()
	require.NoError(t, err)
	_, err = loader.LoadText(context.Background(), keyPath, payloadPath)
	require.NoError(t, err)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	assert.Regexp(
		t,
		`secure_test_operations_total\{[^}]*operation="decode_text"[^}]*status="success"[^}]*\} 1`,
		buf.String(),
	)
	assert.Regexp(
		t,
		`secure_test_operations_total\{[^}]*operation="load_text"[^}]*status="success"[^}]*\} 1`,
		buf.String(),
	)

	assert.NoError(t, container.Shutdown(context.Background()))
}
