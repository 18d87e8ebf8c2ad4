package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderDomain "github.com/allisson/secure/internal/decoder/domain"
	"github.com/allisson/secure/internal/decoder/usecase/mocks"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	"github.com/allisson/secure/internal/testutil"
)

func writePayloadFiles(t *testing.T, key []byte, count int) []string {
	t.Helper()
	paths := make([]string, count)
	for i := range count {
		plaintext := fmt.Sprintf("index=%d\nname=file-%d\n", i, i)
		paths[i] = testutil.WriteFile(
			t,
			fmt.Sprintf("payload-%d.enc", i),
			testutil.SealPayload(t, cryptoDomain.AESGCM, key, []byte(plaintext)),
		)
	}
	return paths
}

func TestRunDecodeFiles(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	key := testutil.RandomKey(t, 32)

	t.Run("text-output-in-input-order", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		paths := writePayloadFiles(t, key, 8)
		keyPath := testutil.WriteFile(t, "secure.key", key)

		var out bytes.Buffer
		err := RunDecodeFiles(ctx, newDecoder(nil), logger, &out, keyPath, FormatText, 3, paths)
		require.NoError(t, err)

		var expected bytes.Buffer
		for i, path := range paths {
			fmt.Fprintf(&expected, "# %s\nindex=%d\nname=file-%d\n", path, i, i)
		}
		assert.Equal(t, expected.String(), out.String())
	})

	t.Run("environment-key-json-output", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		paths := writePayloadFiles(t, key, 2)

		var out bytes.Buffer
		err := RunDecodeFiles(ctx, newDecoder(key), logger, &out, "", FormatJSON, 4, paths)
		require.NoError(t, err)

		expected := fmt.Sprintf(`[
  {
    "file": %q,
    "properties": {
      "index": "0",
      "name": "file-0"
    }
  },
  {
    "file": %q,
    "properties": {
      "index": "1",
      "name": "file-1"
    }
  }
]
`, paths[0], paths[1])
		assert.Equal(t, expected, out.String())
	})

	t.Run("yaml-output", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		paths := writePayloadFiles(t, key, 1)
		keyPath := testutil.WriteFile(t, "secure.key", key)

		var out bytes.Buffer
		err := RunDecodeFiles(ctx, newDecoder(nil), logger, &out, keyPath, FormatYAML, 1, paths)
		require.NoError(t, err)

		expected := fmt.Sprintf(
			"- file: %s\n  properties:\n    index: \"0\"\n    name: file-0\n",
			paths[0],
		)
		assert.Equal(t, expected, out.String())
	})

	t.Run("failure-names-the-file", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		paths := writePayloadFiles(t, key, 3)
		broken := testutil.WriteFile(t, "broken.enc", []byte("not a payload"))
		paths = append(paths, broken)
		keyPath := testutil.WriteFile(t, "secure.key", key)

		var out bytes.Buffer
		err := RunDecodeFiles(ctx, newDecoder(nil), logger, &out, keyPath, FormatText, 2, paths)

		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrMalformedPayload)
		assert.Contains(t, err.Error(), broken)
		assert.Empty(t, out.String())
	})

	t.Run("missing-payload-file", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		missing := filepath.Join(t.TempDir(), "missing.enc")
		keyPath := testutil.WriteFile(t, "secure.key", key)

		err := RunDecodeFiles(ctx, newDecoder(nil), logger, &bytes.Buffer{}, keyPath, FormatText, 1, []string{missing})

		require.Error(t, err)
		assert.ErrorIs(t, err, decoderDomain.ErrFileIO)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), "payload file")
	})

	t.Run("missing-key-file", func(t *testing.T) {
		mockDecoder := &mocks.MockDecoderUseCase{}
		missing := filepath.Join(t.TempDir(), "missing.key")

		err := RunDecodeFiles(ctx, mockDecoder, logger, &bytes.Buffer{}, missing, FormatText, 1, []string{"a.enc"})

		require.Error(t, err)
		assert.ErrorIs(t, err, decoderDomain.ErrFileIO)
		assert.Contains(t, err.Error(), "key file")
		mockDecoder.AssertNotCalled(t, "PropertiesWithKey", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no-files", func(t *testing.T) {
		err := RunDecodeFiles(ctx, &mocks.MockDecoderUseCase{}, logger, &bytes.Buffer{}, "", FormatText, 1, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one payload file")
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunDecodeFiles(ctx, &mocks.MockDecoderUseCase{}, logger, &bytes.Buffer{}, "", "csv", 1, []string{"a"})

		assert.Error(t, err)
	})

	t.Run("respects-concurrency-limit", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		paths := writePayloadFiles(t, key, 6)

		var inFlight, maxInFlight atomic.Int32
		mockDecoder := &mocks.MockDecoderUseCase{}
		mockDecoder.On("Properties", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) {
				current := inFlight.Add(1)
				for {
					seen := maxInFlight.Load()
					if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
			}).
			Return(propertiesDomain.NewProperties(), nil)

		err := RunDecodeFiles(ctx, mockDecoder, logger, &bytes.Buffer{}, "", FormatText, 2, paths)

		require.NoError(t, err)
		mockDecoder.AssertNumberOfCalls(t, "Properties", 6)
		assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
		assert.GreaterOrEqual(t, maxInFlight.Load(), int32(1))
	})
}
