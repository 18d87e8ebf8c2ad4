package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	"github.com/allisson/secure/internal/decoder/usecase/mocks"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	"github.com/allisson/secure/internal/testutil"
)

func TestRunDecodeProperties(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	key := testutil.RandomKey(t, 16)
	encodedKey := base64.StdEncoding.EncodeToString(key)
	plaintext := []byte("# db\ndb.user = admin\ndb.password=s3cr\\=t\n")

	t.Run("text-output", func(t *testing.T) {
		payload := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, plaintext)

		var out bytes.Buffer
		err := RunDecodeProperties(ctx, newDecoder(nil), logger, IOTuple{Writer: &out}, encodedKey, payload, "text")

		require.NoError(t, err)
		assert.Equal(t, "db.user=admin\ndb.password=s3cr=t\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		payload := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, plaintext)

		var out bytes.Buffer
		err := RunDecodeProperties(ctx, newDecoder(key), logger, IOTuple{Writer: &out}, "", payload, "json")

		require.NoError(t, err)
		assert.Equal(t, "{\n  \"db.user\": \"admin\",\n  \"db.password\": \"s3cr=t\"\n}\n", out.String())
	})

	t.Run("yaml-output-from-stdin", func(t *testing.T) {
		payload := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, plaintext)

		var out bytes.Buffer
		streams := IOTuple{Reader: strings.NewReader(payload), Writer: &out}
		err := RunDecodeProperties(ctx, newDecoder(nil), logger, streams, encodedKey, "", "yaml")

		require.NoError(t, err)
		assert.Equal(t, "db.user: admin\ndb.password: s3cr=t\n", out.String())
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockDecoder := &mocks.MockDecoderUseCase{}

		err := RunDecodeProperties(ctx, mockDecoder, logger, IOTuple{Writer: &bytes.Buffer{}}, "", "p", "xml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
		mockDecoder.AssertNotCalled(t, "Properties", mock.Anything, mock.Anything)
	})

	t.Run("parse-error", func(t *testing.T) {
		payload := testutil.SealPayloadBase64(t, cryptoDomain.AESGCM, key, []byte("a=1\\"))

		var out bytes.Buffer
		err := RunDecodeProperties(ctx, newDecoder(nil), logger, IOTuple{Writer: &out}, encodedKey, payload, "text")

		assert.ErrorIs(t, err, propertiesDomain.ErrPropertiesParse)
		assert.Empty(t, out.String())
	})

	t.Run("delegates-to-use-case", func(t *testing.T) {
		props := propertiesDomain.NewProperties()
		props.Set("k", "v")
		mockDecoder := &mocks.MockDecoderUseCase{}
		mockDecoder.On("PropertiesWithKey", ctx, []byte("0123456789abcdef"), []byte("payload")).
			Return(props, nil).
			Once()

		var out bytes.Buffer
		err := RunDecodeProperties(
			ctx,
			mockDecoder,
			logger,
			IOTuple{Writer: &out},
			"MDEyMzQ1Njc4OWFiY2RlZg==",
			"payload",
			"text",
		)

		require.NoError(t, err)
		assert.Equal(t, "k=v\n", out.String())
		mockDecoder.AssertExpectations(t)
	})
}
