package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
)

// RunDecodeText decrypts a payload and writes the plaintext to the writer as is.
// The payload comes from the payload argument or, when empty, from the reader.
// An empty key means the key configured in KPOW_SECURE_KEY is used; otherwise
// key is the base64 encoded key.
func RunDecodeText(
	ctx context.Context,
	decoder decoderUseCase.DecoderUseCase,
	logger *slog.Logger,
	streams IOTuple,
	key string,
	payload string,
) error {
	keyBytes, err := decodeKeyFlag(key)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(keyBytes)

	payloadBytes, err := readPayload(payload, streams.Reader)
	if err != nil {
		return err
	}

	var text string
	if keyBytes != nil {
		text, err = decoder.TextWithKey(ctx, keyBytes, payloadBytes)
	} else {
		text, err = decoder.Text(ctx, payloadBytes)
	}
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	if _, err := io.WriteString(streams.Writer, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("payload decoded",
		slog.String("key_source", keySource(keyBytes)),
		slog.Int("length", len(text)),
	)

	return nil
}

// keySource names where the decryption key came from, for logging.
func keySource(explicitKey []byte) string {
	if explicitKey != nil {
		return string(cryptoDomain.ProvenanceExplicit)
	}
	return string(cryptoDomain.ProvenanceEnvironment)
}
