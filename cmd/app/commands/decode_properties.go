package commands

import (
	"context"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// RunDecodeProperties decrypts a payload, parses it as properties and writes
// the result in the given format (text, json or yaml). Payload and key are
// handled as in RunDecodeText.
func RunDecodeProperties(
	ctx context.Context,
	decoder decoderUseCase.DecoderUseCase,
	logger *slog.Logger,
	streams IOTuple,
	key string,
	payload string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	keyBytes, err := decodeKeyFlag(key)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(keyBytes)

	payloadBytes, err := readPayload(payload, streams.Reader)
	if err != nil {
		return err
	}

	var props *propertiesDomain.Properties
	if keyBytes != nil {
		props, err = decoder.PropertiesWithKey(ctx, keyBytes, payloadBytes)
	} else {
		props, err = decoder.Properties(ctx, payloadBytes)
	}
	if err != nil {
		return fmt.Errorf("failed to decode properties: %w", err)
	}

	if err := writeProperties(streams.Writer, props, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("properties decoded",
		slog.String("key_source", keySource(keyBytes)),
		slog.Int("count", props.Len()),
		slog.String("format", format),
	)

	return nil
}
