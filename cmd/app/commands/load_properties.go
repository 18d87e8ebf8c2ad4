package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
)

// RunLoadProperties reads the literal key from keyPath and the payload from
// payloadPath, decodes the payload as properties and writes it in the given format.
func RunLoadProperties(
	ctx context.Context,
	loader decoderUseCase.FileLoader,
	logger *slog.Logger,
	writer io.Writer,
	keyPath string,
	payloadPath string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Debug("loading properties",
		slog.String("key_file", keyPath),
		slog.String("payload_file", payloadPath),
	)

	props, err := loader.LoadProperties(ctx, keyPath, payloadPath)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	if err := writeProperties(writer, props, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("properties loaded",
		slog.String("payload_file", payloadPath),
		slog.Int("count", props.Len()),
	)

	return nil
}
