package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	decoderUseCase "github.com/allisson/secure/internal/decoder/usecase"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	propertiesService "github.com/allisson/secure/internal/properties/service"
)

// fileProperties is one entry of the decode-files json and yaml output.
type fileProperties struct {
	File       string                       `json:"file"       yaml:"file"`
	Properties *propertiesDomain.Properties `json:"properties" yaml:"properties"`
}

// RunDecodeFiles decodes every payload file in paths as properties, at most
// concurrency at a time, and writes the results in input order.
//
// With an empty keyPath the environment key is used. Otherwise keyPath holds
// the literal key, read once and shared by all files. The first failure
// cancels the remaining work and is returned with the offending path.
func RunDecodeFiles(
	ctx context.Context,
	decoder decoderUseCase.DecoderUseCase,
	logger *slog.Logger,
	writer io.Writer,
	keyPath string,
	format string,
	concurrency int,
	paths []string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("at least one payload file is required")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var key []byte
	if keyPath != "" {
		var err error
		key, err = decoderUseCase.ReadKeyFile(keyPath)
		if err != nil {
			return err
		}
		defer cryptoDomain.Zero(key)
	}

	results := make([]*propertiesDomain.Properties, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			payload, err := decoderUseCase.ReadPayloadFile(path)
			if err != nil {
				return err
			}

			var props *propertiesDomain.Properties
			if key != nil {
				props, err = decoder.PropertiesWithKey(gctx, key, payload)
			} else {
				props, err = decoder.Properties(gctx, payload)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = props
			logger.Debug("payload file decoded", slog.String("file", path), slog.Int("count", props.Len()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to decode files: %w", err)
	}

	if err := writeFileResults(writer, paths, results, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("payload files decoded",
		slog.Int("files", len(paths)),
		slog.Int("concurrency", concurrency),
		slog.String("key_source", keySource(key)),
	)

	return nil
}

// writeFileResults writes per-file results. Text output prefixes each file's
// properties with a "# <path>" comment line so the whole output still parses.
func writeFileResults(
	w io.Writer,
	paths []string,
	results []*propertiesDomain.Properties,
	format string,
) error {
	switch format {
	case FormatJSON, FormatYAML:
		entries := make([]fileProperties, len(paths))
		for i, path := range paths {
			entries[i] = fileProperties{File: path, Properties: results[i]}
		}
		if format == FormatJSON {
			return writeJSON(w, entries)
		}
		return writeYAML(w, entries)
	default:
		for i, path := range paths {
			if _, err := fmt.Fprintf(w, "# %s\n", path); err != nil {
				return err
			}
			if err := propertiesService.Write(w, results[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
