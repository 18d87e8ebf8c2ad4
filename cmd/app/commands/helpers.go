// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	validation "github.com/jellydator/validation"
	"gopkg.in/yaml.v3"

	"github.com/allisson/secure/internal/app"
	cryptoDomain "github.com/allisson/secure/internal/crypto/domain"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
	propertiesService "github.com/allisson/secure/internal/properties/service"
	customValidation "github.com/allisson/secure/internal/validation"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer writes the collected metrics to metricsOut when metrics are
// enabled, then closes all resources in the container and logs any errors.
func CloseContainer(ctx context.Context, container *app.Container, metricsOut io.Writer) {
	logger := container.Logger()

	if container.Config().MetricsEnabled {
		if err := WriteMetrics(container, metricsOut); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
		}
	}

	if err := container.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat checks the --format flag value.
func validateFormat(format string) error {
	err := validation.Validate(format,
		validation.Required,
		validation.In(FormatText, FormatJSON, FormatYAML),
	)
	if err != nil {
		return fmt.Errorf(
			"invalid format: %q (valid options: text, json, yaml): %w",
			format,
			customValidation.WrapValidationError(err),
		)
	}
	return nil
}

// decodeKeyFlag decodes a base64 --key flag value. An empty value returns nil.
func decodeKeyFlag(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	if err := validation.Validate(key, customValidation.Base64); err != nil {
		return nil, fmt.Errorf("invalid --key: %w", customValidation.WrapValidationError(err))
	}
	return cryptoDomain.DecodeBase64(strings.TrimSpace(key))
}

// readPayload returns the --payload flag value, or everything on reader when
// the flag is empty.
func readPayload(payload string, reader io.Reader) ([]byte, error) {
	if payload != "" {
		return []byte(payload), nil
	}
	if reader == nil {
		return nil, fmt.Errorf("no payload given")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
	}
	return data, nil
}

// writeProperties writes props to w in the requested format.
func writeProperties(w io.Writer, props *propertiesDomain.Properties, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, props)
	case FormatYAML:
		return writeYAML(w, props)
	default:
		return propertiesService.Write(w, props)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// writeYAML writes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}
