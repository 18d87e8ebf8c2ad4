package usecase

import (
	"context"
	"time"

	"github.com/allisson/secure/internal/metrics"
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

const metricsDomain = "decoder"

// decoderUseCaseWithMetrics decorates DecoderUseCase with metrics instrumentation.
type decoderUseCaseWithMetrics struct {
	next    DecoderUseCase
	metrics metrics.BusinessMetrics
}

// NewDecoderUseCaseWithMetrics wraps a DecoderUseCase with metrics recording.
func NewDecoderUseCaseWithMetrics(useCase DecoderUseCase, m metrics.BusinessMetrics) DecoderUseCase {
	return &decoderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Text records metrics for text decoding with the environment key.
func (d *decoderUseCaseWithMetrics) Text(ctx context.Context, payload []byte) (string, error) {
	start := time.Now()
	text, err := d.next.Text(ctx, payload)
	record(ctx, d.metrics, "decode_text", start, err)
	return text, err
}

// TextWithKey records metrics for text decoding with an explicit key.
func (d *decoderUseCaseWithMetrics) TextWithKey(ctx context.Context, key, payload []byte) (string, error) {
	start := time.Now()
	text, err := d.next.TextWithKey(ctx, key, payload)
	record(ctx, d.metrics, "decode_text", start, err)
	return text, err
}

// Properties records metrics for properties decoding with the environment key.
func (d *decoderUseCaseWithMetrics) Properties(
	ctx context.Context,
	payload []byte,
) (*propertiesDomain.Properties, error) {
	start := time.Now()
	props, err := d.next.Properties(ctx, payload)
	record(ctx, d.metrics, "decode_properties", start, err)
	return props, err
}

// PropertiesWithKey records metrics for properties decoding with an explicit key.
func (d *decoderUseCaseWithMetrics) PropertiesWithKey(
	ctx context.Context,
	key, payload []byte,
) (*propertiesDomain.Properties, error) {
	start := time.Now()
	props, err := d.next.PropertiesWithKey(ctx, key, payload)
	record(ctx, d.metrics, "decode_properties", start, err)
	return props, err
}

// fileLoaderWithMetrics decorates FileLoader with metrics instrumentation.
type fileLoaderWithMetrics struct {
	next    FileLoader
	metrics metrics.BusinessMetrics
}

// NewFileLoaderWithMetrics wraps a FileLoader with metrics recording.
func NewFileLoaderWithMetrics(loader FileLoader, m metrics.BusinessMetrics) FileLoader {
	return &fileLoaderWithMetrics{
		next:    loader,
		metrics: m,
	}
}

// LoadProperties records metrics for loading properties from files.
func (f *fileLoaderWithMetrics) LoadProperties(
	ctx context.Context,
	keyPath, payloadPath string,
) (*propertiesDomain.Properties, error) {
	start := time.Now()
	props, err := f.next.LoadProperties(ctx, keyPath, payloadPath)
	record(ctx, f.metrics, "load_properties", start, err)
	return props, err
}

// LoadText records metrics for loading text from files.
func (f *fileLoaderWithMetrics) LoadText(ctx context.Context, keyPath, payloadPath string) (string, error) {
	start := time.Now()
	text, err := f.next.LoadText(ctx, keyPath, payloadPath)
	record(ctx, f.metrics, "load_text", start, err)
	return text, err
}

func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
