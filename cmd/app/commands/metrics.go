package commands

import (
	"fmt"
	"io"

	"github.com/allisson/secure/internal/app"
)

// WriteMetrics writes the metrics collected during this run to w in
// Prometheus text format. Does nothing when metrics are disabled.
func WriteMetrics(container *app.Container, w io.Writer) error {
	provider, err := container.MetricsProvider()
	if err != nil {
		return fmt.Errorf("failed to get metrics provider: %w", err)
	}
	if provider == nil {
		return nil
	}
	return provider.WriteText(w)
}
