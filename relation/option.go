package relation

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
)

type config struct {
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// Option configures an Equality, Subtype, Conversion, or Assignability
// service.
type Option func(*config)

// WithLogger sets the structured logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics sets the Prometheus instrumentation used to count cache
// hits/misses.
func WithMetrics(m *obsmetrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}
