package overload

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
)

type config struct {
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// Option configures a Manager built by NewManager.
type Option func(*config)

// WithLogger sets the structured logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics sets the Prometheus instrumentation used to count
// resolution outcomes.
func WithMetrics(m *obsmetrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}
