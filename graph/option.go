package graph

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
)

// graphConfig collects the options a Graph is constructed with.
type graphConfig struct {
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithLogger attaches a logger for operation-boundary tracing
// (internal/trace). A nil logger (the default) disables tracing entirely.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(c *graphConfig) { c.logger = logger }
}

// WithMetrics attaches a Metrics instance to the Graph. The Graph keeps
// it but records no counters of its own. A nil Metrics is the default.
func WithMetrics(metrics *obsmetrics.Metrics) GraphOption {
	return func(c *graphConfig) { c.metrics = metrics }
}
