package infer

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/langnode"
)

type config struct {
	logger   *slog.Logger
	metrics  *obsmetrics.Metrics
	language langnode.Language
}

// Option configures a Service built by New.
type Option func(*config)

// WithLogger sets the structured logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics sets the Prometheus instrumentation used to count
// InferType outcomes.
func WithMetrics(m *obsmetrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithLanguage sets the host Language used to resolve a node's language
// key and its super-key chain. Defaults to langnode.Nop(), under which
// every node is unrecognized.
func WithLanguage(l langnode.Language) Option {
	return func(c *config) { c.language = l }
}
