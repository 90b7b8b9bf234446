package overload

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
)

// Manager owns every overload Group, keyed by function name (spec.md
// §4.6).
type Manager struct {
	classifier ArgumentClassifier
	logger     *slog.Logger
	metrics    *obsmetrics.Metrics
	groups     map[string]*Group
}

// NewManager constructs a Manager whose groups classify argument matches
// through classifier.
func NewManager(classifier ArgumentClassifier, opts ...Option) *Manager {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager{
		classifier: classifier,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
		groups:     make(map[string]*Group),
	}
}

// Group returns the overload group for name, creating it if this is the
// first reference.
func (m *Manager) Group(name string) *Group {
	if g, ok := m.groups[name]; ok {
		return g
	}
	g := &Group{name: name, classifier: m.classifier, logger: m.logger, metrics: m.metrics}
	m.groups[name] = g
	return g
}

// Groups returns every overload group name currently tracked.
func (m *Manager) Groups() []string {
	names := make([]string, 0, len(m.groups))
	for name := range m.groups {
		names = append(names, name)
	}
	return names
}
