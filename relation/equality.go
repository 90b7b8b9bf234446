package relation

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Equality implements the Equality service (spec.md §4.5): first checks
// the cached EQUALITY edge, else delegates to Type.AnalyzeTypeEquality
// and caches the result.
type Equality struct {
	graph   *graph.Graph
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// NewEquality constructs an Equality service over g.
func NewEquality(g *graph.Graph, opts ...Option) *Equality {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Equality{graph: g, logger: cfg.logger, metrics: cfg.metrics}
}

// Checker returns a typedef.RelationChecker bound to this service's
// GetEqualityProblem, the form Function/Class kinds wire in via
// SetEqualityChecker to recursively test nested-type equality live
// rather than by diffing identifiers (spec.md's live-propagation
// requirement: MarkAsEqual(A, B) must be visible through every type
// that nests A or B, not just to direct callers of IsEqual).
func (s *Equality) Checker() typedef.RelationChecker {
	return s.GetEqualityProblem
}

// IsEqual reports whether a and b are equal.
func (s *Equality) IsEqual(a, b *typedef.Type) bool {
	return s.GetEqualityProblem(a, b) == nil
}

// GetEqualityProblem returns nil if a equals b, else the
// TypeEqualityProblem explaining why not.
func (s *Equality) GetEqualityProblem(a, b *typedef.Type) problem.Problem {
	if a == b {
		return nil
	}
	if e := findEdge(s.graph, a, b, graph.Equality); e != nil {
		switch e.Caching() {
		case graph.LinkExists:
			s.metrics.CountRelationCache("equality", "hit")
			return nil
		case graph.NoLink:
			s.metrics.CountRelationCache("equality", "hit")
			return problem.NewTypeEqualityProblem(a, b)
		}
	}
	s.metrics.CountRelationCache("equality", "miss")

	p := a.AnalyzeTypeEquality(b)
	if p == nil {
		cacheLink(s.graph, a, b, graph.Equality, graph.LinkExists)
	} else {
		cacheLink(s.graph, a, b, graph.Equality, graph.NoLink)
	}
	return p
}

// MarkAsEqual explicitly records a and b as equal, idempotently.
func (s *Equality) MarkAsEqual(a, b *typedef.Type) error {
	if a == b {
		return nil
	}
	cacheLink(s.graph, a, b, graph.Equality, graph.LinkExists)
	return nil
}

// UnmarkAsEqual removes a previously marked equality edge, if any.
func (s *Equality) UnmarkAsEqual(a, b *typedef.Type) error {
	if e := findEdge(s.graph, a, b, graph.Equality); e != nil {
		return s.graph.RemoveEdge(e)
	}
	return nil
}
