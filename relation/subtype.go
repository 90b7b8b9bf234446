package relation

import (
	"fmt"
	"log/slog"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Subtype implements the Subtyping service (spec.md §4.5): same
// cache-then-delegate pattern as Equality, on the SUB_TYPE relation.
type Subtype struct {
	graph   *graph.Graph
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// NewSubtype constructs a Subtype service over g.
func NewSubtype(g *graph.Graph, opts ...Option) *Subtype {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Subtype{graph: g, logger: cfg.logger, metrics: cfg.metrics}
}

// Checker returns a typedef.RelationChecker bound to this service's
// GetSubTypeProblem, the form Function/Class/FixedParameters/Multiplicity
// kinds wire in via SetSubtypeChecker to recursively test nested types.
func (s *Subtype) Checker() typedef.RelationChecker {
	return s.GetSubTypeProblem
}

// IsSubtype reports whether sub <: super.
func (s *Subtype) IsSubtype(sub, super *typedef.Type) bool {
	return s.GetSubTypeProblem(sub, super) == nil
}

// GetSubTypeProblem returns nil if sub <: super, else the SubTypeProblem
// explaining why not.
func (s *Subtype) GetSubTypeProblem(sub, super *typedef.Type) problem.Problem {
	if sub == super {
		return nil
	}
	if e := findEdge(s.graph, sub, super, graph.SubType); e != nil {
		switch e.Caching() {
		case graph.LinkExists:
			s.metrics.CountRelationCache("subtype", "hit")
			return nil
		case graph.NoLink:
			s.metrics.CountRelationCache("subtype", "hit")
			return problem.NewSubTypeProblem(sub, super)
		}
	}
	s.metrics.CountRelationCache("subtype", "miss")

	p := sub.AnalyzeSubType(super)
	if p == nil {
		cacheLink(s.graph, sub, super, graph.SubType, graph.LinkExists)
	} else {
		cacheLink(s.graph, sub, super, graph.SubType, graph.NoLink)
	}
	return p
}

// MarkAsSubType explicitly records sub <: super, refusing (fatally, per
// spec.md §7) to introduce a non-reflexive cycle: if super is already
// (transitively) a subtype of sub, marking sub <: super too would make
// every type on the cycle equivalent under subtyping, which spec.md §3
// invariant 4 forbids outside the Top/Bottom axioms.
func (s *Subtype) MarkAsSubType(sub, super *typedef.Type) error {
	if sub == super {
		return nil
	}
	if s.graph.ExistsEdgePath(super, sub, graph.SubType, nil) {
		return fmt.Errorf("%w: %w: marking %q <: %q would cycle back through %q <: %q",
			ErrInternal, ErrCycleDetected, sub.Identifier(), super.Identifier(), super.Identifier(), sub.Identifier())
	}
	cacheLink(s.graph, sub, super, graph.SubType, graph.LinkExists)
	return nil
}

// UnmarkAsSubType removes a previously marked SUB_TYPE edge, if any.
func (s *Subtype) UnmarkAsSubType(sub, super *typedef.Type) error {
	if e := findEdge(s.graph, sub, super, graph.SubType); e != nil {
		return s.graph.RemoveEdge(e)
	}
	return nil
}
