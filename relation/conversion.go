package relation

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Conversion implements the Conversion service (spec.md §4.5). Unlike
// Equality/Subtype, conversions are never derived structurally from a
// Kind: an explicit CONVERSION edge, marked by a host binding via
// MarkAsConvertible, is the only source of truth.
type Conversion struct {
	graph   *graph.Graph
	logger  *slog.Logger
	metrics *obsmetrics.Metrics
}

// NewConversion constructs a Conversion service over g.
func NewConversion(g *graph.Graph, opts ...Option) *Conversion {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Conversion{graph: g, logger: cfg.logger, metrics: cfg.metrics}
}

// Mode returns the conversion mode declared from source to target, or
// ConversionNone if none was marked (or a mark was later downgraded to
// NoLink, which does not happen in practice since UnmarkAsConvertible
// removes the edge outright).
func (s *Conversion) Mode(source, target *typedef.Type) graph.ConversionMode {
	e := findEdge(s.graph, source, target, graph.Conversion)
	if e == nil || e.Caching() != graph.LinkExists {
		s.metrics.CountRelationCache("conversion", "miss")
		return graph.ConversionNone
	}
	s.metrics.CountRelationCache("conversion", "hit")
	return e.Mode()
}

// IsConvertible reports whether source converts to target at least as
// strongly as min (e.g. pass graph.ConversionImplicitExplicit to ask
// "implicitly convertible").
func (s *Conversion) IsConvertible(source, target *typedef.Type, min graph.ConversionMode) bool {
	return s.Mode(source, target).Stronger(min)
}

// GetConversionProblem returns nil if source converts to target at least
// as strongly as min, else a ValueConflict describing the shortfall.
// Conversion is not itself one of spec.md §3's Problem variants; it only
// ever surfaces as a sub-problem of an AssignabilityProblem, so a
// ValueConflict on the "mode" field is the right-shaped leaf here.
func (s *Conversion) GetConversionProblem(source, target *typedef.Type, min graph.ConversionMode) problem.Problem {
	mode := s.Mode(source, target)
	if mode.Stronger(min) {
		return nil
	}
	return problem.NewValueConflict("conversionMode", min, mode)
}

// MarkAsConvertible marks every (source, target) pair in the cartesian
// product of sources x targets as convertible at mode, strengthening any
// existing weaker mark (spec.md §4.5's monotonic-strengthening rule) and
// leaving a stronger existing mark untouched. Self-pairs are skipped.
func (s *Conversion) MarkAsConvertible(sources, targets []*typedef.Type, mode graph.ConversionMode) {
	for _, src := range sources {
		for _, tgt := range targets {
			if src == tgt {
				continue
			}
			e := cacheLink(s.graph, src, tgt, graph.Conversion, graph.LinkExists)
			e.SetMode(mode)
		}
	}
}

// UnmarkAsConvertible removes a previously marked CONVERSION edge, if
// any.
func (s *Conversion) UnmarkAsConvertible(source, target *typedef.Type) error {
	if e := findEdge(s.graph, source, target, graph.Conversion); e != nil {
		return s.graph.RemoveEdge(e)
	}
	return nil
}
