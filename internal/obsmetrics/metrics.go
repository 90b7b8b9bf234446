// Package obsmetrics provides instance-scoped Prometheus instrumentation
// for the relation, inference, overload, and validation services.
//
// This mirrors bittoy/rule's engine/metrics.go (CounterVec/HistogramVec
// registered against a prometheus.Registry), adapted to avoid the
// package-level var + init() registration the teacher uses: spec.md §5
// requires the engine to hold no process-wide static state, so every
// [Metrics] owns a private [prometheus.Registry] created by its own
// [New], and two Engine instances never share counters.
package obsmetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters a typeforge Engine instance exposes. A nil
// *Metrics is valid and every Count* method becomes a no-op, so callers
// can embed "m.CountRelationCache(...)"-style calls without guarding on
// whether metrics were configured. The exported CounterVec fields are not
// nil-safe: reading one through a nil *Metrics panics.
type Metrics struct {
	registry *prometheus.Registry

	InferenceCalls     *prometheus.CounterVec // result in {"hit","pending","computed","problem"}
	RelationCacheHits  *prometheus.CounterVec // relation in {"equality","subtype","conversion","assignability"}
	OverloadResolution *prometheus.CounterVec // outcome in {"resolved","ambiguous","no_match"}
	ValidationIssues   *prometheus.CounterVec // severity label
}

// New creates a Metrics instance with its own private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		InferenceCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typeforge",
			Subsystem: "infer",
			Name:      "calls_total",
			Help:      "Total InferType calls by outcome.",
		}, []string{"result"}),
		RelationCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typeforge",
			Subsystem: "relation",
			Name:      "cache_total",
			Help:      "Relation queries by relation and cache outcome.",
		}, []string{"relation", "outcome"}),
		OverloadResolution: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typeforge",
			Subsystem: "overload",
			Name:      "resolutions_total",
			Help:      "Overload call-site resolutions by outcome.",
		}, []string{"outcome"}),
		ValidationIssues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typeforge",
			Subsystem: "validate",
			Name:      "issues_total",
			Help:      "Validation problems emitted by severity.",
		}, []string{"severity"}),
	}
	reg.MustRegister(m.InferenceCalls, m.RelationCacheHits, m.OverloadResolution, m.ValidationIssues)
	return m
}

// Registry returns the private Prometheus registry so a host can expose it
// through its own /metrics endpoint. Returns nil for a nil Metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// CountInference increments InferenceCalls for result, tolerating nil m.
func (m *Metrics) CountInference(result string) {
	if m == nil {
		return
	}
	m.InferenceCalls.WithLabelValues(result).Inc()
}

// CountRelationCache increments RelationCacheHits, tolerating nil m.
func (m *Metrics) CountRelationCache(relation, outcome string) {
	if m == nil {
		return
	}
	m.RelationCacheHits.WithLabelValues(relation, outcome).Inc()
}

// CountOverload increments OverloadResolution, tolerating nil m.
func (m *Metrics) CountOverload(outcome string) {
	if m == nil {
		return
	}
	m.OverloadResolution.WithLabelValues(outcome).Inc()
}

// CountValidationIssue increments ValidationIssues, tolerating nil m.
func (m *Metrics) CountValidationIssue(sev string) {
	if m == nil {
		return
	}
	m.ValidationIssues.WithLabelValues(sev).Inc()
}
