package relation

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Assignability implements the Assignability service (spec.md §4.5):
// Assignable(s, t) iff s == t (Equality) OR s converts to t implicitly
// (Conversion) OR s <: t (Subtype). Per spec.md §3 invariant 3 this
// disjunction is the sole definition; this type is the only place that
// combines the three checks.
type Assignability struct {
	equality   *Equality
	conversion *Conversion
	subtype    *Subtype
	logger     *slog.Logger
	metrics    *obsmetrics.Metrics
}

// NewAssignability constructs an Assignability service composing the
// given Equality, Conversion, and Subtype services.
func NewAssignability(equality *Equality, conversion *Conversion, subtype *Subtype, opts ...Option) *Assignability {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Assignability{equality: equality, conversion: conversion, subtype: subtype, logger: cfg.logger, metrics: cfg.metrics}
}

// IsAssignable reports whether source is assignable to target.
func (s *Assignability) IsAssignable(source, target *typedef.Type) bool {
	return s.GetAssignabilityProblem(source, target) == nil
}

// GetAssignabilityProblem returns nil if source is assignable to target,
// else an AssignabilityProblem whose SubProblems enumerate the three
// failed checks.
func (s *Assignability) GetAssignabilityProblem(source, target *typedef.Type) problem.Problem {
	eqProblem := s.equality.GetEqualityProblem(source, target)
	if eqProblem == nil {
		s.metrics.CountRelationCache("assignability", "equality")
		return nil
	}
	if s.conversion.IsConvertible(source, target, graph.ConversionImplicitExplicit) {
		s.metrics.CountRelationCache("assignability", "conversion")
		return nil
	}
	subProblem := s.subtype.GetSubTypeProblem(source, target)
	if subProblem == nil {
		s.metrics.CountRelationCache("assignability", "subtype")
		return nil
	}
	s.metrics.CountRelationCache("assignability", "miss")
	return problem.NewAssignabilityProblem(source, target, eqProblem, subProblem, true)
}
