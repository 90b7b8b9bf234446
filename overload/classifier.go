package overload

import (
	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/relation"
	"github.com/arlen-voss/typeforge/typedef"
)

// MatchReason ranks how strongly an argument matched a parameter, used
// for the tie-break policy spec.md §4.6 requires: "prefer the overload
// whose parameter list matches by equality over conversion over
// subtype".
type MatchReason uint8

const (
	// ReasonNone: the argument is not assignable to the parameter at all.
	ReasonNone MatchReason = iota
	// ReasonSubtype: assignable only via the Subtype disjunct.
	ReasonSubtype
	// ReasonConversion: assignable via an implicit Conversion.
	ReasonConversion
	// ReasonEquality: the argument and parameter are Equal.
	ReasonEquality
)

// ArgumentClassifier decides how strongly arg matches param, and whether
// it matches at all (per the same three-way Assignability disjunction,
// but reporting which disjunct fired rather than collapsing to a bool).
type ArgumentClassifier interface {
	Classify(arg, param *typedef.Type) (reason MatchReason, ok bool)
}

// servicesClassifier adapts the concrete relation services into an
// ArgumentClassifier.
type servicesClassifier struct {
	equality   *relation.Equality
	conversion *relation.Conversion
	subtype    *relation.Subtype
}

// ClassifierFromServices builds an ArgumentClassifier backed by the
// engine's live Equality/Conversion/Subtype services, so overload
// resolution and validation feedback stay live (spec.md's Open Question
// decision 1: relations are never snapshotted).
func ClassifierFromServices(equality *relation.Equality, conversion *relation.Conversion, subtype *relation.Subtype) ArgumentClassifier {
	return &servicesClassifier{equality: equality, conversion: conversion, subtype: subtype}
}

func (c *servicesClassifier) Classify(arg, param *typedef.Type) (MatchReason, bool) {
	if c.equality.IsEqual(arg, param) {
		return ReasonEquality, true
	}
	if c.conversion.IsConvertible(arg, param, graph.ConversionImplicitExplicit) {
		return ReasonConversion, true
	}
	if c.subtype.IsSubtype(arg, param) {
		return ReasonSubtype, true
	}
	return ReasonNone, false
}
