package problem

import "fmt"

// InferenceReason discriminates why inference failed, per spec.md §4.4 and
// §4.6.
type InferenceReason uint8

const (
	// ReasonNoRuleApplicable: no registered rule matched the node's
	// language key (or AstNode fallback).
	ReasonNoRuleApplicable InferenceReason = iota
	// ReasonNestedUnresolvable: a rule returned nested nodes to infer, but
	// one or more could not be inferred.
	ReasonNestedUnresolvable
	// ReasonAmbiguousRules: more than one equal-priority rule matched.
	ReasonAmbiguousRules
	// ReasonOverloadAmbiguous: an overloaded call site matched more than
	// one signature with no tie-break winner.
	ReasonOverloadAmbiguous
	// ReasonOverloadNoMatch: an overloaded call site matched zero
	// signatures.
	ReasonOverloadNoMatch
)

func (r InferenceReason) String() string {
	switch r {
	case ReasonNoRuleApplicable:
		return "no_rule_applicable"
	case ReasonNestedUnresolvable:
		return "nested_unresolvable"
	case ReasonAmbiguousRules:
		return "ambiguous_rules"
	case ReasonOverloadAmbiguous:
		return "overload_ambiguous"
	case ReasonOverloadNoMatch:
		return "overload_no_match"
	default:
		return "unknown"
	}
}

// InferenceProblem reports that inferType(node) could not produce a Type.
type InferenceProblem struct {
	base
	Node   any
	Reason InferenceReason
}

// NewInferenceProblem builds an InferenceProblem for node with the given
// reason and message, attaching any nested failures (e.g. the per-argument
// problems under ReasonNestedUnresolvable).
func NewInferenceProblem(node any, reason InferenceReason, message string, nested ...Problem) *InferenceProblem {
	return &InferenceProblem{
		base: base{
			kind:    KindInference,
			message: message,
			details: []Detail{{Key: "reason", Value: reason.String()}},
			sub:     nested,
		},
		Node:   node,
		Reason: reason,
	}
}

// NoRuleApplicable builds the InferenceProblem emitted when no inference
// rule matches a node's language key.
func NoRuleApplicable(node any, languageKey string) *InferenceProblem {
	return NewInferenceProblem(node, ReasonNoRuleApplicable,
		fmt.Sprintf("no inference rule applicable for language key %q", languageKey))
}
