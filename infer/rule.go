package infer

import (
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Rule is an InferenceRule (spec.md §3): given a language node, it
// either declares itself not applicable, resolves directly to a Type, or
// defers to one or more nested nodes whose inferred types it then
// combines.
type Rule interface {
	// Name identifies the rule for tracing/diagnostics.
	Name() string

	// LanguageKey is the language key this rule is registered for, or
	// langnode.ASTNodeKey() for a catch-all rule that runs after every
	// key-specific rule regardless of a node's own key.
	LanguageKey() string

	// Evaluate inspects node and returns an Outcome built with
	// [NotApplicable], [Resolved], [Recurse], or [RecurseAll].
	Evaluate(node langnode.Node) Outcome
}

// Outcome is a Rule's verdict for one node.
type Outcome struct {
	applicable bool
	typ        *typedef.Type
	nested     []langnode.Node
	combine    func(resolved []*typedef.Type) (*typedef.Type, problem.Problem)
}

// NotApplicable reports that the rule does not handle node; the engine
// tries the next candidate rule.
func NotApplicable() Outcome { return Outcome{} }

// Resolved reports that node's type is t directly, with no further
// recursion needed.
func Resolved(t *typedef.Type) Outcome { return Outcome{applicable: true, typ: t} }

// Recurse defers to a single nested node (tail recursion): node's type is
// whatever nested infers to.
func Recurse(nested langnode.Node) Outcome {
	return Outcome{applicable: true, nested: []langnode.Node{nested}, combine: firstResolved}
}

// RecurseAll defers to a list of nested nodes, each inferred
// independently; combine receives every resolved type (in nested's order)
// and produces node's final type, or a Problem if they don't fit
// together (e.g. a Function's parameter nodes not matching arity).
func RecurseAll(nested []langnode.Node, combine func(resolved []*typedef.Type) (*typedef.Type, problem.Problem)) Outcome {
	return Outcome{applicable: true, nested: nested, combine: combine}
}

func firstResolved(resolved []*typedef.Type) (*typedef.Type, problem.Problem) {
	if len(resolved) == 0 {
		return nil, problem.NewInferenceProblem(nil, problem.ReasonNestedUnresolvable, "recursed node did not resolve")
	}
	return resolved[0], nil
}
