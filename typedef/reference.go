package typedef

import (
	"fmt"

	"github.com/arlen-voss/typeforge/problem"
)

// ReferenceContext supplies the lookups a Reference needs to resolve a
// selector it cannot resolve on its own: an identifier lookup (backed by
// the graph) and a language-node inferrer (backed by the infer package).
// typedef never imports either package directly — this keeps the
// dependency pointing the other way (infer depends on typedef).
type ReferenceContext struct {
	// Lookup resolves a graph identifier to its Type, as graph.Graph.GetType
	// would.
	Lookup func(identifier string) (*Type, bool)

	// Infer resolves an arbitrary host-language AST node to a Type via the
	// inference engine.
	Infer func(node any) (*Type, problem.Problem)
}

// Reference is a deferred pointer to a Type, resolved through one of six
// selector forms in priority order (spec.md §4.2):
//  1. an already-resolved *Type
//  2. a string identifier, looked up in the graph
//  3. a *Initializer, resolved once it finishes
//  4. a nested *Reference, resolved recursively
//  5. a thunk (func() (*Type, error)), invoked lazily
//  6. anything else, treated as a host-language AST node and resolved via
//     Infer
//
// A Reference is constructed once with NewReference(selector) and may be
// Resolve'd repeatedly; selectors other than a language node, once
// resolved, do not change between calls.
type Reference struct {
	selector any
}

// NewReference wraps selector as a Reference.
func NewReference(selector any) *Reference {
	return &Reference{selector: selector}
}

// Resolve dereferences the selector using ctx, returning the first
// InferenceProblem-style failure encountered.
func (r *Reference) Resolve(ctx ReferenceContext) (*Type, problem.Problem) {
	return resolveSelector(r.selector, ctx)
}

func resolveSelector(selector any, ctx ReferenceContext) (*Type, problem.Problem) {
	switch v := selector.(type) {
	case *Type:
		return v, nil
	case string:
		if ctx.Lookup == nil {
			return nil, problem.NewInferenceProblem(v, problem.ReasonNestedUnresolvable,
				fmt.Sprintf("no lookup available to resolve identifier %q", v))
		}
		t, ok := ctx.Lookup(v)
		if !ok {
			return nil, problem.NewInferenceProblem(v, problem.ReasonNestedUnresolvable,
				fmt.Sprintf("identifier %q is not registered in the graph", v))
		}
		return t, nil
	case *Initializer:
		t, err := v.Get()
		if err != nil {
			return nil, problem.NewInferenceProblem(v, problem.ReasonNestedUnresolvable, err.Error())
		}
		return t, nil
	case *Reference:
		return v.Resolve(ctx)
	case func() (*Type, error):
		t, err := v()
		if err != nil {
			return nil, problem.NewInferenceProblem(v, problem.ReasonNestedUnresolvable, err.Error())
		}
		return t, nil
	default:
		if ctx.Infer == nil {
			return nil, problem.NewInferenceProblem(v, problem.ReasonNoRuleApplicable,
				"no inference engine available to resolve language node")
		}
		return ctx.Infer(v)
	}
}
