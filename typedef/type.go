package typedef

import (
	"fmt"

	"github.com/arlen-voss/typeforge/problem"
)

// Type is a single node in the type graph: a Kind instance plus its
// lifecycle state and structural data (spec.md §4.2, §4.3).
//
// Type implements graph.Node via Identifier, so it can be stored
// directly in a graph.Graph. A Type's data field holds kind-specific
// structural data (e.g. a Class's member list) produced by the kinds
// package; typedef never interprets it itself.
type Type struct {
	identifier string
	name       string
	state      State
	kind       Kind
	data       any

	onIdentifiable []func(*Type)
	onCompleted    []func(*Type)
	onInvalidated  []func(*Type)
}

// NewType constructs a Type in the Invalid state. name is a
// human-readable label (used in problem messages and the printer); it is
// independent of Identifier, which may still be empty at this point.
func NewType(kind Kind, name string) (*Type, error) {
	if kind == nil {
		return nil, ErrNilKind
	}
	return &Type{kind: kind, name: name, state: Invalid}, nil
}

// Identifier returns the type's canonical identifier, or "" if it has not
// reached Identifiable yet. Satisfies graph.Node.
func (t *Type) Identifier() string { return t.identifier }

// Name returns the type's human-readable label.
func (t *Type) Name() string { return t.name }

// Kind returns the type's Kind.
func (t *Type) Kind() Kind { return t.kind }

// State returns the type's current lifecycle state.
func (t *Type) State() State { return t.state }

// Data returns the kind-specific structural data attached to this type,
// or nil if none has been set yet.
func (t *Type) Data() any { return t.data }

// SetData attaches kind-specific structural data. Only valid before the
// type reaches Completed; Initializer.Finish calls this with the kind's
// configuration value before registering the new type.
func (t *Type) SetData(data any) error {
	if t.state == Completed {
		return fmt.Errorf("%w: cannot set data on a Completed type", ErrWrongState)
	}
	t.data = data
	return nil
}

// OnIdentifiable registers fn to run once, the moment this type
// transitions Invalid -> Identifiable. If the type is already
// Identifiable or Completed, fn runs immediately.
func (t *Type) OnIdentifiable(fn func(*Type)) {
	if t.state != Invalid {
		fn(t)
		return
	}
	t.onIdentifiable = append(t.onIdentifiable, fn)
}

// OnCompleted registers fn to run once, the moment this type transitions
// to Completed. If the type is already Completed, fn runs immediately.
func (t *Type) OnCompleted(fn func(*Type)) {
	if t.state == Completed {
		fn(t)
		return
	}
	t.onCompleted = append(t.onCompleted, fn)
}

// OnInvalidated registers fn to run every time this type transitions back
// to Invalid (spec.md §4.2: a type may be invalidated and re-completed
// more than once over its lifetime).
func (t *Type) OnInvalidated(fn func(*Type)) {
	t.onInvalidated = append(t.onInvalidated, fn)
}

// MarkIdentifiable transitions the type from Invalid to Identifiable and
// assigns its final identifier. Precondition checking (that every entry
// in referencesToBeIdentifiable already resolved) is the Initializer's
// job, not Type's; Type only enforces the state ordering itself.
func (t *Type) MarkIdentifiable(identifier string) error {
	if t.state != Invalid {
		return fmt.Errorf("%w: MarkIdentifiable requires Invalid, got %s", ErrWrongState, t.state)
	}
	t.identifier = identifier
	t.state = Identifiable
	fire(t, t.onIdentifiable)
	t.onIdentifiable = nil
	return nil
}

// MarkCompleted transitions the type from Identifiable to Completed.
func (t *Type) MarkCompleted() error {
	if t.state != Identifiable {
		return fmt.Errorf("%w: MarkCompleted requires Identifiable, got %s", ErrWrongState, t.state)
	}
	t.state = Completed
	fire(t, t.onCompleted)
	t.onCompleted = nil
	return nil
}

// Invalidate transitions the type back to Invalid from either
// Identifiable or Completed, e.g. because a type it structurally depends
// on (referencesRelevantForInvalidation) was itself invalidated or
// removed (spec.md §4.2, §4.3's Class-super-removed case). The type's
// identifier and data are cleared; onInvalidated listeners fire on every
// invalidation, not just the first.
func (t *Type) Invalidate() error {
	if t.state == Invalid {
		return fmt.Errorf("%w: Invalidate requires non-Invalid, got %s", ErrWrongState, t.state)
	}
	t.state = Invalid
	t.identifier = ""
	t.data = nil
	fire(t, t.onInvalidated)
	return nil
}

func fire(t *Type, fns []func(*Type)) {
	for _, fn := range fns {
		fn(t)
	}
}

// AnalyzeTypeEquality delegates to the type's Kind if other shares the
// same Kind; cross-kind pairs are never equal.
func (t *Type) AnalyzeTypeEquality(other *Type) problem.Problem {
	if other == nil || other.kind != t.kind {
		return problem.NewTypeEqualityProblem(t, other)
	}
	return t.kind.AnalyzeTypeEquality(t, other)
}

// AnalyzeSubType delegates to the Kind shared by t (as sub) and super.
// Cross-kind pairs are never structural subtypes through this path; Top
// and Bottom's universal super/sub relationship to every other type is
// established as cached graph edges at registration time
// (kinds.UniversalEdgeListener), so the relation package's ordinary
// cache lookup finds them without ever reaching this method.
func (t *Type) AnalyzeSubType(super *Type) problem.Problem {
	if super == nil || super.kind != t.kind {
		return problem.NewSubTypeProblem(t, super)
	}
	return t.kind.AnalyzeSubType(t, super)
}
