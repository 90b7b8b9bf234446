package validate

import (
	"fmt"

	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/severity"
	"github.com/arlen-voss/typeforge/typedef"
)

// ClassSuperRemovedRule implements the classSuperRemoved validation rule
// (Open Question decision recorded in SPEC_FULL.md: a Class type whose
// Super was removed/invalidated must surface a ValidationProblem rather
// than silently keep dangling structural data).
//
// Unlike the per-node Rule interface, this rule is driven directly by a
// Class type's own OnInvalidated hook rather than by a host AST walk: a
// Class only ever invalidates because its Super (or a member) did, so
// there is no per-node traversal to hang this off. Attach wires the
// listener at construction time; the resulting problems surface through
// the same Accept callback every other rule uses.
type ClassSuperRemovedRule struct {
	accept Accept
}

// NewClassSuperRemovedRule builds the rule. accept is normally a
// Collector's problem sink, supplied via Collector.AcceptFn.
func NewClassSuperRemovedRule(accept Accept) *ClassSuperRemovedRule {
	return &ClassSuperRemovedRule{accept: accept}
}

// Attach registers the rule's invalidation listener on class. A no-op if
// class was not built with a Super (the rule only concerns classes whose
// identity depends on one).
func (r *ClassSuperRemovedRule) Attach(class *typedef.Type) {
	cfg, ok := class.Data().(kinds.ClassConfig)
	if !ok || cfg.Super == nil {
		return
	}
	// Super is captured here, not re-read from class.Data() inside the
	// callback: Type.Invalidate clears data before firing onInvalidated
	// listeners, so by the time this runs class.Data() is already nil.
	super := cfg.Super
	class.OnInvalidated(func(t *typedef.Type) {
		if super.State() == typedef.Invalid {
			r.accept(problem.NewValidationProblem(severity.Error,
				fmt.Sprintf("class %q invalidated: super type %q is no longer identifiable", t.Name(), super.Name()),
				t))
		}
	})
}
