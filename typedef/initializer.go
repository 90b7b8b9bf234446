package typedef

import (
	"fmt"
)

// Initializer drives a Type's construction and its subsequent advance
// through the lifecycle, honoring the three precondition reference lists
// from spec.md §4.2:
//
//   - referencesToBeIdentifiable must themselves reach Identifiable
//     before this type can.
//   - referencesToBeCompleted must themselves reach Completed before
//     this type can.
//   - referencesRelevantForInvalidation: when any of them invalidates,
//     this type invalidates too.
//
// A Kind's factory ("ConfigurationChain" in spec terms, e.g.
// kinds.Class) adds its reference lists to an Initializer, then calls
// Finish with its configuration value to calculate
// the type's identifier and either register a new Type or dedup onto an
// existing one with the same identifier.
type Initializer struct {
	kind Kind
	name string
	ctx  ReferenceContext

	register func(*Type) error

	toBeIdentifiable        []*Reference
	toBeCompleted           []*Reference
	relevantForInvalidation []*Reference

	finished bool
	typ      *Type
}

// NewInitializer begins constructing a type of kind. ctx supplies
// identifier lookup and inference for resolving this type's own
// references. register is invoked once, with the newly created Type,
// right after Finish calculates a fresh (non-duplicate) identifier —
// typically a closure over graph.Graph.AddNode.
func NewInitializer(kind Kind, name string, ctx ReferenceContext, register func(*Type) error) (*Initializer, error) {
	if kind == nil {
		return nil, ErrNilKind
	}
	return &Initializer{kind: kind, name: name, ctx: ctx, register: register}, nil
}

// AddReferencesToBeIdentifiable appends to the list of references that
// must reach Identifiable before this type can.
func (i *Initializer) AddReferencesToBeIdentifiable(refs ...*Reference) {
	i.toBeIdentifiable = append(i.toBeIdentifiable, refs...)
}

// AddReferencesToBeCompleted appends to the list of references that must
// reach Completed before this type can.
func (i *Initializer) AddReferencesToBeCompleted(refs ...*Reference) {
	i.toBeCompleted = append(i.toBeCompleted, refs...)
}

// AddReferencesRelevantForInvalidation appends to the list of references
// whose invalidation should propagate to this type.
func (i *Initializer) AddReferencesRelevantForInvalidation(refs ...*Reference) {
	i.relevantForInvalidation = append(i.relevantForInvalidation, refs...)
}

// Finish calculates this type's identifier from config via the Kind, then
// either:
//   - finds an existing type with the same identifier already registered
//     (via ctx.Lookup) and returns it instead of creating a new one
//     (spec.md §4.2 create-or-get deduplication), or
//   - constructs a new Type, attaches config as its structural data,
//     registers it, and begins advancing it through the lifecycle as its
//     precondition references resolve.
//
// Finish may only be called once; subsequent calls return
// ErrAlreadyFinished.
func (i *Initializer) Finish(config any) (*Type, error) {
	if i.finished {
		return nil, ErrAlreadyFinished
	}

	identifier, err := i.kind.CalculateIdentifier(config)
	if err != nil {
		return nil, fmt.Errorf("calculate identifier: %w", err)
	}

	if i.ctx.Lookup != nil {
		if existing, ok := i.ctx.Lookup(identifier); ok {
			i.finished = true
			i.typ = existing
			return existing, nil
		}
	}

	t, err := NewType(i.kind, i.name)
	if err != nil {
		return nil, err
	}
	if err := t.SetData(config); err != nil {
		return nil, err
	}
	if i.register != nil {
		if err := i.register(t); err != nil {
			return nil, fmt.Errorf("register type: %w", err)
		}
	}

	i.finished = true
	i.typ = t

	if err := i.advanceToIdentifiable(identifier); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the type this Initializer produced. It is an error to call
// before Finish.
func (i *Initializer) Get() (*Type, error) {
	if !i.finished {
		return nil, fmt.Errorf("%w: Initializer not finished", ErrInternal)
	}
	return i.typ, nil
}

func (i *Initializer) advanceToIdentifiable(identifier string) error {
	pending, err := i.resolveAll(i.toBeIdentifiable)
	if err != nil {
		return err
	}
	remaining := len(pending)
	if remaining == 0 {
		if err := i.typ.MarkIdentifiable(identifier); err != nil {
			return err
		}
		return i.advanceToCompleted()
	}
	for _, dep := range pending {
		dep.OnIdentifiable(func(*Type) {
			remaining--
			if remaining == 0 {
				_ = i.typ.MarkIdentifiable(identifier)
				_ = i.advanceToCompleted()
			}
		})
	}
	return nil
}

func (i *Initializer) advanceToCompleted() error {
	pending, err := i.resolveAll(i.toBeCompleted)
	if err != nil {
		return err
	}
	remaining := len(pending)
	if remaining == 0 {
		if err := i.typ.MarkCompleted(); err != nil {
			return err
		}
		i.wireInvalidation()
		return nil
	}
	for _, dep := range pending {
		dep.OnCompleted(func(*Type) {
			remaining--
			if remaining == 0 {
				_ = i.typ.MarkCompleted()
				i.wireInvalidation()
			}
		})
	}
	return nil
}

func (i *Initializer) wireInvalidation() {
	deps, err := i.resolveAll(i.relevantForInvalidation)
	if err != nil {
		return
	}
	for _, dep := range deps {
		dep.OnInvalidated(func(*Type) {
			_ = i.typ.Invalidate()
		})
	}
}

func (i *Initializer) resolveAll(refs []*Reference) ([]*Type, error) {
	out := make([]*Type, 0, len(refs))
	for _, ref := range refs {
		t, prob := ref.Resolve(i.ctx)
		if prob != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, prob.Message())
		}
		out = append(out, t)
	}
	return out, nil
}
