package kinds

import (
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// PrimitiveConfig is a Primitive type's structural data: none beyond its
// name, since a primitive is identified by name alone (spec.md §4.3).
type PrimitiveConfig struct {
	Name string
}

// PrimitiveKind implements typedef.Kind for built-in scalar types
// (number, string, boolean, ...). Primitive identity is purely nominal:
// two primitives are equal iff they share the same name. Subtype
// relationships between distinct primitives (e.g. int <: float) are not
// derived structurally here — a host binding declares them as explicit
// SUB_TYPE edges, which the relation package's cache checks before ever
// falling back to AnalyzeSubType.
type PrimitiveKind struct{}

// NewPrimitiveKind constructs the Primitive kind singleton.
func NewPrimitiveKind() *PrimitiveKind { return &PrimitiveKind{} }

// Name implements typedef.Kind.
func (*PrimitiveKind) Name() string { return "primitive" }

// CalculateIdentifier implements typedef.Kind.
func (*PrimitiveKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(PrimitiveConfig)
	if !ok {
		return "", errConfigType("primitive", config)
	}
	return normalizeIdentifier(cfg.Name), nil
}

// AnalyzeTypeEquality implements typedef.Kind: two primitives are equal
// iff their identifiers (names) match.
func (k *PrimitiveKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b)
}

// AnalyzeSubType implements typedef.Kind: structurally, a primitive is
// only a subtype of itself; genuine cross-primitive subtyping is
// declared explicitly via graph edges, not derived here.
func (k *PrimitiveKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	if sub.Identifier() == super.Identifier() {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super)
}

// Primitive begins building a Primitive type with the given name.
func Primitive(kind *PrimitiveKind, name string, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, name, ctx, register)
	if err != nil {
		return nil, err
	}
	return init.Finish(PrimitiveConfig{Name: name})
}
