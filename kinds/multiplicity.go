package kinds

import (
	"fmt"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Unbounded marks a MultiplicityConfig.Upper value as having no upper
// bound (spec's "*" cardinality, e.g. a list's length).
const Unbounded = -1

// MultiplicityConfig is a Multiplicity type's structural data: an
// element type plus an inclusive [Lower, Upper] cardinality range
// (spec.md §4.3), e.g. element=string, [0, Unbounded] for "string[]" or
// [0, 1] for "string?".
type MultiplicityConfig struct {
	Element *typedef.Type
	Lower   int
	Upper   int // Unbounded for no upper bound
}

// MultiplicityKind implements typedef.Kind for cardinality-qualified
// element types (optional, list, set-like ranges).
type MultiplicityKind struct {
	Subtype typedef.RelationChecker
}

// NewMultiplicityKind constructs the Multiplicity kind singleton.
func NewMultiplicityKind() *MultiplicityKind { return &MultiplicityKind{} }

// SetSubtypeChecker wires the recursive element subtype checker.
func (k *MultiplicityKind) SetSubtypeChecker(checker typedef.RelationChecker) {
	k.Subtype = checker
}

// Name implements typedef.Kind.
func (*MultiplicityKind) Name() string { return "multiplicity" }

// CalculateIdentifier implements typedef.Kind.
func (*MultiplicityKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(MultiplicityConfig)
	if !ok {
		return "", errConfigType("multiplicity", config)
	}
	elem := ""
	if cfg.Element != nil {
		elem = cfg.Element.Identifier()
	}
	upper := "*"
	if cfg.Upper != Unbounded {
		upper = fmt.Sprintf("%d", cfg.Upper)
	}
	return normalizeIdentifier(fmt.Sprintf("%s[%d..%s]", elem, cfg.Lower, upper)), nil
}

// AnalyzeTypeEquality implements typedef.Kind.
func (k *MultiplicityKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b)
}

// AnalyzeSubType implements typedef.Kind: sub <: super iff sub's element
// is covariantly compatible with super's, and sub's cardinality range is
// contained within super's (narrower range is always assignable to a
// wider one: [1..1] <: [0..*]).
func (k *MultiplicityKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	subCfg, subOK := sub.Data().(MultiplicityConfig)
	superCfg, superOK := super.Data().(MultiplicityConfig)
	if !subOK || !superOK {
		return problem.NewSubTypeProblem(sub, super)
	}
	if subCfg.Lower < superCfg.Lower {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("lower", superCfg.Lower, subCfg.Lower))
	}
	if superCfg.Upper != Unbounded && (subCfg.Upper == Unbounded || subCfg.Upper > superCfg.Upper) {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("upper", superCfg.Upper, subCfg.Upper))
	}
	if k.Subtype == nil {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("subtypeChecker", "configured", "nil"))
	}
	if p := k.Subtype(subCfg.Element, superCfg.Element); p != nil {
		return problem.NewSubTypeProblem(sub, super, p)
	}
	return nil
}

// Multiplicity begins building a Multiplicity type.
func Multiplicity(kind *MultiplicityKind, cfg MultiplicityConfig, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, "", ctx, register)
	if err != nil {
		return nil, err
	}
	if cfg.Element != nil {
		init.AddReferencesToBeCompleted(typedef.NewReference(cfg.Element))
	}
	return init.Finish(cfg)
}
