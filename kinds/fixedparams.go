package kinds

import (
	"fmt"
	"strings"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// FixedParametersConfig is a FixedParameters type's structural data: a
// base name (e.g. "Tuple", "Map") plus an ordered, fixed-length list of
// type parameters (spec.md §4.3). Unlike Class members, parameter order
// is part of identity.
type FixedParametersConfig struct {
	BaseName string
	Params   []*typedef.Type
}

// FixedParametersKind implements typedef.Kind for fixed-arity
// parametric types such as tuples or parametric containers of a known,
// constant arity.
type FixedParametersKind struct {
	Subtype typedef.RelationChecker
}

// NewFixedParametersKind constructs the FixedParameters kind singleton.
func NewFixedParametersKind() *FixedParametersKind { return &FixedParametersKind{} }

// SetSubtypeChecker wires the recursive parameter subtype checker.
func (k *FixedParametersKind) SetSubtypeChecker(checker typedef.RelationChecker) {
	k.Subtype = checker
}

// Name implements typedef.Kind.
func (*FixedParametersKind) Name() string { return "fixedParameters" }

// CalculateIdentifier implements typedef.Kind.
func (*FixedParametersKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(FixedParametersConfig)
	if !ok {
		return "", errConfigType("fixedParameters", config)
	}
	params := make([]string, len(cfg.Params))
	for i, p := range cfg.Params {
		params[i] = p.Identifier()
	}
	return normalizeIdentifier(fmt.Sprintf("%s<%s>", cfg.BaseName, strings.Join(params, ","))), nil
}

// AnalyzeTypeEquality implements typedef.Kind.
func (k *FixedParametersKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b)
}

// AnalyzeSubType implements typedef.Kind: sub <: super iff they share
// the same base name, the same arity, and every parameter is covariantly
// compatible (pairwise subtype).
func (k *FixedParametersKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	subCfg, subOK := sub.Data().(FixedParametersConfig)
	superCfg, superOK := super.Data().(FixedParametersConfig)
	if !subOK || !superOK {
		return problem.NewSubTypeProblem(sub, super)
	}
	if subCfg.BaseName != superCfg.BaseName {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("baseName", superCfg.BaseName, subCfg.BaseName))
	}
	if len(subCfg.Params) != len(superCfg.Params) {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("arity", len(superCfg.Params), len(subCfg.Params)))
	}
	if k.Subtype == nil {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("subtypeChecker", "configured", "nil"))
	}

	var subProblems []problem.Problem
	for i := range subCfg.Params {
		if p := k.Subtype(subCfg.Params[i], superCfg.Params[i]); p != nil {
			subProblems = append(subProblems, problem.NewIndexedTypeConflict(i, p))
		}
	}
	if len(subProblems) == 0 {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super, subProblems...)
}

// FixedParameters begins building a FixedParameters type.
func FixedParameters(kind *FixedParametersKind, cfg FixedParametersConfig, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, cfg.BaseName, ctx, register)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Params {
		init.AddReferencesToBeCompleted(typedef.NewReference(p))
	}
	return init.Finish(cfg)
}
