package kinds

import (
	"fmt"
	"strings"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// FunctionConfig is a Function type's structural data: an optional
// overload name, a positional parameter list, and a return type
// (spec.md §4.3).
type FunctionConfig struct {
	// Name is the function's overload-group name. Two Function types
	// with different names are never equal even if their signatures
	// match; empty Name is valid for anonymous function types.
	Name   string
	Params []*typedef.Type
	Return *typedef.Type
}

// FunctionKind implements typedef.Kind for callable signatures. Equality
// and subtyping both recurse live through the Engine's relation
// services rather than diffing cached identifiers, so a later
// Equality.MarkAsEqual(A, B) is immediately visible to every Function
// type that nests A or B as a parameter or return type (set once, after
// the Engine constructs relation.Equality/relation.Subtype, to avoid an
// import cycle between kinds and relation).
type FunctionKind struct {
	// Subtype recursively tests whether one nested type is a subtype of
	// another. Left nil until the Engine finishes wiring; a Function type
	// built before that point can still reach Identifiable/Completed, it
	// just cannot be asked about subtyping yet.
	Subtype typedef.RelationChecker
	// Equality recursively tests whether two nested types are equal.
	// Same nil-until-wired contract as Subtype.
	Equality typedef.RelationChecker
}

// NewFunctionKind constructs the Function kind singleton. Call
// SetSubtypeChecker/SetEqualityChecker once the engine's relation
// services exist.
func NewFunctionKind() *FunctionKind { return &FunctionKind{} }

// SetSubtypeChecker wires the recursive subtype checker used for
// parameter/return variance.
func (k *FunctionKind) SetSubtypeChecker(checker typedef.RelationChecker) {
	k.Subtype = checker
}

// SetEqualityChecker wires the recursive equality checker used for
// parameter/return comparison.
func (k *FunctionKind) SetEqualityChecker(checker typedef.RelationChecker) {
	k.Equality = checker
}

// Name implements typedef.Kind.
func (*FunctionKind) Name() string { return "function" }

// CalculateIdentifier implements typedef.Kind.
func (*FunctionKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(FunctionConfig)
	if !ok {
		return "", errConfigType("function", config)
	}
	params := make([]string, len(cfg.Params))
	for i, p := range cfg.Params {
		params[i] = p.Identifier()
	}
	ret := ""
	if cfg.Return != nil {
		ret = cfg.Return.Identifier()
	}
	return normalizeIdentifier(fmt.Sprintf("fn %s(%s):%s", cfg.Name, strings.Join(params, ","), ret)), nil
}

// AnalyzeTypeEquality implements typedef.Kind: two Function types are
// equal iff they share the same overload Name, the same parameter
// count, every parameter pair is equal (recursively, through the live
// Equality service), and the return types are equal. A plain identifier
// comparison is used only as a fallback before the Engine has wired
// SetEqualityChecker.
func (k *FunctionKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	if k.Equality == nil {
		return problem.NewTypeEqualityProblem(a, b)
	}

	aCfg, aOK := a.Data().(FunctionConfig)
	bCfg, bOK := b.Data().(FunctionConfig)
	if !aOK || !bOK || aCfg.Name != bCfg.Name || len(aCfg.Params) != len(bCfg.Params) {
		return problem.NewTypeEqualityProblem(a, b)
	}

	var subProblems []problem.Problem
	for i := range aCfg.Params {
		if p := k.Equality(aCfg.Params[i], bCfg.Params[i]); p != nil {
			subProblems = append(subProblems, problem.NewIndexedTypeConflict(i, p))
		}
	}
	if aCfg.Return != nil && bCfg.Return != nil {
		if p := k.Equality(aCfg.Return, bCfg.Return); p != nil {
			subProblems = append(subProblems, p)
		}
	} else if (aCfg.Return == nil) != (bCfg.Return == nil) {
		subProblems = append(subProblems, problem.NewValueConflict("return", aCfg.Return != nil, bCfg.Return != nil))
	}
	if len(subProblems) == 0 {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b, subProblems...)
}

// AnalyzeSubType implements typedef.Kind: sub <: super iff they take the
// same number of parameters, every sub parameter is a supertype of the
// corresponding super parameter (contravariance), and sub's return type
// is a subtype of super's return type (covariance).
func (k *FunctionKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	subCfg, subOK := sub.Data().(FunctionConfig)
	superCfg, superOK := super.Data().(FunctionConfig)
	if !subOK || !superOK {
		return problem.NewSubTypeProblem(sub, super)
	}
	if len(subCfg.Params) != len(superCfg.Params) {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("paramCount", len(superCfg.Params), len(subCfg.Params)))
	}
	if k.Subtype == nil {
		return problem.NewSubTypeProblem(sub, super,
			problem.NewValueConflict("subtypeChecker", "configured", "nil"))
	}

	var subProblems []problem.Problem
	for i := range subCfg.Params {
		// Contravariance: super's parameter must be a subtype of sub's.
		if p := k.Subtype(superCfg.Params[i], subCfg.Params[i]); p != nil {
			subProblems = append(subProblems, problem.NewIndexedTypeConflict(i, p))
		}
	}
	if subCfg.Return != nil && superCfg.Return != nil {
		if p := k.Subtype(subCfg.Return, superCfg.Return); p != nil {
			subProblems = append(subProblems, p)
		}
	}
	if len(subProblems) == 0 {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super, subProblems...)
}

// Function begins building a Function type.
func Function(kind *FunctionKind, cfg FunctionConfig, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, cfg.Name, ctx, register)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Params {
		init.AddReferencesToBeCompleted(typedef.NewReference(p))
	}
	if cfg.Return != nil {
		init.AddReferencesToBeCompleted(typedef.NewReference(cfg.Return))
	}
	return init.Finish(cfg)
}
