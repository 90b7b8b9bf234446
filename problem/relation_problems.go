package problem

import "fmt"

// TypeEqualityProblem reports that Equality(A, B) does not hold.
type TypeEqualityProblem struct {
	base
	A, B TypeRef
}

// NewTypeEqualityProblem builds a TypeEqualityProblem for a, b. subs, if
// given, are nested problems explaining the mismatch (e.g. per-member
// equality failures for a Class or Function kind).
func NewTypeEqualityProblem(a, b TypeRef, subs ...Problem) *TypeEqualityProblem {
	return &TypeEqualityProblem{
		base: base{
			kind:    KindTypeEquality,
			message: fmt.Sprintf("%s is not equal to %s", describeRef(a), describeRef(b)),
			details: []Detail{
				{Key: DetailTypeName, Value: describeRef(a)},
				{Key: DetailActual, Value: describeRef(b)},
			},
			sub: subs,
		},
		A: a, B: b,
	}
}

// SubTypeProblem reports that Subtype(Sub, Super) does not hold.
type SubTypeProblem struct {
	base
	Sub, Super TypeRef
}

// NewSubTypeProblem builds a SubTypeProblem for sub, super. subs, if
// given, are nested problems explaining the mismatch (e.g. a
// variance-violating parameter or the index of a conflicting member).
func NewSubTypeProblem(sub, super TypeRef, subs ...Problem) *SubTypeProblem {
	return &SubTypeProblem{
		base: base{
			kind:    KindSubType,
			message: fmt.Sprintf("%s is not a subtype of %s", describeRef(sub), describeRef(super)),
			details: []Detail{
				{Key: DetailTypeName, Value: describeRef(sub)},
				{Key: DetailExpected, Value: describeRef(super)},
			},
			sub: subs,
		},
		Sub: sub, Super: super,
	}
}

// AssignabilityProblem reports that Assignable(Source, Target) does not
// hold. SubProblems enumerates the three failed checks per spec.md §4.5:
// equality, conversion, and subtyping.
type AssignabilityProblem struct {
	base
	Source, Target TypeRef
}

// NewAssignabilityProblem builds an AssignabilityProblem, attaching the
// three failed-check sub-problems (equality, conversion, subtype) that
// disjunctively define assignability per spec.md invariant 3.
func NewAssignabilityProblem(source, target TypeRef, equality, subtype Problem, conversionFailed bool) *AssignabilityProblem {
	sub := []Problem{equality}
	if conversionFailed {
		sub = append(sub, &base{
			kind:    KindAssignability,
			message: fmt.Sprintf("no implicit or explicit conversion from %s to %s", describeRef(source), describeRef(target)),
		})
	}
	sub = append(sub, subtype)
	return &AssignabilityProblem{
		base: base{
			kind:    KindAssignability,
			message: fmt.Sprintf("%s is not assignable to %s", describeRef(source), describeRef(target)),
			details: []Detail{
				{Key: DetailTypeName, Value: describeRef(source)},
				{Key: DetailExpected, Value: describeRef(target)},
			},
			sub: sub,
		},
		Source: source, Target: target,
	}
}

func describeRef(t TypeRef) string {
	if t == nil {
		return "<nil>"
	}
	if id := t.Identifier(); id != "" {
		return id
	}
	return "<unidentified type>"
}
