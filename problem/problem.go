// Package problem implements the tagged-sum Problem value described by
// spec.md §3 and §7: every typing failure the engine detects — relation
// mismatches, inference dead ends, validation rule output — is returned as
// a structured value, never thrown, so a [validate.Collector] can
// aggregate heterogeneous failures and a [printer.Printer] can render any
// of them uniformly.
//
// Problem is intentionally a leaf package: it only needs enough of a Type
// to print its identifier ([TypeRef]), so it never imports typedef, graph,
// or any kind implementation. Every upstream package (typedef, kinds,
// relation, infer, validate) imports problem, never the reverse.
package problem

// Kind discriminates the Problem variants named in spec.md §3's Problem
// entity.
type Kind uint8

const (
	// KindValueConflict: two mismatched primitive fields (e.g. a lower
	// bound that doesn't match).
	KindValueConflict Kind = iota
	// KindIndexedTypeConflict: mismatch at an array index or property name.
	KindIndexedTypeConflict
	// KindAssignability: an Assignable(s, t) check failed.
	KindAssignability
	// KindSubType: a Subtype(s, t) check failed.
	KindSubType
	// KindTypeEquality: an Equality(a, b) check failed.
	KindTypeEquality
	// KindInference: no rule applicable, an unresolvable nested node, or
	// overload resolution ambiguity/failure.
	KindInference
	// KindValidation: emitted directly by a registered ValidationRule.
	KindValidation
)

// String returns the lowercase, underscore-separated name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValueConflict:
		return "value_conflict"
	case KindIndexedTypeConflict:
		return "indexed_type_conflict"
	case KindAssignability:
		return "assignability"
	case KindSubType:
		return "sub_type"
	case KindTypeEquality:
		return "type_equality"
	case KindInference:
		return "inference"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// TypeRef is the minimal surface a Problem needs to reference a Type
// without importing the typedef package. *typedef.Type satisfies this
// structurally.
type TypeRef interface {
	// Identifier returns the type's canonical identifier, or "" if the
	// type has not yet reached the Identifiable state.
	Identifier() string
}

// Detail is a key-value pair of additional structured context, mirroring
// the teacher's diag.Detail.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys, kept consistent across problem variants so tools
// consuming Problem.Details programmatically don't need per-Kind parsing.
const (
	DetailExpected = "expected"
	DetailActual   = "actual"
	DetailField    = "field"
	DetailRelation = "relation"
	DetailTypeName = "type"
)

// Problem is the common interface every variant in this package
// implements.
type Problem interface {
	// Kind reports which variant this is.
	Kind() Kind
	// Message returns a one-line, human-readable summary.
	Message() string
	// Details returns additional structured key-value context.
	Details() []Detail
	// SubProblems returns nested problems that explain this one (e.g. the
	// three failed checks composing an AssignabilityProblem). May be
	// empty.
	SubProblems() []Problem
}

// base is embedded by every concrete Problem to implement the common
// accessors; concrete types override Message as needed.
type base struct {
	kind    Kind
	message string
	details []Detail
	sub     []Problem
}

func (b base) Kind() Kind             { return b.kind }
func (b base) Message() string        { return b.message }
func (b base) Details() []Detail      { return b.details }
func (b base) SubProblems() []Problem { return b.sub }
