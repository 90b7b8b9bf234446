package typedef

import "github.com/arlen-voss/typeforge/problem"

// Kind is the contract every type kind (Primitive, Function, Class,
// FixedParameters, Multiplicity, Top, Bottom, Custom) must satisfy
// (spec.md §4.3). A Kind is registered once per Engine and is shared by
// every Type it produces; it holds no per-type state itself.
type Kind interface {
	// Name returns this kind's stable, human-readable name (e.g.
	// "primitive", "class"). Used in identifiers, logging, and problem
	// messages.
	Name() string

	// CalculateIdentifier derives the canonical identifier a type of this
	// kind would have given config, without requiring the type to exist
	// yet. Used by Initializer.Finish for create-or-get deduplication: two
	// configurations producing the same identifier resolve to the same
	// *Type (spec.md §4.2).
	//
	// config is the kind-specific configuration value produced by that
	// kind's own configuration chain (e.g. kinds.ClassConfig); a Kind
	// type-asserts it internally.
	CalculateIdentifier(config any) (string, error)

	// AnalyzeTypeEquality reports whether a and b, both of this Kind, are
	// structurally equal (spec.md §4.5). Returns nil if equal, or a
	// problem.Problem (typically *problem.TypeEqualityProblem, possibly
	// carrying sub-problems) describing the mismatch otherwise. Callers
	// (the relation package) only invoke this once a and b share the same
	// Kind; cross-kind pairs are never equal and are short-circuited
	// before reaching the Kind.
	AnalyzeTypeEquality(a, b *Type) problem.Problem

	// AnalyzeSubType reports whether sub is a structural subtype of
	// super, both of this Kind (spec.md §4.5). Returns nil if the
	// relationship holds, or a problem.Problem describing why not.
	AnalyzeSubType(sub, super *Type) problem.Problem
}

// RelationChecker lets a Kind recursively test equality or subtyping
// between two nested Types (e.g. a Function kind checking its parameter
// and return types) without importing the relation package itself, which
// would create an import cycle (relation depends on typedef). An Engine wires each Kind's checker to the real relation
// service after every service is constructed.
type RelationChecker func(a, b *Type) problem.Problem
