package kinds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// ClassMember is a single named, typed member of a Class (a field or
// method signature collapsed to its Function type).
type ClassMember struct {
	Name string
	Type *typedef.Type
}

// ClassConfig is a Class type's structural data (spec.md §4.3).
//
// Per the Open Question decision recorded in SPEC_FULL.md (structural
// Class identity independent of name), Name is a display label only —
// CalculateIdentifier derives the canonical identifier from Super and
// Members, so two differently-named classes with identical structure
// dedup onto the same Type. Host bindings that want nominal classes
// should fold the class name into a member (e.g. a synthetic
// "__name" member) themselves.
type ClassConfig struct {
	Name    string
	Super   *typedef.Type // nil for a root class
	Members []ClassMember
}

// ClassKind implements typedef.Kind for object types with single
// inheritance. Identity is structural only: the class name is not part
// of the identifier, and there is no nominal mode. Equality and subtyping both recurse live through
// the Engine's relation services rather than diffing cached
// identifiers, so a later Equality.MarkAsEqual(A, B) is immediately
// visible to every Class type that nests A or B as a member type.
type ClassKind struct {
	Subtype  typedef.RelationChecker
	Equality typedef.RelationChecker
}

// NewClassKind constructs the Class kind singleton.
func NewClassKind() *ClassKind { return &ClassKind{} }

// SetSubtypeChecker wires the recursive member-type subtype checker.
func (k *ClassKind) SetSubtypeChecker(checker typedef.RelationChecker) {
	k.Subtype = checker
}

// SetEqualityChecker wires the recursive member-type equality checker.
func (k *ClassKind) SetEqualityChecker(checker typedef.RelationChecker) {
	k.Equality = checker
}

// Name implements typedef.Kind.
func (*ClassKind) Name() string { return "class" }

// CalculateIdentifier implements typedef.Kind. Members are sorted by
// name first so member declaration order never affects identity.
func (*ClassKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(ClassConfig)
	if !ok {
		return "", errConfigType("class", config)
	}
	members := append([]ClassMember(nil), cfg.Members...)
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	parts := make([]string, len(members))
	for i, m := range members {
		id := ""
		if m.Type != nil {
			id = m.Type.Identifier()
		}
		parts[i] = fmt.Sprintf("%s:%s", m.Name, id)
	}

	super := ""
	if cfg.Super != nil {
		super = cfg.Super.Identifier()
	}
	return normalizeIdentifier(fmt.Sprintf("class[super=%s]{%s}", super, strings.Join(parts, ","))), nil
}

// AnalyzeTypeEquality implements typedef.Kind: two Class types are
// equal iff their Supers are equal (recursively, through the live
// Equality service — both nil is equal, exactly one nil is not) and
// they declare the same member names with pairwise-equal types. A
// plain identifier comparison is used only as a fallback before the
// Engine has wired SetEqualityChecker.
func (k *ClassKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	if k.Equality == nil {
		return problem.NewTypeEqualityProblem(a, b)
	}

	aCfg, aOK := a.Data().(ClassConfig)
	bCfg, bOK := b.Data().(ClassConfig)
	if !aOK || !bOK {
		return problem.NewTypeEqualityProblem(a, b)
	}

	var subProblems []problem.Problem
	switch {
	case aCfg.Super != nil && bCfg.Super != nil:
		if p := k.Equality(aCfg.Super, bCfg.Super); p != nil {
			subProblems = append(subProblems, p)
		}
	case aCfg.Super != nil || bCfg.Super != nil:
		subProblems = append(subProblems, problem.NewValueConflict("super", aCfg.Super != nil, bCfg.Super != nil))
	}

	bMembers := make(map[string]*typedef.Type, len(bCfg.Members))
	for _, m := range bCfg.Members {
		bMembers[m.Name] = m.Type
	}
	seen := make(map[string]bool, len(aCfg.Members))
	for _, m := range aCfg.Members {
		seen[m.Name] = true
		other, ok := bMembers[m.Name]
		if !ok {
			subProblems = append(subProblems, problem.NewValueConflict("member:"+m.Name, "present", "missing"))
			continue
		}
		if p := k.Equality(m.Type, other); p != nil {
			subProblems = append(subProblems, problem.NewIndexedTypeConflict(m.Name, p))
		}
	}
	for _, m := range bCfg.Members {
		if !seen[m.Name] {
			subProblems = append(subProblems, problem.NewValueConflict("member:"+m.Name, "missing", "present"))
		}
	}

	if len(subProblems) == 0 {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b, subProblems...)
}

// AnalyzeSubType implements typedef.Kind: sub <: super iff sub is super
// itself, or sub's Super chain reaches super, or sub structurally
// contains every member super declares with a covariantly-compatible
// type (width-and-depth subtyping).
func (k *ClassKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	if sub.Identifier() == super.Identifier() {
		return nil
	}
	for cur := sub; cur != nil; {
		cfg, ok := cur.Data().(ClassConfig)
		if !ok {
			break
		}
		if cfg.Super == nil {
			break
		}
		if cfg.Super.Identifier() == super.Identifier() {
			return nil
		}
		cur = cfg.Super
	}

	subCfg, subOK := sub.Data().(ClassConfig)
	superCfg, superOK := super.Data().(ClassConfig)
	if !subOK || !superOK || k.Subtype == nil {
		return problem.NewSubTypeProblem(sub, super)
	}
	subMembers := make(map[string]*typedef.Type, len(subCfg.Members))
	for _, m := range subCfg.Members {
		subMembers[m.Name] = m.Type
	}

	var subProblems []problem.Problem
	for _, want := range superCfg.Members {
		have, ok := subMembers[want.Name]
		if !ok {
			subProblems = append(subProblems, problem.NewValueConflict("member:"+want.Name, "present", "missing"))
			continue
		}
		if p := k.Subtype(have, want.Type); p != nil {
			subProblems = append(subProblems, problem.NewIndexedTypeConflict(want.Name, p))
		}
	}
	if len(subProblems) == 0 {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super, subProblems...)
}

// Class begins building a Class type. If cfg.Super is non-nil, the new
// type is blocked from becoming Identifiable until Super is, and
// reverts to Invalid if Super is later invalidated or removed (the
// classSuperRemoved rule, enforced by validate.ClassSuperRemovedRule).
func Class(kind *ClassKind, cfg ClassConfig, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, cfg.Name, ctx, register)
	if err != nil {
		return nil, err
	}
	if cfg.Super != nil {
		init.AddReferencesToBeIdentifiable(typedef.NewReference(cfg.Super))
		init.AddReferencesRelevantForInvalidation(typedef.NewReference(cfg.Super))
	}
	for _, m := range cfg.Members {
		if m.Type != nil {
			init.AddReferencesToBeCompleted(typedef.NewReference(m.Type))
		}
	}
	return init.Finish(cfg)
}
