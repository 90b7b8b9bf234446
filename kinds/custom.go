package kinds

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// CustomEnv is the evaluation environment exposed to a Custom type's
// equality/subtype expr-lang predicates: the two instances under
// comparison, by identifier and their opaque structural Data.
type CustomEnv struct {
	A CustomInstance
	B CustomInstance
}

// CustomInstance is one side of a Custom-kind comparison.
type CustomInstance struct {
	Identifier string
	Data       any
}

// CustomConfig is a Custom type's structural data: a name, opaque
// host-defined Data, a set of tagged Properties (scalar or, via
// TypeSelector, type-valued), and two expr-lang predicate sources
// evaluated against a CustomEnv (spec.md §4.3's escape hatch for
// host-defined equality/subtyping algorithms that don't fit the other
// seven kinds). Both expressions are compiled once, at Custom(), and the
// resulting *vm.Program is run on every subsequent comparison —
// compile-once, run-many, the same pattern bittoy/rule's expression
// filter node uses.
//
// Properties is walked by Custom() the same way ClassConfig.Members and
// FunctionConfig.Params are walked by their own factories: every
// TypeSelector-valued entry becomes a precondition that must reach
// Identifiable before this Custom type can (spec.md §8's "delayed
// creation" scenario).
type CustomConfig struct {
	Name         string
	Data         any
	Properties   []Property
	EqualityExpr string // must evaluate to bool; env is CustomEnv{A, B}
	SubTypeExpr  string // must evaluate to bool; env is CustomEnv{A: sub, B: super}
	equalityProg *vm.Program
	subTypeProg  *vm.Program
}

// CustomKind implements typedef.Kind by delegating to each type's own
// compiled expr-lang predicates rather than a single fixed algorithm.
type CustomKind struct{}

// NewCustomKind constructs the Custom kind singleton.
func NewCustomKind() *CustomKind { return &CustomKind{} }

// Name implements typedef.Kind.
func (*CustomKind) Name() string { return "custom" }

// CalculateIdentifier implements typedef.Kind. Type-valued properties
// contribute their referenced type's identifier rather than a pointer
// value, so two Custom types built from equivalent-but-distinct
// TypeSelector pointers still dedup onto one Type.
func (*CustomKind) CalculateIdentifier(config any) (string, error) {
	cfg, ok := config.(CustomConfig)
	if !ok {
		return "", errConfigType("custom", config)
	}
	props := make([]string, len(cfg.Properties))
	for i, p := range cfg.Properties {
		if ts, ok := p.TypeSelector(); ok {
			id := ""
			if ts.Ref != nil {
				id = ts.Ref.Identifier()
			}
			props[i] = fmt.Sprintf("%s=type:%s", p.Name(), id)
		} else {
			props[i] = fmt.Sprintf("%s=%v", p.Name(), p.Value())
		}
	}
	return normalizeIdentifier(fmt.Sprintf("custom:%s:%v:{%s}", cfg.Name, cfg.Data, strings.Join(props, ","))), nil
}

// AnalyzeTypeEquality implements typedef.Kind by running a's compiled
// equality predicate (both types share one Kind instance, but each
// carries its own compiled program in Data).
func (*CustomKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	cfg, ok := a.Data().(CustomConfig)
	if !ok || cfg.equalityProg == nil {
		return problem.NewTypeEqualityProblem(a, b)
	}
	bCfg, _ := b.Data().(CustomConfig)
	result, err := vm.Run(cfg.equalityProg, CustomEnv{
		A: CustomInstance{Identifier: a.Identifier(), Data: cfg.Data},
		B: CustomInstance{Identifier: b.Identifier(), Data: bCfg.Data},
	})
	if err != nil {
		return problem.NewTypeEqualityProblem(a, b, problem.NewValueConflict("equalityExpr", "no error", err.Error()))
	}
	if equal, _ := result.(bool); equal {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b)
}

// AnalyzeSubType implements typedef.Kind by running sub's compiled
// subtype predicate.
func (*CustomKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	cfg, ok := sub.Data().(CustomConfig)
	if !ok || cfg.subTypeProg == nil {
		return problem.NewSubTypeProblem(sub, super)
	}
	superCfg, _ := super.Data().(CustomConfig)
	result, err := vm.Run(cfg.subTypeProg, CustomEnv{
		A: CustomInstance{Identifier: sub.Identifier(), Data: cfg.Data},
		B: CustomInstance{Identifier: super.Identifier(), Data: superCfg.Data},
	})
	if err != nil {
		return problem.NewSubTypeProblem(sub, super, problem.NewValueConflict("subTypeExpr", "no error", err.Error()))
	}
	if isSub, _ := result.(bool); isSub {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super)
}

// Custom begins building a Custom type, compiling cfg's predicate
// expressions up front so every later comparison reuses the compiled
// programs instead of re-parsing the expression source.
func Custom(kind *CustomKind, cfg CustomConfig, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	if cfg.EqualityExpr != "" {
		prog, err := expr.Compile(cfg.EqualityExpr, expr.Env(CustomEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile equality expr: %w", err)
		}
		cfg.equalityProg = prog
	}
	if cfg.SubTypeExpr != "" {
		prog, err := expr.Compile(cfg.SubTypeExpr, expr.Env(CustomEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile subtype expr: %w", err)
		}
		cfg.subTypeProg = prog
	}

	init, err := typedef.NewInitializer(kind, cfg.Name, ctx, register)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Properties {
		if ts, ok := p.TypeSelector(); ok && ts.Ref != nil {
			init.AddReferencesToBeIdentifiable(typedef.NewReference(ts.Ref))
		}
	}
	return init.Finish(cfg)
}
