package typeforge

import (
	"log/slog"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/infer"
	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/kindreg"
	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/overload"
	"github.com/arlen-voss/typeforge/printer"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/relation"
	"github.com/arlen-voss/typeforge/typedef"
	"github.com/arlen-voss/typeforge/validate"
)

// Engine is one self-contained instance of the type-system engine:
// everything spec.md §6 names as an "external interface" lives here,
// wired together by New. Two Engines never share state (spec.md §5).
type Engine struct {
	Logger   *slog.Logger
	Metrics  *obsmetrics.Metrics
	Language langnode.Language

	Graph         *graph.Graph
	Kinds         *kindreg.Registry
	Inference     *infer.Service
	Equality      *relation.Equality
	Subtype       *relation.Subtype
	Conversion    *relation.Conversion
	Assignability *relation.Assignability
	Operators     *overload.Manager
	Validation    *validate.Collector
	Printer       *printer.Printer

	Top    *typedef.Type
	Bottom *typedef.Type

	Primitive       *kinds.PrimitiveKind
	Function        *kinds.FunctionKind
	Class           *kinds.ClassKind
	FixedParameters *kinds.FixedParametersKind
	Multiplicity    *kinds.MultiplicityKind
	Custom          *kinds.CustomKind

	classSuperRemoved *validate.ClassSuperRemovedRule
	typeValidation    bool
	resolver          func(identifier string) (*typedef.Type, bool)
}

// New constructs an Engine, applying opts over idiomatic defaults. A bare
// New() is immediately usable: a Graph with Top/Bottom already linked to
// every future type, every built-in Kind registered and cross-wired for
// subtyping, and an Overload manager backed by the live relation
// services.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{language: langnode.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = obsmetrics.New()
	}
	if cfg.graph == nil {
		cfg.graph = graph.New(graph.WithLogger(cfg.logger), graph.WithMetrics(cfg.metrics))
	}
	if cfg.kinds == nil {
		cfg.kinds = kindreg.New()
	}

	e := &Engine{
		Logger:   cfg.logger,
		Metrics:  cfg.metrics,
		Language: cfg.language,
		Graph:    cfg.graph,
		Kinds:    cfg.kinds,
	}

	if cfg.equality == nil {
		cfg.equality = relation.NewEquality(e.Graph, relation.WithLogger(e.Logger), relation.WithMetrics(e.Metrics))
	}
	if cfg.subtype == nil {
		cfg.subtype = relation.NewSubtype(e.Graph, relation.WithLogger(e.Logger), relation.WithMetrics(e.Metrics))
	}
	if cfg.conv == nil {
		cfg.conv = relation.NewConversion(e.Graph, relation.WithLogger(e.Logger), relation.WithMetrics(e.Metrics))
	}
	if cfg.assign == nil {
		cfg.assign = relation.NewAssignability(cfg.equality, cfg.conv, cfg.subtype, relation.WithLogger(e.Logger), relation.WithMetrics(e.Metrics))
	}
	e.Equality, e.Subtype, e.Conversion, e.Assignability = cfg.equality, cfg.subtype, cfg.conv, cfg.assign

	if cfg.infer == nil {
		cfg.infer = infer.New(infer.WithLogger(e.Logger), infer.WithMetrics(e.Metrics), infer.WithLanguage(e.Language))
	}
	e.Inference = cfg.infer

	if cfg.overload == nil {
		classifier := overload.ClassifierFromServices(e.Equality, e.Conversion, e.Subtype)
		cfg.overload = overload.NewManager(classifier, overload.WithLogger(e.Logger), overload.WithMetrics(e.Metrics))
	}
	e.Operators = cfg.overload

	if cfg.validate == nil {
		cfg.validate = validate.New(validate.WithLogger(e.Logger), validate.WithMetrics(e.Metrics), validate.WithLanguage(e.Language))
	}
	e.Validation = cfg.validate

	if cfg.printer == nil {
		cfg.printer = printer.New()
	}
	e.Printer = cfg.printer

	e.classSuperRemoved = validate.NewClassSuperRemovedRule(e.Validation.AcceptFn())
	e.typeValidation = cfg.typeValidation
	e.resolver = cfg.resolver

	if err := e.registerKinds(cfg); err != nil {
		return nil, err
	}
	if err := e.wireTopBottom(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) registerKinds(cfg *config) error {
	if cfg.primitive == nil {
		cfg.primitive = kinds.NewPrimitiveKind()
	}
	if cfg.function == nil {
		cfg.function = kinds.NewFunctionKind()
	}
	if cfg.class == nil {
		cfg.class = kinds.NewClassKind()
	}
	if cfg.fixedParameters == nil {
		cfg.fixedParameters = kinds.NewFixedParametersKind()
	}
	if cfg.multiplicity == nil {
		cfg.multiplicity = kinds.NewMultiplicityKind()
	}
	if cfg.custom == nil {
		cfg.custom = kinds.NewCustomKind()
	}
	e.Primitive, e.Function, e.Class = cfg.primitive, cfg.function, cfg.class
	e.FixedParameters, e.Multiplicity, e.Custom = cfg.fixedParameters, cfg.multiplicity, cfg.custom

	// Every variance-needing kind tests nested-type subtyping (and, for
	// Function/Class, equality) through the live Subtype/Equality
	// services rather than importing the relation package directly
	// (typedef.RelationChecker breaks the would-be import cycle). This is
	// what makes equality propagation live: relation.Equality.MarkAsEqual
	// takes effect for every Function/Class that nests the marked types
	// without needing to be re-derived.
	checker := e.Subtype.Checker()
	e.Function.SetSubtypeChecker(checker)
	e.Class.SetSubtypeChecker(checker)
	e.FixedParameters.SetSubtypeChecker(checker)
	e.Multiplicity.SetSubtypeChecker(checker)

	eqChecker := e.Equality.Checker()
	e.Function.SetEqualityChecker(eqChecker)
	e.Class.SetEqualityChecker(eqChecker)

	for _, k := range []typedef.Kind{e.Primitive, e.Function, e.Class, e.FixedParameters, e.Multiplicity, e.Custom} {
		if _, exists := e.Kinds.Get(k.Name()); exists {
			continue
		}
		if err := e.Kinds.Register(k); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) wireTopBottom() error {
	topKind, bottomKind := kinds.NewTopKind(), kinds.NewBottomKind()
	if _, exists := e.Kinds.Get(topKind.Name()); !exists {
		if err := e.Kinds.Register(topKind); err != nil {
			return err
		}
	}
	if _, exists := e.Kinds.Get(bottomKind.Name()); !exists {
		if err := e.Kinds.Register(bottomKind); err != nil {
			return err
		}
	}

	top, err := kinds.Top(topKind, e.ReferenceContext(), e.Register)
	if err != nil {
		return err
	}
	bottom, err := kinds.Bottom(bottomKind, e.ReferenceContext(), e.Register)
	if err != nil {
		return err
	}
	e.Top, e.Bottom = top, bottom

	// replay=true so any type registered before Top/Bottom existed (there
	// shouldn't be any at this point in New, but host code may call
	// wireTopBottom-equivalent steps out of order via overrides) still
	// gets its universal edges.
	e.Graph.AddListener(&kinds.UniversalEdgeListener{Graph: e.Graph, Top: e.Top, Bottom: e.Bottom}, true)
	return nil
}

// ReferenceContext builds the typedef.ReferenceContext every kind
// factory (kinds.Primitive, kinds.Class, ...) needs: identifier lookup
// backed by the Graph, language-node resolution backed by Inference.
func (e *Engine) ReferenceContext() typedef.ReferenceContext {
	lookup := e.resolver
	if lookup == nil {
		lookup = func(identifier string) (*typedef.Type, bool) {
			n, ok := e.Graph.GetType(identifier)
			if !ok {
				return nil, false
			}
			return n.(*typedef.Type), true
		}
	}
	return typedef.ReferenceContext{
		Lookup: lookup,
		Infer: func(node any) (*typedef.Type, problem.Problem) {
			return e.Inference.InferType(node)
		},
	}
}

// Register adds t to the Graph, reindexing it once it becomes
// Identifiable (since it has no stable identifier before then), and — if
// t is a Class with a declared Super — attaches the classSuperRemoved
// validation rule so invalidating that Super surfaces a ValidationProblem
// (spec.md's Open Question decision 3).
//
// Every built-in kind factory (kinds.Primitive, kinds.Class, ...) takes a
// register func(*typedef.Type) error matching this signature.
func (e *Engine) Register(t *typedef.Type) error {
	if _, err := e.Graph.AddNode(t); err != nil {
		return err
	}
	t.OnIdentifiable(func(ty *typedef.Type) {
		_ = e.Graph.Reindex(ty, "")
	})
	if e.typeValidation {
		if _, ok := t.Data().(kinds.ClassConfig); ok {
			e.classSuperRemoved.Attach(t)
		}
	}
	return nil
}

// RegisterOverloadValidation attaches the overload.CallValidationRule
// for the named overload group to the Engine's Validation collector
// (spec.md §4.6: "a per-group validator emits issues when a call site
// matches no overload or is ambiguous"). languageKey is the call-site
// node key the host's Validation walk dispatches on; arguments extracts
// a call node's ordered argument nodes, the same callback shape
// overload.NewCallRule already requires for the Inference side of the
// same group.
func (e *Engine) RegisterOverloadValidation(name, languageKey string, arguments func(call langnode.Node) []langnode.Node) {
	group := e.Operators.Group(name)
	rule := overload.NewCallValidationRule(group, languageKey, arguments, e.Inference)
	e.Validation.AddRule(rule)
}
