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
	"github.com/arlen-voss/typeforge/relation"
	"github.com/arlen-voss/typeforge/typedef"
	"github.com/arlen-voss/typeforge/validate"
)

// config holds every override point New accepts (spec.md §6's
// "dependency-injection module that accepts partial overrides"). Each
// field is nil/zero until an Option sets it; New supplies an idiomatic
// default for anything left unset.
type config struct {
	logger   *slog.Logger
	metrics  *obsmetrics.Metrics
	language langnode.Language

	graph    *graph.Graph
	kinds    *kindreg.Registry
	resolver func(identifier string) (*typedef.Type, bool)
	infer    *infer.Service
	equality *relation.Equality
	subtype  *relation.Subtype
	conv     *relation.Conversion
	assign   *relation.Assignability
	overload *overload.Manager
	validate *validate.Collector
	printer  *printer.Printer

	primitive       *kinds.PrimitiveKind
	function        *kinds.FunctionKind
	class           *kinds.ClassKind
	fixedParameters *kinds.FixedParametersKind
	multiplicity    *kinds.MultiplicityKind
	custom          *kinds.CustomKind

	typeValidation bool
}

// Option configures an Engine built by New.
type Option func(*config)

// WithLogger sets the structured logger every constructed service traces
// operations through.
func WithLogger(logger *slog.Logger) Option { return func(c *config) { c.logger = logger } }

// WithMetrics sets the Prometheus instrumentation shared by every
// constructed service. Defaults to a fresh obsmetrics.New() private to
// this Engine.
func WithMetrics(m *obsmetrics.Metrics) Option { return func(c *config) { c.metrics = m } }

// WithLanguage sets the host's Language introspection, used by
// Inference and Validation to resolve a node's language key and
// super-key chain. Defaults to langnode.Nop().
func WithLanguage(l langnode.Language) Option { return func(c *config) { c.language = l } }

// WithGraph overrides the type Graph. Defaults to a fresh graph.New().
func WithGraph(g *graph.Graph) Option { return func(c *config) { c.graph = g } }

// WithKindRegistry overrides the Kind registry. Defaults to a fresh
// kindreg.New() with every built-in kind registered.
func WithKindRegistry(r *kindreg.Registry) Option { return func(c *config) { c.kinds = r } }

// WithTypeResolver overrides the identifier lookup kind factories use to
// resolve a string selector into a *typedef.Type (the Lookup half of
// typedef.ReferenceContext). Defaults to the Graph's own GetType; a host
// with an additional, non-Graph-backed symbol table can supply its own.
func WithTypeResolver(fn func(identifier string) (*typedef.Type, bool)) Option {
	return func(c *config) { c.resolver = fn }
}

// WithInference overrides the Inference service.
func WithInference(s *infer.Service) Option { return func(c *config) { c.infer = s } }

// WithEquality overrides the Equality relation service.
func WithEquality(s *relation.Equality) Option { return func(c *config) { c.equality = s } }

// WithSubtype overrides the Subtype relation service.
func WithSubtype(s *relation.Subtype) Option { return func(c *config) { c.subtype = s } }

// WithConversion overrides the Conversion relation service.
func WithConversion(s *relation.Conversion) Option { return func(c *config) { c.conv = s } }

// WithAssignability overrides the Assignability relation service.
func WithAssignability(s *relation.Assignability) Option { return func(c *config) { c.assign = s } }

// WithOperators overrides the Overload manager (spec.md §6's "Operators"
// override point: operator call sites are ordinary overload groups).
func WithOperators(m *overload.Manager) Option { return func(c *config) { c.overload = m } }

// WithPrimitives overrides the Primitive kind singleton.
func WithPrimitives(k *kinds.PrimitiveKind) Option { return func(c *config) { c.primitive = k } }

// WithFunctions overrides the Function kind singleton.
func WithFunctions(k *kinds.FunctionKind) Option { return func(c *config) { c.function = k } }

// WithClasses overrides the Class kind singleton.
func WithClasses(k *kinds.ClassKind) Option { return func(c *config) { c.class = k } }

// WithFixedParameters overrides the FixedParameters kind singleton.
func WithFixedParameters(k *kinds.FixedParametersKind) Option {
	return func(c *config) { c.fixedParameters = k }
}

// WithMultiplicity overrides the Multiplicity kind singleton.
func WithMultiplicity(k *kinds.MultiplicityKind) Option {
	return func(c *config) { c.multiplicity = k }
}

// WithCustom overrides the Custom kind singleton.
func WithCustom(k *kinds.CustomKind) Option { return func(c *config) { c.custom = k } }

// WithPrinter overrides the Printer.
func WithPrinter(p *printer.Printer) Option { return func(c *config) { c.printer = p } }

// WithValidationCollector overrides the Validation collector.
func WithValidationCollector(v *validate.Collector) Option {
	return func(c *config) { c.validate = v }
}

// WithTypeValidation enables the built-in classSuperRemoved rule (spec.md
// §6's "Validation.TypeValidation" override point). Off by default so a
// host that supplies its own Validation.Collector isn't surprised by a
// rule it didn't ask for; on by default would be equally defensible, but
// spec.md frames this as an opt-in convenience, not a core invariant.
func WithTypeValidation(on bool) Option { return func(c *config) { c.typeValidation = on } }
