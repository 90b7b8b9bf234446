package overload

import (
	"github.com/arlen-voss/typeforge/infer"
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/severity"
	"github.com/arlen-voss/typeforge/typedef"
	"github.com/arlen-voss/typeforge/validate"
)

// CallValidationRule is the validate.Rule companion to CallRule: spec.md
// §4.6 assigns a call site's overload resolution to both the Inference
// service (producing a Type for the call expression) and the Validation
// Collector (a ValidationProblem when the call matches no overload or
// is ambiguous). CallRule covers the former; CallValidationRule covers
// the latter by re-running Group.Resolve over the same argument nodes,
// through the same host-supplied languageKey/arguments extractor.
type CallValidationRule struct {
	group       *Group
	languageKey string
	arguments   func(call langnode.Node) []langnode.Node
	infer       *infer.Service
}

// NewCallValidationRule builds the validation rule for call sites of
// group, registered under languageKey. infer resolves each argument
// node to a Type — the same service CallRule feeds into via Evaluate.
func NewCallValidationRule(group *Group, languageKey string, arguments func(call langnode.Node) []langnode.Node, infer *infer.Service) *CallValidationRule {
	return &CallValidationRule{group: group, languageKey: languageKey, arguments: arguments, infer: infer}
}

// Name implements validate.Rule.
func (r *CallValidationRule) Name() string { return "overload:" + r.group.name }

// LanguageKey implements validate.Rule.
func (r *CallValidationRule) LanguageKey() string { return r.languageKey }

// Run implements validate.Rule: infers every argument node's type, then
// resolves the overload; a no-match or ambiguous result becomes a
// ValidationProblem naming the call site. An argument that itself fails
// to infer is left for the Inference service's own problem to report,
// not duplicated here.
func (r *CallValidationRule) Run(node any, accept validate.Accept) {
	argNodes := r.arguments(node)
	args := make([]*typedef.Type, len(argNodes))
	for i, n := range argNodes {
		t, p := r.infer.InferType(n)
		if p != nil {
			return
		}
		args[i] = t
	}

	if _, p := r.group.Resolve(args); p != nil {
		accept(problem.NewValidationProblem(severity.Error, p.Message(), node))
	}
}
