package overload

import (
	"github.com/arlen-voss/typeforge/infer"
	"github.com/arlen-voss/typeforge/langnode"
)

// CallRule is the composite inference rule spec.md §4.6 describes for a
// function-call language node: it infers each argument node's type, then
// asks the Group to resolve the matching overload.
type CallRule struct {
	group       *Group
	languageKey string
	arguments   func(call langnode.Node) []langnode.Node
}

// NewCallRule builds the inference rule for call sites of group,
// registered under languageKey. arguments extracts a call node's ordered
// argument nodes; the host supplies this since typeforge never walks a
// concrete AST itself.
func NewCallRule(group *Group, languageKey string, arguments func(call langnode.Node) []langnode.Node) *CallRule {
	return &CallRule{group: group, languageKey: languageKey, arguments: arguments}
}

// Name implements infer.Rule.
func (r *CallRule) Name() string { return "overload:" + r.group.name }

// LanguageKey implements infer.Rule.
func (r *CallRule) LanguageKey() string { return r.languageKey }

// Evaluate implements infer.Rule: every argument node is inferred, then
// Group.Resolve picks the overload (or reports no-match/ambiguous).
func (r *CallRule) Evaluate(call langnode.Node) infer.Outcome {
	args := r.arguments(call)
	return infer.RecurseAll(args, r.group.Resolve)
}
