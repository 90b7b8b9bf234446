package validate

import "github.com/arlen-voss/typeforge/problem"

// Accept is how a Rule reports a problem it finds; a rule may call it
// any number of times (including zero) per Run.
type Accept func(*problem.ValidationProblem)

// Rule is a ValidationRule (spec.md §3): inspects a node and reports
// zero or more ValidationProblems via accept.
type Rule interface {
	// Name identifies the rule for tracing/diagnostics.
	Name() string

	// LanguageKey is the language key this rule runs for, or "" to run
	// for every node regardless of key (the per-node equivalent of
	// infer's AstNode catch-all). Ignored by before/after rules, which
	// always run once against the root.
	LanguageKey() string

	// Run inspects node, reporting any problems found through accept.
	Run(node any, accept Accept)
}

// Func adapts a plain function into a Rule.
type Func struct {
	name string
	key  string
	run  func(node any, accept Accept)
}

// NewFunc builds a Rule named name, registered under key (or "" for
// every node), delegating to run.
func NewFunc(name, key string, run func(node any, accept Accept)) *Func {
	return &Func{name: name, key: key, run: run}
}

// Name implements Rule.
func (f *Func) Name() string { return f.name }

// LanguageKey implements Rule.
func (f *Func) LanguageKey() string { return f.key }

// Run implements Rule.
func (f *Func) Run(node any, accept Accept) { f.run(node, accept) }
