package validate

import (
	"context"
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/internal/trace"
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/problem"
)

// Collector implements the Validation Collector (spec.md §4.7): it holds
// the registered before/per-node/after rules and accumulates the
// ValidationProblems they report. Walking the host AST and calling
// ValidateNode for each visited node is the driver's job.
type Collector struct {
	logger   *slog.Logger
	metrics  *obsmetrics.Metrics
	language langnode.Language

	byKey        map[string][]Rule
	astNodeRules []Rule
	beforeRules  []Rule
	afterRules   []Rule

	problems []problem.Problem
}

// New constructs a Collector.
func New(opts ...Option) *Collector {
	cfg := &config{language: langnode.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Collector{
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		language: cfg.language,
		byKey:    make(map[string][]Rule),
	}
}

// AddRule registers rule to run against every node whose language key
// (or one of its super-keys) matches rule.LanguageKey(), or against every
// node at all if LanguageKey() returns langnode.ASTNodeKey().
func (c *Collector) AddRule(rule Rule) {
	key := rule.LanguageKey()
	if key == langnode.ASTNodeKey() || key == "" {
		c.astNodeRules = append(c.astNodeRules, rule)
		return
	}
	c.byKey[key] = append(c.byKey[key], rule)
}

// AddBeforeRule registers rule to run once against the tree root before
// any per-node rule runs.
func (c *Collector) AddBeforeRule(rule Rule) {
	c.beforeRules = append(c.beforeRules, rule)
}

// AddAfterRule registers rule to run once against the tree root after
// every per-node rule has run.
func (c *Collector) AddAfterRule(rule Rule) {
	c.afterRules = append(c.afterRules, rule)
}

// Before runs every before-rule against root.
func (c *Collector) Before(root any) {
	op := trace.Begin(context.Background(), c.logger, "typeforge.validate.before")
	for _, rule := range c.beforeRules {
		rule.Run(root, c.accept)
	}
	op.End(nil)
}

// ValidateNode runs every rule applicable to node: rules registered under
// node's language key, then rules registered under any of its super-keys
// (most specific first), then every AstNode catch-all rule — the same
// precedence infer.Service.applicableRules uses for inference rules.
func (c *Collector) ValidateNode(node any) {
	key, _ := c.language.GetLanguageNodeKey(node)
	for _, rule := range c.applicableRules(key) {
		rule.Run(node, c.accept)
	}
}

// After runs every after-rule against root.
func (c *Collector) After(root any) {
	op := trace.Begin(context.Background(), c.logger, "typeforge.validate.after")
	for _, rule := range c.afterRules {
		rule.Run(root, c.accept)
	}
	op.End(nil)
}

// Problems returns every ValidationProblem accumulated so far, in report
// order.
func (c *Collector) Problems() []problem.Problem {
	return c.problems
}

// Reset clears accumulated problems so the Collector can be reused for a
// fresh validation pass.
func (c *Collector) Reset() {
	c.problems = nil
}

// AcceptFn exposes the Collector's own problem sink, for rules like
// ClassSuperRemovedRule that are driven by a listener callback rather
// than by ValidateNode.
func (c *Collector) AcceptFn() Accept {
	return c.accept
}

func (c *Collector) accept(p *problem.ValidationProblem) {
	c.problems = append(c.problems, p)
	c.metrics.CountValidationIssue(p.Severity.String())
}

func (c *Collector) applicableRules(key string) []Rule {
	out := append([]Rule(nil), c.byKey[key]...)
	if key != "" {
		for _, super := range c.language.GetAllSuperKeys(key) {
			out = append(out, c.byKey[super]...)
		}
	}
	out = append(out, c.astNodeRules...)
	return out
}
