package infer

import (
	"context"
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/internal/pending"
	"github.com/arlen-voss/typeforge/internal/trace"
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Listener receives rule-registry change notifications, used by
// typedef.Reference to retry resolution once a rule that might resolve
// its language-node selector appears (spec.md §4.4's "onAddedInferenceRule,
// onRemovedInferenceRule" listener protocol).
type Listener interface {
	OnAddedInferenceRule(rule Rule)
	OnRemovedInferenceRule(rule Rule)
}

type registration struct {
	rule        Rule
	boundToType *typedef.Type
}

// RuleOption configures a single rule registration.
type RuleOption func(*registration)

// BoundToType restricts rule to only be considered when InferType is
// called with a matching WithExpectedType option (spec.md §4.4's
// "boundToType" registration option).
func BoundToType(t *typedef.Type) RuleOption {
	return func(r *registration) { r.boundToType = t }
}

// InferOption configures one InferType call.
type InferOption func(*inferCall)

type inferCall struct {
	expected *typedef.Type
}

// WithExpectedType supplies the type context a call site expects,
// filtering out rules registered with a non-matching BoundToType.
func WithExpectedType(t *typedef.Type) InferOption {
	return func(c *inferCall) { c.expected = t }
}

// Service implements the Inference service (spec.md §4.4).
type Service struct {
	logger   *slog.Logger
	metrics  *obsmetrics.Metrics
	language langnode.Language

	byKey        map[string][]*registration
	astNodeRules []*registration

	cache *pending.Cache[any, *typedef.Type]

	listeners []Listener
}

// New constructs an Inference Service.
func New(opts ...Option) *Service {
	cfg := &config{language: langnode.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Service{
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		language: cfg.language,
		byKey:    make(map[string][]*registration),
		cache:    pending.New[any, *typedef.Type](),
	}
}

// AddRule registers rule under its LanguageKey, or as an AstNode
// catch-all if LanguageKey() returns langnode.ASTNodeKey(). Catch-all
// rules always run after every key-specific rule (spec.md §4.4 step 4).
func (s *Service) AddRule(rule Rule, opts ...RuleOption) {
	reg := &registration{rule: rule}
	for _, opt := range opts {
		opt(reg)
	}
	key := rule.LanguageKey()
	if key == langnode.ASTNodeKey() {
		s.astNodeRules = append(s.astNodeRules, reg)
	} else {
		s.byKey[key] = append(s.byKey[key], reg)
	}
	for _, l := range s.listeners {
		l.OnAddedInferenceRule(rule)
	}
}

// RemoveRule un-registers rule (by identity). A no-op if rule was never
// registered.
func (s *Service) RemoveRule(rule Rule) {
	key := rule.LanguageKey()
	if key == langnode.ASTNodeKey() {
		s.astNodeRules = removeRule(s.astNodeRules, rule)
	} else {
		s.byKey[key] = removeRule(s.byKey[key], rule)
	}
	for _, l := range s.listeners {
		l.OnRemovedInferenceRule(rule)
	}
}

func removeRule(regs []*registration, rule Rule) []*registration {
	out := regs[:0]
	for _, r := range regs {
		if r.rule != rule {
			out = append(out, r)
		}
	}
	return out
}

// AddListener registers l for rule-registry change notifications.
func (s *Service) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// RemoveListener un-registers l.
func (s *Service) RemoveListener(l Listener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// InferType resolves node's Type (spec.md §4.4's inferType algorithm).
//
// Re-entering InferType for a node already Pending (a cycle) returns
// (nil, nil): the caller must treat this as "not yet inferable" and must
// not commit a result built on it. A RecurseAll/Recurse caller folds a
// (nil, nil) nested result into a ReasonNestedUnresolvable problem rather
// than propagating the ambiguity further.
func (s *Service) InferType(node langnode.Node, opts ...InferOption) (*typedef.Type, problem.Problem) {
	call := &inferCall{}
	for _, opt := range opts {
		opt(call)
	}

	if cached, state := s.cache.Lookup(node); state == pending.Resolved {
		s.metrics.CountInference("hit")
		return cached, nil
	}
	if _, state := s.cache.Lookup(node); state == pending.Pending {
		s.metrics.CountInference("pending")
		return nil, nil
	}

	op := trace.Begin(context.Background(), s.logger, "typeforge.infer.inferType")
	s.cache.MarkPending(node)

	key, _ := s.language.GetLanguageNodeKey(node)
	for _, reg := range s.applicableRules(key) {
		if reg.boundToType != nil && (call.expected == nil || reg.boundToType != call.expected) {
			continue
		}
		outcome := reg.rule.Evaluate(node)
		if !outcome.applicable {
			continue
		}

		t, p := s.resolveOutcome(outcome)
		s.cache.ClearPending(node)
		if p != nil {
			s.metrics.CountInference("problem")
			op.End(nil, slog.String("rule", reg.rule.Name()))
			return nil, p
		}
		s.cache.Resolve(node, t)
		s.metrics.CountInference("computed")
		op.End(nil, slog.String("rule", reg.rule.Name()))
		return t, nil
	}

	s.cache.ClearPending(node)
	s.metrics.CountInference("problem")
	op.End(nil)
	return nil, problem.NoRuleApplicable(node, key)
}

// Invalidate clears any cached inference result for node, forcing the
// next InferType(node) to re-run rule evaluation.
func (s *Service) Invalidate(node langnode.Node) {
	s.cache.Invalidate(node)
}

func (s *Service) resolveOutcome(outcome Outcome) (*typedef.Type, problem.Problem) {
	if outcome.typ != nil {
		return outcome.typ, nil
	}

	resolved := make([]*typedef.Type, 0, len(outcome.nested))
	var problems []problem.Problem
	for _, n := range outcome.nested {
		t, p := s.InferType(n)
		if p != nil {
			problems = append(problems, p)
			continue
		}
		if t == nil {
			problems = append(problems, problem.NewInferenceProblem(n, problem.ReasonNestedUnresolvable,
				"nested node is part of an inference cycle still in progress"))
			continue
		}
		resolved = append(resolved, t)
	}
	if len(problems) > 0 {
		return nil, problem.NewInferenceProblem(nil, problem.ReasonNestedUnresolvable,
			"one or more nested nodes could not be inferred", problems...)
	}
	return outcome.combine(resolved)
}

// applicableRules returns, in the order spec.md §4.4 step 4 requires:
// rules registered directly under key, then rules registered under any
// of key's super-keys (most specific first, in the Language's reported
// order), then every AstNode catch-all rule.
func (s *Service) applicableRules(key string) []*registration {
	out := append([]*registration(nil), s.byKey[key]...)
	if key != "" {
		for _, super := range s.language.GetAllSuperKeys(key) {
			out = append(out, s.byKey[super]...)
		}
	}
	out = append(out, s.astNodeRules...)
	return out
}
