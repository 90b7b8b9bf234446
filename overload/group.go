package overload

import (
	"fmt"
	"log/slog"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// Group is one overload group: every FunctionType sharing a name
// (spec.md §4.6's "overloadedFunctions").
type Group struct {
	name       string
	functions  []*typedef.Type
	classifier ArgumentClassifier
	logger     *slog.Logger
	metrics    *obsmetrics.Metrics
}

// Name returns the group's function name.
func (g *Group) Name() string { return g.name }

// Overloads returns the group's member FunctionTypes, in addition order.
func (g *Group) Overloads() []*typedef.Type {
	return append([]*typedef.Type(nil), g.functions...)
}

// AddOverload adds fn to the group. fn must be a Function-kind Type whose
// FunctionConfig.Name matches the group's name.
func (g *Group) AddOverload(fn *typedef.Type) error {
	if fn.Kind().Name() != "function" {
		return fmt.Errorf("%w: %w", ErrInternal, ErrNotAFunction)
	}
	cfg, ok := fn.Data().(kinds.FunctionConfig)
	if !ok || cfg.Name != g.name {
		return fmt.Errorf("%w: %w", ErrInternal, ErrNameMismatch)
	}
	g.functions = append(g.functions, fn)
	return nil
}

// SameOutputType returns the group's shared return type and true if every
// member overload declares the same return type identifier (spec.md
// §4.6's "sameOutputType" fast path); otherwise (nil, false).
func (g *Group) SameOutputType() (*typedef.Type, bool) {
	if len(g.functions) == 0 {
		return nil, false
	}
	var first *typedef.Type
	for _, fn := range g.functions {
		cfg, ok := fn.Data().(kinds.FunctionConfig)
		if !ok || cfg.Return == nil {
			return nil, false
		}
		if first == nil {
			first = cfg.Return
			continue
		}
		if cfg.Return.Identifier() != first.Identifier() {
			return nil, false
		}
	}
	return first, true
}

// Resolve picks the unique overload whose parameter list matches args by
// assignability (spec.md §4.6). Each matching overload is ranked by its
// weakest per-parameter match reason; the overload with the strongest
// such rank wins. Returns an InferenceProblem tagged ReasonOverloadNoMatch
// or ReasonOverloadAmbiguous when resolution fails.
func (g *Group) Resolve(args []*typedef.Type) (*typedef.Type, problem.Problem) {
	type candidate struct {
		fn    *typedef.Type
		worst MatchReason
	}

	var candidates []candidate
	for _, fn := range g.functions {
		cfg, ok := fn.Data().(kinds.FunctionConfig)
		if !ok || len(cfg.Params) != len(args) {
			continue
		}
		worst := ReasonEquality
		matched := true
		for i, param := range cfg.Params {
			reason, ok := g.classifier.Classify(args[i], param)
			if !ok {
				matched = false
				break
			}
			if reason < worst {
				worst = reason
			}
		}
		if matched {
			candidates = append(candidates, candidate{fn: fn, worst: worst})
		}
	}

	if len(candidates) == 0 {
		g.metrics.CountOverload("no_match")
		return nil, problem.NewInferenceProblem(nil, problem.ReasonOverloadNoMatch,
			fmt.Sprintf("no overload of %q matches the given argument types", g.name))
	}

	best := ReasonNone
	for _, c := range candidates {
		if c.worst > best {
			best = c.worst
		}
	}
	var winners []candidate
	for _, c := range candidates {
		if c.worst == best {
			winners = append(winners, c)
		}
	}
	if len(winners) != 1 {
		g.metrics.CountOverload("ambiguous")
		return nil, problem.NewInferenceProblem(nil, problem.ReasonOverloadAmbiguous,
			fmt.Sprintf("call to %q matches %d overloads at equal precedence", g.name, len(winners)))
	}

	g.metrics.CountOverload("resolved")
	cfg := winners[0].fn.Data().(kinds.FunctionConfig)
	return cfg.Return, nil
}
