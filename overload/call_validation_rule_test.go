package overload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/infer"
	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/overload"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

type literalNode struct {
	key string
}

type testLanguage struct {
	keys map[any]string
}

func (l *testLanguage) GetLanguageNodeKey(node langnode.Node) (string, bool) {
	k, ok := l.keys[node]
	return k, ok
}
func (l *testLanguage) GetAllSubKeys(key string) []string   { return nil }
func (l *testLanguage) GetAllSuperKeys(key string) []string { return nil }
func (l *testLanguage) IsLanguageNode(v any) bool           { _, ok := l.keys[v]; return ok }

// literalTypeRule resolves every node under key directly to typ —
// standing in for the host's own literal-node inference rules.
type literalTypeRule struct {
	key string
	typ *typedef.Type
}

func (r *literalTypeRule) Name() string       { return "literal:" + r.key }
func (r *literalTypeRule) LanguageKey() string { return r.key }
func (r *literalTypeRule) Evaluate(node langnode.Node) infer.Outcome {
	return infer.Resolved(r.typ)
}

func TestCallValidationRuleEmitsProblemForUnmatchedOperator(t *testing.T) {
	strT := primitiveType(t, "string")
	numT := primitiveType(t, "number")
	retT := primitiveType(t, "retNumber")
	minus := functionType(t, "-", []*typedef.Type{numT, numT}, retT)

	a := &literalNode{key: "StringLiteral"}
	b := &literalNode{key: "StringLiteral"}
	call := &literalNode{key: "BinaryMinus"}

	lang := &testLanguage{keys: map[any]string{
		a: "StringLiteral", b: "StringLiteral", call: "BinaryMinus",
	}}

	svc := infer.New(infer.WithLanguage(lang))
	svc.AddRule(&literalTypeRule{key: "StringLiteral", typ: strT})

	classifier := newFakeClassifier()
	classifier.set(numT, numT, overload.ReasonEquality)
	mgr := overload.NewManager(classifier)
	group := mgr.Group("-")
	require.NoError(t, group.AddOverload(minus))

	rule := overload.NewCallValidationRule(group, "BinaryMinus", func(n langnode.Node) []langnode.Node {
		return []langnode.Node{a, b}
	}, svc)

	var problems []*problem.ValidationProblem
	rule.Run(call, func(p *problem.ValidationProblem) {
		problems = append(problems, p)
	})

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message(), "no overload")
	assert.Equal(t, "overload:-", rule.Name())
	assert.Equal(t, "BinaryMinus", rule.LanguageKey())
}

func TestCallValidationRuleStaysSilentOnAResolvedMatch(t *testing.T) {
	numT := primitiveType(t, "number")
	retT := primitiveType(t, "retNumber")
	plus := functionType(t, "+", []*typedef.Type{numT, numT}, retT)

	a := &literalNode{key: "NumberLiteral"}
	b := &literalNode{key: "NumberLiteral"}
	call := &literalNode{key: "BinaryPlus"}

	lang := &testLanguage{keys: map[any]string{
		a: "NumberLiteral", b: "NumberLiteral", call: "BinaryPlus",
	}}

	svc := infer.New(infer.WithLanguage(lang))
	svc.AddRule(&literalTypeRule{key: "NumberLiteral", typ: numT})

	classifier := newFakeClassifier()
	classifier.set(numT, numT, overload.ReasonEquality)
	mgr := overload.NewManager(classifier)
	group := mgr.Group("+")
	require.NoError(t, group.AddOverload(plus))

	rule := overload.NewCallValidationRule(group, "BinaryPlus", func(n langnode.Node) []langnode.Node {
		return []langnode.Node{a, b}
	}, svc)

	var problems []*problem.ValidationProblem
	rule.Run(call, func(p *problem.ValidationProblem) {
		problems = append(problems, p)
	})

	assert.Empty(t, problems)
}
