package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/langnode"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/severity"
	"github.com/arlen-voss/typeforge/validate"
)

// literalNode is a minimal host node carrying its own language key, used
// to exercise key/super-key/catch-all matching without a real AST.
type literalNode struct{ key string }

type testLanguage struct {
	supers map[string][]string
}

func (l *testLanguage) GetLanguageNodeKey(node any) (string, bool) {
	n, ok := node.(*literalNode)
	if !ok {
		return "", false
	}
	return n.key, true
}

func (l *testLanguage) GetAllSubKeys(key string) []string { return nil }

func (l *testLanguage) GetAllSuperKeys(key string) []string { return l.supers[key] }

func (l *testLanguage) IsLanguageNode(node any) bool {
	_, ok := node.(*literalNode)
	return ok
}

func TestCollectorRunsBeforeNodeAfterInOrder(t *testing.T) {
	var order []string
	c := validate.New()

	c.AddBeforeRule(validate.NewFunc("before", langnode.ASTNodeKey(), func(node any, accept validate.Accept) {
		order = append(order, "before")
	}))
	c.AddRule(validate.NewFunc("node", langnode.ASTNodeKey(), func(node any, accept validate.Accept) {
		order = append(order, "node")
	}))
	c.AddAfterRule(validate.NewFunc("after", langnode.ASTNodeKey(), func(node any, accept validate.Accept) {
		order = append(order, "after")
	}))

	root := &literalNode{key: "module"}
	c.Before(root)
	c.ValidateNode(root)
	c.After(root)

	assert.Equal(t, []string{"before", "node", "after"}, order)
}

func TestCollectorMatchesKeySuperKeyAndCatchAll(t *testing.T) {
	lang := &testLanguage{supers: map[string][]string{"intLiteral": {"expression"}}}
	c := validate.New(validate.WithLanguage(lang))

	var ran []string
	c.AddRule(validate.NewFunc("onInt", "intLiteral", func(node any, accept validate.Accept) {
		ran = append(ran, "onInt")
	}))
	c.AddRule(validate.NewFunc("onExpression", "expression", func(node any, accept validate.Accept) {
		ran = append(ran, "onExpression")
	}))
	c.AddRule(validate.NewFunc("onAny", langnode.ASTNodeKey(), func(node any, accept validate.Accept) {
		ran = append(ran, "onAny")
	}))

	c.ValidateNode(&literalNode{key: "intLiteral"})

	assert.Equal(t, []string{"onInt", "onExpression", "onAny"}, ran)
}

func TestCollectorAccumulatesProblemsAndCountsBySeverity(t *testing.T) {
	c := validate.New()
	node := &literalNode{key: "decl"}

	c.AddRule(validate.NewFunc("warns", langnode.ASTNodeKey(), func(n any, accept validate.Accept) {
		accept(problem.NewValidationProblem(severity.Warning, "looks off", n))
		accept(problem.NewValidationProblem(severity.Error, "definitely wrong", n))
	}))

	c.ValidateNode(node)

	problems := c.Problems()
	require.Len(t, problems, 2)
	vp, ok := problems[0].(*problem.ValidationProblem)
	require.True(t, ok)
	assert.Equal(t, severity.Warning, vp.Severity)
}

func TestCollectorResetClearsProblems(t *testing.T) {
	c := validate.New()
	node := &literalNode{key: "decl"}
	c.AddRule(validate.NewFunc("warns", langnode.ASTNodeKey(), func(n any, accept validate.Accept) {
		accept(problem.NewValidationProblem(severity.Error, "bad", n))
	}))

	c.ValidateNode(node)
	require.Len(t, c.Problems(), 1)

	c.Reset()
	assert.Empty(t, c.Problems())
}
