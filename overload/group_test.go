package overload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/overload"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// fakeClassifier lets tests dictate match reasons without constructing a
// full graph/relation stack.
type fakeClassifier struct {
	reasons map[[2]*typedef.Type]overload.MatchReason
}

func newFakeClassifier() *fakeClassifier {
	return &fakeClassifier{reasons: make(map[[2]*typedef.Type]overload.MatchReason)}
}

func (c *fakeClassifier) set(arg, param *typedef.Type, reason overload.MatchReason) {
	c.reasons[[2]*typedef.Type{arg, param}] = reason
}

func (c *fakeClassifier) Classify(arg, param *typedef.Type) (overload.MatchReason, bool) {
	r, ok := c.reasons[[2]*typedef.Type{arg, param}]
	if !ok || r == overload.ReasonNone {
		return overload.ReasonNone, false
	}
	return r, true
}

func primitiveType(t *testing.T, name string) *typedef.Type {
	t.Helper()
	kind := kinds.NewPrimitiveKind()
	typ, err := kinds.Primitive(kind, name, typedef.ReferenceContext{}, func(*typedef.Type) error { return nil })
	require.NoError(t, err)
	return typ
}

func functionType(t *testing.T, name string, params []*typedef.Type, ret *typedef.Type) *typedef.Type {
	t.Helper()
	kind := kinds.NewFunctionKind()
	typ, err := kinds.Function(kind, kinds.FunctionConfig{Name: name, Params: params, Return: ret}, typedef.ReferenceContext{}, func(*typedef.Type) error { return nil })
	require.NoError(t, err)
	return typ
}

func TestGroupResolvesUniqueMatch(t *testing.T) {
	intT := primitiveType(t, "int")
	floatT := primitiveType(t, "float")
	strT := primitiveType(t, "string")
	retInt := primitiveType(t, "retInt")
	retFloat := primitiveType(t, "retFloat")

	intOverload := functionType(t, "add", []*typedef.Type{intT, intT}, retInt)
	floatOverload := functionType(t, "add", []*typedef.Type{floatT, floatT}, retFloat)

	classifier := newFakeClassifier()
	classifier.set(intT, intT, overload.ReasonEquality)
	classifier.set(floatT, floatT, overload.ReasonEquality)
	classifier.set(intT, floatT, overload.ReasonNone)
	classifier.set(strT, intT, overload.ReasonNone)
	classifier.set(strT, floatT, overload.ReasonNone)

	mgr := overload.NewManager(classifier)
	group := mgr.Group("add")
	require.NoError(t, group.AddOverload(intOverload))
	require.NoError(t, group.AddOverload(floatOverload))

	result, p := group.Resolve([]*typedef.Type{intT, intT})
	require.Nil(t, p)
	assert.Same(t, retInt, result)
}

func TestGroupNoMatchProducesProblem(t *testing.T) {
	intT := primitiveType(t, "int")
	strT := primitiveType(t, "string")
	retInt := primitiveType(t, "retInt")
	fn := functionType(t, "add", []*typedef.Type{intT, intT}, retInt)

	classifier := newFakeClassifier()
	mgr := overload.NewManager(classifier)
	group := mgr.Group("add")
	require.NoError(t, group.AddOverload(fn))

	result, p := group.Resolve([]*typedef.Type{strT, strT})
	assert.Nil(t, result)
	require.NotNil(t, p)
	assert.Equal(t, problem.KindInference, p.Kind())
}

func TestGroupTieBreaksByStrongestMatch(t *testing.T) {
	numberT := primitiveType(t, "number")
	wideParamT := primitiveType(t, "numberWide")
	retWeak := primitiveType(t, "retWeak")
	retStrong := primitiveType(t, "retStrong")

	weak := functionType(t, "f", []*typedef.Type{wideParamT}, retWeak)
	strong := functionType(t, "f", []*typedef.Type{numberT}, retStrong)

	classifier := newFakeClassifier()
	classifier.set(numberT, wideParamT, overload.ReasonSubtype)
	classifier.set(numberT, numberT, overload.ReasonEquality)

	mgr := overload.NewManager(classifier)
	group := mgr.Group("f")
	require.NoError(t, group.AddOverload(weak))
	require.NoError(t, group.AddOverload(strong))

	result, p := group.Resolve([]*typedef.Type{numberT})
	require.Nil(t, p)
	assert.Same(t, retStrong, result, "equality match must win over a weaker subtype match")
}

func TestGroupAmbiguousWhenTwoOverloadsTieAtTheSameStrength(t *testing.T) {
	numberT := primitiveType(t, "number")
	retA := primitiveType(t, "retA")
	retB := primitiveType(t, "retB")

	a := functionType(t, "f", []*typedef.Type{numberT}, retA)
	b := functionType(t, "f", []*typedef.Type{numberT}, retB)

	classifier := newFakeClassifier()
	classifier.set(numberT, numberT, overload.ReasonEquality)

	mgr := overload.NewManager(classifier)
	group := mgr.Group("f")
	require.NoError(t, group.AddOverload(a))
	require.NoError(t, group.AddOverload(b))

	result, p := group.Resolve([]*typedef.Type{numberT})
	assert.Nil(t, result)
	require.NotNil(t, p)
	assert.Equal(t, problem.KindInference, p.Kind())
}

func TestSameOutputType(t *testing.T) {
	intT := primitiveType(t, "int")
	floatT := primitiveType(t, "float")
	ret := primitiveType(t, "ret")

	a := functionType(t, "g", []*typedef.Type{intT}, ret)
	b := functionType(t, "g", []*typedef.Type{floatT}, ret)

	classifier := newFakeClassifier()
	mgr := overload.NewManager(classifier)
	group := mgr.Group("g")
	require.NoError(t, group.AddOverload(a))
	require.NoError(t, group.AddOverload(b))

	got, ok := group.SameOutputType()
	assert.True(t, ok)
	assert.Same(t, ret, got)
}

func TestAddOverloadRejectsNameMismatch(t *testing.T) {
	intT := primitiveType(t, "int")
	ret := primitiveType(t, "ret")
	fn := functionType(t, "actualName", []*typedef.Type{intT}, ret)

	mgr := overload.NewManager(newFakeClassifier())
	group := mgr.Group("expectedName")
	err := group.AddOverload(fn)
	assert.Error(t, err)
}
