package typedef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

type stubKind struct {
	name string
}

func (k *stubKind) Name() string { return k.name }
func (k *stubKind) CalculateIdentifier(config any) (string, error) {
	return config.(string), nil
}
func (k *stubKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem {
	if a.Identifier() == b.Identifier() {
		return nil
	}
	return problem.NewTypeEqualityProblem(a, b)
}
func (k *stubKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem {
	if sub.Identifier() == super.Identifier() {
		return nil
	}
	return problem.NewSubTypeProblem(sub, super)
}

func TestTypeLifecycleHappyPath(t *testing.T) {
	k := &stubKind{name: "stub"}
	ty, err := typedef.NewType(k, "number")
	require.NoError(t, err)
	assert.Equal(t, typedef.Invalid, ty.State())
	assert.Equal(t, "", ty.Identifier())

	var identifiableFired, completedFired bool
	ty.OnIdentifiable(func(*typedef.Type) { identifiableFired = true })
	ty.OnCompleted(func(*typedef.Type) { completedFired = true })

	require.NoError(t, ty.MarkIdentifiable("number"))
	assert.Equal(t, typedef.Identifiable, ty.State())
	assert.True(t, identifiableFired)
	assert.False(t, completedFired)

	require.NoError(t, ty.MarkCompleted())
	assert.Equal(t, typedef.Completed, ty.State())
	assert.True(t, completedFired)
}

func TestTypeLifecycleRejectsOutOfOrderTransitions(t *testing.T) {
	k := &stubKind{name: "stub"}
	ty, err := typedef.NewType(k, "number")
	require.NoError(t, err)

	assert.ErrorIs(t, ty.MarkCompleted(), typedef.ErrWrongState)
	assert.ErrorIs(t, ty.Invalidate(), typedef.ErrWrongState)
}

func TestTypeOnIdentifiableFiresImmediatelyWhenAlreadyIdentifiable(t *testing.T) {
	k := &stubKind{name: "stub"}
	ty, err := typedef.NewType(k, "number")
	require.NoError(t, err)
	require.NoError(t, ty.MarkIdentifiable("number"))

	fired := false
	ty.OnIdentifiable(func(*typedef.Type) { fired = true })
	assert.True(t, fired)
}

func TestTypeInvalidateResetsAndRefires(t *testing.T) {
	k := &stubKind{name: "stub"}
	ty, err := typedef.NewType(k, "number")
	require.NoError(t, err)
	require.NoError(t, ty.MarkIdentifiable("number"))
	require.NoError(t, ty.MarkCompleted())

	count := 0
	ty.OnInvalidated(func(*typedef.Type) { count++ })

	require.NoError(t, ty.Invalidate())
	assert.Equal(t, typedef.Invalid, ty.State())
	assert.Equal(t, "", ty.Identifier())
	assert.Equal(t, 1, count)

	require.NoError(t, ty.MarkIdentifiable("number"))
	require.NoError(t, ty.MarkCompleted())
	require.NoError(t, ty.Invalidate())
	assert.Equal(t, 2, count, "OnInvalidated fires on every invalidation, not just the first")
}

func TestAnalyzeTypeEqualityCrossKindNeverEqual(t *testing.T) {
	a, err := typedef.NewType(&stubKind{name: "a"}, "x")
	require.NoError(t, err)
	b, err := typedef.NewType(&stubKind{name: "b"}, "x")
	require.NoError(t, err)
	_ = a.MarkIdentifiable("x")
	_ = b.MarkIdentifiable("x")

	p := a.AnalyzeTypeEquality(b)
	require.NotNil(t, p)
	assert.Equal(t, problem.KindTypeEquality, p.Kind())
}

func TestAnalyzeTypeEqualitySameKindDelegates(t *testing.T) {
	k := &stubKind{name: "stub"}
	a, err := typedef.NewType(k, "x")
	require.NoError(t, err)
	b, err := typedef.NewType(k, "x")
	require.NoError(t, err)
	_ = a.MarkIdentifiable("number")
	_ = b.MarkIdentifiable("number")

	assert.Nil(t, a.AnalyzeTypeEquality(b))
}

func TestSetDataRejectedAfterCompleted(t *testing.T) {
	k := &stubKind{name: "stub"}
	ty, err := typedef.NewType(k, "number")
	require.NoError(t, err)
	require.NoError(t, ty.MarkIdentifiable("number"))
	require.NoError(t, ty.MarkCompleted())

	assert.ErrorIs(t, ty.SetData("x"), typedef.ErrWrongState)
}
