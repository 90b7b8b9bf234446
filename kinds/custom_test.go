package kinds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/typedef"
)

func TestCustomEqualityExprCompiledOnceRunMany(t *testing.T) {
	tg := newTestGraph()
	kind := kinds.NewCustomKind()

	a, err := kinds.Custom(kind, kinds.CustomConfig{
		Name:         "evenMatrix",
		Data:         4,
		EqualityExpr: "A.Data == B.Data",
	}, tg.ctx(), tg.register)
	require.NoError(t, err)

	b, err := kinds.Custom(kind, kinds.CustomConfig{
		Name:         "evenMatrix",
		Data:         6,
		EqualityExpr: "A.Data == B.Data",
	}, tg.ctx(), tg.register)
	require.NoError(t, err)

	assert.NotNil(t, a.AnalyzeTypeEquality(b), "different Data: predicate evaluates false")

	c, err := kinds.Custom(kind, kinds.CustomConfig{
		Name:         "evenMatrix",
		Data:         4,
		EqualityExpr: "A.Data == B.Data",
	}, tg.ctx(), tg.register)
	require.NoError(t, err)
	assert.Same(t, a, c, "same Name+Data dedups identifiers")
}

func TestCustomSubTypeExprEvaluatesAgainstBothSides(t *testing.T) {
	tg := newTestGraph()
	kind := kinds.NewCustomKind()

	small, err := kinds.Custom(kind, kinds.CustomConfig{
		Name: "bounded", Data: 4,
		SubTypeExpr: "A.Data <= B.Data",
	}, tg.ctx(), tg.register)
	require.NoError(t, err)
	large, err := kinds.Custom(kind, kinds.CustomConfig{
		Name: "bounded", Data: 10,
		SubTypeExpr: "A.Data <= B.Data",
	}, tg.ctx(), tg.register)
	require.NoError(t, err)

	assert.Nil(t, small.AnalyzeSubType(large))
	assert.NotNil(t, large.AnalyzeSubType(small))
}

func TestCustomCompileErrorSurfacesFromFactory(t *testing.T) {
	tg := newTestGraph()
	kind := kinds.NewCustomKind()

	_, err := kinds.Custom(kind, kinds.CustomConfig{
		Name:         "broken",
		EqualityExpr: "A.Data ===",
	}, tg.ctx(), tg.register)
	assert.Error(t, err)
}

func TestCustomPropertyTypeSelectorBlocksIdentifiableUntilTargetDoes(t *testing.T) {
	tg := newTestGraph()
	classKind := kinds.NewClassKind()
	customKind := kinds.NewCustomKind()

	// c1 is declared with a Super that isn't registered yet, so it stays
	// Invalid — standing in for "C1 doesn't exist yet".
	pendingSuper, err := typedef.NewType(classKind, "Pending")
	require.NoError(t, err)

	c1, err := kinds.Class(classKind, kinds.ClassConfig{
		Name:  "C1",
		Super: pendingSuper,
	}, tg.ctx(), tg.register)
	require.NoError(t, err)
	require.Equal(t, typedef.Invalid, c1.State())

	c2, err := kinds.Custom(customKind, kinds.CustomConfig{
		Name: "C2",
		Properties: []kinds.Property{
			kinds.NewProperty("dependsOn", kinds.NewTypeSelector(c1)),
		},
	}, tg.ctx(), tg.register)
	require.NoError(t, err)
	assert.Equal(t, typedef.Invalid, c2.State(), "C2 must stay Invalid while its dependsOn property is unresolved")

	require.NoError(t, pendingSuper.MarkIdentifiable("pending"))
	require.NoError(t, pendingSuper.MarkCompleted())

	assert.NotEqual(t, typedef.Invalid, c1.State(), "c1 should have advanced once its own Super resolved")
	assert.NotEqual(t, typedef.Invalid, c2.State(), "C2 should advance once dependsOn (c1) becomes Identifiable")
}
