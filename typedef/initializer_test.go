package typedef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/typedef"
)

// fakeGraph is a minimal stand-in for graph.Graph's identifier index,
// enough to exercise Initializer's create-or-get dedup and its
// reference-context Lookup.
type fakeGraph struct {
	byIdentifier map[string]*typedef.Type
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{byIdentifier: make(map[string]*typedef.Type)}
}

func (g *fakeGraph) lookup(id string) (*typedef.Type, bool) {
	t, ok := g.byIdentifier[id]
	return t, ok
}

func (g *fakeGraph) register(t *typedef.Type) error {
	return nil // identifier not known yet at register time; indexed on identifiable below
}

func (g *fakeGraph) onIdentifiable(t *typedef.Type) {
	t.OnIdentifiable(func(ty *typedef.Type) {
		g.byIdentifier[ty.Identifier()] = ty
	})
}

func TestInitializerFinishCreatesNewType(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}
	init, err := typedef.NewInitializer(k, "number", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)

	ty, err := init.Finish("number")
	require.NoError(t, err)
	assert.Equal(t, typedef.Completed, ty.State(), "no precondition references: advances straight through")
	assert.Equal(t, "number", ty.Identifier())
}

func TestInitializerFinishDedupsOnIdentifier(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}

	init1, err := typedef.NewInitializer(k, "number", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	first, err := init1.Finish("number")
	require.NoError(t, err)
	g.byIdentifier["number"] = first

	init2, err := typedef.NewInitializer(k, "number", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	second, err := init2.Finish("number")
	require.NoError(t, err)

	assert.Same(t, first, second, "Finish dedups onto the already-registered type")
}

func TestInitializerFinishTwiceFails(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}
	init, err := typedef.NewInitializer(k, "number", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	_, err = init.Finish("number")
	require.NoError(t, err)

	_, err = init.Finish("number")
	assert.ErrorIs(t, err, typedef.ErrAlreadyFinished)
}

func TestInitializerWaitsForReferencesToBeIdentifiable(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}

	dep, err := typedef.NewType(k, "element")
	require.NoError(t, err)

	init, err := typedef.NewInitializer(k, "list<element>", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	init.AddReferencesToBeIdentifiable(typedef.NewReference(dep))

	ty, err := init.Finish("list<element>")
	require.NoError(t, err)
	assert.Equal(t, typedef.Invalid, ty.State(), "blocked on dep, which is not yet Identifiable")

	require.NoError(t, dep.MarkIdentifiable("element"))
	assert.Equal(t, typedef.Completed, ty.State(), "dep became Identifiable: advances, and with no completion preconditions goes on to Completed")
}

func TestInitializerWaitsForReferencesToBeCompleted(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}

	dep, err := typedef.NewType(k, "element")
	require.NoError(t, err)
	require.NoError(t, dep.MarkIdentifiable("element"))

	init, err := typedef.NewInitializer(k, "list<element>", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	init.AddReferencesToBeCompleted(typedef.NewReference(dep))

	ty, err := init.Finish("list<element>")
	require.NoError(t, err)
	assert.Equal(t, typedef.Identifiable, ty.State())

	require.NoError(t, dep.MarkCompleted())
	assert.Equal(t, typedef.Completed, ty.State())
}

func TestInitializerPropagatesInvalidation(t *testing.T) {
	g := newFakeGraph()
	k := &stubKind{name: "stub"}

	dep, err := typedef.NewType(k, "super")
	require.NoError(t, err)
	require.NoError(t, dep.MarkIdentifiable("super"))
	require.NoError(t, dep.MarkCompleted())

	init, err := typedef.NewInitializer(k, "sub", typedef.ReferenceContext{Lookup: g.lookup}, g.register)
	require.NoError(t, err)
	init.AddReferencesRelevantForInvalidation(typedef.NewReference(dep))

	ty, err := init.Finish("sub")
	require.NoError(t, err)
	require.Equal(t, typedef.Completed, ty.State())

	require.NoError(t, dep.Invalidate())
	assert.Equal(t, typedef.Invalid, ty.State(), "dep invalidating propagates to the dependent type")
}
