package kinds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/kinds"
	"github.com/arlen-voss/typeforge/typedef"
)

func TestTopBottomIdentifiersConstant(t *testing.T) {
	tg := newTestGraph()
	top, err := kinds.Top(kinds.NewTopKind(), tg.ctx(), tg.register)
	require.NoError(t, err)
	assert.Equal(t, "$top", top.Identifier())

	bottom, err := kinds.Bottom(kinds.NewBottomKind(), tg.ctx(), tg.register)
	require.NoError(t, err)
	assert.Equal(t, "$bottom", bottom.Identifier())
}

func TestUniversalEdgeListenerWiresSubtypeEdges(t *testing.T) {
	g := graph.New()
	topKind, bottomKind := kinds.NewTopKind(), kinds.NewBottomKind()
	ctx := typedef.ReferenceContext{Lookup: func(id string) (*typedef.Type, bool) {
		n, ok := g.GetType(id)
		if !ok {
			return nil, false
		}
		return n.(*typedef.Type), true
	}}
	register := func(t *typedef.Type) error {
		_, err := g.AddNode(t)
		if err != nil {
			return err
		}
		t.OnIdentifiable(func(ty *typedef.Type) { _ = g.Reindex(ty, "") })
		return nil
	}

	top, err := kinds.Top(topKind, ctx, register)
	require.NoError(t, err)
	bottom, err := kinds.Bottom(bottomKind, ctx, register)
	require.NoError(t, err)

	listener := &kinds.UniversalEdgeListener{Graph: g, Top: top, Bottom: bottom}
	g.AddListener(listener, true) // replay for types already registered (top, bottom themselves; no-op)

	prim := kinds.NewPrimitiveKind()
	number, err := kinds.Primitive(prim, "number", ctx, register)
	require.NoError(t, err)

	out := g.OutEdges(number, graph.SubType)
	require.Len(t, out, 1)
	assert.Equal(t, top, out[0].To())

	in := g.InEdges(number, graph.SubType)
	require.Len(t, in, 1)
	assert.Equal(t, bottom, in[0].From())
}
