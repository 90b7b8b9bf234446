package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/graph"
)

// buildChain wires int <: number <: real along SubType, all LinkExists.
func buildChain(t *testing.T) (g *graph.Graph, intN, numberN, realN graph.Node) {
	t.Helper()
	g = graph.New()
	intN, numberN, realN = stubNode("int"), stubNode("number"), stubNode("real")
	for _, n := range []graph.Node{intN, numberN, realN} {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	e1 := graph.NewEdge(intN, numberN, graph.SubType)
	e1.SetCaching(graph.LinkExists)
	e2 := graph.NewEdge(numberN, realN, graph.SubType)
	e2.SetCaching(graph.LinkExists)
	require.NoError(t, g.AddEdge(e1))
	require.NoError(t, g.AddEdge(e2))
	return g, intN, numberN, realN
}

func TestCollectReachableTypesTransitive(t *testing.T) {
	g, intN, numberN, realN := buildChain(t)
	reachable := g.CollectReachableTypes(intN, graph.SubType, nil)
	assert.ElementsMatch(t, []graph.Node{numberN, realN}, reachable)
}

func TestExistsEdgePathReflexive(t *testing.T) {
	g, intN, _, _ := buildChain(t)
	assert.True(t, g.ExistsEdgePath(intN, intN, graph.SubType, nil))
}

func TestExistsEdgePathTransitive(t *testing.T) {
	g, intN, _, realN := buildChain(t)
	assert.True(t, g.ExistsEdgePath(intN, realN, graph.SubType, nil))
}

func TestExistsEdgePathNoPath(t *testing.T) {
	g, _, _, realN := buildChain(t)
	intN := stubNode("int")
	assert.False(t, g.ExistsEdgePath(realN, intN, graph.SubType, nil))
}

func TestExistsEdgePathIgnoresUncachedEdges(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)
	e := graph.NewEdge(a, b, graph.SubType) // Caching left Unknown
	require.NoError(t, g.AddEdge(e))

	assert.False(t, g.ExistsEdgePath(a, b, graph.SubType, nil))

	e.SetCaching(graph.LinkExists)
	assert.True(t, g.ExistsEdgePath(a, b, graph.SubType, nil))
}

func TestGetEdgePath(t *testing.T) {
	g, intN, numberN, realN := buildChain(t)
	path := g.GetEdgePath(intN, realN, graph.SubType, nil)
	require.Len(t, path, 2)
	assert.Equal(t, intN, path[0].From())
	assert.Equal(t, numberN, path[0].To())
	assert.Equal(t, numberN, path[1].From())
	assert.Equal(t, realN, path[1].To())
}

func TestGetEdgePathReflexiveIsEmptyNotNil(t *testing.T) {
	g, intN, _, _ := buildChain(t)
	path := g.GetEdgePath(intN, intN, graph.SubType, nil)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestGetEdgePathNoPathIsNil(t *testing.T) {
	g, _, _, realN := buildChain(t)
	intN := stubNode("int")
	assert.Nil(t, g.GetEdgePath(realN, intN, graph.SubType, nil))
}

func TestBidirectionalTraversal(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)
	e := graph.NewEdge(a, b, graph.Equality)
	e.SetCaching(graph.LinkExists)
	require.NoError(t, g.AddEdge(e))

	assert.True(t, g.ExistsEdgePath(a, b, graph.Equality, nil))
	assert.True(t, g.ExistsEdgePath(b, a, graph.Equality, nil), "EQUALITY is bidirectional")
}

func TestCustomFilterOverridesDefault(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)
	e := graph.NewEdge(a, b, graph.SubType) // Unknown caching
	require.NoError(t, g.AddEdge(e))

	allowAll := func(*graph.Edge) bool { return true }
	assert.True(t, g.ExistsEdgePath(a, b, graph.SubType, allowAll))
}
