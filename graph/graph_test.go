package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/graph"
)

type stubNode string

func (s stubNode) Identifier() string { return string(s) }

func TestAddNodeAndGetType(t *testing.T) {
	g := graph.New()
	n := stubNode("number")

	handle, err := g.AddNode(n)
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, handle)

	got, ok := g.GetType("number")
	require.True(t, ok)
	assert.Equal(t, n, got)

	assert.ElementsMatch(t, []graph.Node{n}, g.GetAllRegisteredTypes())
}

func TestAddNodeNilRejected(t *testing.T) {
	g := graph.New()
	_, err := g.AddNode(nil)
	assert.ErrorIs(t, err, graph.ErrNilNode)
}

func TestAddNodeDuplicateIdentifierRejected(t *testing.T) {
	g := graph.New()
	_, err := g.AddNode(stubNode("number"))
	require.NoError(t, err)

	_, err = g.AddNode(stubNode("number"))
	assert.ErrorIs(t, err, graph.ErrDuplicateIdentifier)
}

func TestAddNodeIdempotentForSameNode(t *testing.T) {
	g := graph.New()
	n := stubNode("number")
	h1, err := g.AddNode(n)
	require.NoError(t, err)
	h2, err := g.AddNode(n)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestAddEdgeRequiresRegisteredEndpoints(t *testing.T) {
	g := graph.New()
	a := stubNode("a")
	_, err := g.AddNode(a)
	require.NoError(t, err)

	b := stubNode("b") // never added
	e := graph.NewEdge(a, b, graph.SubType)
	err = g.AddEdge(e)
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestAddEdgeAndQuery(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)

	e := graph.NewEdge(a, b, graph.SubType)
	e.SetCaching(graph.LinkExists)
	require.NoError(t, g.AddEdge(e))

	out := g.OutEdges(a, graph.SubType)
	require.Len(t, out, 1)
	assert.Same(t, e, out[0])

	in := g.InEdges(b, graph.SubType)
	require.Len(t, in, 1)
	assert.Same(t, e, in[0])
}

func TestRemoveEdge(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)
	e := graph.NewEdge(a, b, graph.SubType)
	require.NoError(t, g.AddEdge(e))

	require.NoError(t, g.RemoveEdge(e))
	assert.Empty(t, g.OutEdges(a, graph.SubType))
	assert.Empty(t, g.InEdges(b, graph.SubType))
}

func TestRemoveNodeClearsEdges(t *testing.T) {
	g := graph.New()
	a, b := stubNode("a"), stubNode("b")
	_, _ = g.AddNode(a)
	_, _ = g.AddNode(b)
	e := graph.NewEdge(a, b, graph.SubType)
	require.NoError(t, g.AddEdge(e))

	require.NoError(t, g.RemoveNode(a))
	_, ok := g.GetType("a")
	assert.False(t, ok)
	assert.Empty(t, g.InEdges(b, graph.SubType))
}

func TestReindexNeverIndexesEmptyIdentifier(t *testing.T) {
	g := graph.New()
	n := stubNode("") // Invalid lifecycle state: no identifier yet
	_, err := g.AddNode(n)
	require.NoError(t, err)

	// simulate the node becoming Identifiable under a new stub value is not
	// possible since stubNode is immutable; Reindex is exercised directly.
	err = g.Reindex(n, "")
	require.NoError(t, err)
	_, ok := g.GetType("")
	assert.False(t, ok, "empty identifier is never indexed")
}

type recordingListener struct {
	added   []graph.Node
	removed []graph.Node
}

func (r *recordingListener) OnAddedType(n graph.Node)   { r.added = append(r.added, n) }
func (r *recordingListener) OnRemovedType(n graph.Node) { r.removed = append(r.removed, n) }
func (r *recordingListener) OnAddedEdge(*graph.Edge)    {}
func (r *recordingListener) OnRemovedEdge(*graph.Edge)  {}

func TestListenerReplay(t *testing.T) {
	g := graph.New()
	_, _ = g.AddNode(stubNode("number"))
	_, _ = g.AddNode(stubNode("string"))

	l := &recordingListener{}
	g.AddListener(l, true)
	assert.Len(t, l.added, 2)
}

func TestListenerReceivesFutureEvents(t *testing.T) {
	g := graph.New()
	l := &recordingListener{}
	g.AddListener(l, false)

	n := stubNode("number")
	_, _ = g.AddNode(n)
	require.NoError(t, g.RemoveNode(n))

	assert.Equal(t, []graph.Node{n}, l.added)
	assert.Equal(t, []graph.Node{n}, l.removed)
}
