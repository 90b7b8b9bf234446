package graph_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlen-voss/typeforge/graph"
)

func identifiers(nodes []graph.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.Identifier()
	}
	sort.Strings(ids)
	return ids
}

type resultNode string

func (n resultNode) Identifier() string { return string(n) }

func TestSnapshotCapturesNodesAndEdges(t *testing.T) {
	g := graph.New()
	a, b := resultNode("a"), resultNode("b")
	_, err := g.AddNode(a)
	require.NoError(t, err)
	_, err = g.AddNode(b)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(graph.NewEdge(a, b, graph.SubType)))

	res := g.Snapshot()
	assert.Equal(t, 2, res.NodeCount())
	assert.Equal(t, 1, res.EdgeCount())
}

func TestSnapshotIsIndependentOfLaterMutation(t *testing.T) {
	g := graph.New()
	a := resultNode("a")
	_, err := g.AddNode(a)
	require.NoError(t, err)

	res := g.Snapshot()
	require.Equal(t, 1, res.NodeCount())

	b := resultNode("b")
	_, err = g.AddNode(b)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NodeCount(), "a snapshot taken earlier must not see later mutations")
}

func TestSnapshotNodeSetMatchesExpectedIdentifiers(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		_, err := g.AddNode(resultNode(id))
		require.NoError(t, err)
	}

	res := g.Snapshot()
	if diff := cmp.Diff([]string{"a", "b", "c"}, identifiers(res.Nodes())); diff != "" {
		t.Errorf("snapshot node identifiers mismatch (-want +got):\n%s", diff)
	}
}
