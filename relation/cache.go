package relation

import (
	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/typedef"
)

// findEdge returns the edge between a and b for relation, regardless of
// which side was registered as From/To: for a Bidirectional relation
// (Equality), an edge stored b->a also counts as a match for a->b.
func findEdge(g *graph.Graph, a, b *typedef.Type, rel graph.Relation) *graph.Edge {
	for _, e := range g.OutEdges(a, rel) {
		if e.To() == b {
			return e
		}
	}
	if rel.Direction() == graph.Bidirectional {
		for _, e := range g.OutEdges(b, rel) {
			if e.From() == a {
				return e
			}
			if e.To() == a {
				return e
			}
		}
	}
	return nil
}

// cacheLink records state (and, for Conversion, leaves Mode to the
// caller) on the edge between a and b for rel, creating one if none
// exists yet. AddEdge failures (an endpoint not yet registered in the
// graph, e.g. a Type still Invalid) are tolerated: caching is an
// optimization, never a correctness requirement, so a miss just means
// the next query recomputes.
func cacheLink(g *graph.Graph, a, b *typedef.Type, rel graph.Relation, state graph.CacheState) *graph.Edge {
	e := findEdge(g, a, b, rel)
	if e == nil {
		e = graph.NewEdge(a, b, rel)
		if err := g.AddEdge(e); err != nil {
			return e
		}
	}
	e.SetCaching(state)
	return e
}
