package graph

// EdgeFilter decides whether an edge should be followed during traversal.
// The default filter (used when nil is passed) follows only edges whose
// Caching is LinkExists.
type EdgeFilter func(e *Edge) bool

func defaultFilter(e *Edge) bool { return e.Caching() == LinkExists }

// neighbors returns the edges of n for relation that should be followed,
// honoring relation's declared Direction: Unidirectional relations only
// expose one adjacency side, Bidirectional exposes both.
func (g *Graph) neighbors(n Node, relation Relation, filter EdgeFilter) []*Edge {
	if filter == nil {
		filter = defaultFilter
	}
	var out []*Edge
	switch relation.Direction() {
	case UnidirectionalFromTo:
		for _, e := range g.outEdges[n][relation] {
			if filter(e) {
				out = append(out, e)
			}
		}
	case UnidirectionalToFrom:
		for _, e := range g.inEdges[n][relation] {
			if filter(e) {
				out = append(out, e)
			}
		}
	case Bidirectional:
		for _, e := range g.outEdges[n][relation] {
			if filter(e) {
				out = append(out, e)
			}
		}
		for _, e := range g.inEdges[n][relation] {
			if filter(e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// target returns the "other end" of e relative to n, for direction-aware
// traversal of a possibly-bidirectional relation.
func target(n Node, e *Edge) Node {
	if e.From() == n {
		return e.To()
	}
	return e.From()
}

// CollectReachableTypes returns every node reachable from start by
// following relation edges, start itself excluded. filter may be nil to
// use the default (LinkExists-only) filter. Cycle-safe via a visited set.
func (g *Graph) CollectReachableTypes(start Node, relation Relation, filter EdgeFilter) []Node {
	visited := map[Node]bool{start: true}
	var out []Node
	queue := []Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.neighbors(n, relation, filter) {
			next := target(n, e)
			if visited[next] {
				continue
			}
			visited[next] = true
			out = append(out, next)
			queue = append(queue, next)
		}
	}
	return out
}

// ExistsEdgePath reports whether target is reachable from start by
// following relation edges, including the reflexive case start == target.
func (g *Graph) ExistsEdgePath(start, target Node, relation Relation, filter EdgeFilter) bool {
	if start == target {
		return true
	}
	for _, n := range g.CollectReachableTypes(start, relation, filter) {
		if n == target {
			return true
		}
	}
	return false
}

// GetEdgePath returns the sequence of edges from start to goal by
// following relation edges (shortest, by hop count), or nil if no path
// exists. The reflexive case start == goal returns a non-nil empty slice.
func (g *Graph) GetEdgePath(start, goal Node, relation Relation, filter EdgeFilter) []*Edge {
	if start == goal {
		return []*Edge{}
	}
	type step struct {
		node Node
		via  *Edge
		prev *step
	}
	visited := map[Node]bool{start: true}
	queue := []*step{{node: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.neighbors(cur.node, relation, filter) {
			next := target(cur.node, e)
			if visited[next] {
				continue
			}
			visited[next] = true
			nextStep := &step{node: next, via: e, prev: cur}
			if next == goal {
				var path []*Edge
				for s := nextStep; s.via != nil; s = s.prev {
					path = append([]*Edge{s.via}, path...)
				}
				return path
			}
			queue = append(queue, nextStep)
		}
	}
	return nil
}
