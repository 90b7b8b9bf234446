package graph

// Result is an immutable snapshot of a Graph's nodes and edges, taken at
// one point in time. Diagnostic tooling (the Printer, a host's
// introspection UI) reads a Result rather than the live Graph so a long
// walk never observes a mutation mid-traversal; the live Graph itself has
// no such guarantee, matching §5's single-threaded, no-locks model.
type Result struct {
	nodes []Node
	edges []*Edge
}

// Snapshot captures every node and edge currently in g.
func (g *Graph) Snapshot() *Result {
	nodes := make([]Node, 0, len(g.arena))
	for _, n := range g.arena {
		nodes = append(nodes, n)
	}

	var edges []*Edge
	seen := make(map[*Edge]struct{})
	for _, byRel := range g.outEdges {
		for _, es := range byRel {
			for _, e := range es {
				if _, ok := seen[e]; ok {
					continue
				}
				seen[e] = struct{}{}
				edges = append(edges, e)
			}
		}
	}

	return &Result{nodes: nodes, edges: edges}
}

// Nodes returns every node in the snapshot, in no particular order.
func (r *Result) Nodes() []Node {
	return r.nodes
}

// Edges returns every edge in the snapshot, in no particular order.
func (r *Result) Edges() []*Edge {
	return r.edges
}

// NodeCount returns the number of nodes captured.
func (r *Result) NodeCount() int {
	return len(r.nodes)
}

// EdgeCount returns the number of edges captured.
func (r *Result) EdgeCount() int {
	return len(r.edges)
}
