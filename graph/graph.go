package graph

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arlen-voss/typeforge/internal/obsmetrics"
	"github.com/arlen-voss/typeforge/internal/trace"
)

// Graph is the store of type nodes and relationship edges described by
// spec.md §4.1. A Graph is not safe for concurrent use; see [package doc].
type Graph struct {
	logger  *slog.Logger
	metrics *obsmetrics.Metrics

	arena        map[uuid.UUID]Node
	handleOf     map[Node]uuid.UUID
	byIdentifier map[string]Node

	outEdges map[Node]map[Relation][]*Edge
	inEdges  map[Node]map[Relation][]*Edge

	listeners []registeredListener
}

// New constructs an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := &graphConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Graph{
		logger:       cfg.logger,
		metrics:      cfg.metrics,
		arena:        make(map[uuid.UUID]Node),
		handleOf:     make(map[Node]uuid.UUID),
		byIdentifier: make(map[string]Node),
		outEdges:     make(map[Node]map[Relation][]*Edge),
		inEdges:      make(map[Node]map[Relation][]*Edge),
	}
}

// AddNode registers n in the arena under a freshly minted handle and
// returns it. If n.Identifier() is already non-empty, it is also indexed
// for GetType lookups. Returns ErrNilNode for a nil n.
func (g *Graph) AddNode(n Node) (uuid.UUID, error) {
	op := trace.Begin(context.Background(), g.logger, "typeforge.graph.addNode")
	if isNilNode(n) {
		op.End(ErrNilNode)
		return uuid.UUID{}, ErrNilNode
	}
	if _, exists := g.handleOf[n]; exists {
		op.End(nil, slog.Bool("already_registered", true))
		return g.handleOf[n], nil
	}

	handle := uuid.New()
	g.arena[handle] = n
	g.handleOf[n] = handle
	if id := n.Identifier(); id != "" {
		if existing, ok := g.byIdentifier[id]; ok && existing != n {
			delete(g.arena, handle)
			delete(g.handleOf, n)
			op.End(ErrDuplicateIdentifier)
			return uuid.UUID{}, ErrDuplicateIdentifier
		}
		g.byIdentifier[id] = n
	}

	for _, l := range g.listeners {
		l.listener.OnAddedType(n)
	}

	op.End(nil, slog.String("handle", handle.String()))
	return handle, nil
}

// Reindex refreshes n's identifier-based index entry. Call this whenever a
// node's Identifier() changes (e.g. a Type transitioning Invalid ->
// Identifiable) so GetType keeps resolving it. oldIdentifier is the
// identifier to remove, or "" if the node had none.
func (g *Graph) Reindex(n Node, oldIdentifier string) error {
	if isNilNode(n) {
		return ErrNilNode
	}
	if _, ok := g.handleOf[n]; !ok {
		return ErrUnknownNode
	}
	if oldIdentifier != "" {
		delete(g.byIdentifier, oldIdentifier)
	}
	if id := n.Identifier(); id != "" {
		if existing, ok := g.byIdentifier[id]; ok && existing != n {
			return ErrDuplicateIdentifier
		}
		g.byIdentifier[id] = n
	}
	return nil
}

// RemoveNode removes n and all edges touching it from the graph.
func (g *Graph) RemoveNode(n Node) error {
	op := trace.Begin(context.Background(), g.logger, "typeforge.graph.removeNode")
	if isNilNode(n) {
		op.End(ErrNilNode)
		return ErrNilNode
	}
	handle, ok := g.handleOf[n]
	if !ok {
		op.End(ErrUnknownNode)
		return ErrUnknownNode
	}

	for rel, edges := range g.outEdges[n] {
		for _, e := range edges {
			g.unlinkIn(e.To(), rel, e)
		}
	}
	for rel, edges := range g.inEdges[n] {
		for _, e := range edges {
			g.unlinkOut(e.From(), rel, e)
		}
	}
	delete(g.outEdges, n)
	delete(g.inEdges, n)
	delete(g.arena, handle)
	delete(g.handleOf, n)
	if id := n.Identifier(); id != "" {
		delete(g.byIdentifier, id)
	}

	for _, l := range g.listeners {
		l.listener.OnRemovedType(n)
	}

	op.End(nil)
	return nil
}

// GetType resolves a node by its identifier, as registered via AddNode or
// Reindex.
func (g *Graph) GetType(id string) (Node, bool) {
	n, ok := g.byIdentifier[id]
	return n, ok
}

// GetAllRegisteredTypes returns every node currently in the arena, in no
// particular order.
func (g *Graph) GetAllRegisteredTypes() []Node {
	out := make([]Node, 0, len(g.arena))
	for _, n := range g.arena {
		out = append(out, n)
	}
	return out
}

// AddEdge registers e between its endpoints. Both endpoints must already
// be registered via AddNode.
func (g *Graph) AddEdge(e *Edge) error {
	op := trace.Begin(context.Background(), g.logger, "typeforge.graph.addEdge",
		slog.String("relation", e.RelationTag().Name()))
	if e == nil || isNilNode(e.From()) || isNilNode(e.To()) {
		op.End(ErrNilNode)
		return ErrNilNode
	}
	if _, ok := g.handleOf[e.From()]; !ok {
		op.End(ErrUnknownNode)
		return ErrUnknownNode
	}
	if _, ok := g.handleOf[e.To()]; !ok {
		op.End(ErrUnknownNode)
		return ErrUnknownNode
	}

	g.linkOut(e.From(), e.RelationTag(), e)
	g.linkIn(e.To(), e.RelationTag(), e)

	for _, l := range g.listeners {
		l.listener.OnAddedEdge(e)
	}

	op.End(nil)
	return nil
}

// RemoveEdge removes e from both endpoints' adjacency.
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil || isNilNode(e.From()) || isNilNode(e.To()) {
		return ErrNilNode
	}
	g.unlinkOut(e.From(), e.RelationTag(), e)
	g.unlinkIn(e.To(), e.RelationTag(), e)

	for _, l := range g.listeners {
		l.listener.OnRemovedEdge(e)
	}
	return nil
}

// OutEdges returns n's outgoing edges for relation, or nil.
func (g *Graph) OutEdges(n Node, relation Relation) []*Edge {
	return g.outEdges[n][relation]
}

// InEdges returns n's incoming edges for relation, or nil.
func (g *Graph) InEdges(n Node, relation Relation) []*Edge {
	return g.inEdges[n][relation]
}

func (g *Graph) linkOut(n Node, rel Relation, e *Edge) {
	byRel, ok := g.outEdges[n]
	if !ok {
		byRel = make(map[Relation][]*Edge)
		g.outEdges[n] = byRel
	}
	byRel[rel] = append(byRel[rel], e)
}

func (g *Graph) linkIn(n Node, rel Relation, e *Edge) {
	byRel, ok := g.inEdges[n]
	if !ok {
		byRel = make(map[Relation][]*Edge)
		g.inEdges[n] = byRel
	}
	byRel[rel] = append(byRel[rel], e)
}

func (g *Graph) unlinkOut(n Node, rel Relation, e *Edge) {
	unlink(g.outEdges, n, rel, e)
}

func (g *Graph) unlinkIn(n Node, rel Relation, e *Edge) {
	unlink(g.inEdges, n, rel, e)
}

func unlink(index map[Node]map[Relation][]*Edge, n Node, rel Relation, e *Edge) {
	byRel, ok := index[n]
	if !ok {
		return
	}
	edges := byRel[rel]
	for i, candidate := range edges {
		if candidate == e {
			byRel[rel] = append(edges[:i], edges[i+1:]...)
			break
		}
	}
}

func isNilNode(n Node) bool {
	return n == nil
}
