package graph

// Listener observes node and edge lifecycle events on a Graph. Kinds like
// Top and Bottom use this to keep their relationships to every other
// registered type current (spec.md §4.1, §4.3).
type Listener interface {
	OnAddedType(n Node)
	OnRemovedType(n Node)
	OnAddedEdge(e *Edge)
	OnRemovedEdge(e *Edge)
}

type registeredListener struct {
	listener Listener
}

// AddListener registers l for future node/edge events. If replay is true,
// l.OnAddedType is immediately invoked once for every node already in the
// graph, so a listener registered late (e.g. a Top kind created after
// other types) still observes the existing population.
func (g *Graph) AddListener(l Listener, replay bool) {
	g.listeners = append(g.listeners, registeredListener{listener: l})
	if !replay {
		return
	}
	for _, n := range g.arena {
		l.OnAddedType(n)
	}
}

// RemoveListener unregisters l. It is a no-op if l was never added.
func (g *Graph) RemoveListener(l Listener) {
	for i, rl := range g.listeners {
		if rl.listener == l {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return
		}
	}
}
