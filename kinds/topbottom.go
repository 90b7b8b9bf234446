package kinds

import (
	"github.com/arlen-voss/typeforge/graph"
	"github.com/arlen-voss/typeforge/problem"
	"github.com/arlen-voss/typeforge/typedef"
)

// TopKind implements typedef.Kind for the universal supertype: every
// other registered type is a subtype of Top (spec.md §4.3). There is
// normally exactly one Top type per Engine.
type TopKind struct{}

// NewTopKind constructs the Top kind singleton.
func NewTopKind() *TopKind { return &TopKind{} }

// Name implements typedef.Kind.
func (*TopKind) Name() string { return "top" }

// CalculateIdentifier implements typedef.Kind: Top is a nullary kind, so
// its identifier is constant.
func (*TopKind) CalculateIdentifier(any) (string, error) { return "$top", nil }

// AnalyzeTypeEquality implements typedef.Kind: every Top instance is
// equal to every other (there is normally only one).
func (*TopKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem { return nil }

// AnalyzeSubType implements typedef.Kind for the Top-vs-Top case; Top's
// universal relationship to every other kind is established as explicit
// graph edges when a new type is registered (see UniversalEdgeListener),
// not derived here.
func (*TopKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem { return nil }

// Top begins building the Top type. A host normally calls this once per
// Engine.
func Top(kind *TopKind, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, "Top", ctx, register)
	if err != nil {
		return nil, err
	}
	return init.Finish(nil)
}

// BottomKind implements typedef.Kind for the universal subtype: Bottom
// is a subtype of every other registered type (spec.md §4.3).
type BottomKind struct{}

// NewBottomKind constructs the Bottom kind singleton.
func NewBottomKind() *BottomKind { return &BottomKind{} }

// Name implements typedef.Kind.
func (*BottomKind) Name() string { return "bottom" }

// CalculateIdentifier implements typedef.Kind.
func (*BottomKind) CalculateIdentifier(any) (string, error) { return "$bottom", nil }

// AnalyzeTypeEquality implements typedef.Kind.
func (*BottomKind) AnalyzeTypeEquality(a, b *typedef.Type) problem.Problem { return nil }

// AnalyzeSubType implements typedef.Kind for the Bottom-vs-Bottom case.
func (*BottomKind) AnalyzeSubType(sub, super *typedef.Type) problem.Problem { return nil }

// Bottom begins building the Bottom type.
func Bottom(kind *BottomKind, ctx typedef.ReferenceContext, register func(*typedef.Type) error) (*typedef.Type, error) {
	init, err := typedef.NewInitializer(kind, "Bottom", ctx, register)
	if err != nil {
		return nil, err
	}
	return init.Finish(nil)
}

// UniversalEdgeListener wires graph.Listener.OnAddedType so that every
// newly registered type (other than top/bottom themselves) gets a
// LinkExists SUB_TYPE edge to top and from bottom, replaying for types
// registered before top/bottom existed (spec.md §4.1's replay-on-register
// requirement for Top and Bottom).
type UniversalEdgeListener struct {
	Graph  *graph.Graph
	Top    *typedef.Type
	Bottom *typedef.Type
}

var _ graph.Listener = (*UniversalEdgeListener)(nil)

// OnAddedType implements graph.Listener.
func (l *UniversalEdgeListener) OnAddedType(n graph.Node) {
	t, ok := n.(*typedef.Type)
	if !ok || t == l.Top || t == l.Bottom {
		return
	}
	if l.Top != nil {
		e := graph.NewEdge(t, l.Top, graph.SubType)
		e.SetCaching(graph.LinkExists)
		_ = l.Graph.AddEdge(e)
	}
	if l.Bottom != nil {
		e := graph.NewEdge(l.Bottom, t, graph.SubType)
		e.SetCaching(graph.LinkExists)
		_ = l.Graph.AddEdge(e)
	}
}

// OnRemovedType implements graph.Listener.
func (l *UniversalEdgeListener) OnRemovedType(graph.Node) {}

// OnAddedEdge implements graph.Listener.
func (l *UniversalEdgeListener) OnAddedEdge(*graph.Edge) {}

// OnRemovedEdge implements graph.Listener.
func (l *UniversalEdgeListener) OnRemovedEdge(*graph.Edge) {}
