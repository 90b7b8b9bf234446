// Package graph implements the type graph described by spec.md §4.1: a
// store of type nodes and typed, cache-aware relationship edges between
// them, with a listener protocol and cycle-safe traversal algorithms.
//
// graph is deliberately generic over [Node] — it knows nothing about Kinds,
// lifecycle states, or inference. The typedef package is the only caller
// that stores *typedef.Type values as Node; this keeps graph reusable and
// avoids an import cycle (typedef depends on graph, not the reverse).
//
// # Arena
//
// Every node is assigned a stable [github.com/google/uuid] handle at
// AddNode time, per spec.md §9's Design Note recommending "an arena...
// indexed by a stable handle" so edges and listener bookkeeping survive a
// node's identifier changing (or not yet existing) across lifecycle
// transitions. The identifier -> Node index is a secondary index,
// populated lazily as nodes report a non-empty Identifier().
//
// # Concurrency
//
// Graph holds no lock. spec.md §5 mandates a single-threaded cooperative
// scheduling model for the whole engine; a host that exposes the engine
// to multiple goroutines must serialize access itself.
package graph
