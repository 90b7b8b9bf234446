// Package typedef implements the core Type abstraction described by
// spec.md §4.2 and §4.3: the four-state lifecycle (Invalid ->
// Identifiable -> Completed -> Invalid), the Kind contract every type
// kind must satisfy, and Reference/Initializer, the two building blocks
// used to wire a type's structure before it is known to exist.
//
// A *Type implements graph.Node (via Identifier), so it can be stored
// directly in a [github.com/arlen-voss/typeforge/graph.Graph]. typedef
// imports only problem, not graph; nothing below it depends back on
// typedef, which is what keeps the module's import graph acyclic.
//
// # Concurrency
//
// Like graph, Type holds no lock: the engine's single-threaded
// cooperative scheduling model (spec.md §5) means a Type's lifecycle
// transitions are only ever driven by one caller at a time.
package typedef
