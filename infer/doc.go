// Package infer implements the Inference service described by spec.md
// §4.4: given an opaque host-language node, determine its Type by trying
// registered [Rule] values in order and, when a rule defers to nested
// nodes, recursing through the same engine.
//
// A pending/resolved cache (internal/pending) breaks recursive cycles:
// re-entering InferType for a node already being resolved returns
// (nil, nil) rather than recursing forever, and the caller folds that
// into a ReasonNestedUnresolvable problem rather than committing a
// partial result. Like graph and typedef, Service holds no internal
// locks; spec.md §5 assumes a single cooperative thread.
package infer
