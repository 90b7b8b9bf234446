// Package typeforge wires the full type-system engine described by
// spec.md/SPEC_FULL.md: the type Graph, the Kind registry, the Inference
// service, the Equality/Subtype/Conversion/Assignability relation
// services, the Overload manager, the Validation collector, and the
// Printer, behind one dependency-injection entry point (New) so a host
// embeds the whole engine without wiring each service by hand.
//
// Every *Engine is independent: two instances never share a Graph, a
// registry, a cache, or a Metrics collector (spec.md §5's "no
// process-wide static state").
package typeforge
