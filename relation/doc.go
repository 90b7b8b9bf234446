// Package relation implements the Equality, Subtyping, Conversion, and
// Assignability services described by spec.md §4.5.
//
// Every query is backed by a cached graph.Edge: a first query computes
// the result via typedef.Type.AnalyzeTypeEquality/AnalyzeSubType (or, for
// Conversion, consults only explicitly marked edges — conversions are
// never derived structurally) and stores a LinkExists/NoLink
// cachingInformation tag on the edge; repeated queries for the same pair
// are then O(1). Top and Bottom's universal axioms ("Bottom <: every
// Type", "every Type <: Top") need no special-casing here:
// kinds.UniversalEdgeListener pre-populates a cached SUB_TYPE edge for
// every type as it is added to the graph, so Subtype's normal cache
// lookup already finds them.
package relation
