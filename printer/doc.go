// Package printer implements the Printer service (spec.md §4.8): it
// formats Types by their user-visible name and every Problem variant into
// indented multi-line text, mirroring yammm's diag.Renderer shape — a
// configurable renderer type with a single text-producing entry point
// rather than a Stringer method on every domain type.
//
// Indentation reflects a Problem's SubProblems tree: each nesting level
// is prefixed with "-> " and indented one step further, so a multi-cause
// failure (e.g. an AssignabilityProblem's equality/conversion/subtype
// sub-problems) reads as a small tree rather than a flat message.
package printer
