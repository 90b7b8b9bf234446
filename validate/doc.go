// Package validate implements the Validation Collector described by
// spec.md §4.7: before/per-node/after ValidationRule hooks that emit
// ValidationProblem values through an Accept callback rather than
// returning them directly, so a rule can report any number of issues
// (including zero) for one node.
//
// Tree walking is the driver's responsibility (spec.md §4.7 note 2): this
// package only decides which registered rules apply to a given node and
// runs them; it never walks a host AST itself.
package validate
