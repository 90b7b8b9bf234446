package relation

import "errors"

// ErrInternal is the base sentinel for programmer-error conditions in
// this package, wrapped via fmt.Errorf("%w: ...", ErrInternal) per
// spec.md §7's "implementation should refuse and raise fatally" rule.
var ErrInternal = errors.New("relation: internal error")

// ErrCycleDetected is wrapped by ErrInternal when MarkAsSubType would
// introduce a non-reflexive cycle on the SUB_TYPE relation (spec.md §3
// invariant 4, §7's "marking a subtype cycle when cycle-checking is
// enabled" programmer-error condition).
var ErrCycleDetected = errors.New("relation: subtype cycle detected")
