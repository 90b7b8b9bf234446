package problem

import "fmt"

// IndexedTypeConflict reports a mismatch located at an array index or a
// property/parameter name, wrapping the Problem found there so the
// location survives nesting (e.g. "parameter 2: " + a TypeEqualityProblem).
type IndexedTypeConflict struct {
	base
	// Index is an int (positional index) or string (property/parameter
	// name).
	Index any
	Inner Problem
}

// NewIndexedTypeConflict builds an IndexedTypeConflict for the mismatch
// found at index, wrapping inner.
func NewIndexedTypeConflict(index any, inner Problem) *IndexedTypeConflict {
	return &IndexedTypeConflict{
		base: base{
			kind:    KindIndexedTypeConflict,
			message: fmt.Sprintf("at %v: %s", index, inner.Message()),
			details: []Detail{{Key: "index", Value: fmt.Sprint(index)}},
			sub:     []Problem{inner},
		},
		Index: index,
		Inner: inner,
	}
}
