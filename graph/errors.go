package graph

import (
	"errors"
	"fmt"
)

// Error sentinels for internal graph failures — programmer errors or
// internal faults, never data/typing issues (those are problem.Problem
// values returned by upstream services).
var (
	// ErrInternal is the base error for internal graph failures.
	ErrInternal = errors.New("internal graph failure")

	// ErrNilNode indicates a nil Node was passed to AddNode, RemoveNode, or
	// used as an edge endpoint.
	ErrNilNode = fmt.Errorf("%w: nil Node", ErrInternal)

	// ErrDuplicateIdentifier indicates AddNode was called for a node whose
	// Identifier() collides with a different, already-registered node.
	// Identifier-based de-duplication is the TypeInitializer's job
	// (spec.md §4.2); the Graph surfaces a collision as a programmer error
	// because it means dedup was bypassed.
	ErrDuplicateIdentifier = fmt.Errorf("%w: duplicate type identifier", ErrInternal)

	// ErrUnknownNode indicates an operation referenced a Node the graph has
	// no arena entry for.
	ErrUnknownNode = fmt.Errorf("%w: node not registered in graph", ErrInternal)

	// ErrCycleDetected indicates markAsSubType (with cycle checking
	// enabled) would have introduced a non-reflexive SUB_TYPE cycle.
	ErrCycleDetected = fmt.Errorf("%w: subtype cycle detected", ErrInternal)
)
