package typedef

import (
	"errors"
	"fmt"
)

// Error sentinels for internal typedef failures — programmer errors, not
// typing problems (those travel as problem.Problem values).
var (
	// ErrInternal is the base error for internal typedef failures.
	ErrInternal = errors.New("internal typedef failure")

	// ErrWrongState indicates an operation was attempted while the Type
	// was in a lifecycle State that does not support it (e.g. reading
	// completed-only data from an Invalid type).
	ErrWrongState = fmt.Errorf("%w: type is not in the required lifecycle state", ErrInternal)

	// ErrAlreadyFinished indicates Initializer.Finish was called more than
	// once for the same Initializer.
	ErrAlreadyFinished = fmt.Errorf("%w: initializer already finished", ErrInternal)

	// ErrUnresolvedReference indicates a Reference could not be resolved
	// to a concrete *Type by any of its resolution strategies.
	ErrUnresolvedReference = fmt.Errorf("%w: reference could not be resolved", ErrInternal)

	// ErrNilKind indicates a Type was constructed with a nil Kind.
	ErrNilKind = fmt.Errorf("%w: nil Kind", ErrInternal)
)
