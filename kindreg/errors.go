package kindreg

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal is the base error for internal registry failures.
	ErrInternal = errors.New("internal kind registry failure")

	// ErrDuplicateKind indicates Register was called twice for the same
	// kind name.
	ErrDuplicateKind = fmt.Errorf("%w: kind already registered", ErrInternal)

	// ErrUnknownKind indicates MustGet was called for a name no kind was
	// registered under (Get reports this case with false instead).
	ErrUnknownKind = fmt.Errorf("%w: no kind registered under this name", ErrInternal)
)
