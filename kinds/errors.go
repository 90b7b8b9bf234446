package kinds

import (
	"errors"
	"fmt"
)

// ErrInternal is the base error for internal kind failures — a Kind was
// handed configuration of the wrong type, or a configuration chain's
// invariant was violated.
var ErrInternal = errors.New("internal kind failure")

// errConfigType reports that CalculateIdentifier received a config value
// of the wrong concrete type for kindName — a programmer error (e.g. a
// ConfigurationChain from a different kind), never a typing problem.
func errConfigType(kindName string, got any) error {
	return fmt.Errorf("%w: %s kind requires its own config type, got %T", ErrInternal, kindName, got)
}
