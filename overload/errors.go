package overload

import "errors"

// ErrInternal is the base sentinel for programmer-error conditions in
// this package.
var ErrInternal = errors.New("overload: internal error")

// ErrNotAFunction is wrapped by ErrInternal when AddOverload is given a
// Type whose Kind is not "function".
var ErrNotAFunction = errors.New("overload: type is not a function")

// ErrNameMismatch is wrapped by ErrInternal when a function's own
// overload-group name does not match the group it is being added to.
var ErrNameMismatch = errors.New("overload: function name does not match group")
