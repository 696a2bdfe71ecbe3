package host

import (
	"errors"
	"fmt"
)

// ErrTypeError is the sentinel every [*TypeError] matches with [errors.Is].
var ErrTypeError = errors.New("host: TypeError")

// TypeError is the host's type-contract violation, the Go counterpart of a
// thrown TypeError.
type TypeError struct {
	Message string
}

// NewTypeError returns a TypeError with a formatted message.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Message == "" {
		return "TypeError"
	}
	return "TypeError: " + e.Message
}

// Is reports whether target is [ErrTypeError].
func (e *TypeError) Is(target error) bool { return target == ErrTypeError }
