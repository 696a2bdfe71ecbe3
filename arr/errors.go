package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the operations in this package.
//
// Both guard errors wrap [ErrType], so a single check covers them:
//
//	if errors.Is(err, arr.ErrType) {
//	    // contract violation by the caller
//	}
var (
	// ErrType is the single error kind: a type-contract violation.
	ErrType = errors.New("arr: type error")

	// ErrNilSequence is returned when the sequence is a nil interface or a
	// nil pointer.
	ErrNilSequence = fmt.Errorf("%w: sequence is null or not defined", ErrType)

	// ErrNotCallable is returned when a required callback is nil.
	ErrNotCallable = fmt.Errorf("%w: callback is not a function", ErrType)
)

func nilSequence(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNilSequence)
}

func notCallable(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotCallable)
}
