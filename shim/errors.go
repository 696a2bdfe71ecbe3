package shim

import "errors"

// Sentinel errors returned by Install.
var (
	// ErrNilPrototype is returned when Install is given a nil prototype.
	ErrNilPrototype = errors.New("shim: prototype must not be nil")

	// ErrUnknownMethod is returned when Options.Only names a method this
	// package does not provide.
	ErrUnknownMethod = errors.New("shim: unknown method")
)
