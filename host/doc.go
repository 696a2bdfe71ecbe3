// Package host is a small dynamic value model standing in for a scripting
// runtime's built-in array type. It exists so that the shims in package shim
// have something to install onto: a [Prototype] method table that may or may
// not already carry a given operation.
//
// # Values
//
// A [Value] is any Go value, read with ECMAScript 5 conventions:
//
//	nil            null
//	Undefined      undefined
//	float64, int…  number
//	string         string
//	bool           boolean
//	*Function      function
//	Object         object (PlainObject, Array, wrappers from ToObject)
//
// nil and [Undefined] together are the absence-value; [IsNullish] tests for
// either.
//
// # Coercions
//
// [ToNumber], [ToInteger], [ToUint32], [ToString], [Truthy] and [StrictEquals]
// follow the abstract operations of the same names. Objects do not take part
// in valueOf/toString conversion; they coerce to NaN.
//
// # Prototypes
//
// [Prototype] is a goroutine-safe table of named functions. [ArrayPrototype]
// is the process-wide instance every new [Array] dispatches through; it
// starts empty, like a host that predates the fifth edition.
//
//	a := host.NewArray(1.0, 2.0, 3.0)
//	host.ArrayPrototype.Define("sum", host.NewFunction("sum", sumFn))
//	total, err := a.Invoke("sum")
package host
