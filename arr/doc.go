// Package arr implements the seven standard array iteration operations as
// generic free functions over [seq.Sequence]:
//
//	IndexOf / LastIndexOf    forward and backward index search
//	Every / Some             universal and existential predicates
//	Filter                   filtering into a new dense slice
//	ForEach                  enumeration
//	Map                      mapping into a new holey sequence
//
// The functions reproduce the contract of the ECMAScript 5 Array.prototype
// methods of the same names, minus the implicit receiver:
//
//	xs := seq.Of(1, 2, 3, 2, 1)
//	arr.IndexOf(xs, 2)        // → 1
//	arr.LastIndexOf(xs, 2)    // → 3
//	arr.IndexOf(xs, 2, -2)    // → 3
//
// # Holes
//
// Every callback-taking operation visits only present indices, in ascending
// order, and re-tests presence at each step so a callback that deletes a later
// element is observed. The length is read once, before the first step. The
// search operations treat a hole as never equal to the target.
//
// # Callbacks and context
//
// Callbacks receive the context explicitly instead of through a rebindable
// receiver:
//
//	arr.Every(xs, func(this any, v, i int, s seq.Sequence[int]) bool {
//	    limit := this.(int)
//	    return v < limit
//	}, 10)
//
// The trailing thisArg is optional; without it the callback sees nil.
//
// # Errors
//
// All failures are a single kind, [ErrType], raised before any callback runs:
// the sequence is absent ([ErrNilSequence]) or the callback is nil
// ([ErrNotCallable]). The Try* variants take callbacks that may fail; the
// first callback error stops the scan and is returned unchanged.
package arr
