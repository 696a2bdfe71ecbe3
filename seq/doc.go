// Package seq defines the sparse indexable sequence capability that the
// operations in package arr work over.
//
// # Presence
//
// A [Sequence] has an explicit length and a per-index presence test. An index
// inside [0, Len()) that was never assigned is a hole: Has reports false and
// At returns the zero value.
//
//	s := seq.NewHoley[int](5)
//	s.Set(0, 10)
//	s.Set(2, 30)
//	s.Len()   // → 5
//	s.Has(1)  // → false
//
// # Implementations
//
//   - [Dense] is a plain slice; every index is present. It is the common case.
//   - [Holey] stores only its present slots, so its length may be far larger
//     than its contents. It is what arr.Map returns so that holes in the
//     input stay holes in the output.
//
// Any other type can take part by implementing the three methods of
// [Sequence], for example an adapter over a dynamic object model.
package seq
