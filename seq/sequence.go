package seq

import (
	"iter"
	"reflect"
)

// Sequence is an array-like value: an explicit length plus integer-indexed
// elements that may or may not be present.
type Sequence[T any] interface {
	// Len returns the declared length. Indices at or past Len are never
	// visited by the operations in package arr.
	Len() int

	// Has reports whether index i holds an assigned value.
	Has(i int) bool

	// At returns the value at index i, or the zero value for a hole.
	At(i int) T
}

// IsNil reports whether s is the absence-value: a nil interface or a typed
// nil pointer. A nil [Dense] is an empty sequence and is not absent.
func IsNil[T any](s Sequence[T]) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Entries returns an iterator over the present (index, value) pairs of s in
// ascending index order. Presence is tested lazily, one index at a time.
func Entries[T any](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !s.Has(i) {
				continue
			}
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Dense is a Sequence with no holes.
type Dense[T any] []T

// Of returns a Dense sequence holding a copy of items.
func Of[T any](items ...T) Dense[T] {
	out := make(Dense[T], len(items))
	copy(out, items)
	return out
}

// Len returns the number of elements.
func (d Dense[T]) Len() int { return len(d) }

// Has reports whether i is inside [0, Len()).
func (d Dense[T]) Has(i int) bool { return i >= 0 && i < len(d) }

// At returns the element at i, or the zero value when i is out of range.
func (d Dense[T]) At(i int) T {
	if i < 0 || i >= len(d) {
		var zero T
		return zero
	}
	return d[i]
}
