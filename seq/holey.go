package seq

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/goccy/go-json"
)

// denseSlack is how far past the dense prefix a write may land and still
// extend it. Writes further out go to the sparse map.
const denseSlack = 64

// Holey is a fixed-length sequence whose slots are either present or holes.
//
// Storage is proportional to the number of present slots, not to the
// length. Indices near the front live in a dense prefix whose presence is
// tracked by a bitset; indices written far past it live in a map. Every
// sparse key is at or past the end of the dense prefix.
//
// The zero value is an empty sequence ready to use. Holey is not safe for
// concurrent mutation.
type Holey[T any] struct {
	n       int
	dense   []T
	present bitset.BitSet
	sparse  map[int]T
}

// NewHoley returns a Holey of length n in which every index is a hole.
func NewHoley[T any](n int) *Holey[T] {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	return &Holey[T]{n: n}
}

// HoleyFrom returns a Holey holding a copy of values with every index present.
func HoleyFrom[T any](values []T) *Holey[T] {
	h := &Holey[T]{n: len(values), dense: slices.Clone(values)}
	h.present = *bitset.New(uint(len(values)))
	h.present.FlipRange(0, uint(len(values)))
	return h
}

// HoleyWith returns a Holey of length n whose only present indices are the
// keys of entries. Keys outside [0, n) extend the length.
func HoleyWith[T any](n int, entries map[int]T) *Holey[T] {
	h := NewHoley[T](n)
	for _, i := range slices.Sorted(maps.Keys(entries)) {
		h.Set(i, entries[i])
	}
	return h
}

// Len returns the declared length, holes included.
func (h *Holey[T]) Len() int { return h.n }

// Has reports whether index i holds an assigned value.
func (h *Holey[T]) Has(i int) bool {
	if i < 0 || i >= h.n {
		return false
	}
	if i < len(h.dense) {
		return h.present.Test(uint(i))
	}
	_, ok := h.sparse[i]
	return ok
}

// At returns the value at i, or the zero value for a hole.
func (h *Holey[T]) At(i int) T {
	if !h.Has(i) {
		var zero T
		return zero
	}
	if i < len(h.dense) {
		return h.dense[i]
	}
	return h.sparse[i]
}

// Set assigns v at index i, growing the length to i+1 when needed.
func (h *Holey[T]) Set(i int, v T) {
	if i < 0 {
		panic(fmt.Sprintf("seq: negative index %d", i))
	}
	if i >= h.n {
		h.n = i + 1
	}
	if i >= len(h.dense) {
		if i >= 2*len(h.dense)+denseSlack {
			if h.sparse == nil {
				h.sparse = make(map[int]T)
			}
			h.sparse[i] = v
			return
		}
		h.grow(i + 1)
	}
	h.dense[i] = v
	h.present.Set(uint(i))
}

// grow extends the dense prefix to n slots and moves the sparse entries it
// now covers into it.
func (h *Holey[T]) grow(n int) {
	h.dense = append(h.dense, make([]T, n-len(h.dense))...)
	for i, v := range h.sparse {
		if i < n {
			h.dense[i] = v
			h.present.Set(uint(i))
			delete(h.sparse, i)
		}
	}
}

// Delete turns index i into a hole. It reports whether a value was removed.
func (h *Holey[T]) Delete(i int) bool {
	if !h.Has(i) {
		return false
	}
	if i < len(h.dense) {
		var zero T
		h.dense[i] = zero
		h.present.Clear(uint(i))
		return true
	}
	delete(h.sparse, i)
	return true
}

// Resize changes the length to n. Growing appends holes without allocating;
// shrinking discards every slot at or past n.
func (h *Holey[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	if n < len(h.dense) {
		for i, ok := h.present.NextSet(uint(n)); ok; i, ok = h.present.NextSet(i + 1) {
			h.present.Clear(i)
		}
		clear(h.dense[n:])
		h.dense = h.dense[:n]
	}
	if n < h.n {
		for i := range h.sparse {
			if i >= n {
				delete(h.sparse, i)
			}
		}
	}
	h.n = n
}

// Count returns the number of present slots.
func (h *Holey[T]) Count() int { return int(h.present.Count()) + len(h.sparse) }

// Present returns the present indices in ascending order.
func (h *Holey[T]) Present() []int {
	out := make([]int, 0, h.Count())
	for i := range h.All() {
		out = append(out, i)
	}
	return out
}

// Values returns the present values in index order, skipping holes.
func (h *Holey[T]) Values() []T {
	out := make([]T, 0, h.Count())
	for _, v := range h.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the present (index, value) pairs in ascending
// index order.
func (h *Holey[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, ok := h.present.NextSet(0); ok && int(i) < len(h.dense); i, ok = h.present.NextSet(i + 1) {
			if !yield(int(i), h.dense[i]) {
				return
			}
		}
		for _, i := range slices.Sorted(maps.Keys(h.sparse)) {
			if v, ok := h.sparse[i]; ok && !yield(i, v) {
				return
			}
		}
	}
}

// MarshalJSON encodes the sequence as a JSON array with holes as null.
func (h *Holey[T]) MarshalJSON() ([]byte, error) {
	out := make([]*T, h.n)
	for i, v := range h.All() {
		out[i] = &v
	}
	return json.Marshal(out)
}

// String returns the JSON representation. It implements [fmt.Stringer].
func (h *Holey[T]) String() string {
	b, err := h.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", h.Values())
	}
	return string(b)
}
