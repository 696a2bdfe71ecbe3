package arr

import "github.com/hasbyte1/go-nfallback/seq"

// Operation names used in error messages.
const (
	opIndexOf     = "indexOf"
	opLastIndexOf = "lastIndexOf"
	opEvery       = "every"
	opFilter      = "filter"
	opForEach     = "forEach"
	opMap         = "map"
	opSome        = "some"
)

// ─────────────────────────────────────────────────────────────────────────────
// Callback types
// ─────────────────────────────────────────────────────────────────────────────

// Predicate tests the element at index of s. this is the context passed to
// the operation, or nil.
type Predicate[T any] func(this any, value T, index int, s seq.Sequence[T]) bool

// TryPredicate is a Predicate that may fail.
type TryPredicate[T any] func(this any, value T, index int, s seq.Sequence[T]) (bool, error)

// Visitor is called once per present element by [ForEach].
type Visitor[T any] func(this any, value T, index int, s seq.Sequence[T])

// TryVisitor is a Visitor that may fail.
type TryVisitor[T any] func(this any, value T, index int, s seq.Sequence[T]) error

// Mapper transforms the element at index of s.
type Mapper[T, U any] func(this any, value T, index int, s seq.Sequence[T]) U

// TryMapper is a Mapper that may fail.
type TryMapper[T, U any] func(this any, value T, index int, s seq.Sequence[T]) (U, error)

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether fn returns true for every present element of s.
// It stops at the first false result. An empty sequence yields true.
func Every[T any](s seq.Sequence[T], fn Predicate[T], thisArg ...any) (bool, error) {
	return TryEvery(s, tryPredicate(fn), thisArg...)
}

// TryEvery is [Every] with a callback that may fail.
func TryEvery[T any](s seq.Sequence[T], fn TryPredicate[T], thisArg ...any) (bool, error) {
	n, err := length(opEvery, s)
	if err != nil {
		return false, err
	}
	if fn == nil {
		return false, notCallable(opEvery)
	}
	this := context(thisArg)
	for i := 0; i < n; i++ {
		if !s.Has(i) {
			continue
		}
		ok, err := fn(this, s.At(i), i, s)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Some reports whether fn returns true for at least one present element of
// s. It stops at the first true result. An empty sequence yields false.
func Some[T any](s seq.Sequence[T], fn Predicate[T], thisArg ...any) (bool, error) {
	return TrySome(s, tryPredicate(fn), thisArg...)
}

// TrySome is [Some] with a callback that may fail.
func TrySome[T any](s seq.Sequence[T], fn TryPredicate[T], thisArg ...any) (bool, error) {
	n, err := length(opSome, s)
	if err != nil {
		return false, err
	}
	if fn == nil {
		return false, notCallable(opSome)
	}
	this := context(thisArg)
	for i := 0; i < n; i++ {
		if !s.Has(i) {
			continue
		}
		ok, err := fn(this, s.At(i), i, s)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new slice holding, in ascending index order, every present
// element for which fn returns true.
func Filter[T any](s seq.Sequence[T], fn Predicate[T], thisArg ...any) ([]T, error) {
	return TryFilter(s, tryPredicate(fn), thisArg...)
}

// TryFilter is [Filter] with a callback that may fail. No partial result is
// returned on failure.
func TryFilter[T any](s seq.Sequence[T], fn TryPredicate[T], thisArg ...any) ([]T, error) {
	n, err := length(opFilter, s)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, notCallable(opFilter)
	}
	this := context(thisArg)
	out := make([]T, 0)
	for i := 0; i < n; i++ {
		if !s.Has(i) {
			continue
		}
		// Read before the call: fn may mutate s.
		v := s.At(i)
		keep, err := fn(this, v, i, s)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, v)
		}
	}
	return out, nil
}

// ForEach calls fn once per present element of s, in ascending index order.
func ForEach[T any](s seq.Sequence[T], fn Visitor[T], thisArg ...any) error {
	var try TryVisitor[T]
	if fn != nil {
		try = func(this any, v T, i int, s seq.Sequence[T]) error {
			fn(this, v, i, s)
			return nil
		}
	}
	return TryForEach(s, try, thisArg...)
}

// TryForEach is [ForEach] with a callback that may fail.
func TryForEach[T any](s seq.Sequence[T], fn TryVisitor[T], thisArg ...any) error {
	n, err := length(opForEach, s)
	if err != nil {
		return err
	}
	if fn == nil {
		return notCallable(opForEach)
	}
	this := context(thisArg)
	for i := 0; i < n; i++ {
		if !s.Has(i) {
			continue
		}
		if err := fn(this, s.At(i), i, s); err != nil {
			return err
		}
	}
	return nil
}

// Map returns a new sequence of the same length as s in which every present
// index i holds fn applied to s.At(i). Holes in s stay holes in the result.
//
// Go methods cannot introduce type parameters, so Map is the only operation
// here that changes the element type.
func Map[T, U any](s seq.Sequence[T], fn Mapper[T, U], thisArg ...any) (*seq.Holey[U], error) {
	var try TryMapper[T, U]
	if fn != nil {
		try = func(this any, v T, i int, s seq.Sequence[T]) (U, error) {
			return fn(this, v, i, s), nil
		}
	}
	return TryMap(s, try, thisArg...)
}

// TryMap is [Map] with a callback that may fail.
func TryMap[T, U any](s seq.Sequence[T], fn TryMapper[T, U], thisArg ...any) (*seq.Holey[U], error) {
	n, err := length(opMap, s)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, notCallable(opMap)
	}
	this := context(thisArg)
	out := seq.NewHoley[U](n)
	for i := 0; i < n; i++ {
		if !s.Has(i) {
			continue
		}
		u, err := fn(this, s.At(i), i, s)
		if err != nil {
			return nil, err
		}
		out.Set(i, u)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// length validates s and returns its length with the unsigned 32-bit
// wrap-around every operation applies before iterating.
func length[T any](op string, s seq.Sequence[T]) (int, error) {
	if seq.IsNil(s) {
		return 0, nilSequence(op)
	}
	return int(uint32(s.Len())), nil
}

func context(thisArg []any) any {
	if len(thisArg) == 0 {
		return nil
	}
	return thisArg[0]
}

func tryPredicate[T any](fn Predicate[T]) TryPredicate[T] {
	if fn == nil {
		return nil
	}
	return func(this any, v T, i int, s seq.Sequence[T]) (bool, error) {
		return fn(this, v, i, s), nil
	}
}
