package arr

import (
	"math"

	"github.com/hasbyte1/go-nfallback/seq"
)

// IndexOf returns the first present index i at or after the start offset for
// which s.At(i) == elem, or -1.
//
// The optional fromIndex is truncated toward zero; NaN counts as 0, a
// negative value counts back from the end (clamped at 0) and a value at or
// past the length finds nothing.
//
//	arr.IndexOf(seq.Of(1, 2, 3, 2, 1), 2)      // → 1
//	arr.IndexOf(seq.Of(1, 2, 3, 2, 1), 2, 2)   // → 3
//	arr.IndexOf(seq.Of(1, 2, 3, 2, 1), 9)      // → -1
func IndexOf[T comparable](s seq.Sequence[T], elem T, fromIndex ...float64) (int, error) {
	return indexOf(opIndexOf, s, elem, equal[T], fromIndex)
}

// IndexOfFunc is [IndexOf] with a caller-supplied strict equality. eq is
// called with the stored element first.
func IndexOfFunc[T any](s seq.Sequence[T], elem T, eq func(a, b T) bool, fromIndex ...float64) (int, error) {
	return indexOf(opIndexOf, s, elem, eq, fromIndex)
}

// LastIndexOf returns the highest present index i at or before the start
// offset for which s.At(i) == elem, or -1.
//
// Without fromIndex the search starts at the last index. A supplied value is
// truncated toward zero (NaN counts as 0), clamped to the last index, and a
// negative value counts back from the end.
func LastIndexOf[T comparable](s seq.Sequence[T], elem T, fromIndex ...float64) (int, error) {
	return lastIndexOf(opLastIndexOf, s, elem, equal[T], fromIndex)
}

// LastIndexOfFunc is [LastIndexOf] with a caller-supplied strict equality.
func LastIndexOfFunc[T any](s seq.Sequence[T], elem T, eq func(a, b T) bool, fromIndex ...float64) (int, error) {
	return lastIndexOf(opLastIndexOf, s, elem, eq, fromIndex)
}

func indexOf[T any](op string, s seq.Sequence[T], elem T, eq func(a, b T) bool, fromIndex []float64) (int, error) {
	n, err := length(op, s)
	if err != nil {
		return -1, err
	}
	if eq == nil {
		return -1, notCallable(op)
	}
	if n == 0 {
		return -1, nil
	}
	k := 0
	if len(fromIndex) > 0 {
		f := toInteger(fromIndex[0])
		if f >= float64(n) {
			return -1, nil
		}
		if f >= 0 {
			k = int(f)
		} else {
			k = int(math.Max(float64(n)+f, 0))
		}
	}
	for ; k < n; k++ {
		if s.Has(k) && eq(s.At(k), elem) {
			return k, nil
		}
	}
	return -1, nil
}

func lastIndexOf[T any](op string, s seq.Sequence[T], elem T, eq func(a, b T) bool, fromIndex []float64) (int, error) {
	n, err := length(op, s)
	if err != nil {
		return -1, err
	}
	if eq == nil {
		return -1, notCallable(op)
	}
	if n == 0 {
		return -1, nil
	}
	k := n - 1
	if len(fromIndex) > 0 {
		f := toInteger(fromIndex[0])
		switch {
		case f >= 0:
			k = int(math.Min(f, float64(n-1)))
		case float64(n)+f < 0:
			return -1, nil
		default:
			k = int(float64(n) + f)
		}
	}
	for ; k >= 0; k-- {
		if s.Has(k) && eq(s.At(k), elem) {
			return k, nil
		}
	}
	return -1, nil
}

// toInteger truncates f toward zero. NaN becomes 0; infinities are kept.
func toInteger(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Trunc(f)
}

func equal[T comparable](a, b T) bool { return a == b }
