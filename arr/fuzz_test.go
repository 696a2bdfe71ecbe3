package arr_test

import (
	"math"
	"slices"
	"testing"

	"github.com/hasbyte1/go-nfallback/arr"
	"github.com/hasbyte1/go-nfallback/seq"
)

// FuzzIndexOf checks IndexOf and LastIndexOf against a direct scan for
// arbitrary contents and start offsets.
//
// Run with: go test -fuzz=FuzzIndexOf ./arr/
func FuzzIndexOf(f *testing.F) {
	f.Add([]byte{1, 2, 3, 2, 1}, byte(2), 0.0)
	f.Add([]byte{}, byte(0), -1.0)
	f.Add([]byte{7, 7}, byte(7), math.NaN())
	f.Add([]byte{1, 2, 3}, byte(3), math.Inf(-1))
	f.Add([]byte{1, 2, 3}, byte(1), -2.5)

	f.Fuzz(func(t *testing.T, data []byte, elem byte, from float64) {
		s := seq.Of(data...)
		n := float64(len(data))

		start := 0.0
		if !math.IsNaN(from) {
			start = math.Trunc(from)
		}

		wantFwd := -1
		fwd := start
		if fwd < 0 {
			fwd = math.Max(n+fwd, 0)
		}
		if fwd < n {
			if i := slices.Index(data[int(fwd):], elem); i >= 0 {
				wantFwd = int(fwd) + i
			}
		}
		got, err := arr.IndexOf[byte](s, elem, from)
		if err != nil {
			t.Fatal(err)
		}
		if got != wantFwd {
			t.Fatalf("IndexOf(%v, %d, %v) = %d; want %d", data, elem, from, got, wantFwd)
		}

		wantBwd := -1
		bwd := math.Min(start, n-1)
		if start < 0 {
			bwd = n + start
		}
		for k := bwd; k >= 0; k-- {
			if data[int(k)] == elem {
				wantBwd = int(k)
				break
			}
		}
		got, err = arr.LastIndexOf[byte](s, elem, from)
		if err != nil {
			t.Fatal(err)
		}
		if got != wantBwd {
			t.Fatalf("LastIndexOf(%v, %d, %v) = %d; want %d", data, elem, from, got, wantBwd)
		}
	})
}
