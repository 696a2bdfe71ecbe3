package arr_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-nfallback/arr"
	"github.com/hasbyte1/go-nfallback/seq"
)

func ExampleIndexOf() {
	xs := seq.Of(1, 2, 3, 2, 1)
	first, _ := arr.IndexOf[int](xs, 2)
	last, _ := arr.LastIndexOf[int](xs, 2)
	missing, _ := arr.IndexOf[int](xs, 9)
	fmt.Println(first, last, missing)
	// Output: 1 3 -1
}

func ExampleFilter() {
	evens, _ := arr.Filter[int](seq.Of(0, 1, 2, 3, 4), func(_ any, n, _ int, _ seq.Sequence[int]) bool {
		return n%2 == 0
	})
	fmt.Println(evens)
	// Output: [0 2 4]
}

func ExampleMap() {
	in := seq.HoleyWith(5, map[int]string{0: "a", 2: "b", 4: "c"})
	out, _ := arr.Map[string, string](in, func(_ any, s string, _ int, _ seq.Sequence[string]) string {
		return strings.ToUpper(s)
	})
	fmt.Println(out)
	// Output: ["A",null,"B",null,"C"]
}

func ExampleEvery() {
	limit := 10
	ok, _ := arr.Every[int](seq.Of(1, 5, 9), func(this any, n, _ int, _ seq.Sequence[int]) bool {
		return n < this.(int)
	}, limit)
	fmt.Println(ok)
	// Output: true
}
