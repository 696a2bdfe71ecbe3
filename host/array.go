package host

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/hasbyte1/go-nfallback/seq"
)

// Array is a host array: a length plus holey element storage, dispatching
// method calls through a [Prototype].
//
// Array implements both [Object] and [seq.Sequence], so the operations in
// package arr can read it directly.
type Array struct {
	elems seq.Holey[Value]
	props map[string]Value
	proto *Prototype
}

// NewArray returns a dense array holding values, bound to [ArrayPrototype].
func NewArray(values ...Value) *Array {
	a := &Array{proto: ArrayPrototype}
	for i, v := range values {
		a.elems.Set(i, v)
	}
	return a
}

// NewArrayLength returns an array of length n in which every index is a hole,
// like new Array(n).
func NewArrayLength(n uint32) *Array {
	a := &Array{proto: ArrayPrototype}
	a.elems.Resize(int(n))
	return a
}

// Prototype returns the prototype a dispatches through.
func (a *Array) Prototype() *Prototype { return a.proto }

// SetPrototype rebinds a to p and returns a.
func (a *Array) SetPrototype(p *Prototype) *Array {
	a.proto = p
	return a
}

// Invoke calls the prototype method name with a as the receiver.
func (a *Array) Invoke(name string, args ...Value) (Value, error) {
	if a.proto == nil {
		return nil, NewTypeError("%s is not a function", name)
	}
	return a.proto.Call(name, a, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// seq.Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length.
func (a *Array) Len() int { return a.elems.Len() }

// Has reports whether index i is present.
func (a *Array) Has(i int) bool { return a.elems.Has(i) }

// At returns the element at i, or Undefined for a hole.
func (a *Array) At(i int) Value {
	if !a.elems.Has(i) {
		return Undefined
	}
	return a.elems.At(i)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// SetIndex assigns v at i, extending the length when i is past the end.
func (a *Array) SetIndex(i int, v Value) { a.elems.Set(i, v) }

// DeleteIndex turns i into a hole without changing the length.
func (a *Array) DeleteIndex(i int) bool { return a.elems.Delete(i) }

// SetLength truncates or extends a. New slots are holes.
func (a *Array) SetLength(n uint32) { a.elems.Resize(int(n)) }

// Push appends values and returns the new length.
func (a *Array) Push(values ...Value) int {
	for _, v := range values {
		a.elems.Set(a.elems.Len(), v)
	}
	return a.elems.Len()
}

// Values returns the present elements in index order.
func (a *Array) Values() []Value { return a.elems.Values() }

// ─────────────────────────────────────────────────────────────────────────────
// Object
// ─────────────────────────────────────────────────────────────────────────────

// Get implements [Object]. Unknown names resolve through the prototype.
func (a *Array) Get(key string) Value {
	if key == "length" {
		return float64(a.elems.Len())
	}
	if i, ok := arrayIndex(key); ok {
		return a.GetIndex(i)
	}
	if v, ok := a.props[key]; ok {
		return v
	}
	if a.proto != nil {
		if fn, ok := a.proto.Lookup(key); ok {
			return fn
		}
	}
	return Undefined
}

// HasProperty implements [Object].
func (a *Array) HasProperty(key string) bool {
	if key == "length" {
		return true
	}
	if i, ok := arrayIndex(key); ok {
		return a.HasIndex(i)
	}
	if _, ok := a.props[key]; ok {
		return true
	}
	return a.proto != nil && a.proto.Has(key)
}

// Set implements [Object]. Assigning "length" truncates or extends.
func (a *Array) Set(key string, v Value) {
	if key == "length" {
		a.SetLength(ToUint32(v))
		return
	}
	if i, ok := arrayIndex(key); ok {
		a.elems.Set(int(i), v)
		return
	}
	if a.props == nil {
		a.props = make(map[string]Value)
	}
	a.props[key] = v
}

// Delete implements [Object].
func (a *Array) Delete(key string) bool {
	if i, ok := arrayIndex(key); ok {
		return a.elems.Delete(int(i))
	}
	_, ok := a.props[key]
	delete(a.props, key)
	return ok
}

// HasIndex implements [Indexed].
func (a *Array) HasIndex(i uint32) bool { return a.elems.Has(int(i)) }

// GetIndex implements [Indexed].
func (a *Array) GetIndex(i uint32) Value { return a.At(int(i)) }

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes a as a JSON array. Holes, undefined and functions
// encode as null.
func (a *Array) MarshalJSON() ([]byte, error) {
	out := make([]Value, a.elems.Len())
	for i := range out {
		v := a.At(i)
		if IsUndefined(v) || IsCallable(v) {
			continue
		}
		out[i] = v
	}
	return json.Marshal(out)
}

// String returns the elements joined with commas, as Array.prototype.toString
// does.
func (a *Array) String() string { return a.join(",", nil) }

// join converts every element with toString and separates them with sep.
// seen holds the arrays already being joined further up; meeting one of them
// again yields "" instead of recursing. The result stops growing at
// MaxStringLength bytes.
func (a *Array) join(sep string, seen map[*Array]bool) string {
	if seen[a] {
		return ""
	}
	if seen == nil {
		seen = make(map[*Array]bool)
	}
	seen[a] = true
	defer delete(seen, a)

	var b strings.Builder
	full := func() bool { return b.Len() >= MaxStringLength }
	seps, last := 0, a.elems.Len()-1
	for i, v := range a.elems.All() {
		for ; seps < i && !full(); seps++ {
			b.WriteString(sep)
		}
		if full() {
			break
		}
		if !IsNullish(v) {
			b.WriteString(toString(v, seen))
		}
	}
	for ; seps < last && !full(); seps++ {
		b.WriteString(sep)
	}
	if full() {
		return b.String()[:MaxStringLength]
	}
	return b.String()
}
