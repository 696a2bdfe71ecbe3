package host

import "sync/atomic"

// NativeFunc is the Go implementation behind a [Function]. A non-nil error is
// a thrown exception and propagates to the caller unchanged.
type NativeFunc func(this Value, args ...Value) (Value, error)

// Function is a callable host value. Functions compare by identity.
//
// Function implements [Object] with two read-only properties: "name" and
// "length", the declared parameter count.
type Function struct {
	id     uint64
	name   string
	length int
	fn     NativeFunc
}

var functionSeq atomic.Uint64

// NewFunction wraps fn as a host function. It panics if fn is nil.
func NewFunction(name string, fn NativeFunc) *Function {
	if fn == nil {
		panic("host: NewFunction called with a nil implementation")
	}
	return &Function{id: functionSeq.Add(1), name: name, fn: fn}
}

// Name returns the name the function was created with.
func (f *Function) Name() string { return f.name }

// WithLength sets the declared parameter count and returns f. Call it before
// f is shared.
func (f *Function) WithLength(n int) *Function {
	if n < 0 {
		n = 0
	}
	f.length = n
	return f
}

// Length returns the declared parameter count.
func (f *Function) Length() int { return f.length }

// ID returns a process-unique identifier assigned at creation.
func (f *Function) ID() uint64 { return f.id }

// Call invokes f with the given receiver and arguments.
func (f *Function) Call(this Value, args ...Value) (Value, error) {
	return f.fn(this, args...)
}

// Get implements [Object].
func (f *Function) Get(key string) Value {
	switch key {
	case "length":
		return float64(f.length)
	case "name":
		return f.name
	}
	return Undefined
}

// HasProperty implements [Object].
func (f *Function) HasProperty(key string) bool { return key == "length" || key == "name" }

// Set is a no-op: function properties are read-only.
func (f *Function) Set(string, Value) {}

// Delete reports false: function properties cannot be removed.
func (f *Function) Delete(string) bool { return false }

// String implements [fmt.Stringer].
func (f *Function) String() string { return ToString(f) }

// Arg returns args[i], or [Undefined] when fewer arguments were passed.
func Arg(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return Undefined
	}
	return args[i]
}
