package host

import (
	"unicode/utf16"

	"github.com/goccy/go-json"

	"github.com/hasbyte1/go-nfallback/seq"
)

// Object is a host object: a bag of named properties.
type Object interface {
	// Get returns the property value, or Undefined when it is missing.
	Get(key string) Value

	// HasProperty reports whether key resolves, own or inherited.
	HasProperty(key string) bool

	// Set assigns a property.
	Set(key string, v Value)

	// Delete removes an own property and reports whether it existed.
	Delete(key string) bool
}

// Indexed is implemented by objects with a direct path to array-index
// properties.
type Indexed interface {
	HasIndex(i uint32) bool
	GetIndex(i uint32) Value
}

// ToObject converts v to an object. Strings become [*StringObject]; other
// primitives become wrappers with no properties. null and undefined cannot be
// converted.
func ToObject(v Value) (Object, error) {
	if IsNullish(v) {
		return nil, NewTypeError("cannot convert %s to object", ToString(v))
	}
	switch x := v.(type) {
	case Object:
		return x, nil
	case string:
		return NewStringObject(x), nil
	}
	return &primitiveObject{value: v}, nil
}

// Sequence adapts o to a [seq.Sequence]. The length is read once, now, as
// ToUint32(o.Get("length")).
func Sequence(o Object) seq.Sequence[Value] {
	if a, ok := o.(*Array); ok {
		return a
	}
	return &objectSequence{obj: o, n: int(ToUint32(o.Get("length")))}
}

type objectSequence struct {
	obj Object
	n   int
}

func (s *objectSequence) Len() int { return s.n }

func (s *objectSequence) Has(i int) bool {
	if i < 0 {
		return false
	}
	if ix, ok := s.obj.(Indexed); ok {
		return ix.HasIndex(uint32(i))
	}
	return s.obj.HasProperty(indexKey(uint32(i)))
}

func (s *objectSequence) At(i int) Value {
	if i < 0 {
		return Undefined
	}
	if ix, ok := s.obj.(Indexed); ok {
		return ix.GetIndex(uint32(i))
	}
	return s.obj.Get(indexKey(uint32(i)))
}

// ─────────────────────────────────────────────────────────────────────────────
// PlainObject
// ─────────────────────────────────────────────────────────────────────────────

// PlainObject is a map-backed object, typically used for array-likes:
//
//	host.NewObject(map[string]host.Value{"length": 3, "0": "a", "2": "c"})
type PlainObject struct {
	props map[string]Value
}

// NewObject returns an object holding a copy of props.
func NewObject(props map[string]Value) *PlainObject {
	o := &PlainObject{props: make(map[string]Value, len(props))}
	for k, v := range props {
		o.props[k] = v
	}
	return o
}

// Get implements [Object].
func (o *PlainObject) Get(key string) Value {
	if v, ok := o.props[key]; ok {
		return v
	}
	return Undefined
}

// HasProperty implements [Object].
func (o *PlainObject) HasProperty(key string) bool {
	_, ok := o.props[key]
	return ok
}

// Set implements [Object].
func (o *PlainObject) Set(key string, v Value) { o.props[key] = v }

// Delete implements [Object].
func (o *PlainObject) Delete(key string) bool {
	_, ok := o.props[key]
	delete(o.props, key)
	return ok
}

// MarshalJSON encodes the object's properties, dropping undefined and
// function values.
func (o *PlainObject) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, len(o.props))
	for k, v := range o.props {
		if IsUndefined(v) || IsCallable(v) {
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// StringObject
// ─────────────────────────────────────────────────────────────────────────────

// StringObject is the object form of a string: an immutable array-like of
// UTF-16 code units.
type StringObject struct {
	s     string
	units []uint16
}

// NewStringObject wraps s.
func NewStringObject(s string) *StringObject {
	return &StringObject{s: s, units: utf16.Encode([]rune(s))}
}

// String returns the wrapped string.
func (o *StringObject) String() string { return o.s }

// Get implements [Object].
func (o *StringObject) Get(key string) Value {
	if key == "length" {
		return float64(len(o.units))
	}
	if i, ok := arrayIndex(key); ok && o.HasIndex(i) {
		return o.GetIndex(i)
	}
	return Undefined
}

// HasProperty implements [Object].
func (o *StringObject) HasProperty(key string) bool {
	if key == "length" {
		return true
	}
	i, ok := arrayIndex(key)
	return ok && o.HasIndex(i)
}

// Set is a no-op: string objects are immutable.
func (o *StringObject) Set(string, Value) {}

// Delete reports false: string properties cannot be removed.
func (o *StringObject) Delete(string) bool { return false }

// HasIndex implements [Indexed].
func (o *StringObject) HasIndex(i uint32) bool { return int(i) < len(o.units) }

// GetIndex implements [Indexed]. Each index holds a one-unit string.
func (o *StringObject) GetIndex(i uint32) Value {
	if !o.HasIndex(i) {
		return Undefined
	}
	return string(utf16.Decode(o.units[i : i+1]))
}

// primitiveObject wraps a number, boolean or foreign Go value. It has no
// properties, so its length coerces to 0.
type primitiveObject struct {
	value Value
}

func (o *primitiveObject) Get(string) Value       { return Undefined }
func (o *primitiveObject) HasProperty(string) bool { return false }
func (o *primitiveObject) Set(string, Value)       {}
func (o *primitiveObject) Delete(string) bool      { return false }
