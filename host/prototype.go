package host

import (
	"bytes"
	"maps"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Prototype is a named, goroutine-safe table of methods shared by every
// value that dispatches through it.
//
// Define replaces unconditionally; DefineIfAbsent is the check-and-set used
// by code that must never overwrite an existing implementation.
type Prototype struct {
	name    string
	mu      sync.RWMutex
	methods map[string]*Function
}

// ArrayPrototype is the process-wide built-in array prototype. It starts with
// no methods.
var ArrayPrototype = NewPrototype("Array")

// NewPrototype returns an empty prototype. name is used in error messages.
func NewPrototype(name string) *Prototype {
	return &Prototype{name: name, methods: make(map[string]*Function)}
}

// Name returns the prototype's name.
func (p *Prototype) Name() string { return p.name }

// Has reports whether a method is defined under name.
func (p *Prototype) Has(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.methods[name]
	return ok
}

// Lookup returns the method defined under name.
func (p *Prototype) Lookup(name string) (*Function, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn, ok := p.methods[name]
	return fn, ok
}

// Define adds or replaces the method under name. It panics if fn is nil.
func (p *Prototype) Define(name string, fn *Function) {
	if fn == nil {
		panic("host: Define called with a nil function")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.methods[name] = fn
}

// DefineIfAbsent adds fn under name unless a method is already defined there.
// It reports whether fn was added. It panics if fn is nil.
func (p *Prototype) DefineIfAbsent(name string, fn *Function) bool {
	if fn == nil {
		panic("host: DefineIfAbsent called with a nil function")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.methods[name]; ok {
		return false
	}
	p.methods[name] = fn
	return true
}

// Remove deletes the method under name and reports whether it existed.
func (p *Prototype) Remove(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.methods[name]
	delete(p.methods, name)
	return ok
}

// Names returns the defined method names in sorted order.
func (p *Prototype) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.methods))
	for name := range p.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call invokes the method under name with this as the receiver. A missing
// method is a TypeError.
func (p *Prototype) Call(name string, this Value, args ...Value) (Value, error) {
	fn, ok := p.Lookup(name)
	if !ok {
		return nil, NewTypeError("%s.prototype.%s is not a function", p.name, name)
	}
	return fn.Call(this, args...)
}

// State is a point-in-time view of a prototype's method table.
type State struct {
	Names []string

	// IDs maps each name to the ID of the function bound to it.
	IDs map[string]uint64

	Digest [blake2b.Size256]byte
}

// Equal reports whether s and o describe the same table: the same names bound
// to the same function identities.
func (s State) Equal(o State) bool { return s.Digest == o.Digest }

// Diff returns, in sorted order, the names that are bound in only one of s
// and o or bound to different functions.
func (s State) Diff(o State) []string {
	var out []string
	for name, id := range s.IDs {
		if other, ok := o.IDs[name]; !ok || other != id {
			out = append(out, name)
		}
	}
	for name := range o.IDs {
		if _, ok := s.IDs[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Snapshot captures the current method table. Two snapshots are equal exactly
// when every name is bound to the identical function.
func (p *Prototype) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := slices.Sorted(maps.Keys(p.methods))
	ids := make(map[string]uint64, len(names))

	var buf bytes.Buffer
	for _, name := range names {
		ids[name] = p.methods[name].ID()
		buf.WriteString(name)
		buf.WriteByte(0)
		buf.WriteString(strconv.FormatUint(ids[name], 10))
		buf.WriteByte('\n')
	}
	return State{Names: names, IDs: ids, Digest: blake2b.Sum256(buf.Bytes())}
}
