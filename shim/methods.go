package shim

import (
	"maps"
	"slices"

	"github.com/hasbyte1/go-nfallback/arr"
	"github.com/hasbyte1/go-nfallback/host"
	"github.com/hasbyte1/go-nfallback/seq"
)

// Method names, in installation order.
const (
	IndexOf     = "indexOf"
	LastIndexOf = "lastIndexOf"
	Every       = "every"
	Filter      = "filter"
	ForEach     = "forEach"
	Map         = "map"
	Some        = "some"
)

var names = []string{IndexOf, LastIndexOf, Every, Filter, ForEach, Map, Some}

// methods is created once; every install shares these identities.
var methods = map[string]*host.Function{
	IndexOf:     host.NewFunction(IndexOf, indexOf).WithLength(1),
	LastIndexOf: host.NewFunction(LastIndexOf, lastIndexOf).WithLength(1),
	Every:       host.NewFunction(Every, every).WithLength(1),
	Filter:      host.NewFunction(Filter, filter).WithLength(1),
	ForEach:     host.NewFunction(ForEach, forEach).WithLength(1),
	Map:         host.NewFunction(Map, mapFn).WithLength(1),
	Some:        host.NewFunction(Some, some).WithLength(1),
}

// Names returns the seven method names in installation order.
func Names() []string { return slices.Clone(names) }

// Methods returns the shim implementations keyed by name.
func Methods() map[string]*host.Function { return maps.Clone(methods) }

// Method returns the shim implementation for name.
func Method(name string) (*host.Function, bool) {
	fn, ok := methods[name]
	return fn, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func indexOf(this host.Value, args ...host.Value) (host.Value, error) {
	_, s, err := receiver(IndexOf, this)
	if err != nil {
		return nil, err
	}
	i, err := arr.IndexOfFunc(s, host.Arg(args, 0), host.StrictEquals, fromIndex(args)...)
	if err != nil {
		return nil, err
	}
	return float64(i), nil
}

func lastIndexOf(this host.Value, args ...host.Value) (host.Value, error) {
	_, s, err := receiver(LastIndexOf, this)
	if err != nil {
		return nil, err
	}
	i, err := arr.LastIndexOfFunc(s, host.Arg(args, 0), host.StrictEquals, fromIndex(args)...)
	if err != nil {
		return nil, err
	}
	return float64(i), nil
}

// fromIndex converts a supplied second argument; an omitted one stays
// omitted, which is not the same as an explicit undefined.
func fromIndex(args []host.Value) []float64 {
	if len(args) < 2 {
		return nil
	}
	return []float64{host.ToNumber(args[1])}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func every(this host.Value, args ...host.Value) (host.Value, error) {
	o, s, err := receiver(Every, this)
	if err != nil {
		return nil, err
	}
	fn, err := callback(args)
	if err != nil {
		return nil, err
	}
	ok, err := arr.TryEvery(s, predicate(fn, o), host.Arg(args, 1))
	if err != nil {
		return nil, err
	}
	return ok, nil
}

func some(this host.Value, args ...host.Value) (host.Value, error) {
	o, s, err := receiver(Some, this)
	if err != nil {
		return nil, err
	}
	fn, err := callback(args)
	if err != nil {
		return nil, err
	}
	ok, err := arr.TrySome(s, predicate(fn, o), host.Arg(args, 1))
	if err != nil {
		return nil, err
	}
	return ok, nil
}

func filter(this host.Value, args ...host.Value) (host.Value, error) {
	o, s, err := receiver(Filter, this)
	if err != nil {
		return nil, err
	}
	fn, err := callback(args)
	if err != nil {
		return nil, err
	}
	kept, err := arr.TryFilter(s, predicate(fn, o), host.Arg(args, 1))
	if err != nil {
		return nil, err
	}
	return host.NewArray(kept...).SetPrototype(prototypeOf(o)), nil
}

func forEach(this host.Value, args ...host.Value) (host.Value, error) {
	o, s, err := receiver(ForEach, this)
	if err != nil {
		return nil, err
	}
	fn, err := callback(args)
	if err != nil {
		return nil, err
	}
	err = arr.TryForEach(s, func(this any, v host.Value, i int, _ seq.Sequence[host.Value]) error {
		_, err := fn.Call(this, v, float64(i), o)
		return err
	}, host.Arg(args, 1))
	if err != nil {
		return nil, err
	}
	return host.Undefined, nil
}

func mapFn(this host.Value, args ...host.Value) (host.Value, error) {
	o, s, err := receiver(Map, this)
	if err != nil {
		return nil, err
	}
	fn, err := callback(args)
	if err != nil {
		return nil, err
	}
	mapped, err := arr.TryMap(s, func(this any, v host.Value, i int, _ seq.Sequence[host.Value]) (host.Value, error) {
		return fn.Call(this, v, float64(i), o)
	}, host.Arg(args, 1))
	if err != nil {
		return nil, err
	}
	out := host.NewArrayLength(uint32(mapped.Len())).SetPrototype(prototypeOf(o))
	for i, v := range mapped.All() {
		out.SetIndex(i, v)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// receiver applies the receiver guard and ToObject, then reads the length.
func receiver(name string, this host.Value) (host.Object, seq.Sequence[host.Value], error) {
	if host.IsNullish(this) {
		return nil, nil, host.NewTypeError("Array.prototype.%s called on null or undefined", name)
	}
	o, err := host.ToObject(this)
	if err != nil {
		return nil, nil, err
	}
	return o, host.Sequence(o), nil
}

func callback(args []host.Value) (*host.Function, error) {
	v := host.Arg(args, 0)
	if !host.IsCallable(v) {
		return nil, host.NewTypeError("%s is not a function", host.ToString(v))
	}
	return v.(*host.Function), nil
}

// predicate calls fn with (element, index, object) and converts the result
// to a boolean.
func predicate(fn *host.Function, o host.Object) arr.TryPredicate[host.Value] {
	return func(this any, v host.Value, i int, _ seq.Sequence[host.Value]) (bool, error) {
		res, err := fn.Call(this, v, float64(i), o)
		if err != nil {
			return false, err
		}
		return host.Truthy(res), nil
	}
}

// prototypeOf picks the prototype for arrays created from o: the receiver's
// own when it is an array, the built-in one otherwise.
func prototypeOf(o host.Object) *host.Prototype {
	if a, ok := o.(*host.Array); ok && a.Prototype() != nil {
		return a.Prototype()
	}
	return host.ArrayPrototype
}
