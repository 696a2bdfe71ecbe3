package host_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-nfallback/host"
)

func TestNewArray(t *testing.T) {
	a := host.NewArray(1.0, "two", nil)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3.0, a.Get("length"))
	assert.Equal(t, "two", a.Get("1"))
	assert.True(t, a.Has(2), "a stored null is present")
	assert.Same(t, host.ArrayPrototype, a.Prototype())
}

func TestNewArrayLengthIsAllHoles(t *testing.T) {
	a := host.NewArrayLength(3)
	assert.Equal(t, 3, a.Len())
	for i := 0; i < 3; i++ {
		assert.False(t, a.Has(i))
		assert.Equal(t, host.Undefined, a.At(i))
	}
}

func TestArrayIndexWritesExtendLength(t *testing.T) {
	a := host.NewArray()
	a.Set("4", "e")
	assert.Equal(t, 5, a.Len())
	assert.False(t, a.HasProperty("3"))
	assert.True(t, a.HasProperty("4"))
}

func TestArrayLengthAssignment(t *testing.T) {
	a := host.NewArray(1.0, 2.0, 3.0)
	a.Set("length", 1.0)
	assert.Equal(t, []host.Value{1.0}, a.Values())
	a.Set("length", 3.0)
	assert.Equal(t, 3, a.Len())
	assert.False(t, a.Has(1))
}

func TestArrayDelete(t *testing.T) {
	a := host.NewArray(1.0, 2.0)
	assert.True(t, a.Delete("0"))
	assert.False(t, a.Has(0))
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.DeleteIndex(1))
	assert.False(t, a.DeleteIndex(1))
}

func TestArrayNonIndexProperties(t *testing.T) {
	a := host.NewArray()
	a.Set("01", "not an index")
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "not an index", a.Get("01"))
	assert.True(t, a.Delete("01"))
}

func TestArrayPush(t *testing.T) {
	a := host.NewArrayLength(2)
	n := a.Push("x", "y")
	assert.Equal(t, 4, n)
	assert.Equal(t, []host.Value{"x", "y"}, a.Values())
}

func TestArrayMethodsResolveThroughPrototype(t *testing.T) {
	proto := host.NewPrototype("Array")
	size := host.NewFunction("size", func(this host.Value, _ ...host.Value) (host.Value, error) {
		return float64(this.(*host.Array).Len()), nil
	})
	proto.Define("size", size)

	a := host.NewArray(1.0, 2.0).SetPrototype(proto)
	assert.True(t, a.HasProperty("size"))
	assert.Same(t, size, a.Get("size"))

	got, err := a.Invoke("size")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	_, err = a.Invoke("missing")
	assert.ErrorIs(t, err, host.ErrTypeError)
}

func TestArrayJSON(t *testing.T) {
	a := host.NewArrayLength(4)
	a.SetIndex(0, 1.0)
	a.SetIndex(2, host.Undefined)
	a.SetIndex(3, host.NewArray("x"))
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `[1,null,null,["x"]]`, string(b))
}

func TestArrayHighIndexIsSparse(t *testing.T) {
	a := host.NewArray("head")
	a.Set("100000000", 1.0)

	assert.Equal(t, 100000001, a.Len())
	assert.Equal(t, 100000001.0, a.Get("length"))
	assert.True(t, a.Has(100000000))
	assert.False(t, a.Has(99999999))
	assert.Equal(t, []host.Value{"head", 1.0}, a.Values())

	a.Set("4294967294", "last")
	assert.Equal(t, 4294967295.0, a.Get("length"))
	assert.Equal(t, "last", a.Get("4294967294"))

	a.SetLength(1)
	assert.Equal(t, []host.Value{"head"}, a.Values())
}

func TestNewArrayMaxLength(t *testing.T) {
	a := host.NewArrayLength(4294967295)
	assert.Equal(t, 4294967295, a.Len())
	assert.Empty(t, a.Values())
}

func TestArrayJoinSelfReference(t *testing.T) {
	a := host.NewArray(1.0)
	a.Push(a)
	assert.Equal(t, "1,", host.ToString(a))

	outer := host.NewArray(a, "x")
	assert.Equal(t, "1,,x", host.ToString(outer))

	// The same array twice at one level is not a cycle.
	inner := host.NewArray(2.0)
	assert.Equal(t, "2,2", host.NewArray(inner, inner).String())
}

func TestArrayJoinHoles(t *testing.T) {
	a := host.NewArrayLength(4)
	a.SetIndex(1, "b")
	a.SetIndex(2, nil)
	assert.Equal(t, ",b,,", a.String())
	assert.Equal(t, "", host.NewArray().String())
}
