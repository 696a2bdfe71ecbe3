package host_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-nfallback/host"
)

func TestIsNullish(t *testing.T) {
	assert.True(t, host.IsNullish(nil))
	assert.True(t, host.IsNullish(host.Undefined))
	assert.False(t, host.IsNullish(0.0))
	assert.False(t, host.IsNullish(""))
	assert.False(t, host.IsNullish(false))
}

func TestTypeOf(t *testing.T) {
	fn := host.NewFunction("f", func(host.Value, ...host.Value) (host.Value, error) { return host.Undefined, nil })
	cases := map[string]host.Value{
		"undefined": host.Undefined,
		"boolean":   true,
		"number":    3,
		"string":    "s",
		"function":  fn,
	}
	for want, v := range cases {
		assert.Equal(t, want, host.TypeOf(v))
	}
	assert.Equal(t, "object", host.TypeOf(nil))
	assert.Equal(t, "object", host.TypeOf(host.NewArray()))
}

func TestTruthy(t *testing.T) {
	falsy := []host.Value{nil, host.Undefined, false, 0.0, 0, math.NaN(), ""}
	for _, v := range falsy {
		assert.False(t, host.Truthy(v), "%#v should be falsy", v)
	}
	truthy := []host.Value{true, 1.0, -1, "0", host.NewArray(), host.NewObject(nil)}
	for _, v := range truthy {
		assert.True(t, host.Truthy(v), "%#v should be truthy", v)
	}
}

func TestStrictEquals(t *testing.T) {
	a := host.NewArray()
	assert.True(t, host.StrictEquals(1, 1.0), "numbers compare across Go kinds")
	assert.True(t, host.StrictEquals(0.0, math.Copysign(0, -1)), "+0 === -0")
	assert.False(t, host.StrictEquals(math.NaN(), math.NaN()))
	assert.False(t, host.StrictEquals(1.0, "1"), "no coercion")
	assert.False(t, host.StrictEquals(nil, host.Undefined))
	assert.True(t, host.StrictEquals(nil, nil))
	assert.True(t, host.StrictEquals(host.Undefined, host.Undefined))
	assert.True(t, host.StrictEquals("a", "a"))
	assert.False(t, host.StrictEquals(true, 1.0))
	assert.True(t, host.StrictEquals(a, a))
	assert.False(t, host.StrictEquals(a, host.NewArray()), "objects compare by identity")
	assert.False(t, host.StrictEquals([]int{1}, []int{1}), "uncomparable values never match")
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   host.Value
		want float64
	}{
		{nil, 0},
		{true, 1},
		{false, 0},
		{"", 0},
		{"  42  ", 42},
		{" \n1.5\t", 1.5},
		{"-7", -7},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"0x1F", 31},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{int64(9), 9},
		{uint8(3), 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, host.ToNumber(tt.in), "ToNumber(%#v)", tt.in)
	}

	nan := []host.Value{host.Undefined, "abc", "1_000", "inf", "NaN", "0x", "-0x10", "0x1p3", "1e", host.NewObject(nil)}
	for _, v := range nan {
		assert.True(t, math.IsNaN(host.ToNumber(v)), "ToNumber(%#v) should be NaN", v)
	}
}

func TestToInteger(t *testing.T) {
	assert.Equal(t, 0.0, host.ToInteger(host.Undefined))
	assert.Equal(t, 2.0, host.ToInteger(2.9))
	assert.Equal(t, -2.0, host.ToInteger(-2.9))
	assert.Equal(t, 3.0, host.ToInteger("3.7"))
	assert.True(t, math.IsInf(host.ToInteger(math.Inf(-1)), -1))
}

func TestToUint32(t *testing.T) {
	tests := []struct {
		in   host.Value
		want uint32
	}{
		{5, 5},
		{5.9, 5},
		{-1, math.MaxUint32},
		{float64(1 << 32), 0},
		{float64(1<<32 + 3), 3},
		{math.Inf(1), 0},
		{math.NaN(), 0},
		{host.Undefined, 0},
		{"7", 7},
		{true, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, host.ToUint32(tt.in), "ToUint32(%#v)", tt.in)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   host.Value
		want string
	}{
		{nil, "null"},
		{host.Undefined, "undefined"},
		{true, "true"},
		{1.0, "1"},
		{-0.0, "0"},
		{1.5, "1.5"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{123456789.0, "123456789"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
		{"s", "s"},
		{host.NewArray(1.0, nil, "x"), "1,,x"},
		{host.NewObject(nil), "[object Object]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, host.ToString(tt.in), "ToString(%#v)", tt.in)
	}
}
