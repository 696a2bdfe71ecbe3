package host

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Value is any host value. See the package documentation for how Go types
// map onto host types.
type Value = any

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the host's undefined value. nil is null.
var Undefined Value = undefined{}

// IsUndefined reports whether v is [Undefined].
func IsUndefined(v Value) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNullish reports whether v is null or undefined.
func IsNullish(v Value) bool { return v == nil || IsUndefined(v) }

// IsCallable reports whether v can be called.
func IsCallable(v Value) bool {
	f, ok := v.(*Function)
	return ok && f != nil
}

// TypeOf returns the result of the typeof operator for v.
func TypeOf(v Value) string {
	if _, ok := number(v); ok {
		return "number"
	}
	switch v.(type) {
	case undefined:
		return "undefined"
	case nil:
		return "object"
	case bool:
		return "boolean"
	case string:
		return "string"
	case *Function:
		return "function"
	}
	return "object"
}

// number returns the numeric value of v when v is a Go number.
func number(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Truthy reports whether v converts to true.
func Truthy(v Value) bool {
	if n, ok := number(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	switch x := v.(type) {
	case nil, undefined:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	return true
}

// StrictEquals implements the === operator: no type coercion, NaN is unequal
// to itself, +0 equals -0 and objects compare by identity.
func StrictEquals(a, b Value) bool {
	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x == y
	}
	if _, ok := number(b); ok {
		return false
	}
	switch x := a.(type) {
	case nil:
		return b == nil
	case undefined:
		return IsUndefined(b)
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric conversion
// ─────────────────────────────────────────────────────────────────────────────

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ToNumber converts v to a number.
func ToNumber(v Value) float64 {
	if n, ok := number(v); ok {
		return n
	}
	switch x := v.(type) {
	case nil:
		return 0
	case undefined:
		return math.NaN()
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return stringToNumber(x)
	}
	return math.NaN()
}

func stringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			// Too large for 64 bits but still a valid literal.
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return hexToFloat(s[2:])
			}
			return math.NaN()
		}
		return float64(n)
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat returns ±Inf together with ErrRange on overflow.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

func hexToFloat(digits string) float64 {
	f := 0.0
	for _, c := range digits {
		d, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return math.NaN()
		}
		f = f*16 + float64(d)
	}
	return f
}

// isSpace reports whether r is WhiteSpace or a LineTerminator.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// ToInteger converts v to a number and truncates it toward zero. NaN becomes
// 0; infinities are kept.
func ToInteger(v Value) float64 {
	n := ToNumber(v)
	if math.IsNaN(n) {
		return 0
	}
	return math.Trunc(n)
}

// ToUint32 converts v to an unsigned 32-bit integer with modular wrap-around,
// the conversion behind the length of every array-like.
func ToUint32(v Value) uint32 {
	n := ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(n), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}

// ─────────────────────────────────────────────────────────────────────────────
// String conversion
// ─────────────────────────────────────────────────────────────────────────────

// MaxStringLength bounds the strings produced by converting arrays. Longer
// results are truncated.
const MaxStringLength = 1 << 29

// ToString converts v to its string form. An array that contains itself
// converts the inner reference to "".
func ToString(v Value) string { return toString(v, nil) }

func toString(v Value, seen map[*Array]bool) string {
	if n, ok := number(v); ok {
		return formatNumber(n)
	}
	switch x := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	case *Function:
		return "function " + x.Name() + "() { [native code] }"
	case *Array:
		return x.join(",", seen)
	case *StringObject:
		return x.String()
	case Object:
		return "[object Object]"
	}
	return "[object Object]"
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + string(sign) + exp
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// indexKey returns the property name of array index i.
func indexKey(i uint32) string { return strconv.FormatUint(uint64(i), 10) }

// arrayIndex reports whether key is the canonical name of an array index.
func arrayIndex(key string) (uint32, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}
