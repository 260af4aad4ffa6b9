// Package loosejson provides insertion-ordered JSON containers with typed,
// fallback-based access: Array (a JSON array analog) and Object (a JSON
// object analog) holding dynamically typed Values. Typed getters never fail;
// a lookup that cannot produce a value of the requested shape returns the
// caller-supplied fallback instead.
//
// Containers are plain mutable in-memory structures with no internal
// locking. Concurrent mutation from multiple goroutines must be serialized
// by the caller.
package loosejson

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the JSON-compatible runtime values:
// null, boolean, 64-bit integer, 64-bit float, string, Array and Object.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    int64
	f    float64
	s    string
	arr  *Array
	obj  *Object
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// ValueOf converts an arbitrary Go value into a Value.
//
// nil, booleans, integers, floats, strings, json.Number, *Array, *Object,
// []any and map[string]any map directly onto the corresponding variants
// (map keys are inserted in sorted order since Go maps carry no order).
// A uint64 above math.MaxInt64 does not fit the integer variant and is
// stored as a float, losing precision.
// Any other value is converted by round-tripping it through the Default
// codec's serializer, producing an Object or Array; values that cannot be
// serialized become null.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case *Array:
		if t == nil {
			return Value{}
		}
		return Value{kind: KindArray, arr: t}
	case *Object:
		if t == nil {
			return Value{}
		}
		return Value{kind: KindObject, obj: t}
	case bool:
		return Value{kind: KindBool, b: t}
	case int:
		return Value{kind: KindInt, n: int64(t)}
	case int8:
		return Value{kind: KindInt, n: int64(t)}
	case int16:
		return Value{kind: KindInt, n: int64(t)}
	case int32:
		return Value{kind: KindInt, n: int64(t)}
	case int64:
		return Value{kind: KindInt, n: t}
	case uint:
		return Value{kind: KindInt, n: int64(t)}
	case uint8:
		return Value{kind: KindInt, n: int64(t)}
	case uint16:
		return Value{kind: KindInt, n: int64(t)}
	case uint32:
		return Value{kind: KindInt, n: int64(t)}
	case uint64:
		if t > math.MaxInt64 {
			return Value{kind: KindFloat, f: float64(t)}
		}
		return Value{kind: KindInt, n: int64(t)}
	case float32:
		return Value{kind: KindFloat, f: float64(t)}
	case float64:
		return Value{kind: KindFloat, f: t}
	case string:
		return Value{kind: KindString, s: t}
	case json.Number:
		return numberValue(t)
	case []Value:
		arr := NewArray()
		arr.items = append(arr.items, t...)
		return Value{kind: KindArray, arr: arr}
	case []any:
		arr := NewArray()
		for _, e := range t {
			arr.items = append(arr.items, ValueOf(e))
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.set(k, ValueOf(t[k]))
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return Default.convert(v)
	}
}

// numberValue converts a json.Number, keeping the integer representation
// whenever the token parses as a 64-bit integer.
func numberValue(num json.Number) Value {
	if n, err := num.Int64(); err == nil {
		return Value{kind: KindInt, n: n}
	}
	if f, err := num.Float64(); err == nil {
		return Value{kind: KindFloat, f: f}
	}
	return Value{}
}

// Kind reports the variant stored in the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean view of the value. Only a stored boolean
// succeeds.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int64 returns the integer view of the value. A stored float is
// truncated towards zero.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.n, true
	case KindFloat:
		return int64(v.f), true
	default:
		return 0, false
	}
}

// Float64 returns the floating-point view of the value.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.n), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Str returns the stored string. Non-string values do not succeed; use
// String for the rendered form of any value.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the stored Array.
func (v Value) AsArray() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the stored Object.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// String renders the value's native string form: "null", "true"/"false",
// integers without a decimal point, floats in shortest form, strings
// verbatim (unquoted), and containers as serialized JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		return v.arr.String()
	case KindObject:
		return v.obj.String()
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and contents.
// Kinds must match exactly: an integer 2 is not equal to the float 2.0.
// Containers compare by their serialized form.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.n == other.n
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if v.arr == other.arr {
			return true
		}
		return Default.Serialize(v) == Default.Serialize(other)
	case KindObject:
		if v.obj == other.obj {
			return true
		}
		return Default.Serialize(v) == Default.Serialize(other)
	default:
		return false
	}
}

// MarshalJSON serializes the value through the Default codec.
func (v Value) MarshalJSON() ([]byte, error) {
	return Default.appendValue(nil, v)
}

// UnmarshalJSON decodes a JSON value, preserving object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Default.DecodeValue(string(data))
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
