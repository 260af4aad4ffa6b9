package loosejson

import (
	"strings"
)

// Array is an insertion-ordered, index-addressable sequence of Values, the
// JSON array analog. Indices are 0-based and contiguous, insertion order is
// preserved across all non-removing mutations and elements may repeat.
type Array struct {
	items []Value
}

// NewArray creates an empty Array.
func NewArray() *Array {
	return &Array{}
}

// ArrayOf creates an Array pre-populated with the supplied entries, each
// converted through ValueOf.
func ArrayOf(items ...any) *Array {
	arr := NewArray()
	arr.Add(items...)
	return arr
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// Add appends entries, converting each through ValueOf.
func (a *Array) Add(items ...any) {
	for _, it := range items {
		a.items = append(a.items, ValueOf(it))
	}
}

// Insert places v at index i, shifting later elements right. Out-of-range
// indices clamp to the nearest end.
func (a *Array) Insert(i int, v any) {
	if i < 0 {
		i = 0
	}
	if i > len(a.items) {
		i = len(a.items)
	}
	a.items = append(a.items, Value{})
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = ValueOf(v)
}

// Set replaces the element at i, reporting whether i was in range.
func (a *Array) Set(i int, v any) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i] = ValueOf(v)
	return true
}

// Values returns a copy of the element slice, in order. Nested containers
// stay shared with the Array.
func (a *Array) Values() []Value {
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}

// Range calls fn for each element in order until fn returns false.
func (a *Array) Range(fn func(i int, v Value) bool) {
	for i, v := range a.items {
		if !fn(i, v) {
			return
		}
	}
}

func (a *Array) at(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return Value{}, false
	}
	return a.items[i], true
}

// Get returns the raw value at i, or an index error when i is out of
// range. This is the only accessor that can fail; every other getter
// falls back instead.
func (a *Array) Get(i int) (Value, error) {
	v, ok := a.at(i)
	if !ok {
		return Value{}, NewIndexError(i, len(a.items))
	}
	return v, nil
}

// GetOr returns the value at i, or the fallback when i is out of range or
// the stored value is null or the empty string.
func (a *Array) GetOr(i int, or Value) Value {
	v, ok := a.at(i)
	return orValue(v, ok, or)
}

// GetBool returns the boolean at i. The fallback (default false) applies
// to absent values only; a stored non-boolean always yields false, even
// when a different fallback was supplied.
func (a *Array) GetBool(i int, or ...bool) bool {
	v, ok := a.at(i)
	return boolOf(v, ok, first(or))
}

// GetInt returns the value at i coerced to int, with 0 as the default
// fallback. Numeric strings such as "42" coerce successfully.
func (a *Array) GetInt(i int, or ...int) int {
	v, ok := a.at(i)
	return intOf(v, ok, first(or))
}

// GetInt64 returns the value at i coerced to int64.
func (a *Array) GetInt64(i int, or ...int64) int64 {
	v, ok := a.at(i)
	return intOf(v, ok, first(or))
}

// GetFloat32 returns the value at i coerced to float32.
func (a *Array) GetFloat32(i int, or ...float32) float32 {
	v, ok := a.at(i)
	return floatOf(v, ok, first(or))
}

// GetFloat64 returns the value at i coerced to float64.
func (a *Array) GetFloat64(i int, or ...float64) float64 {
	v, ok := a.at(i)
	return floatOf(v, ok, first(or))
}

// GetString returns the string form of the value at i, with "" as the
// default fallback. Non-string scalars render their native string form.
func (a *Array) GetString(i int, or ...string) string {
	v, ok := a.at(i)
	return stringOf(v, ok, first(or))
}

// GetArray returns the nested Array at i, or the fallback (default: a
// fresh empty Array) when the value has any other shape.
func (a *Array) GetArray(i int, or ...*Array) *Array {
	v, ok := a.at(i)
	return arrayOf(v, ok, firstArray(or))
}

// GetObject returns the nested Object at i, or the fallback (default: a
// fresh empty Object) when the value has any other shape.
func (a *Array) GetObject(i int, or ...*Object) *Object {
	v, ok := a.at(i)
	return objectOf(v, ok, firstObject(or))
}

// Increment replaces a numeric value at i with value+1. The result stays
// an integer when the integer and floating views agree, and becomes a
// float otherwise. Absent or non-numeric values are left untouched.
func (a *Array) Increment(i int) {
	v, ok := a.at(i)
	if !ok {
		return
	}
	if next, ok := incremented(v); ok {
		a.items[i] = next
	}
}

// Join concatenates the string form of every element with sep between
// them, in order.
func (a *Array) Join(sep string) string {
	var sb strings.Builder
	for i, v := range a.items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

// RemoveAt removes and returns the element at i, with wraparound: a
// negative index counts from the end (RemoveAt(-1) removes the last
// element) and an index beyond the length wraps via modulo. Removing from
// an empty Array reports false.
func (a *Array) RemoveAt(i int) (Value, bool) {
	n := len(a.items)
	if n == 0 {
		return Value{}, false
	}
	i = ((i % n) + n) % n
	v := a.items[i]
	a.items = append(a.items[:i], a.items[i+1:]...)
	return v, true
}

// Remove removes the first element equal to v, reporting whether anything
// was removed. Equality is kind-strict (see Value.Equal).
func (a *Array) Remove(v any) bool {
	target := ValueOf(v)
	for i, e := range a.items {
		if e.Equal(target) {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return true
		}
	}
	return false
}

// ToObject zips this Array's values with the string form of keys,
// positionally. The iteration is bounded by keys, so an error is returned
// when keys is longer than this Array.
func (a *Array) ToObject(keys *Array) (*Object, error) {
	out := NewObject()
	for i := 0; i < keys.Len(); i++ {
		v, err := a.Get(i)
		if err != nil {
			return nil, err
		}
		out.set(keys.GetString(i), v)
	}
	return out, nil
}

// Clone creates a shallow copy: a new top-level Array whose elements are
// the same Values, so nested containers stay shared with the original.
func (a *Array) Clone() *Array {
	items := make([]Value, len(a.items))
	copy(items, a.items)
	return &Array{items: items}
}

// DeepClone creates an independent copy by serializing and reparsing the
// Array.
func (a *Array) DeepClone() *Array {
	return Default.ParseArray(a.String())
}

// String serializes the Array through the Default codec.
func (a *Array) String() string {
	return Default.Serialize(Value{kind: KindArray, arr: a})
}

// MarshalJSON serializes the Array preserving element order.
func (a *Array) MarshalJSON() ([]byte, error) {
	return Default.appendValue(nil, Value{kind: KindArray, arr: a})
}

// UnmarshalJSON decodes a JSON array into the Array, replacing its
// contents.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := Default.DecodeValue(string(data))
	if err != nil {
		return err
	}
	arr, ok := v.AsArray()
	if !ok {
		return NewDecodeError("JSON value is not an array", ErrInvalidJSON)
	}
	a.items = arr.items
	return nil
}

// EnumAt matches the string form of the element at i against the member
// names, case-insensitively. No match, an out-of-range index or an empty
// member set yields the fallback.
func EnumAt[E any](a *Array, i int, members map[string]E, or E) E {
	return enumOf(a.GetString(i), members, or)
}

// TypedAt views the element at i as T without coercion, returning or on
// shape mismatch or out-of-range. T may be bool, int64, float64, string,
// *Array, *Object or Value.
func TypedAt[T any](a *Array, i int, or T) T {
	v, ok := a.at(i)
	if !ok {
		return or
	}
	out, ok := typedValue(v, or)
	if !ok {
		return or
	}
	return out
}
