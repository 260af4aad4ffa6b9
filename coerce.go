package loosejson

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// The helpers in this file implement the fallback contract shared by Array
// and Object: fetch the raw value, treat absent, null and empty-string
// values as missing, then coerce toward the requested shape and return the
// fallback when coercion cannot succeed.

// usable reports whether a fetched raw value can stand on its own.
// Absent, null and empty-string values all defer to the fallback.
func usable(v Value, present bool) bool {
	if !present || v.kind == KindNull {
		return false
	}
	return v.kind != KindString || v.s != ""
}

// orValue applies the shared fallback rule for untyped access.
func orValue(v Value, present bool, or Value) Value {
	if !usable(v, present) {
		return or
	}
	return v
}

// intOf coerces toward a signed integer width. A numeric view is
// narrowed/widened; anything else has its string form parsed as an
// integer. Failure returns the fallback.
func intOf[T ~int | ~int64](v Value, present bool, or T) T {
	if !usable(v, present) {
		return or
	}
	switch v.kind {
	case KindInt:
		return T(v.n)
	case KindFloat:
		return T(int64(v.f))
	}
	if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
		return T(n)
	}
	return or
}

// floatOf coerces toward a floating-point width, parsing the string form
// when the value is not numeric.
func floatOf[T ~float32 | ~float64](v Value, present bool, or T) T {
	if !usable(v, present) {
		return or
	}
	switch v.kind {
	case KindInt:
		return T(v.n)
	case KindFloat:
		return T(v.f)
	}
	if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
		return T(f)
	}
	return or
}

// boolOf only accepts a literal boolean view. A type mismatch yields
// false regardless of the supplied fallback; the fallback applies to
// absent, null and empty-string values only. This asymmetry is kept for
// compatibility with the behavior this package reproduces.
func boolOf(v Value, present bool, or bool) bool {
	if !usable(v, present) {
		return or
	}
	if b, ok := v.Bool(); ok {
		return b
	}
	return false
}

// stringOf renders the value's native string form, or the fallback for
// absent, null and empty-string values.
func stringOf(v Value, present bool, or string) string {
	if !usable(v, present) {
		return or
	}
	return v.String()
}

// arrayOf accepts a stored Array; any other shape yields the fallback.
func arrayOf(v Value, present bool, or *Array) *Array {
	if !usable(v, present) {
		return or
	}
	if a, ok := v.AsArray(); ok {
		return a
	}
	return or
}

// objectOf accepts a stored Object; any other shape yields the fallback.
func objectOf(v Value, present bool, or *Object) *Object {
	if !usable(v, present) {
		return or
	}
	if o, ok := v.AsObject(); ok {
		return o
	}
	return or
}

// enumOf matches name against the member names. An exact match wins,
// otherwise members are scanned case-insensitively in sorted order so the
// first match is deterministic. No members or no match yields the
// fallback.
func enumOf[E any](name string, members map[string]E, or E) E {
	if len(members) == 0 {
		return or
	}
	if e, ok := members[name]; ok {
		return e
	}
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, name) {
			return members[k]
		}
	}
	return or
}

// incremented returns value+1 for numeric values, keeping the integer
// representation when the integer and floating views agree and switching
// to floating otherwise.
func incremented(v Value) (Value, bool) {
	switch v.kind {
	case KindInt:
		return Value{kind: KindInt, n: v.n + 1}, true
	case KindFloat:
		if !math.IsNaN(v.f) && !math.IsInf(v.f, 0) && v.f == math.Trunc(v.f) {
			return Value{kind: KindInt, n: int64(v.f) + 1}, true
		}
		return Value{kind: KindFloat, f: v.f + 1}, true
	default:
		return Value{}, false
	}
}

// typedValue views v as T without coercion: exact variant matches only.
func typedValue[T any](v Value, or T) (T, bool) {
	switch p := any(&or).(type) {
	case *Value:
		*p = v
	case *bool:
		if v.kind != KindBool {
			return or, false
		}
		*p = v.b
	case *int64:
		if v.kind != KindInt {
			return or, false
		}
		*p = v.n
	case *float64:
		if v.kind != KindFloat {
			return or, false
		}
		*p = v.f
	case *string:
		if v.kind != KindString {
			return or, false
		}
		*p = v.s
	case **Array:
		if v.kind != KindArray {
			return or, false
		}
		*p = v.arr
	case **Object:
		if v.kind != KindObject {
			return or, false
		}
		*p = v.obj
	default:
		return or, false
	}
	return or, true
}

// first unwraps the variadic fallback idiom used by the typed getters:
// zero value when the caller omitted a fallback.
func first[T any](or []T) T {
	if len(or) > 0 {
		return or[0]
	}
	var zero T
	return zero
}

// firstArray is first for nested array getters, defaulting to a fresh
// empty Array.
func firstArray(or []*Array) *Array {
	if len(or) > 0 && or[0] != nil {
		return or[0]
	}
	return NewArray()
}

// firstObject is first for nested object getters, defaulting to a fresh
// empty Object.
func firstObject(or []*Object) *Object {
	if len(or) > 0 && or[0] != nil {
		return or[0]
	}
	return NewObject()
}
