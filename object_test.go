package loosejson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_GetAndOrder(t *testing.T) {
	obj := ParseObject(`{"z": 1, "a": "two", "m": null}`)

	assert.Equal(t, "1", obj.Get("z").String())
	assert.True(t, obj.Get("m").IsNull())
	assert.True(t, obj.Get("missing").IsNull(), "absence is not an error state")

	assert.Equal(t, "z,a,m", obj.Keys().Join(","), "insertion order is preserved")
	assert.Equal(t, "1,two,null", obj.Values().Join(","))
}

func TestObject_GetOr(t *testing.T) {
	obj := ObjectOf(
		Entry{"empty", ""},
		Entry{"null", nil},
		Entry{"set", 5},
	)
	or := ValueOf("fallback")

	assert.Equal(t, "5", obj.GetOr("set", or).String())
	assert.Equal(t, "fallback", obj.GetOr("empty", or).String(), "empty string counts as absent")
	assert.Equal(t, "fallback", obj.GetOr("null", or).String())
	assert.Equal(t, "fallback", obj.GetOr("missing", or).String())
}

func TestObject_TypedGetters(t *testing.T) {
	obj := ParseObject(`{"n": 42, "s": "42", "bad": "abc", "f": 3.5, "b": true, "sb": "true"}`)

	assert.Equal(t, 42, obj.GetInt("n"))
	assert.Equal(t, 42, obj.GetInt("s"), "numeric strings coerce")
	assert.Equal(t, 7, obj.GetInt("bad", 7))
	assert.Equal(t, 7, obj.GetInt("missing", 7))
	assert.Equal(t, int64(42), obj.GetInt64("n"))
	assert.Equal(t, 3.5, obj.GetFloat64("f"))
	assert.Equal(t, float32(3.5), obj.GetFloat32("f"))

	assert.True(t, obj.GetBool("b"))
	assert.False(t, obj.GetBool("sb", true), `a stored string "true" is a cast failure, which always yields false`)
	assert.True(t, obj.GetBool("missing", true), "absence defers to the fallback")

	assert.Equal(t, "42", obj.GetString("n"))
	assert.Equal(t, "or", obj.GetString("missing", "or"))
}

func TestObject_NestedGetters(t *testing.T) {
	obj := ParseObject(`{"arr": [1, 2], "obj": {"a": 1}, "s": "x"}`)

	assert.Equal(t, 2, obj.GetArray("arr").Len())
	assert.Equal(t, 1, obj.GetObject("obj").GetInt("a"))
	assert.Equal(t, 0, obj.GetArray("s").Len(), "mismatch yields an empty array")
	assert.Equal(t, 0, obj.GetObject("missing").Len())

	or := ObjectOf(Entry{"d", 1})
	assert.Same(t, or, obj.GetObject("s", or))
}

func TestObject_Put(t *testing.T) {
	obj := NewObject()

	prev, existed := obj.Put("k", 1)
	assert.False(t, existed)
	assert.True(t, prev.IsNull())

	prev, existed = obj.Put("k", 2)
	assert.True(t, existed)
	assert.Equal(t, "1", prev.String())
	assert.Equal(t, 2, obj.GetInt("k"))

	// Re-assigning does not move the key's position.
	obj.Put("later", true)
	obj.Put("k", 3)
	assert.Equal(t, "k,later", obj.Keys().Join(","))
}

func TestObject_HasWithNullValue(t *testing.T) {
	obj := NewObject()
	obj.Put("k", nil)

	assert.True(t, obj.Has("k"), "presence, not non-nullness, is tested")
	assert.True(t, obj.Get("k").IsNull())
	assert.False(t, obj.Has("missing"))
}

func TestObject_PutOnce(t *testing.T) {
	obj := ObjectOf(Entry{"set", 1}, Entry{"null", nil})

	_, existed := obj.PutOnce("set", 99)
	assert.True(t, existed)
	assert.Equal(t, 1, obj.GetInt("set"), "existing non-null value is kept")

	obj.PutOnce("null", 2)
	assert.Equal(t, 2, obj.GetInt("null"), "stored null is overwritten")

	obj.PutOnce("new", 3)
	assert.Equal(t, 3, obj.GetInt("new"))
}

func TestObject_PutOpt(t *testing.T) {
	obj := ObjectOf(Entry{"set", 1})

	obj.PutOpt("set", 99)
	assert.Equal(t, 1, obj.GetInt("set"), "existing non-null value is kept")

	obj.PutOpt("new", nil)
	assert.False(t, obj.Has("new"), "a null value is never assigned")

	obj.PutOpt("new", 2)
	assert.Equal(t, 2, obj.GetInt("new"))

	obj.Put("null", nil)
	obj.PutOpt("null", 3)
	assert.Equal(t, 3, obj.GetInt("null"), "stored null is replaced by a non-null value")
}

func TestObject_Remove(t *testing.T) {
	obj := ParseObject(`{"a": 1, "b": 2, "c": 3}`)

	prev, existed := obj.Remove("b")
	require.True(t, existed)
	assert.Equal(t, "2", prev.String())
	assert.Equal(t, "a,c", obj.Keys().Join(","))

	_, existed = obj.Remove("missing")
	assert.False(t, existed)
}

func TestObject_Increment(t *testing.T) {
	obj := ParseObject(`{"i": 1, "f": 3.14, "s": "x"}`)

	obj.Increment("i")
	assert.Equal(t, int64(2), TypedKey(obj, "i", int64(0)))

	obj.Increment("f")
	assert.InDelta(t, 4.14, obj.GetFloat64("f"), 1e-9)

	obj.Increment("s")
	assert.Equal(t, "x", obj.GetString("s"), "non-numeric is a no-op")

	obj.Increment("missing") // no-op, must not panic
	assert.False(t, obj.Has("missing"))
}

func TestObject_Clone(t *testing.T) {
	obj := ParseObject(`{"a": 1, "nested": {"b": 2}}`)

	shallow := obj.Clone()
	shallow.Put("c", 3)
	assert.False(t, obj.Has("c"), "top level is independent")
	shallow.GetObject("nested").Put("x", 9)
	assert.True(t, obj.GetObject("nested").Has("x"), "nested containers are shared")

	obj = ParseObject(`{"a": 1, "nested": {"b": 2}}`)
	deep := obj.DeepClone()
	deep.GetObject("nested").Put("x", 9)
	assert.False(t, obj.GetObject("nested").Has("x"), "deep clone shares nothing")
	assert.Equal(t, obj.Keys().Join(","), deep.Keys().Join(","), "order survives the round trip")
}

func TestObject_Range(t *testing.T) {
	obj := ParseObject(`{"a": 1, "b": 2, "c": 3}`)

	var keys []string
	obj.Range(func(k string, _ Value) bool {
		keys = append(keys, k)
		return len(keys) < 2
	})
	assert.Equal(t, []string{"a", "b"}, keys, "Range stops when fn returns false")
}

func TestEnumKey(t *testing.T) {
	type level int
	levels := map[string]level{"Low": 1, "High": 2}
	obj := ObjectOf(Entry{"lvl", "HIGH"}, Entry{"bad", "nope"})

	assert.Equal(t, level(2), EnumKey(obj, "lvl", levels, level(-1)))
	assert.Equal(t, level(-1), EnumKey(obj, "bad", levels, level(-1)))
	assert.Equal(t, level(-1), EnumKey(obj, "missing", levels, level(-1)))
}

func TestEnumOf_ExactMatchWins(t *testing.T) {
	members := map[string]int{"Red": 1, "RED": 2}
	obj := ObjectOf(Entry{"c", "RED"})

	assert.Equal(t, 2, EnumKey(obj, "c", members, -1), "exact match takes precedence")
}

func TestTypedKey(t *testing.T) {
	obj := ParseObject(`{"n": 42, "s": "42"}`)

	assert.Equal(t, int64(42), TypedKey(obj, "n", int64(-1)))
	assert.Equal(t, int64(-1), TypedKey(obj, "s", int64(-1)), "no coercion")
	v := TypedKey(obj, "n", Null())
	assert.Equal(t, KindInt, v.Kind(), "Value passes through")
}
