package loosejson

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
		str  string
	}{
		{name: "nil", in: nil, kind: KindNull, str: "null"},
		{name: "bool", in: true, kind: KindBool, str: "true"},
		{name: "int", in: 42, kind: KindInt, str: "42"},
		{name: "int64", in: int64(-7), kind: KindInt, str: "-7"},
		{name: "uint32", in: uint32(9), kind: KindInt, str: "9"},
		{name: "float64", in: 2.5, kind: KindFloat, str: "2.5"},
		{name: "integral float stays float", in: 3.0, kind: KindFloat, str: "3"},
		{name: "string", in: "hello", kind: KindString, str: "hello"},
		{name: "number integer", in: json.Number("30"), kind: KindInt, str: "30"},
		{name: "number float", in: json.Number("3.14"), kind: KindFloat, str: "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestValueOf_Uint64Overflow(t *testing.T) {
	v := ValueOf(uint64(math.MaxInt64))
	assert.Equal(t, KindInt, v.Kind())

	v = ValueOf(uint64(math.MaxUint64))
	assert.Equal(t, KindFloat, v.Kind(), "values above MaxInt64 become floats instead of wrapping negative")
	f, ok := v.Float64()
	require.True(t, ok)
	assert.Greater(t, f, float64(math.MaxInt64))
}

func TestValueOf_Containers(t *testing.T) {
	arr := ValueOf([]any{1, "two", nil})
	require.Equal(t, KindArray, arr.Kind())
	got, ok := arr.AsArray()
	require.True(t, ok)
	assert.Equal(t, 3, got.Len())

	// Map keys carry no order, so they are inserted sorted.
	obj := ValueOf(map[string]any{"b": 1, "a": 2})
	require.Equal(t, KindObject, obj.Kind())
	o, ok := obj.AsObject()
	require.True(t, ok)
	assert.Equal(t, "a,b", o.Keys().Join(","))

	// An existing container is wrapped, not copied.
	shared := ArrayOf(1, 2)
	v := ValueOf(shared)
	back, ok := v.AsArray()
	require.True(t, ok)
	back.Add(3)
	assert.Equal(t, 3, shared.Len())
}

func TestValueOf_OpaqueRoundTrip(t *testing.T) {
	type address struct {
		City string `json:"city"`
	}
	type user struct {
		Name      string    `json:"name"`
		Age       int       `json:"age"`
		Addresses []address `json:"addresses"`
	}

	v := ValueOf(user{Name: "John", Age: 30, Addresses: []address{{City: "Perth"}}})
	obj, ok := v.AsObject()
	require.True(t, ok, "opaque struct should convert to an Object")
	assert.Equal(t, "John", obj.GetString("name"))
	assert.Equal(t, 30, obj.GetInt("age"))
	assert.Equal(t, "Perth", obj.GetArray("addresses").GetObject(0).GetString("city"))
}

func TestValue_Accessors(t *testing.T) {
	b, ok := ValueOf(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = ValueOf("true").Bool()
	assert.False(t, ok, "string is not a boolean view")

	n, ok := ValueOf(3.9).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(3), n, "float view truncates towards zero")

	f, ok := ValueOf(7).Float64()
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = ValueOf(7).Str()
	assert.False(t, ok, "Str only succeeds for stored strings")

	assert.True(t, Null().IsNull())
	assert.True(t, ValueOf(nil).IsNull())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, ValueOf(2).Equal(ValueOf(int64(2))))
	assert.False(t, ValueOf(2).Equal(ValueOf(2.0)), "kinds must match exactly")
	assert.True(t, ValueOf("x").Equal(ValueOf("x")))
	assert.True(t, Null().Equal(ValueOf(nil)))
	assert.True(t, ValueOf(ArrayOf(1, 2)).Equal(ValueOf(ArrayOf(1, 2))))
	assert.False(t, ValueOf(ArrayOf(1, 2)).Equal(ValueOf(ArrayOf(2, 1))))
}

func TestValue_JSONInterop(t *testing.T) {
	// Containers plug into encoding/json through Marshaler/Unmarshaler.
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":2}`), &obj))
	assert.Equal(t, "z,a", obj.Keys().Join(","))

	out, err := json.Marshal(&obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":2}`, string(out))
}
