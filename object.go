package loosejson

// Object is an insertion-ordered mapping from string keys to Values, the
// JSON object analog. Keys are unique and compared case-sensitively.
// Iteration and serialization follow insertion order; re-assigning an
// existing key keeps its original position.
type Object struct {
	keys   []string
	values map[string]Value
}

// Entry is a key/value pair for building Objects.
type Entry struct {
	Key   string
	Value any
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// ObjectOf creates an Object pre-populated with the supplied entries, in
// order. Values are converted through ValueOf.
func ObjectOf(entries ...Entry) *Object {
	obj := NewObject()
	for _, e := range entries {
		obj.set(e.Key, ValueOf(e.Value))
	}
	return obj
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Has reports whether key is present, regardless of whether its value is
// null.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// set assigns without conversion; new keys go to the end, existing keys
// keep their position.
func (o *Object) set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *Object) at(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Put associates key with v (converted through ValueOf), returning the
// previous value and whether the key already existed.
func (o *Object) Put(key string, v any) (Value, bool) {
	prev, existed := o.values[key]
	o.set(key, ValueOf(v))
	return prev, existed
}

// PutOnce associates key with v only when the key is absent or its
// current value is null. It returns the current value and whether the key
// already existed.
func (o *Object) PutOnce(key string, v any) (Value, bool) {
	cur, existed := o.values[key]
	if existed && !cur.IsNull() {
		return cur, true
	}
	o.set(key, ValueOf(v))
	return cur, existed
}

// PutOpt associates key with v only when the current value is absent or
// null AND v is non-null; otherwise the current value is left unchanged.
// It returns the current value and whether the key already existed.
func (o *Object) PutOpt(key string, v any) (Value, bool) {
	cur, existed := o.values[key]
	if existed && !cur.IsNull() {
		return cur, true
	}
	if vv := ValueOf(v); !vv.IsNull() {
		o.set(key, vv)
	}
	return cur, existed
}

// Remove deletes key, returning the previous value and whether the key
// existed.
func (o *Object) Remove(key string) (Value, bool) {
	prev, existed := o.values[key]
	if !existed {
		return Value{}, false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return prev, true
}

// Range calls fn for each entry in insertion order until fn returns
// false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Keys returns this Object's keys as an Array, in insertion order.
func (o *Object) Keys() *Array {
	arr := NewArray()
	for _, k := range o.keys {
		arr.items = append(arr.items, ValueOf(k))
	}
	return arr
}

// Values returns this Object's values as an Array, in insertion order,
// discarding the keys.
func (o *Object) Values() *Array {
	arr := NewArray()
	for _, k := range o.keys {
		arr.items = append(arr.items, o.values[k])
	}
	return arr
}

// Get returns the raw value for key, or the null Value when the key is
// absent. Unlike Array.Get, absence is not an error state.
func (o *Object) Get(key string) Value {
	return o.values[key]
}

// GetOr returns the value for key, or the fallback when the key is absent
// or the stored value is null or the empty string.
func (o *Object) GetOr(key string, or Value) Value {
	v, ok := o.at(key)
	return orValue(v, ok, or)
}

// GetBool returns the boolean for key. The fallback (default false)
// applies to absent values only; a stored non-boolean always yields
// false, even when a different fallback was supplied.
func (o *Object) GetBool(key string, or ...bool) bool {
	v, ok := o.at(key)
	return boolOf(v, ok, first(or))
}

// GetInt returns the value for key coerced to int, with 0 as the default
// fallback. Numeric strings such as "42" coerce successfully.
func (o *Object) GetInt(key string, or ...int) int {
	v, ok := o.at(key)
	return intOf(v, ok, first(or))
}

// GetInt64 returns the value for key coerced to int64.
func (o *Object) GetInt64(key string, or ...int64) int64 {
	v, ok := o.at(key)
	return intOf(v, ok, first(or))
}

// GetFloat32 returns the value for key coerced to float32.
func (o *Object) GetFloat32(key string, or ...float32) float32 {
	v, ok := o.at(key)
	return floatOf(v, ok, first(or))
}

// GetFloat64 returns the value for key coerced to float64.
func (o *Object) GetFloat64(key string, or ...float64) float64 {
	v, ok := o.at(key)
	return floatOf(v, ok, first(or))
}

// GetString returns the string form of the value for key, with "" as the
// default fallback.
func (o *Object) GetString(key string, or ...string) string {
	v, ok := o.at(key)
	return stringOf(v, ok, first(or))
}

// GetArray returns the nested Array for key, or the fallback (default: a
// fresh empty Array) when the value has any other shape.
func (o *Object) GetArray(key string, or ...*Array) *Array {
	v, ok := o.at(key)
	return arrayOf(v, ok, firstArray(or))
}

// GetObject returns the nested Object for key, or the fallback (default:
// a fresh empty Object) when the value has any other shape.
func (o *Object) GetObject(key string, or ...*Object) *Object {
	v, ok := o.at(key)
	return objectOf(v, ok, firstObject(or))
}

// Increment replaces a numeric value for key with value+1, with the same
// representation rule as Array.Increment. Absent or non-numeric values
// are left untouched.
func (o *Object) Increment(key string) {
	v, ok := o.at(key)
	if !ok {
		return
	}
	if next, ok := incremented(v); ok {
		o.values[key] = next
	}
}

// Clone creates a shallow copy: a new top-level Object whose values are
// the same Values, so nested containers stay shared with the original.
func (o *Object) Clone() *Object {
	out := NewObject()
	out.keys = make([]string, len(o.keys))
	copy(out.keys, o.keys)
	for k, v := range o.values {
		out.values[k] = v
	}
	return out
}

// DeepClone creates an independent copy by serializing and reparsing the
// Object.
func (o *Object) DeepClone() *Object {
	return Default.ParseObject(o.String())
}

// String serializes the Object through the Default codec.
func (o *Object) String() string {
	return Default.Serialize(Value{kind: KindObject, obj: o})
}

// MarshalJSON serializes the Object preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return Default.appendValue(nil, Value{kind: KindObject, obj: o})
}

// UnmarshalJSON decodes a JSON object into the Object, replacing its
// contents.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Default.DecodeValue(string(data))
	if err != nil {
		return err
	}
	obj, ok := v.AsObject()
	if !ok {
		return NewDecodeError("JSON value is not an object", ErrInvalidJSON)
	}
	o.keys = obj.keys
	o.values = obj.values
	return nil
}

// EnumKey matches the string form of the value for key against the member
// names, case-insensitively. No match, an absent key or an empty member
// set yields the fallback.
func EnumKey[E any](o *Object, key string, members map[string]E, or E) E {
	return enumOf(o.GetString(key), members, or)
}

// TypedKey views the value for key as T without coercion, returning or on
// shape mismatch or absence. T may be bool, int64, float64, string,
// *Array, *Object or Value.
func TypedKey[T any](o *Object, key string, or T) T {
	v, ok := o.at(key)
	if !ok {
		return or
	}
	out, ok := typedValue(v, or)
	if !ok {
		return or
	}
	return out
}
