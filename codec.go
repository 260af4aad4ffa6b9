package loosejson

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Codec wraps the external JSON library (json-iterator) used for parsing
// and serialization. Decoding walks the token stream directly so that
// object key order survives the round trip.
type Codec struct {
	api    jsoniter.API
	logger *slog.Logger

	// LogPayloads raises the visibility of offending payloads in decode
	// failure diagnostics from debug to info level.
	LogPayloads bool
}

// NewCodec creates a codec logging diagnostics through the supplied
// logger. A nil logger falls back to slog.Default at log time.
func NewCodec(logger *slog.Logger) *Codec {
	return &Codec{
		api: jsoniter.Config{
			EscapeHTML:  true,
			SortMapKeys: true,
		}.Froze(),
		logger: logger,
	}
}

// Default is the codec used by package-level helpers, Value conversion and
// container serialization.
var Default = NewCodec(nil)

// DecodeValue parses a single JSON value from text. Unlike ParseArray and
// ParseObject it surfaces decode failures to the caller.
func (c *Codec) DecodeValue(text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return Value{}, NewDecodeError("input is empty or contains only whitespace", ErrEmptyInput)
	}
	iter := c.api.BorrowIterator([]byte(text))
	defer c.api.ReturnIterator(iter)

	v := readValue(iter)
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return Value{}, NewDecodeError("failed to decode JSON", iter.Error)
	}
	// Anything besides whitespace after the first value means multiple
	// JSON values at the root. WhatIsNext reports InvalidValue both at a
	// clean end of input (iterator error becomes io.EOF) and on a byte
	// that cannot start a JSON token, so a nil error here means malformed
	// trailing bytes such as "[1]x".
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue {
		return Value{}, NewDecodeError("invalid trailing data after first JSON value", ErrMultipleJSON)
	} else if iter.Error == nil {
		return Value{}, NewDecodeError("malformed trailing data after first JSON value", ErrInvalidJSON)
	}
	return v, nil
}

// ParseArray deserializes text into an Array. Decode failures are never
// returned: the diagnostic is logged and an empty Array comes back, so
// callers wanting to detect failures must watch the log (or use
// DecodeValue).
func (c *Codec) ParseArray(text string) *Array {
	v, err := c.DecodeValue(text)
	if err != nil {
		c.logDecodeFailure(err, text)
		return NewArray()
	}
	arr, ok := v.AsArray()
	if !ok {
		c.logDecodeFailure(NewDecodeError("top-level value is not an array", ErrInvalidJSON), text)
		return NewArray()
	}
	return arr
}

// ParseObject deserializes text into an Object, with the same failure
// policy as ParseArray.
func (c *Codec) ParseObject(text string) *Object {
	v, err := c.DecodeValue(text)
	if err != nil {
		c.logDecodeFailure(err, text)
		return NewObject()
	}
	obj, ok := v.AsObject()
	if !ok {
		c.logDecodeFailure(NewDecodeError("top-level value is not an object", ErrInvalidJSON), text)
		return NewObject()
	}
	return obj
}

// ArrayFrom converts an arbitrary host value into an Array. Strings are
// treated as JSON text and parsed directly; an existing Array is shallow
// copied; anything else round-trips through the serializer. Failures yield
// an empty Array plus a logged diagnostic.
func (c *Codec) ArrayFrom(v any) *Array {
	switch t := v.(type) {
	case nil:
		return NewArray()
	case *Array:
		return t.Clone()
	case string:
		return c.ParseArray(t)
	default:
		text, err := c.api.MarshalToString(v)
		if err != nil {
			c.logDecodeFailure(NewConvertError("cannot serialize host value", err), "")
			return NewArray()
		}
		return c.ParseArray(text)
	}
}

// ObjectFrom converts an arbitrary host value into an Object, with the
// same conversion rules as ArrayFrom.
func (c *Codec) ObjectFrom(v any) *Object {
	switch t := v.(type) {
	case nil:
		return NewObject()
	case *Object:
		return t.Clone()
	case string:
		return c.ParseObject(t)
	default:
		text, err := c.api.MarshalToString(v)
		if err != nil {
			c.logDecodeFailure(NewConvertError("cannot serialize host value", err), "")
			return NewObject()
		}
		return c.ParseObject(text)
	}
}

// Serialize renders a Value as compact JSON text. It is total for values
// built from JSON-compatible input; non-finite floats render as null.
func (c *Codec) Serialize(v Value) string {
	buf, _ := c.appendValue(nil, v)
	return string(buf)
}

// convert round-trips an opaque host value through the serializer,
// producing a container (or scalar) Value. Used by ValueOf for types
// without a direct variant.
func (c *Codec) convert(v any) Value {
	text, err := c.api.MarshalToString(v)
	if err != nil {
		c.logDecodeFailure(NewConvertError("cannot serialize host value", err), "")
		return Value{}
	}
	out, err := c.DecodeValue(text)
	if err != nil {
		c.logDecodeFailure(err, text)
		return Value{}
	}
	return out
}

func (c *Codec) appendValue(buf []byte, v Value) ([]byte, error) {
	stream := c.api.BorrowStream(nil)
	defer c.api.ReturnStream(stream)
	writeValue(stream, v)
	if stream.Error != nil {
		return append(buf, "null"...), stream.Error
	}
	return append(buf, stream.Buffer()...), nil
}

func (c *Codec) logDecodeFailure(err error, payload string) {
	log := c.logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("loosejson: decode failed", "error", err)
	if payload == "" {
		return
	}
	if c.LogPayloads {
		log.Info("loosejson: offending payload", "json", payload)
	} else {
		log.Debug("loosejson: offending payload", "json", payload)
	}
}

// readValue consumes one JSON value from the iterator, wrapping nested
// structures into containers in document order.
func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Value{}
	case jsoniter.BoolValue:
		return Value{kind: KindBool, b: iter.ReadBool()}
	case jsoniter.NumberValue:
		return numberValue(iter.ReadNumber())
	case jsoniter.StringValue:
		return Value{kind: KindString, s: iter.ReadString()}
	case jsoniter.ArrayValue:
		arr := NewArray()
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr.items = append(arr.items, readValue(it))
			return it.Error == nil
		})
		return Value{kind: KindArray, arr: arr}
	case jsoniter.ObjectValue:
		obj := NewObject()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			obj.set(key, readValue(it))
			return it.Error == nil
		})
		return Value{kind: KindObject, obj: obj}
	default:
		if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
			iter.ReportError("readValue", "unexpected token")
		}
		return Value{}
	}
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case KindNull:
		stream.WriteNil()
	case KindBool:
		stream.WriteBool(v.b)
	case KindInt:
		stream.WriteInt64(v.n)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			stream.WriteNil()
			return
		}
		stream.WriteFloat64(v.f)
	case KindString:
		stream.WriteString(v.s)
	case KindArray:
		stream.WriteArrayStart()
		for i, e := range v.arr.items {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, e)
		}
		stream.WriteArrayEnd()
	case KindObject:
		stream.WriteObjectStart()
		for i, k := range v.obj.keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			writeValue(stream, v.obj.values[k])
		}
		stream.WriteObjectEnd()
	}
}

// ParseArray parses text with the Default codec.
func ParseArray(text string) *Array { return Default.ParseArray(text) }

// ParseObject parses text with the Default codec.
func ParseObject(text string) *Object { return Default.ParseObject(text) }

// ArrayFrom converts a host value with the Default codec.
func ArrayFrom(v any) *Array { return Default.ArrayFrom(v) }

// ObjectFrom converts a host value with the Default codec.
func ObjectFrom(v any) *Object { return Default.ObjectFrom(v) }
