package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ssargent/mavcodec/pkg/schema"
)

// Values holds field values keyed by field name. Canonical values are the
// Go element type of the field (uint8, int16, float32, ...), a slice of it
// for arrays, and a string for char arrays.
type Values map[string]any

// MarshalJSON writes uint8 arrays as lists of numbers rather than base64
// and non-finite floats as the strings "NaN", "+Inf" and "-Inf".
func (v Values) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v))
	for name, x := range v {
		out[name] = jsonValue(x)
	}
	return json.Marshal(out)
}

func jsonValue(v any) any {
	switch x := v.(type) {
	case []uint8:
		out := make([]uint16, len(x))
		for i, b := range x {
			out[i] = uint16(b)
		}
		return out
	case float32:
		if finite(float64(x)) {
			return x
		}
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		if finite(x) {
			return x
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []float32:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = jsonValue(f)
		}
		return out
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = jsonValue(f)
		}
		return out
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Dynamic is a Message driven entirely by its schema.
type Dynamic struct {
	schema *schema.MessageSchema
	values Values
}

// NewDynamic validates values against s and converts them to canonical form.
// Fields not present in values encode as zero.
func NewDynamic(s *schema.MessageSchema, values Values) (*Dynamic, error) {
	canon := make(Values, len(values))
	for name, v := range values {
		f, ok := s.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.Name, name)
		}
		cv, err := Normalize(f, v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.Name, name, err)
		}
		canon[name] = cv
	}
	return &Dynamic{schema: s, values: canon}, nil
}

func (d *Dynamic) Schema() *schema.MessageSchema { return d.schema }

// Values returns the canonical field values.
func (d *Dynamic) Values() Values { return d.values }

func (d *Dynamic) MarshalPayload(p []byte) {
	clear(p)
	for _, f := range d.schema.Fields {
		if v, ok := d.values[f.Name]; ok {
			putValue(p, f, v)
		}
	}
}

func (d *Dynamic) UnmarshalPayload(p []byte) {
	d.values = DecodeValues(d.schema, p)
}

// EncodeValues returns the full-length payload of s carrying values.
func EncodeValues(s *schema.MessageSchema, values Values) ([]byte, error) {
	d, err := NewDynamic(s, values)
	if err != nil {
		return nil, err
	}
	p := make([]byte, s.PayloadLen)
	d.MarshalPayload(p)
	return p, nil
}

// DecodeValues reads every field of s from payload. Short payloads decode
// their missing trailing fields as zero.
func DecodeValues(s *schema.MessageSchema, payload []byte) Values {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = getValue(payload, f)
	}
	return out
}

// ParseValue converts command-line text into a canonical value for f.
// Arrays are comma separated; char arrays take the text verbatim.
func ParseValue(f schema.FieldDescriptor, raw string) (any, error) {
	if f.Type == schema.Char {
		return Normalize(f, raw)
	}
	if f.IsArray() {
		parts := strings.Split(raw, ",")
		items := make([]any, len(parts))
		for i, part := range parts {
			items[i] = strings.TrimSpace(part)
		}
		return Normalize(f, items)
	}
	return Normalize(f, strings.TrimSpace(raw))
}

// Normalize converts v into the canonical Go value for f. Numbers wrap to the
// field width rather than failing a range check.
func Normalize(f schema.FieldDescriptor, v any) (any, error) {
	if f.Type == schema.Char {
		switch x := v.(type) {
		case string:
			if len(x) > f.ArrayLen {
				x = x[:f.ArrayLen]
			}
			return x, nil
		case []byte:
			return Normalize(f, string(x))
		}
		return nil, fmt.Errorf("%w: char field wants a string, got %T", ErrInvalidValue, v)
	}

	if !f.IsArray() {
		return scalar(f.Type, v)
	}

	items, err := toSlice(v)
	if err != nil {
		return nil, err
	}
	if len(items) > f.ArrayLen {
		return nil, fmt.Errorf("%w: %d elements for an array of %d", ErrInvalidValue, len(items), f.ArrayLen)
	}

	switch f.Type {
	case schema.Uint8:
		return array[uint8](items, f.ArrayLen, toInt[uint8])
	case schema.Int8:
		return array[int8](items, f.ArrayLen, toInt[int8])
	case schema.Uint16:
		return array[uint16](items, f.ArrayLen, toInt[uint16])
	case schema.Int16:
		return array[int16](items, f.ArrayLen, toInt[int16])
	case schema.Uint32:
		return array[uint32](items, f.ArrayLen, toInt[uint32])
	case schema.Int32:
		return array[int32](items, f.ArrayLen, toInt[int32])
	case schema.Uint64:
		return array[uint64](items, f.ArrayLen, toInt[uint64])
	case schema.Int64:
		return array[int64](items, f.ArrayLen, toInt[int64])
	case schema.Float:
		return array[float32](items, f.ArrayLen, toFloat[float32])
	case schema.Double:
		return array[float64](items, f.ArrayLen, toFloat[float64])
	}
	return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, f.Type)
}

func scalar(t schema.PrimitiveType, v any) (any, error) {
	switch t {
	case schema.Uint8:
		return toInt[uint8](v)
	case schema.Int8:
		return toInt[int8](v)
	case schema.Uint16:
		return toInt[uint16](v)
	case schema.Int16:
		return toInt[int16](v)
	case schema.Uint32:
		return toInt[uint32](v)
	case schema.Int32:
		return toInt[int32](v)
	case schema.Uint64:
		return toInt[uint64](v)
	case schema.Int64:
		return toInt[int64](v)
	case schema.Float:
		return toFloat[float32](v)
	case schema.Double:
		return toFloat[float64](v)
	}
	return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, t)
}

func toSlice(v any) ([]any, error) {
	switch x := v.(type) {
	case []any:
		return x, nil
	case []uint8:
		return anySlice(x), nil
	case []int8:
		return anySlice(x), nil
	case []uint16:
		return anySlice(x), nil
	case []int16:
		return anySlice(x), nil
	case []uint32:
		return anySlice(x), nil
	case []int32:
		return anySlice(x), nil
	case []uint64:
		return anySlice(x), nil
	case []int64:
		return anySlice(x), nil
	case []int:
		return anySlice(x), nil
	case []float32:
		return anySlice(x), nil
	case []float64:
		return anySlice(x), nil
	}
	return nil, fmt.Errorf("%w: array field wants a list, got %T", ErrInvalidValue, v)
}

func anySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, x := range in {
		out[i] = x
	}
	return out
}

func array[T any](items []any, n int, conv func(any) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i, item := range items {
		x, err := conv(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = x
	}
	return out, nil
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// toInt converts v to T, wrapping values wider than T.
func toInt[T integer](v any) (T, error) {
	switch x := v.(type) {
	case int:
		return T(x), nil
	case int8:
		return T(x), nil
	case int16:
		return T(x), nil
	case int32:
		return T(x), nil
	case int64:
		return T(x), nil
	case uint:
		return T(x), nil
	case uint8:
		return T(x), nil
	case uint16:
		return T(x), nil
	case uint32:
		return T(x), nil
	case uint64:
		return T(x), nil
	case float32:
		return floatToInt[T](float64(x))
	case float64:
		return floatToInt[T](x)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		return toInt[T](x.String())
	case string:
		if i, ok := parseInteger(x); ok {
			return T(i), nil
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return floatToInt[T](f)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, x)
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
}

// parseInteger reads a decimal integer, or hexadecimal with an explicit 0x
// prefix, as its two's complement 64-bit pattern. Leading zeros stay decimal.
func parseInteger(s string) (uint64, bool) {
	neg := false
	digits := s
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	base := 10
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		base = 16
		digits = digits[2:]
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, false
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		if u > 1<<63 {
			return 0, false
		}
		return -u, true
	}
	return u, true
}

func floatToInt[T integer](f float64) (T, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, f)
	}
	f = math.Trunc(f)
	if f >= -(1<<63) && f < 1<<63 {
		return T(int64(f)), nil
	}
	// Beyond int64 every float is a multiple of 2^11, so the reduction
	// modulo 2^64 is exact.
	m := math.Mod(f, 1<<64)
	if m < 0 {
		m += 1 << 64
	}
	return T(uint64(m)), nil
}

func toFloat[T float](v any) (T, error) {
	switch x := v.(type) {
	case float32:
		return T(x), nil
	case float64:
		return T(x), nil
	case json.Number:
		return toFloat[T](x.String())
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, x)
		}
		return T(f), nil
	}
	i, err := toInt[int64](v)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func putValue(p []byte, f schema.FieldDescriptor, v any) {
	off := f.Offset
	switch x := v.(type) {
	case string:
		PutString(p, off, f.ArrayLen, x)
	case uint8:
		PutUint8(p, off, x)
	case int8:
		PutInt8(p, off, x)
	case uint16:
		PutUint16(p, off, x)
	case int16:
		PutInt16(p, off, x)
	case uint32:
		PutUint32(p, off, x)
	case int32:
		PutInt32(p, off, x)
	case uint64:
		PutUint64(p, off, x)
	case int64:
		PutInt64(p, off, x)
	case float32:
		PutFloat32(p, off, x)
	case float64:
		PutFloat64(p, off, x)
	case []uint8:
		PutUint8Array(p, off, x)
	case []int8:
		PutInt8Array(p, off, x)
	case []uint16:
		PutUint16Array(p, off, x)
	case []int16:
		PutInt16Array(p, off, x)
	case []uint32:
		PutUint32Array(p, off, x)
	case []int32:
		PutInt32Array(p, off, x)
	case []uint64:
		PutUint64Array(p, off, x)
	case []int64:
		PutInt64Array(p, off, x)
	case []float32:
		PutFloat32Array(p, off, x)
	case []float64:
		PutFloat64Array(p, off, x)
	default:
		panic(fmt.Sprintf("codec: non-canonical value %T for field %s", v, f.Name))
	}
}

func getValue(p []byte, f schema.FieldDescriptor) any {
	off, n := f.Offset, f.ArrayLen
	if f.Type == schema.Char {
		return String(p, off, n)
	}
	if !f.IsArray() {
		switch f.Type {
		case schema.Uint8:
			return Uint8(p, off)
		case schema.Int8:
			return Int8(p, off)
		case schema.Uint16:
			return Uint16(p, off)
		case schema.Int16:
			return Int16(p, off)
		case schema.Uint32:
			return Uint32(p, off)
		case schema.Int32:
			return Int32(p, off)
		case schema.Uint64:
			return Uint64(p, off)
		case schema.Int64:
			return Int64(p, off)
		case schema.Float:
			return Float32(p, off)
		case schema.Double:
			return Float64(p, off)
		}
		return nil
	}
	switch f.Type {
	case schema.Uint8:
		dst := make([]uint8, n)
		Uint8Array(p, off, dst)
		return dst
	case schema.Int8:
		dst := make([]int8, n)
		Int8Array(p, off, dst)
		return dst
	case schema.Uint16:
		dst := make([]uint16, n)
		Uint16Array(p, off, dst)
		return dst
	case schema.Int16:
		dst := make([]int16, n)
		Int16Array(p, off, dst)
		return dst
	case schema.Uint32:
		dst := make([]uint32, n)
		Uint32Array(p, off, dst)
		return dst
	case schema.Int32:
		dst := make([]int32, n)
		Int32Array(p, off, dst)
		return dst
	case schema.Uint64:
		dst := make([]uint64, n)
		Uint64Array(p, off, dst)
		return dst
	case schema.Int64:
		dst := make([]int64, n)
		Int64Array(p, off, dst)
		return dst
	case schema.Float:
		dst := make([]float32, n)
		Float32Array(p, off, dst)
		return dst
	case schema.Double:
		dst := make([]float64, n)
		Float64Array(p, off, dst)
		return dst
	}
	return nil
}
