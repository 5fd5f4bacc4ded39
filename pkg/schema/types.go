package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// PrimitiveType is the wire type of a single field element.
type PrimitiveType uint8

const (
	Char PrimitiveType = iota + 1
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float
	Double
)

var typeNames = map[PrimitiveType]string{
	Char:   "char",
	Int8:   "int8_t",
	Uint8:  "uint8_t",
	Int16:  "int16_t",
	Uint16: "uint16_t",
	Int32:  "int32_t",
	Uint32: "uint32_t",
	Int64:  "int64_t",
	Uint64: "uint64_t",
	Float:  "float",
	Double: "double",
}

var goTypes = map[PrimitiveType]string{
	Char:   "byte",
	Int8:   "int8",
	Uint8:  "uint8",
	Int16:  "int16",
	Uint16: "uint16",
	Int32:  "int32",
	Uint32: "uint32",
	Int64:  "int64",
	Uint64: "uint64",
	Float:  "float32",
	Double: "float64",
}

// Size returns the element size in bytes.
func (t PrimitiveType) Size() int {
	switch t {
	case Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float:
		return 4
	case Int64, Uint64, Double:
		return 8
	}
	return 0
}

// String returns the MAVLink type name, which is also the name hashed into crcExtra.
func (t PrimitiveType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(t))
}

// GoType returns the Go element type used by generated code.
func (t PrimitiveType) GoType() string {
	return goTypes[t]
}

// Valid reports whether t is a known primitive type.
func (t PrimitiveType) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Signed reports whether t is a signed integer type.
func (t PrimitiveType) Signed() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (t PrimitiveType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid primitive type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PrimitiveType) UnmarshalText(text []byte) error {
	parsed, n, err := ParseType(string(text))
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("array type %q where scalar expected", text)
	}
	*t = parsed
	return nil
}

// ParseType parses a definition type string such as "uint16_t" or "char[50]"
// into its primitive type and array length (1 for scalars).
func ParseType(s string) (PrimitiveType, int, error) {
	s = strings.TrimSpace(s)
	arrayLen := 1

	if open := strings.IndexByte(s, '['); open >= 0 {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, fmt.Errorf("malformed array type %q", s)
		}
		n, err := strconv.Atoi(s[open+1 : len(s)-1])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("invalid array length in %q", s)
		}
		arrayLen = n
		s = s[:open]
	}

	// The heartbeat's version field is a plain uint8_t on the wire.
	if s == "uint8_t_mavlink_version" {
		s = "uint8_t"
	}

	for t, name := range typeNames {
		if name == s {
			return t, arrayLen, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown field type %q", s)
}
