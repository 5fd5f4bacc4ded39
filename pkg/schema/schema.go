package schema

import (
	"fmt"
	"sort"

	"github.com/ssargent/mavcodec/pkg/checksum"
)

const (
	// MaxMessageID is the largest id representable in a v2 header.
	MaxMessageID = 1<<24 - 1
	// MaxPayloadLen is the largest payload a frame can carry.
	MaxPayloadLen = 255
)

// FieldSpec describes a field in declaration order, before layout.
type FieldSpec struct {
	Name      string
	Type      PrimitiveType
	ArrayLen  int // 0 or 1 for scalars
	Extension bool
}

// FieldDescriptor is a field placed at its wire offset.
type FieldDescriptor struct {
	Name      string        `json:"name" yaml:"name"`
	Type      PrimitiveType `json:"type" yaml:"type"`
	Offset    int           `json:"offset" yaml:"offset"`
	ArrayLen  int           `json:"array_length" yaml:"array_length"`
	Extension bool          `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// Size returns the number of payload bytes the field occupies.
func (f FieldDescriptor) Size() int {
	return f.Type.Size() * f.arrayLen()
}

// IsArray reports whether the field is a fixed-length array.
func (f FieldDescriptor) IsArray() bool {
	return f.ArrayLen > 1
}

func (f FieldDescriptor) arrayLen() int {
	if f.ArrayLen < 1 {
		return 1
	}
	return f.ArrayLen
}

// MessageSchema is the immutable wire description of one message type.
type MessageSchema struct {
	ID            uint32            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	Fields        []FieldDescriptor `json:"fields" yaml:"fields"` // wire order
	PayloadLen    int               `json:"payload_length" yaml:"payload_length"`
	MinPayloadLen int               `json:"min_payload_length" yaml:"min_payload_length"`
	CRCExtra      uint8             `json:"crc_extra" yaml:"crc_extra"`
}

// Field returns the descriptor with the given name.
func (s *MessageSchema) Field(name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// HasExtensions reports whether the schema has truncatable trailing fields.
func (s *MessageSchema) HasExtensions() bool {
	return s.PayloadLen > s.MinPayloadLen
}

// AcceptsLen reports whether n is a valid received payload length.
func (s *MessageSchema) AcceptsLen(n int) bool {
	return n >= s.MinPayloadLen && n <= s.PayloadLen
}

// Build lays out specs in wire order and derives lengths and crcExtra.
// Base fields are stable-sorted by decreasing element size; extension fields
// follow in declaration order.
func Build(id uint32, name string, specs []FieldSpec) (*MessageSchema, error) {
	if name == "" {
		return nil, fmt.Errorf("message name is required")
	}
	if id > MaxMessageID {
		return nil, fmt.Errorf("message %s: id %d exceeds %d", name, id, MaxMessageID)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("message %s: no fields", name)
	}

	seen := make(map[string]bool, len(specs))
	var base, ext []FieldDescriptor
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("message %s: field name is required", name)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("message %s: duplicate field %q", name, spec.Name)
		}
		seen[spec.Name] = true
		if !spec.Type.Valid() {
			return nil, fmt.Errorf("message %s: field %s has invalid type", name, spec.Name)
		}
		if spec.ArrayLen < 0 || spec.ArrayLen > MaxPayloadLen {
			return nil, fmt.Errorf("message %s: field %s has invalid array length %d", name, spec.Name, spec.ArrayLen)
		}

		fd := FieldDescriptor{
			Name:      spec.Name,
			Type:      spec.Type,
			ArrayLen:  spec.ArrayLen,
			Extension: spec.Extension,
		}
		if fd.ArrayLen == 0 {
			fd.ArrayLen = 1
		}
		if spec.Extension {
			ext = append(ext, fd)
		} else {
			base = append(base, fd)
		}
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("message %s: only extension fields", name)
	}

	sort.SliceStable(base, func(i, j int) bool {
		return base[i].Type.Size() > base[j].Type.Size()
	})

	fields := append(base, ext...)
	offset := 0
	minLen := 0
	for i := range fields {
		fields[i].Offset = offset
		offset += fields[i].Size()
		if !fields[i].Extension {
			minLen = offset
		}
	}
	if offset > MaxPayloadLen {
		return nil, fmt.Errorf("message %s: payload length %d exceeds %d", name, offset, MaxPayloadLen)
	}

	return &MessageSchema{
		ID:            id,
		Name:          name,
		Fields:        fields,
		PayloadLen:    offset,
		MinPayloadLen: minLen,
		CRCExtra:      CRCExtra(name, fields),
	}, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(id uint32, name string, specs []FieldSpec) *MessageSchema {
	s, err := Build(id, name, specs)
	if err != nil {
		panic(err)
	}
	return s
}

// CRCExtra computes the schema seed from the message name and its wire-order
// fields. Extension fields are skipped so appending them keeps the seed stable.
func CRCExtra(name string, fields []FieldDescriptor) uint8 {
	crc := checksum.UpdateString(checksum.Init, name+" ")
	for _, f := range fields {
		if f.Extension {
			continue
		}
		crc = checksum.UpdateString(crc, f.Type.String()+" ")
		crc = checksum.UpdateString(crc, f.Name+" ")
		if f.IsArray() {
			crc = checksum.Accumulate(crc, byte(f.ArrayLen))
		}
	}
	return uint8(crc&0xFF) ^ uint8(crc>>8)
}
