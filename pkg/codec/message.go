package codec

import (
	"fmt"

	"github.com/ssargent/mavcodec/pkg/schema"
)

// Message is a typed record bound to one schema. Generated message types
// implement it with explicit offset reads and writes.
type Message interface {
	// Schema returns the wire description of the message.
	Schema() *schema.MessageSchema
	// MarshalPayload writes every field into p, which is PayloadLen bytes.
	MarshalPayload(p []byte)
	// UnmarshalPayload sets every field from p. p may be shorter than
	// PayloadLen; missing bytes read as zero.
	UnmarshalPayload(p []byte)
}

// Decode fills m from the payload of f.
func Decode(f *Frame, m Message) error {
	s := m.Schema()
	if f.MessageID != s.ID {
		return fmt.Errorf("%w: frame has id %d, %s is %d", ErrMessageMismatch, f.MessageID, s.Name, s.ID)
	}
	m.UnmarshalPayload(f.Payload)
	return nil
}

// Dialect is a set of message schemas plus constructors for the typed
// messages generated from them. Schemas without a constructor decode into
// Dynamic messages.
type Dialect struct {
	schema.Registry

	name      string
	factories map[uint32]func() Message
}

// NewDialect creates an empty dialect.
func NewDialect(name string) *Dialect {
	return &Dialect{name: name, factories: make(map[uint32]func() Message)}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// Register adds a typed message.
func (d *Dialect) Register(factory func() Message) error {
	s := factory().Schema()
	if err := d.Add(s); err != nil {
		return err
	}
	d.factories[s.ID] = factory
	return nil
}

// MustRegister is like Register but panics on error.
func (d *Dialect) MustRegister(factories ...func() Message) {
	for _, f := range factories {
		if err := d.Register(f); err != nil {
			panic(err)
		}
	}
}

// AddSchemas adds schemas that have no generated type, such as those loaded
// from XML at runtime.
func (d *Dialect) AddSchemas(schemas ...*schema.MessageSchema) error {
	for _, s := range schemas {
		if err := d.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Typed reports whether id has a generated message type.
func (d *Dialect) Typed(id uint32) bool {
	_, ok := d.factories[id]
	return ok
}

// New returns an empty message for id.
func (d *Dialect) New(id uint32) (Message, error) {
	if factory, ok := d.factories[id]; ok {
		return factory(), nil
	}
	if s, ok := d.ByID(id); ok {
		return &Dynamic{schema: s}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMessageID, id)
}

// Parse validates one frame against the dialect.
func (d *Dialect) Parse(data []byte) (*Frame, error) {
	return Parse(data, d)
}

// Decode returns the message carried by f.
func (d *Dialect) Decode(f *Frame) (Message, error) {
	m, err := d.New(f.MessageID)
	if err != nil {
		return nil, err
	}
	if err := Decode(f, m); err != nil {
		return nil, err
	}
	return m, nil
}
