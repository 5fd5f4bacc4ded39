package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Definition is a parsed MAVLink XML message definition file.
type Definition struct {
	Name     string
	Includes []string
	Version  int
	Dialect  int
	Messages []MessageDefinition
}

// MessageDefinition is a message as declared in XML.
type MessageDefinition struct {
	ID          uint32
	Name        string
	Description string
	Fields      []FieldDefinition // declaration order
}

// FieldDefinition is a field as declared in XML.
type FieldDefinition struct {
	Name        string
	Type        string
	Units       string
	Enum        string
	Description string
	Extension   bool
}

type xmlMavlink struct {
	Includes []string            `xml:"include"`
	Version  int                 `xml:"version"`
	Dialect  int                 `xml:"dialect"`
	Messages []MessageDefinition `xml:"messages>message"`
}

type xmlField struct {
	Type        string `xml:"type,attr"`
	Name        string `xml:"name,attr"`
	Units       string `xml:"units,attr"`
	Enum        string `xml:"enum,attr"`
	Description string `xml:",chardata"`
}

// UnmarshalXML walks the message children in order so that fields following
// <extensions/> are flagged as extensions.
func (m *MessageDefinition) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			id, err := strconv.ParseUint(attr.Value, 10, 32)
			if err != nil {
				return fmt.Errorf("message id %q: %w", attr.Value, err)
			}
			m.ID = uint32(id)
		case "name":
			m.Name = attr.Value
		}
	}

	extension := false
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "description":
				var desc string
				if err := d.DecodeElement(&desc, &t); err != nil {
					return err
				}
				m.Description = collapse(desc)
			case "extensions":
				extension = true
				if err := d.Skip(); err != nil {
					return err
				}
			case "field":
				var f xmlField
				if err := d.DecodeElement(&f, &t); err != nil {
					return err
				}
				m.Fields = append(m.Fields, FieldDefinition{
					Name:        f.Name,
					Type:        f.Type,
					Units:       f.Units,
					Enum:        f.Enum,
					Description: collapse(f.Description),
					Extension:   extension,
				})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Specs converts the declared fields into layout input.
func (m MessageDefinition) Specs() ([]FieldSpec, error) {
	specs := make([]FieldSpec, 0, len(m.Fields))
	for _, f := range m.Fields {
		t, n, err := ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("message %s field %s: %w", m.Name, f.Name, err)
		}
		specs = append(specs, FieldSpec{Name: f.Name, Type: t, ArrayLen: n, Extension: f.Extension})
	}
	return specs, nil
}

// Schema builds the wire schema for the message.
func (m MessageDefinition) Schema() (*MessageSchema, error) {
	specs, err := m.Specs()
	if err != nil {
		return nil, err
	}
	return Build(m.ID, m.Name, specs)
}

// Schemas builds every message of the definition.
func (d *Definition) Schemas() ([]*MessageSchema, error) {
	out := make([]*MessageSchema, 0, len(d.Messages))
	for _, m := range d.Messages {
		s, err := m.Schema()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Registry builds a registry from every message of the definition.
func (d *Definition) Registry() (*Registry, error) {
	schemas, err := d.Schemas()
	if err != nil {
		return nil, err
	}
	return NewRegistry(schemas...)
}

// ParseDefinition reads a single XML file. Includes are recorded, not followed.
func ParseDefinition(r io.Reader, name string) (*Definition, error) {
	var doc xmlMavlink
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse definition %s: %w", name, err)
	}
	return &Definition{
		Name:     name,
		Includes: doc.Includes,
		Version:  doc.Version,
		Dialect:  doc.Dialect,
		Messages: doc.Messages,
	}, nil
}

// LoadDefinition reads an XML file from disk and merges its includes.
func LoadDefinition(file string) (*Definition, error) {
	dir, base := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	return LoadDefinitionFS(os.DirFS(dir), base)
}

// LoadDefinitionFS reads name from fsys and merges its includes, which are
// resolved relative to the including file. Included messages come first.
func LoadDefinitionFS(fsys fs.FS, name string) (*Definition, error) {
	l := &loader{fsys: fsys, visited: map[string]bool{}, ids: map[uint32]string{}}
	root, err := l.load(name)
	if err != nil {
		return nil, err
	}
	root.Messages = l.messages
	return root, nil
}

type loader struct {
	fsys     fs.FS
	visited  map[string]bool
	ids      map[uint32]string
	messages []MessageDefinition
}

func (l *loader) load(name string) (*Definition, error) {
	name = path.Clean(name)
	if l.visited[name] {
		return nil, nil
	}
	l.visited[name] = true

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()

	def, err := ParseDefinition(f, strings.TrimSuffix(path.Base(name), path.Ext(name)))
	if err != nil {
		return nil, err
	}

	for _, inc := range def.Includes {
		if _, err := l.load(path.Join(path.Dir(name), strings.TrimSpace(inc))); err != nil {
			return nil, err
		}
	}

	for _, m := range def.Messages {
		if prev, ok := l.ids[m.ID]; ok {
			return nil, fmt.Errorf("message id %d defined by both %s and %s", m.ID, prev, m.Name)
		}
		l.ids[m.ID] = m.Name
		l.messages = append(l.messages, m)
	}
	return def, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
