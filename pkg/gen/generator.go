// Package gen turns MAVLink XML definitions into typed Go message code.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/ssargent/mavcodec/pkg/schema"
)

const (
	codecImport  = "github.com/ssargent/mavcodec/pkg/codec"
	schemaImport = "github.com/ssargent/mavcodec/pkg/schema"
	commentWidth = 77
)

// Options controls code generation.
type Options struct {
	Package string // Go package name of the output
	Source  string // definition file named in the header
}

// CodeBuilder accumulates indented source lines.
type CodeBuilder struct {
	buf    bytes.Buffer
	indent int
}

func (b *CodeBuilder) P(format string, args ...interface{}) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("\t")
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteString("\n")
}

func (b *CodeBuilder) In()  { b.indent++ }
func (b *CodeBuilder) Out() { b.indent-- }

func (b *CodeBuilder) Bytes() ([]byte, error) {
	return format.Source(b.buf.Bytes())
}

// Comment writes text as wrapped line comments.
func (b *CodeBuilder) Comment(text string) {
	for _, line := range wrap(text, commentWidth) {
		b.P("// %s", line)
	}
}

type message struct {
	def    schema.MessageDefinition
	schema *schema.MessageSchema
	goName string
	fields []field // declaration order
}

type field struct {
	def    schema.FieldDefinition
	desc   schema.FieldDescriptor
	goName string
	param  string
}

// Generate renders every message of def as Go source.
func Generate(def *schema.Definition, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(def.Messages) == 0 {
		return nil, fmt.Errorf("definition %s has no messages", def.Name)
	}

	msgs := make([]message, 0, len(def.Messages))
	for _, md := range def.Messages {
		m, err := newMessage(md)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	g := &CodeBuilder{}
	source := opts.Source
	if source == "" {
		source = def.Name + ".xml"
	}
	g.P("// Code generated by mavcodec gen from %s. DO NOT EDIT.", source)
	g.P("")
	g.P("package %s", opts.Package)
	g.P("")
	g.P("import (")
	g.In()
	g.P("%q", codecImport)
	g.P("%q", schemaImport)
	g.Out()
	g.P(")")
	g.P("")

	g.P("// Messages returns constructors for every message in this file.")
	g.P("func Messages() []func() codec.Message {")
	g.In()
	g.P("return []func() codec.Message{")
	g.In()
	for _, m := range msgs {
		g.P("func() codec.Message { return new(%s) },", m.goName)
	}
	g.Out()
	g.P("}")
	g.Out()
	g.P("}")

	for _, m := range msgs {
		g.P("")
		generateMessage(g, m)
	}

	return g.Bytes()
}

func newMessage(md schema.MessageDefinition) (message, error) {
	s, err := md.Schema()
	if err != nil {
		return message{}, err
	}
	m := message{def: md, schema: s, goName: GoName(md.Name)}
	for _, fd := range md.Fields {
		desc, _ := s.Field(fd.Name)
		m.fields = append(m.fields, field{
			def:    fd,
			desc:   desc,
			goName: GoName(fd.Name),
			param:  paramName(fd.Name),
		})
	}
	return m, nil
}

func generateMessage(g *CodeBuilder, m message) {
	n := m.goName
	s := m.schema

	g.P("const (")
	g.In()
	g.P("%sID = %d", n, s.ID)
	g.P("%sLen = %d", n, s.PayloadLen)
	g.P("%sMinLen = %d", n, s.MinPayloadLen)
	g.P("%sCRCExtra = %d", n, s.CRCExtra)
	g.Out()
	g.P(")")
	g.P("")

	g.P("// %sSchema describes %s on the wire.", n, s.Name)
	g.P("var %sSchema = &schema.MessageSchema{", n)
	g.In()
	g.P("ID: %sID,", n)
	g.P("Name: %q,", s.Name)
	g.P("PayloadLen: %sLen,", n)
	g.P("MinPayloadLen: %sMinLen,", n)
	g.P("CRCExtra: %sCRCExtra,", n)
	g.P("Fields: []schema.FieldDescriptor{")
	g.In()
	for _, f := range s.Fields {
		ext := ""
		if f.Extension {
			ext = ", Extension: true"
		}
		g.P("{Name: %q, Type: schema.%s, Offset: %d, ArrayLen: %d%s},", f.Name, typeConst(f.Type), f.Offset, f.ArrayLen, ext)
	}
	g.Out()
	g.P("},")
	g.Out()
	g.P("}")
	g.P("")

	doc := fmt.Sprintf("%s is the %s message.", n, s.Name)
	if m.def.Description != "" {
		doc += " " + m.def.Description
	}
	g.Comment(doc)
	g.P("type %s struct {", n)
	g.In()
	for _, f := range m.fields {
		g.P("%s %s // %s", f.goName, goType(f.desc), fieldComment(f.def))
	}
	g.Out()
	g.P("}")
	g.P("")

	g.P("// Schema implements codec.Message.")
	g.P("func (*%s) Schema() *schema.MessageSchema { return %sSchema }", n, n)
	g.P("")

	g.P("// MarshalPayload implements codec.Message.")
	g.P("func (m *%s) MarshalPayload(p []byte) {", n)
	g.In()
	for _, f := range wireOrder(m) {
		g.P("%s", putStmt(f))
	}
	g.Out()
	g.P("}")
	g.P("")

	g.P("// UnmarshalPayload implements codec.Message.")
	g.P("func (m *%s) UnmarshalPayload(p []byte) {", n)
	g.In()
	for _, f := range wireOrder(m) {
		g.P("%s", getStmt(f, "m."+f.goName, "p"))
	}
	g.Out()
	g.P("}")
	g.P("")

	params := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		params = append(params, fmt.Sprintf("%s %s", f.param, goType(f.desc)))
	}
	g.P("// Pack%s packs a %s frame into out and returns its length.", n, s.Name)
	g.P("func Pack%s(ch *codec.Channel, systemID, componentID uint8, out []byte, %s) int {", n, strings.Join(params, ", "))
	g.In()
	g.P("m := %s{", n)
	g.In()
	for _, f := range m.fields {
		g.P("%s: %s,", f.goName, f.param)
	}
	g.Out()
	g.P("}")
	g.P("return ch.Pack(systemID, componentID, out, &m)")
	g.Out()
	g.P("}")
	g.P("")

	g.P("// Decode%s returns the %s carried by f.", n, s.Name)
	g.P("func Decode%s(f *codec.Frame) %s {", n, n)
	g.In()
	g.P("var m %s", n)
	g.P("m.UnmarshalPayload(f.Payload)")
	g.P("return m")
	g.Out()
	g.P("}")

	for _, f := range m.fields {
		getter := n + f.goName
		if generatedSuffixes[f.goName] {
			getter += "Field"
		}
		g.P("")
		g.P("// %s reads %s from f without decoding the whole message.", getter, f.def.Name)
		if f.desc.IsArray() && f.desc.Type != schema.Char {
			g.P("func %s(f *codec.Frame) (v %s) {", getter, goType(f.desc))
			g.In()
			g.P("%s", getStmt(f, "v", "f.Payload"))
			g.P("return v")
		} else {
			g.P("func %s(f *codec.Frame) %s {", getter, goType(f.desc))
			g.In()
			g.P("return %s", readExpr(f.desc, "f.Payload"))
		}
		g.Out()
		g.P("}")
	}
}

// generatedSuffixes are the per-message identifiers a field getter must not
// shadow.
var generatedSuffixes = map[string]bool{
	"ID":       true,
	"Len":      true,
	"MinLen":   true,
	"CRCExtra": true,
	"Schema":   true,
}

func wireOrder(m message) []field {
	byName := make(map[string]field, len(m.fields))
	for _, f := range m.fields {
		byName[f.def.Name] = f
	}
	out := make([]field, 0, len(m.fields))
	for _, d := range m.schema.Fields {
		out = append(out, byName[d.Name])
	}
	return out
}

func putStmt(f field) string {
	d := f.desc
	switch {
	case d.Type == schema.Char:
		return fmt.Sprintf("codec.PutString(p, %d, %d, m.%s)", d.Offset, d.ArrayLen, f.goName)
	case d.IsArray():
		return fmt.Sprintf("codec.Put%sArray(p, %d, m.%s[:])", accessor(d.Type), d.Offset, f.goName)
	}
	return fmt.Sprintf("codec.Put%s(p, %d, m.%s)", accessor(d.Type), d.Offset, f.goName)
}

func getStmt(f field, dst, buf string) string {
	d := f.desc
	if d.IsArray() && d.Type != schema.Char {
		return fmt.Sprintf("codec.%sArray(%s, %d, %s[:])", accessor(d.Type), buf, d.Offset, dst)
	}
	return fmt.Sprintf("%s = %s", dst, readExpr(d, buf))
}

func readExpr(d schema.FieldDescriptor, buf string) string {
	if d.Type == schema.Char {
		return fmt.Sprintf("codec.String(%s, %d, %d)", buf, d.Offset, d.ArrayLen)
	}
	return fmt.Sprintf("codec.%s(%s, %d)", accessor(d.Type), buf, d.Offset)
}

func goType(d schema.FieldDescriptor) string {
	if d.Type == schema.Char {
		return "string"
	}
	if d.IsArray() {
		return fmt.Sprintf("[%d]%s", d.ArrayLen, d.Type.GoType())
	}
	return d.Type.GoType()
}

// accessor names the codec read/write helpers for t.
func accessor(t schema.PrimitiveType) string {
	switch t {
	case schema.Float:
		return "Float32"
	case schema.Double:
		return "Float64"
	}
	return GoName(strings.TrimSuffix(t.String(), "_t"))
}

func typeConst(t schema.PrimitiveType) string {
	return GoName(strings.TrimSuffix(t.String(), "_t"))
}

func fieldComment(fd schema.FieldDefinition) string {
	c := fd.Description
	if c == "" {
		c = fd.Name
	}
	if fd.Units != "" {
		c += " [" + fd.Units + "]"
	}
	return c
}

var initialisms = map[string]string{
	"id":  "ID",
	"gps": "GPS",
	"rc":  "RC",
	"vfr": "VFR",
	"hud": "HUD",
}

// GoName converts a MAVLink identifier such as GPS_RAW_INT or time_usec to
// an exported Go name.
func GoName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(s), "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

var reserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
	// Pack's own parameters and locals.
	"ch": true, "systemID": true, "componentID": true, "out": true, "m": true,
}

func paramName(s string) string {
	name := GoName(s)
	parts := strings.Split(strings.ToLower(s), "_")
	first := parts[0]
	if up, ok := initialisms[first]; ok {
		name = strings.ToLower(up) + name[len(up):]
	} else if len(name) > 0 {
		name = strings.ToLower(name[:1]) + name[1:]
	}
	if reserved[name] {
		name += "Value"
	}
	return name
}

func wrap(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
