package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commonXML = `<?xml version="1.0"?>
<mavlink>
  <version>3</version>
  <dialect>0</dialect>
  <messages>
    <message id="253" name="STATUSTEXT">
      <description>Status text message.</description>
      <field type="uint8_t" name="severity" enum="MAV_SEVERITY">Severity of status.</field>
      <field type="char[50]" name="text">Status text message,
        without null termination character.</field>
      <extensions/>
      <field type="uint16_t" name="id">Unique (opaque) identifier.</field>
      <field type="uint8_t" name="chunk_seq">Sequence of this chunk.</field>
    </message>
  </messages>
</mavlink>`

const dialectXML = `<?xml version="1.0"?>
<mavlink>
  <include>common.xml</include>
  <dialect>1</dialect>
  <messages>
    <message id="1230" name="OPENHD_AIR_LOAD">
      <description>air unit load</description>
      <field type="uint8_t" name="cpuload" units="%">cpuload</field>
      <field type="uint8_t" name="temp" units="degC">temp</field>
    </message>
  </messages>
</mavlink>`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition(strings.NewReader(commonXML), "common")
	require.NoError(t, err)

	assert.Equal(t, "common", def.Name)
	assert.Equal(t, 3, def.Version)
	require.Len(t, def.Messages, 1)

	msg := def.Messages[0]
	assert.Equal(t, uint32(253), msg.ID)
	assert.Equal(t, "STATUSTEXT", msg.Name)
	assert.Equal(t, "Status text message.", msg.Description)
	require.Len(t, msg.Fields, 4)
	assert.Equal(t, "MAV_SEVERITY", msg.Fields[0].Enum)
	assert.Equal(t, "Status text message, without null termination character.", msg.Fields[1].Description)
	assert.False(t, msg.Fields[1].Extension)
	assert.True(t, msg.Fields[2].Extension)
	assert.True(t, msg.Fields[3].Extension)

	s, err := msg.Schema()
	require.NoError(t, err)
	assert.Equal(t, uint8(83), s.CRCExtra)
	assert.Equal(t, 51, s.MinPayloadLen)
	assert.Equal(t, 54, s.PayloadLen)
}

func TestParseDefinition_Malformed(t *testing.T) {
	_, err := ParseDefinition(strings.NewReader(`<mavlink><messages><message id="x" name="BAD"/></messages></mavlink>`), "bad")
	assert.Error(t, err)

	_, err = ParseDefinition(strings.NewReader(`<mavlink>`), "truncated")
	assert.Error(t, err)
}

func TestLoadDefinitionFS_Includes(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/common.xml": {Data: []byte(commonXML)},
		"defs/openhd.xml": {Data: []byte(dialectXML)},
	}

	def, err := LoadDefinitionFS(fsys, "defs/openhd.xml")
	require.NoError(t, err)

	assert.Equal(t, "openhd", def.Name)
	require.Len(t, def.Messages, 2)
	assert.Equal(t, "STATUSTEXT", def.Messages[0].Name)
	assert.Equal(t, "OPENHD_AIR_LOAD", def.Messages[1].Name)

	reg, err := def.Registry()
	require.NoError(t, err)
	load, ok := reg.ByID(1230)
	require.True(t, ok)
	assert.Equal(t, uint8(97), load.CRCExtra)
}

func TestLoadDefinitionFS_IncludeCycle(t *testing.T) {
	a := `<mavlink><include>b.xml</include><messages><message id="1" name="A"><field type="uint8_t" name="x">x</field></message></messages></mavlink>`
	b := `<mavlink><include>a.xml</include><messages><message id="2" name="B"><field type="uint8_t" name="y">y</field></message></messages></mavlink>`
	fsys := fstest.MapFS{"a.xml": {Data: []byte(a)}, "b.xml": {Data: []byte(b)}}

	def, err := LoadDefinitionFS(fsys, "a.xml")
	require.NoError(t, err)
	assert.Len(t, def.Messages, 2)
}

func TestLoadDefinitionFS_DuplicateID(t *testing.T) {
	dup := strings.Replace(dialectXML, `id="1230"`, `id="253"`, 1)
	fsys := fstest.MapFS{"common.xml": {Data: []byte(commonXML)}, "dup.xml": {Data: []byte(dup)}}

	_, err := LoadDefinitionFS(fsys, "dup.xml")
	assert.Error(t, err)
}

func TestLoadDefinitionFS_MissingInclude(t *testing.T) {
	fsys := fstest.MapFS{"openhd.xml": {Data: []byte(dialectXML)}}
	_, err := LoadDefinitionFS(fsys, "openhd.xml")
	assert.Error(t, err)
}

func TestLoadDefinition_Disk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "common.xml"), []byte(commonXML), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openhd.xml"), []byte(dialectXML), 0600))

	def, err := LoadDefinition(filepath.Join(dir, "openhd.xml"))
	require.NoError(t, err)
	assert.Len(t, def.Messages, 2)

	_, err = LoadDefinition(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}

func TestDefinition_SchemasError(t *testing.T) {
	def := &Definition{Messages: []MessageDefinition{{ID: 1, Name: "BAD", Fields: []FieldDefinition{{Name: "x", Type: "bogus"}}}}}
	_, err := def.Schemas()
	assert.Error(t, err)
	_, err = def.Registry()
	assert.Error(t, err)
}
