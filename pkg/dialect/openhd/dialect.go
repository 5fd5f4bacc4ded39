// Package openhd holds the typed messages of the OpenHD ground-station
// dialect: OPENHD_AIR_LOAD plus the common telemetry it is layered on.
package openhd

import (
	"embed"
	"io/fs"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/schema"
)

//go:generate go run ../../../cmd/mavcodec gen --definition definitions/openhd.xml --package openhd --out messages_gen.go

// Name is the dialect name used in configuration.
const Name = "openhd"

// DefinitionFile is the root XML file inside Definitions.
const DefinitionFile = "openhd.xml"

//go:embed definitions/*.xml
var definitions embed.FS

// Definitions returns the XML sources the generated code was built from.
func Definitions() fs.FS {
	sub, err := fs.Sub(definitions, "definitions")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDefinition parses the embedded definitions with includes merged.
func LoadDefinition() (*schema.Definition, error) {
	return schema.LoadDefinitionFS(Definitions(), DefinitionFile)
}

// NewDialect returns a dialect holding every generated message. Each call
// builds an independent dialect so callers may add schemas to it.
func NewDialect() *codec.Dialect {
	d := codec.NewDialect(Name)
	d.MustRegister(Messages()...)
	return d
}
