// Package dialect resolves dialect names from configuration into codec
// dialects, optionally extended with message definitions loaded at runtime.
package dialect

import (
	"fmt"
	"sort"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/dialect/openhd"
	"github.com/ssargent/mavcodec/pkg/schema"
)

var builtin = map[string]func() *codec.Dialect{
	openhd.Name: openhd.NewDialect,
}

// Names lists the built-in dialects.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the named built-in dialect with the messages of every file in
// definitions added. Added messages decode dynamically; their ids and names
// must not collide with the dialect's own.
func Load(name string, definitions []string) (*codec.Dialect, error) {
	newDialect, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %v)", name, Names())
	}
	d := newDialect()

	for _, file := range definitions {
		def, err := schema.LoadDefinition(file)
		if err != nil {
			return nil, err
		}
		schemas, err := def.Schemas()
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", file, err)
		}
		for _, s := range schemas {
			// Includes such as common.xml repeat messages the dialect
			// already has; identical schemas are skipped.
			if existing, ok := d.ByID(s.ID); ok && sameSchema(existing, s) {
				continue
			}
			if err := d.AddSchemas(s); err != nil {
				return nil, fmt.Errorf("definition %s: %w", file, err)
			}
		}
	}
	return d, nil
}

func sameSchema(a, b *schema.MessageSchema) bool {
	return a.Name == b.Name && a.CRCExtra == b.CRCExtra && a.PayloadLen == b.PayloadLen && a.MinPayloadLen == b.MinPayloadLen
}
