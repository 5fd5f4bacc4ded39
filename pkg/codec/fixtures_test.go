package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/mavcodec/pkg/schema"
)

var (
	airLoadSchema = schema.MustBuild(1230, "OPENHD_AIR_LOAD", []schema.FieldSpec{
		{Name: "cpuload", Type: schema.Uint8},
		{Name: "temp", Type: schema.Uint8},
	})

	heartbeatSchema = schema.MustBuild(0, "HEARTBEAT", []schema.FieldSpec{
		{Name: "type", Type: schema.Uint8},
		{Name: "autopilot", Type: schema.Uint8},
		{Name: "base_mode", Type: schema.Uint8},
		{Name: "custom_mode", Type: schema.Uint32},
		{Name: "system_status", Type: schema.Uint8},
		{Name: "mavlink_version", Type: schema.Uint8},
	})

	statusTextSchema = schema.MustBuild(253, "STATUSTEXT", []schema.FieldSpec{
		{Name: "severity", Type: schema.Uint8},
		{Name: "text", Type: schema.Char, ArrayLen: 50},
		{Name: "id", Type: schema.Uint16, Extension: true},
		{Name: "chunk_seq", Type: schema.Uint8, Extension: true},
	})

	batterySchema = schema.MustBuild(147, "BATTERY_STATUS", []schema.FieldSpec{
		{Name: "id", Type: schema.Uint8},
		{Name: "battery_function", Type: schema.Uint8},
		{Name: "type", Type: schema.Uint8},
		{Name: "temperature", Type: schema.Int16},
		{Name: "voltages", Type: schema.Uint16, ArrayLen: 10},
		{Name: "current_battery", Type: schema.Int16},
		{Name: "current_consumed", Type: schema.Int32},
		{Name: "energy_consumed", Type: schema.Int32},
		{Name: "battery_remaining", Type: schema.Int8},
		{Name: "time_remaining", Type: schema.Int32, Extension: true},
		{Name: "charge_state", Type: schema.Uint8, Extension: true},
		{Name: "voltages_ext", Type: schema.Uint16, ArrayLen: 4, Extension: true},
		{Name: "mode", Type: schema.Uint8, Extension: true},
		{Name: "fault_bitmask", Type: schema.Uint32, Extension: true},
	})
)

// airLoad is a hand-written typed message shaped like generated code.
type airLoad struct {
	Cpuload uint8
	Temp    uint8
}

func (*airLoad) Schema() *schema.MessageSchema { return airLoadSchema }

func (m *airLoad) MarshalPayload(p []byte) {
	PutUint8(p, 0, m.Cpuload)
	PutUint8(p, 1, m.Temp)
}

func (m *airLoad) UnmarshalPayload(p []byte) {
	m.Cpuload = Uint8(p, 0)
	m.Temp = Uint8(p, 1)
}

// referenceFrame is OPENHD_AIR_LOAD{cpuload: 42, temp: 55} from system 1,
// component 1, sequence 0.
const referenceFrame = "fd020000000101ce04002a375569"

func testRegistry(t testing.TB) *schema.Registry {
	t.Helper()
	reg, err := schema.NewRegistry(airLoadSchema, heartbeatSchema, statusTextSchema, batterySchema)
	require.NoError(t, err)
	return reg
}

func testDialect(t testing.TB) *Dialect {
	t.Helper()
	d := NewDialect("test")
	require.NoError(t, d.Register(func() Message { return new(airLoad) }))
	require.NoError(t, d.AddSchemas(heartbeatSchema, statusTextSchema, batterySchema))
	return d
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func pack(t testing.TB, ch *Channel, m Message) []byte {
	t.Helper()
	out := make([]byte, MaxFrameLen)
	n := ch.Pack(1, 1, out, m)
	return out[:n]
}

func dynamic(t testing.TB, s *schema.MessageSchema, values Values) *Dynamic {
	t.Helper()
	d, err := NewDynamic(s, values)
	require.NoError(t, err)
	return d
}
