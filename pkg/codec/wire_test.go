package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWire_LittleEndianLayout(t *testing.T) {
	p := make([]byte, 8)

	PutUint16(p, 0, 0x0102)
	assert.Equal(t, []byte{0x02, 0x01}, p[:2])

	PutUint32(p, 0, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, p[:4])

	PutUint64(p, 0, 0x0102030405060708)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, p)

	PutInt16(p, 0, -2)
	assert.Equal(t, []byte{0xFE, 0xFF}, p[:2])

	PutFloat32(p, 0, 1.0)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, p[:4])
}

func TestWire_RoundTrip(t *testing.T) {
	p := make([]byte, 64)

	PutUint8(p, 0, 0xAB)
	PutInt8(p, 1, -7)
	PutUint16(p, 2, 0xBEEF)
	PutInt16(p, 4, math.MinInt16)
	PutUint32(p, 6, 0xDEADBEEF)
	PutInt32(p, 10, -123456)
	PutUint64(p, 14, math.MaxUint64-1)
	PutInt64(p, 22, math.MinInt64)
	PutFloat32(p, 30, -3.5)
	PutFloat64(p, 34, math.Pi)

	assert.Equal(t, uint8(0xAB), Uint8(p, 0))
	assert.Equal(t, int8(-7), Int8(p, 1))
	assert.Equal(t, uint16(0xBEEF), Uint16(p, 2))
	assert.Equal(t, int16(math.MinInt16), Int16(p, 4))
	assert.Equal(t, uint32(0xDEADBEEF), Uint32(p, 6))
	assert.Equal(t, int32(-123456), Int32(p, 10))
	assert.Equal(t, uint64(math.MaxUint64-1), Uint64(p, 14))
	assert.Equal(t, int64(math.MinInt64), Int64(p, 22))
	assert.Equal(t, float32(-3.5), Float32(p, 30))
	assert.Equal(t, math.Pi, Float64(p, 34))
}

func TestWire_ReadsPastEndAreZero(t *testing.T) {
	p := []byte{0x11, 0x22, 0x33}

	assert.Equal(t, uint8(0), Uint8(p, 3))
	assert.Equal(t, uint8(0), Uint8(p, 100))
	assert.Equal(t, uint16(0), Uint16(p, 3))
	assert.Equal(t, uint64(0), Uint64(nil, 0))
	assert.Equal(t, float32(0), Float32(p, 10))
}

func TestWire_ReadsStraddlingEndZeroExtend(t *testing.T) {
	p := []byte{0x11, 0x22, 0x33}

	assert.Equal(t, uint16(0x0033), Uint16(p, 2))
	assert.Equal(t, uint32(0x00332211), Uint32(p, 0))
	assert.Equal(t, int32(0x00003322), Int32(p, 1))
	assert.Equal(t, uint64(0x332211), Uint64(p, 0))
	// The input is never modified by a short read.
	assert.Equal(t, []byte{0x11, 0x22, 0x33}, p)
}

func TestWire_PutPanicsPastEnd(t *testing.T) {
	p := make([]byte, 3)

	assert.Panics(t, func() { PutUint8(p, 3, 1) })
	assert.Panics(t, func() { PutUint16(p, 2, 1) })
	assert.Panics(t, func() { PutUint32(p, 0, 1) })
	assert.Panics(t, func() { PutFloat64(p, 0, 1) })
	assert.Panics(t, func() { PutString(p, 1, 3, "abc") })
	assert.NotPanics(t, func() { PutUint16(p, 1, 1) })
}

func TestWire_Strings(t *testing.T) {
	p := make([]byte, 8)
	for i := range p {
		p[i] = 0xFF
	}

	PutString(p, 1, 5, "hi")
	assert.Equal(t, []byte{0xFF, 'h', 'i', 0, 0, 0, 0xFF, 0xFF}, p)
	assert.Equal(t, "hi", String(p, 1, 5))

	PutString(p, 1, 5, "overflowing")
	assert.Equal(t, "overf", String(p, 1, 5))

	// Reading is bounded by n and by the received length.
	assert.Equal(t, "ov", String(p[:3], 1, 5))
	assert.Equal(t, "", String(p, 7, 0))
	assert.Equal(t, "", String(p, 20, 5))
}

func TestWire_Arrays(t *testing.T) {
	p := make([]byte, 24)

	PutUint16Array(p, 2, []uint16{1, 0x0203, 0xFFFF})
	assert.Equal(t, []byte{0, 0, 1, 0, 3, 2, 0xFF, 0xFF}, p[:8])

	got := make([]uint16, 3)
	Uint16Array(p, 2, got)
	assert.Equal(t, []uint16{1, 0x0203, 0xFFFF}, got)

	PutFloat32Array(p, 8, []float32{1.5, -2})
	gotF := make([]float32, 2)
	Float32Array(p, 8, gotF)
	assert.Equal(t, []float32{1.5, -2}, gotF)

	PutInt8Array(p, 16, []int8{-1, 2})
	gotI := make([]int8, 3)
	Int8Array(p, 16, gotI)
	assert.Equal(t, []int8{-1, 2, 0}, gotI)

	// Elements past the received bytes decode as zero.
	short := make([]uint16, 3)
	Uint16Array(p[:5], 2, short)
	assert.Equal(t, []uint16{1, 0x0003, 0}, short)
}
