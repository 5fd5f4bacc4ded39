package codec

import (
	"encoding/binary"
	"math"
)

// Put* write a little-endian value at off and panic if it does not fit.
// Readers zero-extend: bytes at or beyond len(p) read as zero, so a payload
// whose trailing zeros were trimmed decodes without reading past its end.

func PutUint8(p []byte, off int, v uint8) { p[off] = v }
func PutInt8(p []byte, off int, v int8)   { p[off] = byte(v) }

func PutUint16(p []byte, off int, v uint16) { binary.LittleEndian.PutUint16(p[off:off+2], v) }
func PutInt16(p []byte, off int, v int16)   { PutUint16(p, off, uint16(v)) }

func PutUint32(p []byte, off int, v uint32) { binary.LittleEndian.PutUint32(p[off:off+4], v) }
func PutInt32(p []byte, off int, v int32)   { PutUint32(p, off, uint32(v)) }

func PutUint64(p []byte, off int, v uint64) { binary.LittleEndian.PutUint64(p[off:off+8], v) }
func PutInt64(p []byte, off int, v int64)   { PutUint64(p, off, uint64(v)) }

func PutFloat32(p []byte, off int, v float32) { PutUint32(p, off, math.Float32bits(v)) }
func PutFloat64(p []byte, off int, v float64) { PutUint64(p, off, math.Float64bits(v)) }

// window returns p[off:off+len(scratch)], or scratch holding the available
// bytes followed by zeros when p is shorter.
func window(p []byte, off int, scratch []byte) []byte {
	n := len(scratch)
	if off+n <= len(p) {
		return p[off : off+n]
	}
	clear(scratch)
	if off < len(p) {
		copy(scratch, p[off:])
	}
	return scratch
}

func Uint8(p []byte, off int) uint8 {
	if off < len(p) {
		return p[off]
	}
	return 0
}

func Int8(p []byte, off int) int8 { return int8(Uint8(p, off)) }

func Uint16(p []byte, off int) uint16 {
	var b [2]byte
	return binary.LittleEndian.Uint16(window(p, off, b[:]))
}

func Int16(p []byte, off int) int16 { return int16(Uint16(p, off)) }

func Uint32(p []byte, off int) uint32 {
	var b [4]byte
	return binary.LittleEndian.Uint32(window(p, off, b[:]))
}

func Int32(p []byte, off int) int32 { return int32(Uint32(p, off)) }

func Uint64(p []byte, off int) uint64 {
	var b [8]byte
	return binary.LittleEndian.Uint64(window(p, off, b[:]))
}

func Int64(p []byte, off int) int64 { return int64(Uint64(p, off)) }

func Float32(p []byte, off int) float32 { return math.Float32frombits(Uint32(p, off)) }
func Float64(p []byte, off int) float64 { return math.Float64frombits(Uint64(p, off)) }

// PutString writes s into the n-byte char array at off, truncating or
// zero-padding as needed.
func PutString(p []byte, off, n int, s string) {
	dst := p[off : off+n]
	k := copy(dst, s)
	clear(dst[k:])
}

// String reads the n-byte char array at off. It stops at the first NUL but
// does not require one.
func String(p []byte, off, n int) string {
	end := off
	for end < off+n && end < len(p) && p[end] != 0 {
		end++
	}
	if end <= off {
		return ""
	}
	return string(p[off:end])
}

func putArray[T any](p []byte, off, size int, v []T, put func([]byte, int, T)) {
	for i, x := range v {
		put(p, off+i*size, x)
	}
}

func getArray[T any](p []byte, off, size int, dst []T, get func([]byte, int) T) {
	for i := range dst {
		dst[i] = get(p, off+i*size)
	}
}

func PutUint8Array(p []byte, off int, v []uint8)     { copy(p[off:off+len(v)], v) }
func PutInt8Array(p []byte, off int, v []int8)       { putArray(p, off, 1, v, PutInt8) }
func PutUint16Array(p []byte, off int, v []uint16)   { putArray(p, off, 2, v, PutUint16) }
func PutInt16Array(p []byte, off int, v []int16)     { putArray(p, off, 2, v, PutInt16) }
func PutUint32Array(p []byte, off int, v []uint32)   { putArray(p, off, 4, v, PutUint32) }
func PutInt32Array(p []byte, off int, v []int32)     { putArray(p, off, 4, v, PutInt32) }
func PutUint64Array(p []byte, off int, v []uint64)   { putArray(p, off, 8, v, PutUint64) }
func PutInt64Array(p []byte, off int, v []int64)     { putArray(p, off, 8, v, PutInt64) }
func PutFloat32Array(p []byte, off int, v []float32) { putArray(p, off, 4, v, PutFloat32) }
func PutFloat64Array(p []byte, off int, v []float64) { putArray(p, off, 8, v, PutFloat64) }

func Uint8Array(p []byte, off int, dst []uint8)     { getArray(p, off, 1, dst, Uint8) }
func Int8Array(p []byte, off int, dst []int8)       { getArray(p, off, 1, dst, Int8) }
func Uint16Array(p []byte, off int, dst []uint16)   { getArray(p, off, 2, dst, Uint16) }
func Int16Array(p []byte, off int, dst []int16)     { getArray(p, off, 2, dst, Int16) }
func Uint32Array(p []byte, off int, dst []uint32)   { getArray(p, off, 4, dst, Uint32) }
func Int32Array(p []byte, off int, dst []int32)     { getArray(p, off, 4, dst, Int32) }
func Uint64Array(p []byte, off int, dst []uint64)   { getArray(p, off, 8, dst, Uint64) }
func Int64Array(p []byte, off int, dst []int64)     { getArray(p, off, 8, dst, Int64) }
func Float32Array(p []byte, off int, dst []float32) { getArray(p, off, 4, dst, Float32) }
func Float64Array(p []byte, off int, dst []float64) { getArray(p, off, 8, dst, Float64) }
