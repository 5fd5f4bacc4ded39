package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/mavcodec/pkg/checksum"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// Version selects the frame layout.
type Version uint8

const (
	V2 Version = 2
	V1 Version = 1
)

const (
	MagicV1 byte = 0xFE
	MagicV2 byte = 0xFD

	HeaderLenV1  = 6
	HeaderLenV2  = 10
	ChecksumLen  = 2
	SignatureLen = 13

	MaxPayloadLen = schema.MaxPayloadLen
	MaxFrameLen   = HeaderLenV2 + MaxPayloadLen + ChecksumLen + SignatureLen

	// IncompatFlagSigned marks a v2 frame followed by a signature block.
	IncompatFlagSigned byte = 0x01
)

// SchemaLookup resolves a message id to its schema.
type SchemaLookup interface {
	ByID(id uint32) (*schema.MessageSchema, bool)
}

// Frame is one validated unit read off the wire. Payload and Signature are
// copies and do not alias the input buffer.
type Frame struct {
	Version       Version
	IncompatFlags uint8
	CompatFlags   uint8
	Sequence      uint8
	SystemID      uint8
	ComponentID   uint8
	MessageID     uint32
	Payload       []byte // as received, possibly trimmed
	Checksum      uint16
	Signature     []byte // SignatureLen bytes when signed
}

// Signed reports whether the frame carries a signature block.
func (f *Frame) Signed() bool {
	return f.IncompatFlags&IncompatFlagSigned != 0
}

func (f *Frame) headerLen() int {
	if f.Version == V1 {
		return HeaderLenV1
	}
	return HeaderLenV2
}

// Len returns the encoded length of the frame.
func (f *Frame) Len() int {
	return f.headerLen() + len(f.Payload) + ChecksumLen + len(f.Signature)
}

// AppendTo appends the frame exactly as it was received.
func (f *Frame) AppendTo(b []byte) []byte {
	if f.Version == V1 {
		b = append(b, MagicV1, byte(len(f.Payload)), f.Sequence, f.SystemID, f.ComponentID, byte(f.MessageID))
	} else {
		b = append(b, MagicV2, byte(len(f.Payload)), f.IncompatFlags, f.CompatFlags, f.Sequence,
			f.SystemID, f.ComponentID, byte(f.MessageID), byte(f.MessageID>>8), byte(f.MessageID>>16))
	}
	b = append(b, f.Payload...)
	b = binary.LittleEndian.AppendUint16(b, f.Checksum)
	return append(b, f.Signature...)
}

// Bytes returns the encoded frame.
func (f *Frame) Bytes() []byte {
	return f.AppendTo(make([]byte, 0, f.Len()))
}

type header struct {
	version    Version
	headerLen  int
	payloadLen int
	incompat   uint8
	compat     uint8
	seq        uint8
	sysID      uint8
	compID     uint8
	msgID      uint32
	total      int
}

// FrameLen returns the total frame length announced by the first bytes of p.
// Two bytes suffice for v1 and three for v2.
func FrameLen(p []byte) (int, error) {
	if len(p) < 1 {
		return 0, ErrShortFrame
	}
	switch p[0] {
	case MagicV2:
		if len(p) < 3 {
			return 0, ErrShortFrame
		}
		if p[2]&^IncompatFlagSigned != 0 {
			return 0, fmt.Errorf("%w: 0x%02x", ErrIncompatibleFlags, p[2])
		}
		n := HeaderLenV2 + int(p[1]) + ChecksumLen
		if p[2]&IncompatFlagSigned != 0 {
			n += SignatureLen
		}
		return n, nil
	case MagicV1:
		if len(p) < 2 {
			return 0, ErrShortFrame
		}
		return HeaderLenV1 + int(p[1]) + ChecksumLen, nil
	}
	return 0, fmt.Errorf("%w: 0x%02x", ErrBadMagic, p[0])
}

// readHeader decodes the header of data, which must hold exactly one frame.
func readHeader(data []byte) (header, error) {
	total, err := FrameLen(data)
	if err != nil {
		return header{}, err
	}
	if len(data) < total {
		return header{}, fmt.Errorf("%w: have %d bytes, header announces %d", ErrShortFrame, len(data), total)
	}
	if len(data) > total {
		return header{}, fmt.Errorf("%w: have %d bytes, header announces %d", ErrTrailingBytes, len(data), total)
	}

	h := header{payloadLen: int(data[1]), total: total}
	if data[0] == MagicV1 {
		h.version = V1
		h.headerLen = HeaderLenV1
		h.seq = data[2]
		h.sysID = data[3]
		h.compID = data[4]
		h.msgID = uint32(data[5])
		return h, nil
	}

	h.version = V2
	h.headerLen = HeaderLenV2
	h.incompat = data[2]
	h.compat = data[3]
	h.seq = data[4]
	h.sysID = data[5]
	h.compID = data[6]
	h.msgID = uint32(data[7]) | uint32(data[8])<<8 | uint32(data[9])<<16
	return h, nil
}

// frameChecksum covers everything after the start marker up to the checksum,
// then the schema's crcExtra seed.
func frameChecksum(data []byte, h header, crcExtra uint8) uint16 {
	crc := checksum.Update(checksum.Init, data[1:h.headerLen+h.payloadLen])
	return checksum.Accumulate(crc, crcExtra)
}

func verify(data []byte, h header, crcExtra uint8) (uint16, error) {
	off := h.headerLen + h.payloadLen
	got := binary.LittleEndian.Uint16(data[off : off+ChecksumLen])
	want := frameChecksum(data, h, crcExtra)
	if got != want {
		return got, fmt.Errorf("%w: message %d: received 0x%04x, computed 0x%04x", ErrChecksumMismatch, h.msgID, got, want)
	}
	return got, nil
}

// Validate checks the checksum of a single frame against crcExtra and
// returns its payload. The returned slice aliases data.
func Validate(data []byte, crcExtra uint8) ([]byte, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if _, err := verify(data, h, crcExtra); err != nil {
		return nil, err
	}
	return data[h.headerLen : h.headerLen+h.payloadLen], nil
}

// Parse validates a single frame against the schema registered for its
// message id. A frame either validates completely or is rejected with
// ErrUnknownMessageID, ErrLengthOutOfRange, ErrChecksumMismatch or a
// framing error.
func Parse(data []byte, lookup SchemaLookup) (*Frame, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	s, ok := lookup.ByID(h.msgID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessageID, h.msgID)
	}
	if !s.AcceptsLen(h.payloadLen) {
		return nil, fmt.Errorf("%w: %s payload is %d bytes, want %d..%d",
			ErrLengthOutOfRange, s.Name, h.payloadLen, s.MinPayloadLen, s.PayloadLen)
	}

	sum, err := verify(data, h, s.CRCExtra)
	if err != nil {
		return nil, err
	}
	return newFrame(data, h, sum), nil
}

func newFrame(data []byte, h header, sum uint16) *Frame {
	f := &Frame{
		Version:       h.version,
		IncompatFlags: h.incompat,
		CompatFlags:   h.compat,
		Sequence:      h.seq,
		SystemID:      h.sysID,
		ComponentID:   h.compID,
		MessageID:     h.msgID,
		Payload:       append([]byte(nil), data[h.headerLen:h.headerLen+h.payloadLen]...),
		Checksum:      sum,
	}
	if f.Payload == nil {
		f.Payload = []byte{}
	}
	if sigStart := h.headerLen + h.payloadLen + ChecksumLen; sigStart < h.total {
		f.Signature = append([]byte(nil), data[sigStart:h.total]...)
	}
	return f
}

// TrimmedLen returns the shortest length L >= minLen such that payload[L:]
// is all zero.
func TrimmedLen(payload []byte, minLen int) int {
	n := len(payload)
	for n > minLen && payload[n-1] == 0 {
		n--
	}
	return n
}
