package codec

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/mavcodec/pkg/checksum"
)

func TestPack_ReferenceFrame(t *testing.T) {
	var ch Channel
	got := pack(t, &ch, &airLoad{Cpuload: 42, Temp: 55})

	assert.Equal(t, mustHex(t, referenceFrame), got)
}

func TestParse_ReferenceFrame(t *testing.T) {
	f, err := Parse(mustHex(t, referenceFrame), testRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, V2, f.Version)
	assert.Equal(t, uint8(0), f.Sequence)
	assert.Equal(t, uint8(1), f.SystemID)
	assert.Equal(t, uint8(1), f.ComponentID)
	assert.Equal(t, uint32(1230), f.MessageID)
	assert.Equal(t, []byte{42, 55}, f.Payload)
	assert.Equal(t, uint16(0x6955), f.Checksum)
	assert.False(t, f.Signed())
	assert.Nil(t, f.Signature)
	assert.Equal(t, 14, f.Len())
	assert.Equal(t, mustHex(t, referenceFrame), f.Bytes())
}

func TestParse_PayloadDoesNotAliasInput(t *testing.T) {
	data := mustHex(t, referenceFrame)
	f, err := Parse(data, testRegistry(t))
	require.NoError(t, err)

	data[10] = 0
	assert.Equal(t, []byte{42, 55}, f.Payload)
}

func TestParse_SingleBitFlipsAreRejected(t *testing.T) {
	reg := testRegistry(t)
	frame := mustHex(t, referenceFrame)

	// Bytes covered only by the checksum: flags, sequence, ids, payload and
	// the checksum itself.
	checksumOnly := map[int]bool{3: true, 4: true, 5: true, 6: true, 10: true, 11: true, 12: true, 13: true}

	for i := range frame {
		for bit := 0; bit < 8; bit++ {
			corrupt := append([]byte(nil), frame...)
			corrupt[i] ^= 1 << bit

			_, err := Parse(corrupt, reg)
			require.Error(t, err, "byte %d bit %d", i, bit)
			if checksumOnly[i] {
				assert.ErrorIs(t, err, ErrChecksumMismatch, "byte %d bit %d", i, bit)
			}
		}
	}
}

func TestValidate_StructuralByteFlipsAreFramingErrors(t *testing.T) {
	frame := mustHex(t, referenceFrame)

	// Marker, length and incompat flags decide where the frame ends, so a
	// flip there is reported as a framing error before any checksum.
	framing := []error{ErrBadMagic, ErrShortFrame, ErrTrailingBytes, ErrIncompatibleFlags}

	for _, i := range []int{0, 1, 2} {
		for bit := 0; bit < 8; bit++ {
			corrupt := append([]byte(nil), frame...)
			corrupt[i] ^= 1 << bit

			payload, err := Validate(corrupt, airLoadSchema.CRCExtra)
			require.Error(t, err, "byte %d bit %d", i, bit)
			assert.Nil(t, payload)

			matched := errors.Is(err, ErrChecksumMismatch)
			for _, want := range framing {
				matched = matched || errors.Is(err, want)
			}
			assert.True(t, matched, "byte %d bit %d: %v", i, bit, err)
		}
	}
}

func TestParse_RejectionKinds(t *testing.T) {
	reg := testRegistry(t)
	frame := mustHex(t, referenceFrame)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortFrame},
		{"bad magic", append([]byte{0x55}, frame[1:]...), ErrBadMagic},
		{"truncated", frame[:len(frame)-1], ErrShortFrame},
		{"trailing", append(append([]byte(nil), frame...), 0), ErrTrailingBytes},
		{"incompat flag", func() []byte { b := append([]byte(nil), frame...); b[2] = 0x02; return b }(), ErrIncompatibleFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, reg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_UnknownMessageID(t *testing.T) {
	var ch Channel
	out := make([]byte, MaxFrameLen)
	n := ch.Finalize(out, 1, 1, 999, []byte{1, 2}, 2, 0)

	_, err := Parse(out[:n], testRegistry(t))
	assert.ErrorIs(t, err, ErrUnknownMessageID)
	assert.Equal(t, "unknown_id", Reason(err))
}

func TestParse_LengthOutOfRange(t *testing.T) {
	reg := testRegistry(t)
	var ch Channel
	out := make([]byte, MaxFrameLen)

	// One byte below the minimum, with a checksum that is otherwise valid.
	n := ch.Finalize(out, 1, 1, airLoadSchema.ID, []byte{42, 0}, 1, airLoadSchema.CRCExtra)
	require.Equal(t, HeaderLenV2+1+ChecksumLen, n)
	_, err := Parse(out[:n], reg)
	assert.ErrorIs(t, err, ErrLengthOutOfRange)

	// One byte above the full length.
	n = ch.Finalize(out, 1, 1, airLoadSchema.ID, []byte{42, 55, 1}, 3, airLoadSchema.CRCExtra)
	_, err = Parse(out[:n], reg)
	assert.ErrorIs(t, err, ErrLengthOutOfRange)
}

func TestParse_WrongSchemaSeedIsRejected(t *testing.T) {
	// A STATUSTEXT-sized payload sealed with the air load seed.
	var ch Channel
	out := make([]byte, MaxFrameLen)
	payload := make([]byte, statusTextSchema.PayloadLen)
	payload[0] = 6
	n := ch.Finalize(out, 1, 1, statusTextSchema.ID, payload, statusTextSchema.MinPayloadLen, airLoadSchema.CRCExtra)

	_, err := Parse(out[:n], testRegistry(t))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestPack_TrimsTrailingZerosToMinimum(t *testing.T) {
	var ch Channel

	frame := pack(t, &ch, dynamic(t, statusTextSchema, Values{"severity": 6, "text": "hi"}))
	assert.Equal(t, byte(statusTextSchema.MinPayloadLen), frame[1])

	frame = pack(t, &ch, dynamic(t, statusTextSchema, Values{"severity": 6, "text": "hi", "id": 0x0100}))
	assert.Equal(t, byte(statusTextSchema.MinPayloadLen+2), frame[1], "high byte of id keeps both id bytes")

	frame = pack(t, &ch, dynamic(t, statusTextSchema, Values{"chunk_seq": 1}))
	assert.Equal(t, byte(statusTextSchema.PayloadLen), frame[1])

	// A zero base field is never trimmed.
	frame = pack(t, &ch, dynamic(t, airLoadSchema, nil))
	assert.Equal(t, byte(2), frame[1])
}

func TestParse_TrimmedFrameDecodesMissingFieldsAsZero(t *testing.T) {
	var ch Channel
	frame := pack(t, &ch, dynamic(t, statusTextSchema, Values{"severity": 3, "text": "low battery"}))

	f, err := Parse(frame, testRegistry(t))
	require.NoError(t, err)
	assert.Len(t, f.Payload, statusTextSchema.MinPayloadLen)

	values := DecodeValues(statusTextSchema, f.Payload)
	assert.Equal(t, uint8(3), values["severity"])
	assert.Equal(t, "low battery", values["text"])
	assert.Equal(t, uint16(0), values["id"])
	assert.Equal(t, uint8(0), values["chunk_seq"])
}

func TestTrimmedLen(t *testing.T) {
	assert.Equal(t, 2, TrimmedLen([]byte{1, 2, 0, 0}, 1))
	assert.Equal(t, 3, TrimmedLen([]byte{0, 0, 0, 0}, 3))
	assert.Equal(t, 0, TrimmedLen([]byte{0, 0}, 0))
	assert.Equal(t, 4, TrimmedLen([]byte{0, 0, 0, 9}, 1))
	assert.Equal(t, 0, TrimmedLen(nil, 0))
}

func TestValidate(t *testing.T) {
	frame := mustHex(t, referenceFrame)

	payload, err := Validate(frame, 97)
	require.NoError(t, err)
	assert.Equal(t, []byte{42, 55}, payload)

	_, err = Validate(frame, 98)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Equal(t, "checksum", Reason(err))

	_, err = Validate(frame[:5], 97)
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestFrameLen(t *testing.T) {
	n, err := FrameLen([]byte{MagicV2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	n, err = FrameLen([]byte{MagicV2, 2, IncompatFlagSigned})
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	n, err = FrameLen([]byte{MagicV1, 9})
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	_, err = FrameLen([]byte{MagicV2, 2})
	assert.ErrorIs(t, err, ErrShortFrame)
	_, err = FrameLen([]byte{0x00, 2, 0})
	assert.ErrorIs(t, err, ErrBadMagic)
	_, err = FrameLen([]byte{MagicV2, 2, 0x80})
	assert.ErrorIs(t, err, ErrIncompatibleFlags)
}

func TestParse_SignedFrame(t *testing.T) {
	frame := mustHex(t, referenceFrame)
	frame[2] = IncompatFlagSigned
	crc := checksum.Update(checksum.Init, frame[1:HeaderLenV2+2])
	crc = checksum.Accumulate(crc, airLoadSchema.CRCExtra)
	binary.LittleEndian.PutUint16(frame[HeaderLenV2+2:], crc)

	sig := []byte{1, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF}
	frame = append(frame, sig...)

	f, err := Parse(frame, testRegistry(t))
	require.NoError(t, err)
	assert.True(t, f.Signed())
	assert.Equal(t, sig, f.Signature)
	assert.Equal(t, []byte{42, 55}, f.Payload)
	assert.Equal(t, 27, f.Len())
	assert.Equal(t, frame, f.Bytes())

	_, err = Parse(frame[:len(frame)-1], testRegistry(t))
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestV1_PackAndParse(t *testing.T) {
	ch := NewChannel(V1)
	hb := dynamic(t, heartbeatSchema, Values{"type": 2, "autopilot": 3, "base_mode": 0x51, "custom_mode": 4, "system_status": 4, "mavlink_version": 3})

	frame := pack(t, ch, hb)
	assert.Equal(t, mustHex(t, "fe0900010100040000000203510403e16d"), frame)

	f, err := Parse(frame, testRegistry(t))
	require.NoError(t, err)
	assert.Equal(t, V1, f.Version)
	assert.Equal(t, uint32(0), f.MessageID)
	assert.Equal(t, frame, f.Bytes())
	assert.Equal(t, uint32(4), Uint32(f.Payload, 0))
}

func TestV1_NeverTrims(t *testing.T) {
	ch := NewChannel(V1)
	frame := pack(t, ch, dynamic(t, statusTextSchema, nil))

	assert.Equal(t, byte(statusTextSchema.MinPayloadLen), frame[1])
	assert.Len(t, frame, HeaderLenV1+statusTextSchema.MinPayloadLen+ChecksumLen)

	_, err := Parse(frame, testRegistry(t))
	assert.NoError(t, err)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, "length", Reason(ErrLengthOutOfRange))
	assert.Equal(t, "magic", Reason(ErrBadMagic))
	assert.Equal(t, "truncated", Reason(ErrTrailingBytes))
	assert.Equal(t, "incompat_flags", Reason(ErrIncompatibleFlags))
	assert.Equal(t, "other", Reason(ErrInvalidValue))
}
