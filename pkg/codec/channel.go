package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/mavcodec/pkg/checksum"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// Channel is an outbound stream with its own sequence counter. The zero
// value packs v2 frames starting at sequence 0.
//
// A Channel is not safe for concurrent use; callers packing onto the same
// channel from several goroutines must serialize access themselves.
type Channel struct {
	// Version selects the frame layout. The zero value means V2.
	Version Version

	seq uint8
}

// NewChannel returns a channel emitting frames of the given version.
func NewChannel(v Version) *Channel {
	return &Channel{Version: v}
}

// Sequence returns the sequence number the next frame will carry.
func (c *Channel) Sequence() uint8 {
	return c.seq
}

// SetSequence sets the sequence number of the next frame.
func (c *Channel) SetSequence(seq uint8) {
	c.seq = seq
}

// CanSend reports whether frames of this channel can carry msgID.
func (c *Channel) CanSend(msgID uint32) bool {
	if c.Version == V1 {
		return msgID <= 0xFF
	}
	return msgID <= schema.MaxMessageID
}

// Finalize writes a complete frame for payload into out and returns its
// length. payload must hold the full fullLen bytes of the message. v2 frames
// are trimmed of trailing zero bytes down to minLen; v1 frames always carry
// exactly minLen bytes and cannot address ids above 255.
//
// Finalize panics if out is too small or the message cannot be framed; both
// are programming errors.
func (c *Channel) Finalize(out []byte, systemID, componentID uint8, msgID uint32, payload []byte, minLen int, crcExtra uint8) int {
	if minLen > len(payload) {
		panic(fmt.Sprintf("codec: minimum length %d exceeds payload length %d", minLen, len(payload)))
	}

	var headerLen, length int
	if c.Version == V1 {
		if msgID > 0xFF {
			panic(fmt.Sprintf("codec: message id %d cannot be sent as MAVLink 1", msgID))
		}
		headerLen = HeaderLenV1
		length = minLen
	} else {
		if msgID > schema.MaxMessageID {
			panic(fmt.Sprintf("codec: message id %d exceeds 24 bits", msgID))
		}
		headerLen = HeaderLenV2
		length = TrimmedLen(payload, minLen)
	}

	total := headerLen + length + ChecksumLen
	if len(out) < total {
		panic(fmt.Sprintf("codec: output buffer is %d bytes, frame needs %d", len(out), total))
	}

	seq := c.seq
	c.seq++

	if c.Version == V1 {
		out[0] = MagicV1
		out[1] = byte(length)
		out[2] = seq
		out[3] = systemID
		out[4] = componentID
		out[5] = byte(msgID)
	} else {
		out[0] = MagicV2
		out[1] = byte(length)
		out[2] = 0
		out[3] = 0
		out[4] = seq
		out[5] = systemID
		out[6] = componentID
		out[7] = byte(msgID)
		out[8] = byte(msgID >> 8)
		out[9] = byte(msgID >> 16)
	}
	copy(out[headerLen:], payload[:length])

	crc := checksum.Update(checksum.Init, out[1:headerLen+length])
	crc = checksum.Accumulate(crc, crcExtra)
	binary.LittleEndian.PutUint16(out[headerLen+length:], crc)

	return total
}

// PackPayload frames an already encoded payload of schema s.
func (c *Channel) PackPayload(systemID, componentID uint8, out []byte, s *schema.MessageSchema, payload []byte) int {
	return c.Finalize(out, systemID, componentID, s.ID, payload[:s.PayloadLen], s.MinPayloadLen, s.CRCExtra)
}

// Pack encodes m and writes its frame into out, returning the frame length.
func (c *Channel) Pack(systemID, componentID uint8, out []byte, m Message) int {
	s := m.Schema()
	var buf [MaxPayloadLen]byte
	payload := buf[:s.PayloadLen]
	m.MarshalPayload(payload)
	return c.PackPayload(systemID, componentID, out, s, payload)
}

// Frame encodes m into a new Frame.
func (c *Channel) Frame(systemID, componentID uint8, m Message) *Frame {
	var buf [MaxFrameLen]byte
	n := c.Pack(systemID, componentID, buf[:], m)
	h, err := readHeader(buf[:n])
	if err != nil {
		panic(fmt.Sprintf("codec: packed frame is unreadable: %v", err))
	}
	sum := binary.LittleEndian.Uint16(buf[h.headerLen+h.payloadLen:])
	return newFrame(buf[:n], h, sum)
}
