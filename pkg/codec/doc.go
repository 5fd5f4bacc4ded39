// Package codec packs and unpacks MAVLink frames.
//
// The codec turns typed telemetry and command records into compact,
// checksummed frames for lossy radio links and validates them on the way
// back. It does no I/O of its own: callers hand it byte slices, or an
// io.Reader already connected to a link.
//
// # Frame Format
//
// MAVLink 2 frames are laid out as:
//
//	[0xFD][len][incompat][compat][seq][sysid][compid][msgid(3)][payload(len)][checksum(2)][signature(13)?]
//
// MAVLink 1 frames use a shorter header with an 8-bit message id:
//
//	[0xFE][len][seq][sysid][compid][msgid][payload(len)][checksum(2)]
//
// All multi-byte values are little-endian.
//
// # Checksum
//
// The checksum is CRC-16/MCRF4XX over every header byte after the start
// marker, the payload, and finally the crcExtra seed of the message schema.
// Two endpoints with different layouts for the same message id compute
// different checksums and reject each other's frames.
//
// # Payload Trimming
//
// Trailing zero bytes of a v2 payload are not transmitted, down to the
// schema's minimum length. Receivers accept any payload between the minimum
// and full length and read the missing bytes as zero, so messages can gain
// extension fields without breaking older peers.
//
// # Usage
//
//	var ch codec.Channel
//	buf := make([]byte, codec.MaxFrameLen)
//	n := ch.Pack(1, 1, buf, &openhd.OpenhdAirLoad{Cpuload: 42, Temp: 55})
//
//	frame, err := codec.Parse(buf[:n], dialect)
//	if err != nil {
//	    return err // checksum, length or unknown id: drop the frame
//	}
//	var load openhd.OpenhdAirLoad
//	_ = codec.Decode(frame, &load)
//
// # Error Handling
//
// Rejections are reported with the sentinel errors ErrChecksumMismatch,
// ErrLengthOutOfRange and ErrUnknownMessageID, plus framing errors such as
// ErrBadMagic and ErrShortFrame. Test with errors.Is. None of them is fatal;
// the offending frame is simply discarded.
//
// Packing never fails on field values; numbers wrap to their wire width.
// An output buffer that is too small is a programming error and panics.
//
// # Thread Safety
//
// Parse, Validate and Decode are reentrant. A Channel owns a sequence counter
// and must not be shared between goroutines without external locking.
package codec
