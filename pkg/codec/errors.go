package codec

import "errors"

// Errors
var (
	ErrChecksumMismatch  = &CodecError{"checksum mismatch"}
	ErrLengthOutOfRange  = &CodecError{"payload length out of range"}
	ErrUnknownMessageID  = &CodecError{"unknown message id"}
	ErrBadMagic          = &CodecError{"bad start marker"}
	ErrShortFrame        = &CodecError{"frame too short"}
	ErrTrailingBytes     = &CodecError{"trailing bytes after frame"}
	ErrIncompatibleFlags = &CodecError{"unsupported incompatibility flags"}
	ErrMessageMismatch   = &CodecError{"frame carries a different message"}
	ErrUnknownField      = &CodecError{"unknown field"}
	ErrInvalidValue      = &CodecError{"invalid field value"}
)

// CodecError represents a codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}

// Reason returns a short label for a frame rejection, suitable for counters.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrChecksumMismatch):
		return "checksum"
	case errors.Is(err, ErrLengthOutOfRange):
		return "length"
	case errors.Is(err, ErrUnknownMessageID):
		return "unknown_id"
	case errors.Is(err, ErrBadMagic):
		return "magic"
	case errors.Is(err, ErrShortFrame), errors.Is(err, ErrTrailingBytes):
		return "truncated"
	case errors.Is(err, ErrIncompatibleFlags):
		return "incompat_flags"
	}
	return "other"
}
