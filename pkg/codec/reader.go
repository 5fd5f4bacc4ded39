package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ReaderStats counts what a Reader has consumed.
type ReaderStats struct {
	Frames       uint64            // frames returned
	SkippedBytes uint64            // bytes discarded while searching for a start marker
	Dropped      map[string]uint64 // rejected frames by Reason
}

// Reader extracts validated frames from a byte stream. Corrupt or unknown
// frames are dropped whole and the search resumes one byte after the
// rejected start marker.
type Reader struct {
	r      *bufio.Reader
	lookup SchemaLookup
	stats  ReaderStats

	// OnDrop, when set, is called for every rejected frame with the reason
	// and the raw bytes. raw is only valid during the call.
	OnDrop func(err error, raw []byte)
}

// NewReader returns a Reader validating frames against lookup.
func NewReader(r io.Reader, lookup SchemaLookup) *Reader {
	return &Reader{
		r:      bufio.NewReaderSize(r, 4*MaxFrameLen),
		lookup: lookup,
		stats:  ReaderStats{Dropped: make(map[string]uint64)},
	}
}

// Next returns the next valid frame. Only I/O errors are returned; io.EOF
// marks the end of the stream. A frame cut short by the end of the stream is
// dropped as truncated and the remaining bytes are still searched.
func (r *Reader) Next() (*Frame, error) {
	for {
		marker, err := r.r.Peek(1)
		if err != nil {
			return nil, err
		}
		if marker[0] != MagicV2 && marker[0] != MagicV1 {
			r.skip(1)
			continue
		}

		head, err := r.r.Peek(3)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		n, err := FrameLen(head)
		if err != nil {
			r.drop(err, head)
			continue
		}

		data, err := r.r.Peek(n)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			r.drop(fmt.Errorf("%w: stream ended after %d of %d bytes", ErrShortFrame, len(data), n), data)
			continue
		}

		f, err := Parse(data, r.lookup)
		if err != nil {
			r.drop(err, data)
			continue
		}
		if _, err := r.r.Discard(n); err != nil {
			return nil, err
		}
		r.stats.Frames++
		return f, nil
	}
}

// Stats returns a snapshot of the reader counters.
func (r *Reader) Stats() ReaderStats {
	out := r.stats
	out.Dropped = make(map[string]uint64, len(r.stats.Dropped))
	for k, v := range r.stats.Dropped {
		out.Dropped[k] = v
	}
	return out
}

func (r *Reader) drop(err error, raw []byte) {
	r.stats.Dropped[Reason(err)]++
	if r.OnDrop != nil {
		r.OnDrop(err, raw)
	}
	// Resync one byte past the rejected marker.
	_, _ = r.r.Discard(1)
}

func (r *Reader) skip(n int) {
	discarded, _ := r.r.Discard(n)
	r.stats.SkippedBytes += uint64(discarded)
}
