package transport

import (
	"encoding/binary"

	"github.com/trigrass2/popcop/crc32c"
)

// BufferedEmitter produces the exact wire bytes of one frame, one byte at
// a time, from a (type_code, payload) pair computed up front.
//
// The zero value is not usable; construct with NewBufferedEmitter.
type BufferedEmitter struct {
	body []byte // payload ‖ type_code ‖ crc(LE), pre-escape
	pos  int    // index into body already consumed

	escapedPending     byte // pending second byte of an escape pair
	haveEscapedPending bool

	emittedOpen bool
	done        bool
}

// NewBufferedEmitter builds an emitter for a frame carrying typeCode and
// payload. It returns ErrFrameTooLarge if payload is longer than maxPayload.
func NewBufferedEmitter(typeCode byte, payload []byte, maxPayload int) (*BufferedEmitter, error) {
	if len(payload) > maxPayload {
		return nil, ErrFrameTooLarge
	}

	body := make([]byte, len(payload)+headerSize)
	copy(body, payload)
	body[len(payload)] = typeCode
	binary.LittleEndian.PutUint32(body[len(payload)+1:], crc32c.Checksum(body[:len(payload)+1]))

	return &BufferedEmitter{body: body}, nil
}

// Next returns the next byte of the framed output and advances the
// emitter's internal cursor. Calling Next after Finished reports true is
// undefined; callers must check Finished first.
func (e *BufferedEmitter) Next() byte {
	if e.haveEscapedPending {
		e.haveEscapedPending = false

		return e.escapedPending
	}

	if !e.emittedOpen {
		e.emittedOpen = true

		return FrameDelimiter
	}

	if e.pos < len(e.body) {
		b := e.body[e.pos]
		e.pos++

		if b == FrameDelimiter || b == EscapeCharacter {
			e.haveEscapedPending = true
			e.escapedPending = b ^ escapeXOR

			return EscapeCharacter
		}

		return b
	}

	e.done = true

	return FrameDelimiter
}

// Finished reports whether every byte of the frame, including the closing
// delimiter, has already been returned by Next.
func (e *BufferedEmitter) Finished() bool {
	return e.done
}

// Bytes drains the emitter and returns the complete framed byte sequence.
// It is a convenience wrapper around repeated calls to Next; after Bytes
// returns, Finished reports true.
func (e *BufferedEmitter) Bytes() []byte {
	out := make([]byte, 0, len(e.body)+2)
	for !e.Finished() {
		out = append(out, e.Next())
	}

	return out
}
