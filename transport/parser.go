package transport

import (
	"encoding/binary"

	"github.com/trigrass2/popcop/crc32c"
)

type parserState int

const (
	stateOutsideFrame parserState = iota
	stateInsideFrame
	stateEscapedInsideFrame
)

// Frame is a received, fully validated (type_code, payload) pair.
//
// Payload aliases the Parser's internal buffer and is only valid until the
// next call to Feed on the same Parser.
type Frame struct {
	TypeCode byte
	Payload  []byte
}

// Parser is a byte-fed, self-synchronizing frame deframer.
//
// It is not safe for concurrent use. Construct one Parser per byte stream
// and feed it one byte at a time via Feed.
type Parser struct {
	capacity int // payload capacity C, not counting type_code/CRC
	buf      []byte
	length   int
	state    parserState
	overflow bool
}

// NewParser returns a Parser able to deframe payloads up to capacity
// bytes long. It returns ErrInvalidCapacity if capacity is not positive.
func NewParser(capacity int) (*Parser, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	p := &Parser{
		capacity: capacity,
		buf:      newAlignedBuffer(capacity + headerSize),
	}

	return p, nil
}

// Reset discards all in-progress state, as if the Parser had just been
// constructed.
func (p *Parser) Reset() {
	p.length = 0
	p.state = stateOutsideFrame
	p.overflow = false
}

// Feed processes one byte of the incoming stream and returns at most one
// non-nil result: frame when a complete, CRC-valid frame was just closed,
// or extraneous when bytes that did not form a valid frame are being
// handed back to the caller. Both nil means no output was produced by
// this byte (the Empty case).
//
// The returned frame's Payload and the returned extraneous slice are only
// valid until the next call to Feed.
func (p *Parser) Feed(b byte) (frame *Frame, extraneous []byte) {
	switch p.state {
	case stateOutsideFrame:
		return p.feedOutsideFrame(b)
	case stateEscapedInsideFrame:
		p.state = stateInsideFrame
		return nil, p.appendInsideFrame(b ^ escapeXOR)
	default: // stateInsideFrame
		return p.feedInsideFrame(b)
	}
}

func (p *Parser) feedOutsideFrame(b byte) (*Frame, []byte) {
	if b == FrameDelimiter {
		var flushed []byte
		if p.length > 0 {
			flushed = p.snapshot()
		}
		p.length = 0
		p.state = stateInsideFrame

		return nil, flushed
	}

	if p.length == len(p.buf) {
		flushed := p.snapshot()
		p.length = 0
		p.buf[0] = b
		p.length = 1

		return nil, flushed
	}

	p.buf[p.length] = b
	p.length++

	return nil, nil
}

func (p *Parser) feedInsideFrame(b byte) (*Frame, []byte) {
	switch b {
	case FrameDelimiter:
		return p.finalize()
	case EscapeCharacter:
		p.state = stateEscapedInsideFrame
		return nil, nil
	default:
		return nil, p.appendInsideFrame(b)
	}
}

// appendInsideFrame stores b in the body buffer. Once the buffer fills,
// it flushes the buffered prefix as extraneous output and restarts
// accumulation with b, the same overflow recovery feedOutsideFrame
// uses, so no byte inside an oversized frame is ever dropped — only
// reported as extraneous instead of becoming part of a frame's payload.
func (p *Parser) appendInsideFrame(b byte) []byte {
	if p.length == len(p.buf) {
		flushed := p.snapshot()
		p.overflow = true
		p.length = 0
		p.buf[0] = b
		p.length = 1

		return flushed
	}

	p.buf[p.length] = b
	p.length++

	return nil
}

// finalize handles a closing delimiter while InsideFrame or
// EscapedInsideFrame (the escaped case always re-enters InsideFrame
// before the delimiter is considered, per Feed's dispatch above).
func (p *Parser) finalize() (*Frame, []byte) {
	defer func() {
		p.length = 0
		p.overflow = false
		p.state = stateInsideFrame // the closing delimiter doubles as the next opening one
	}()

	if p.overflow {
		return nil, p.snapshot()
	}

	if p.length < headerSize {
		if p.length == 0 {
			return nil, nil
		}

		return nil, p.snapshot()
	}

	payloadLen := p.length - headerSize
	typeCode := p.buf[payloadLen]
	wireCRC := binary.LittleEndian.Uint32(p.buf[payloadLen+1 : p.length])

	if crc32c.Checksum(p.buf[:payloadLen+1]) != wireCRC {
		return nil, p.snapshot()
	}

	return &Frame{TypeCode: typeCode, Payload: p.buf[:payloadLen]}, nil
}

// snapshot copies the bytes currently held in the body buffer out into a
// freshly allocated slice, so the caller's view survives subsequent
// reuse of the buffer. It is only called on the cold paths (extraneous
// output, overflow recovery), never per received-frame byte.
func (p *Parser) snapshot() []byte {
	out := make([]byte, p.length)
	copy(out, p.buf[:p.length])

	return out
}
