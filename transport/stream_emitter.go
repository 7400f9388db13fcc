package transport

import "github.com/trigrass2/popcop/crc32c"

// Sink accepts one byte of emitted frame output. It is the byte sink
// collaborator named by the protocol: a UART write, a buffered channel
// push, anything that can fail.
type Sink func(b byte) error

// StreamEmitter is an append-only frame sink: push payload bytes in with
// Write/WriteBytes, then call Close to append the type code, the CRC-32C
// and the closing delimiter.
//
// Go has no destructors, so the "scoped release" the protocol describes
// is modeled explicitly: callers must arrange for exactly one of Close or
// Abort to run on every exit path, typically with `defer`. Closing twice,
// or aborting after closing, is a no-op.
type StreamEmitter struct {
	sink     Sink
	typeCode byte
	crc      crc32c.Engine
	closed   bool
}

// NewStreamEmitter writes the opening delimiter to sink and returns an
// emitter ready to accept payload bytes for typeCode.
func NewStreamEmitter(typeCode byte, sink Sink) (*StreamEmitter, error) {
	se := &StreamEmitter{sink: sink, typeCode: typeCode}
	se.crc.Reset()

	if err := sink(FrameDelimiter); err != nil {
		return nil, err
	}

	return se, nil
}

// Write pushes one payload byte into the frame, escaping it as needed
// and folding it into the running CRC.
func (se *StreamEmitter) Write(b byte) error {
	se.crc.Add(b)

	return se.writeEscaped(b)
}

// WriteBytes pushes every byte of data into the frame, in order.
func (se *StreamEmitter) WriteBytes(data []byte) error {
	for _, b := range data {
		if err := se.Write(b); err != nil {
			return err
		}
	}

	return nil
}

func (se *StreamEmitter) writeEscaped(b byte) error {
	if b == FrameDelimiter || b == EscapeCharacter {
		if err := se.sink(EscapeCharacter); err != nil {
			return err
		}

		return se.sink(b ^ escapeXOR)
	}

	return se.sink(b)
}

// Close finalizes the frame by writing the type code, the four
// little-endian CRC-32C bytes and the closing delimiter, each escaped as
// needed. It is idempotent.
func (se *StreamEmitter) Close() error {
	if se.closed {
		return nil
	}
	se.closed = true

	se.crc.Add(se.typeCode)
	if err := se.writeEscaped(se.typeCode); err != nil {
		return err
	}

	crcVal := se.crc.Value()
	for i := 0; i < 4; i++ {
		if err := se.writeEscaped(byte(crcVal >> (8 * i))); err != nil {
			return err
		}
	}

	return se.sink(FrameDelimiter)
}

// Abort abandons the frame without a type code or CRC, writing only the
// closing delimiter. A receiving Parser sees the partial body as
// Extraneous rather than a Frame. It is idempotent and mutually exclusive
// with Close — whichever is called first wins.
func (se *StreamEmitter) Abort() error {
	if se.closed {
		return nil
	}
	se.closed = true

	return se.sink(FrameDelimiter)
}
