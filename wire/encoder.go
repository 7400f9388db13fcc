// Package wire implements the little-endian presentation stream codec:
// a growable Encoder that appends fixed-width fields to a byte buffer,
// and a bounded Decoder that fetches them back out, clamping rather than
// panicking on a truncated buffer.
package wire

import (
	"encoding/binary"
	"math"
)

// Encoder appends primitive fields to an internal buffer in wire order.
// The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder whose buffer starts with the given
// capacity. The capacity is only a hint; the buffer grows as needed.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: make([]byte, 0, capacity)}
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int {
	return len(e.buf)
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Encoder's internal buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// AddU8 appends an unsigned byte.
func (e *Encoder) AddU8(v uint8) {
	e.buf = append(e.buf, v)
}

// AddI8 appends a signed byte, reinterpreted as unsigned on the wire.
func (e *Encoder) AddI8(v int8) {
	e.buf = append(e.buf, byte(v))
}

// AddU16 appends an unsigned 16-bit integer, little-endian.
func (e *Encoder) AddU16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

// AddI16 appends a signed 16-bit integer, little-endian.
func (e *Encoder) AddI16(v int16) {
	e.AddU16(uint16(v))
}

// AddU32 appends an unsigned 32-bit integer, little-endian.
func (e *Encoder) AddU32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// AddI32 appends a signed 32-bit integer, little-endian.
func (e *Encoder) AddI32(v int32) {
	e.AddU32(uint32(v))
}

// AddU64 appends an unsigned 64-bit integer, little-endian.
func (e *Encoder) AddU64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

// AddI64 appends a signed 64-bit integer, little-endian.
func (e *Encoder) AddI64(v int64) {
	e.AddU64(uint64(v))
}

// AddF32 appends the little-endian IEEE-754 bit pattern of v.
func (e *Encoder) AddF32(v float32) {
	e.AddU32(math.Float32bits(v))
}

// AddF64 appends the little-endian IEEE-754 bit pattern of v.
func (e *Encoder) AddF64(v float64) {
	e.AddU64(math.Float64bits(v))
}

// AddBytes appends data verbatim.
func (e *Encoder) AddBytes(data []byte) {
	e.buf = append(e.buf, data...)
}

// FillUpToOffset appends fill bytes until Offset reaches target. It is a
// no-op if the current offset is already at or past target.
func (e *Encoder) FillUpToOffset(target int, fill byte) {
	for len(e.buf) < target {
		e.buf = append(e.buf, fill)
	}
}
