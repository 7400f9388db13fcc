package wire

import (
	"encoding/binary"
	"math"
)

// Decoder fetches primitive fields from a fixed byte range in wire order.
// A fetch that would run past the end of the range never panics: it
// returns the zero value for that field and clamps the offset to the
// end of the range, so length-based parsing of a truncated buffer still
// terminates cleanly.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder over data. data is not copied.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.pos
}

// Remaining returns the number of bytes left to consume.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) take(n int) []byte {
	if d.Remaining() < n {
		d.pos = len(d.data)
		return nil
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b
}

// FetchU8 fetches an unsigned byte.
func (d *Decoder) FetchU8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// FetchI8 fetches a signed byte.
func (d *Decoder) FetchI8() int8 {
	return int8(d.FetchU8())
}

// FetchU16 fetches an unsigned 16-bit integer, little-endian.
func (d *Decoder) FetchU16() uint16 {
	b := d.take(2)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint16(b)
}

// FetchI16 fetches a signed 16-bit integer, little-endian.
func (d *Decoder) FetchI16() int16 {
	return int16(d.FetchU16())
}

// FetchU32 fetches an unsigned 32-bit integer, little-endian.
func (d *Decoder) FetchU32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint32(b)
}

// FetchI32 fetches a signed 32-bit integer, little-endian.
func (d *Decoder) FetchI32() int32 {
	return int32(d.FetchU32())
}

// FetchU64 fetches an unsigned 64-bit integer, little-endian.
func (d *Decoder) FetchU64() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint64(b)
}

// FetchI64 fetches a signed 64-bit integer, little-endian.
func (d *Decoder) FetchI64() int64 {
	return int64(d.FetchU64())
}

// FetchF32 fetches a little-endian IEEE-754 single-precision float.
func (d *Decoder) FetchF32() float32 {
	return math.Float32frombits(d.FetchU32())
}

// FetchF64 fetches a little-endian IEEE-754 double-precision float.
func (d *Decoder) FetchF64() float64 {
	return math.Float64frombits(d.FetchU64())
}

// FetchBytes returns the next count bytes. If fewer than count remain,
// the returned slice is zero-padded to length count and the offset is
// clamped to the end of the range.
func (d *Decoder) FetchBytes(count int) []byte {
	out := make([]byte, count)
	n := copy(out, d.data[d.pos:])
	if n < count {
		d.pos = len(d.data)
	} else {
		d.pos += count
	}

	return out
}

// SkipUpToOffset advances the offset to target, clamped to the end of
// the range. It is a no-op if the offset is already at or past target.
func (d *Decoder) SkipUpToOffset(target int) {
	if target > len(d.data) {
		target = len(d.data)
	}
	if target > d.pos {
		d.pos = target
	}
}

// FetchASCIIString copies characters into a string of at most maxLen
// bytes. It stops when maxLen is reached, when a zero byte is consumed
// (the terminator, which is not stored), or when the range ends. A
// string that exactly fills maxLen is returned without consuming a
// trailing terminator, mirroring an encoder that omits one when the
// field was written at full capacity.
func (d *Decoder) FetchASCIIString(maxLen int) string {
	out := make([]byte, 0, maxLen)

	for len(out) < maxLen && d.Remaining() > 0 {
		b := d.data[d.pos]
		d.pos++

		if b == 0 {
			return string(out)
		}

		out = append(out, b)
	}

	return string(out)
}
