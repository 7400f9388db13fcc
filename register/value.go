package register

import (
	"bytes"

	"github.com/trigrass2/popcop/wire"
)

// Value holds exactly one alternative of the RegisterValue union. The
// zero value is Empty and ready to use.
type Value struct {
	kind Kind
	n    int // valid bytes in data
	data [MaxBodySize]byte
}

// Empty returns the Empty alternative.
func Empty() Value {
	return Value{}
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether v holds the Empty alternative.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Encode writes v's tag followed by its body to enc.
func (v Value) Encode(enc *wire.Encoder) {
	enc.AddU8(byte(v.kind))
	enc.AddBytes(v.data[:v.n])
}

// TryDecode reads one Value from dec, consuming the tag and treating
// the remaining bytes in dec's range as the body; at most MaxBodySize of
// them are consumed and kept, and any beyond that stay in dec. A decoder with no
// bytes remaining decodes as Empty, matching a caller that omitted the
// register value entirely. A tag outside the known range is a decode
// failure.
func TryDecode(dec *wire.Decoder) (Value, bool) {
	if dec.Remaining() == 0 {
		return Value{kind: KindEmpty}, true
	}

	tag := dec.FetchU8()
	if tag > byte(KindF32) {
		return Value{}, false
	}

	kind := Kind(tag)
	if kind == KindEmpty {
		return Value{kind: KindEmpty}, true
	}

	n := dec.Remaining()
	if n > MaxBodySize {
		n = MaxBodySize
	}

	v := Value{kind: kind}
	v.n = copy(v.data[:], dec.FetchBytes(n))

	return v, true
}

// Equal reports whether v and other hold the same kind and the same
// encoded body bytes. Float variants compare bitwise, so two NaN
// payloads with differing bit patterns are unequal even though both are
// NaN — callers that only care about NaN-ness should compare the
// decoded slices with math.IsNaN instead.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && bytes.Equal(v.data[:v.n], other.data[:other.n])
}
