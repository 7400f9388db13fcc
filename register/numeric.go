package register

import (
	"encoding/binary"
	"math"
)

// NewI64 returns an I64 Value. It returns ErrValueTooLarge if values is
// longer than MaxI64Len.
func NewI64(values []int64) (Value, error) {
	if len(values) > MaxI64Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindI64}
	for i, x := range values {
		binary.LittleEndian.PutUint64(v.data[i*8:], uint64(x))
	}
	v.n = len(values) * 8

	return v, nil
}

// I64 returns v's elements and true if v holds an I64 value.
func (v Value) I64() ([]int64, bool) {
	if v.kind != KindI64 {
		return nil, false
	}

	out := make([]int64, v.n/8)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(v.data[i*8:]))
	}

	return out, true
}

// NewI32 returns an I32 Value. It returns ErrValueTooLarge if values is
// longer than MaxI32Len.
func NewI32(values []int32) (Value, error) {
	if len(values) > MaxI32Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindI32}
	for i, x := range values {
		binary.LittleEndian.PutUint32(v.data[i*4:], uint32(x))
	}
	v.n = len(values) * 4

	return v, nil
}

// I32 returns v's elements and true if v holds an I32 value.
func (v Value) I32() ([]int32, bool) {
	if v.kind != KindI32 {
		return nil, false
	}

	out := make([]int32, v.n/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(v.data[i*4:]))
	}

	return out, true
}

// NewI16 returns an I16 Value. It returns ErrValueTooLarge if values is
// longer than MaxI16Len.
func NewI16(values []int16) (Value, error) {
	if len(values) > MaxI16Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindI16}
	for i, x := range values {
		binary.LittleEndian.PutUint16(v.data[i*2:], uint16(x))
	}
	v.n = len(values) * 2

	return v, nil
}

// I16 returns v's elements and true if v holds an I16 value.
func (v Value) I16() ([]int16, bool) {
	if v.kind != KindI16 {
		return nil, false
	}

	out := make([]int16, v.n/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(v.data[i*2:]))
	}

	return out, true
}

// NewI8 returns an I8 Value. It returns ErrValueTooLarge if values is
// longer than MaxI8Len.
func NewI8(values []int8) (Value, error) {
	if len(values) > MaxI8Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindI8}
	for i, x := range values {
		v.data[i] = byte(x)
	}
	v.n = len(values)

	return v, nil
}

// I8 returns v's elements and true if v holds an I8 value.
func (v Value) I8() ([]int8, bool) {
	if v.kind != KindI8 {
		return nil, false
	}

	out := make([]int8, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = int8(v.data[i])
	}

	return out, true
}

// NewU64 returns a U64 Value. It returns ErrValueTooLarge if values is
// longer than MaxU64Len.
func NewU64(values []uint64) (Value, error) {
	if len(values) > MaxU64Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindU64}
	for i, x := range values {
		binary.LittleEndian.PutUint64(v.data[i*8:], x)
	}
	v.n = len(values) * 8

	return v, nil
}

// U64 returns v's elements and true if v holds a U64 value.
func (v Value) U64() ([]uint64, bool) {
	if v.kind != KindU64 {
		return nil, false
	}

	out := make([]uint64, v.n/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(v.data[i*8:])
	}

	return out, true
}

// NewU32 returns a U32 Value. It returns ErrValueTooLarge if values is
// longer than MaxU32Len.
func NewU32(values []uint32) (Value, error) {
	if len(values) > MaxU32Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindU32}
	for i, x := range values {
		binary.LittleEndian.PutUint32(v.data[i*4:], x)
	}
	v.n = len(values) * 4

	return v, nil
}

// U32 returns v's elements and true if v holds a U32 value.
func (v Value) U32() ([]uint32, bool) {
	if v.kind != KindU32 {
		return nil, false
	}

	out := make([]uint32, v.n/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(v.data[i*4:])
	}

	return out, true
}

// NewU16 returns a U16 Value. It returns ErrValueTooLarge if values is
// longer than MaxU16Len.
func NewU16(values []uint16) (Value, error) {
	if len(values) > MaxU16Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindU16}
	for i, x := range values {
		binary.LittleEndian.PutUint16(v.data[i*2:], x)
	}
	v.n = len(values) * 2

	return v, nil
}

// U16 returns v's elements and true if v holds a U16 value.
func (v Value) U16() ([]uint16, bool) {
	if v.kind != KindU16 {
		return nil, false
	}

	out := make([]uint16, v.n/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(v.data[i*2:])
	}

	return out, true
}

// NewU8 returns a U8 Value. It returns ErrValueTooLarge if values is
// longer than MaxU8Len.
func NewU8(values []uint8) (Value, error) {
	if len(values) > MaxU8Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindU8}
	v.n = copy(v.data[:], values)

	return v, nil
}

// U8 returns a copy of v's elements and true if v holds a U8 value.
func (v Value) U8() ([]uint8, bool) {
	if v.kind != KindU8 {
		return nil, false
	}

	out := make([]uint8, v.n)
	copy(out, v.data[:v.n])

	return out, true
}

// NewF64 returns an F64 Value. It returns ErrValueTooLarge if values is
// longer than MaxF64Len.
func NewF64(values []float64) (Value, error) {
	if len(values) > MaxF64Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindF64}
	for i, x := range values {
		binary.LittleEndian.PutUint64(v.data[i*8:], math.Float64bits(x))
	}
	v.n = len(values) * 8

	return v, nil
}

// F64 returns v's elements and true if v holds an F64 value.
func (v Value) F64() ([]float64, bool) {
	if v.kind != KindF64 {
		return nil, false
	}

	out := make([]float64, v.n/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(v.data[i*8:]))
	}

	return out, true
}

// NewF32 returns an F32 Value. It returns ErrValueTooLarge if values is
// longer than MaxF32Len.
func NewF32(values []float32) (Value, error) {
	if len(values) > MaxF32Len {
		return Value{}, ErrValueTooLarge
	}

	v := Value{kind: KindF32}
	for i, x := range values {
		binary.LittleEndian.PutUint32(v.data[i*4:], math.Float32bits(x))
	}
	v.n = len(values) * 4

	return v, nil
}

// F32 returns v's elements and true if v holds an F32 value.
func (v Value) F32() ([]float32, bool) {
	if v.kind != KindF32 {
		return nil, false
	}

	out := make([]float32, v.n/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(v.data[i*4:]))
	}

	return out, true
}
