package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder_Fixture(t *testing.T) {
	require := require.New(t)

	e := NewEncoder(8)
	require.Equal(0, e.Offset())

	e.AddU8(123)
	e.AddI8(-123)
	require.Equal(2, e.Offset())
	require.Equal([]byte{123, 133}, e.Bytes())

	e.AddI16(-30000)
	e.AddU16(30000)
	require.Equal(6, e.Offset())
	require.Equal([]byte{123, 133, 208, 138, 48, 117}, e.Bytes())

	e.FillUpToOffset(9, 42)
	require.Equal(9, e.Offset())
	require.Equal([]byte{123, 133, 208, 138, 48, 117, 42, 42, 42}, e.Bytes())

	// a target at or before the current offset is a no-op
	e.FillUpToOffset(9, 0xFF)
	require.Equal(9, e.Offset())

	e.AddBytes([]byte{1, 2, 3, 4, 5, 6})
	require.Equal(15, e.Offset())
	require.Equal([]byte{123, 133, 208, 138, 48, 117, 42, 42, 42, 1, 2, 3, 4, 5, 6}, e.Bytes())

	e.AddI32(-30000000)
	e.AddU32(30000000)
	require.Equal(23, e.Offset())
	require.Equal([]byte{128, 60, 54, 254, 0b10000000, 0b11000011, 0b11001001, 0b00000001}, e.Bytes()[15:])

	e.AddI64(-30000000010)
	e.AddU64(30000000010)
	require.Equal(39, e.Offset())
	require.Equal([]byte{
		246, 83, 220, 3, 249, 255, 255, 255,
		0b00001010, 0b10101100, 0b00100011, 0b11111100, 0b00000110, 0, 0, 0,
	}, e.Bytes()[23:])
}

func TestEncoder_Floats(t *testing.T) {
	require := require.New(t)

	e := NewEncoder(16)
	e.AddF32(float32(math.Inf(1)))
	e.AddF64(math.Inf(-1))

	d := NewDecoder(e.Bytes())
	require.True(math.IsInf(float64(d.FetchF32()), 1))
	require.True(math.IsInf(d.FetchF64(), -1))

	e = NewEncoder(16)
	e.AddF32(float32(math.NaN()))
	e.AddF64(math.NaN())

	d = NewDecoder(e.Bytes())
	require.True(math.IsNaN(float64(d.FetchF32())))
	require.True(math.IsNaN(d.FetchF64()))

	e = NewEncoder(16)
	e.AddF64(math.Copysign(0, -1))

	d = NewDecoder(e.Bytes())
	v := d.FetchF64()
	require.Equal(0.0, v)
	require.True(math.Signbit(v))
}
