package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoder_RoundTripsEncoder(t *testing.T) {
	require := require.New(t)

	e := NewEncoder(32)
	e.AddU8(123)
	e.AddI8(-123)
	e.AddI16(-30000)
	e.AddU16(30000)
	e.AddI32(-30000000)
	e.AddU32(30000000)
	e.AddI64(-30000000010)
	e.AddU64(30000000010)

	d := NewDecoder(e.Bytes())
	require.Equal(uint8(123), d.FetchU8())
	require.Equal(int8(-123), d.FetchI8())
	require.Equal(int16(-30000), d.FetchI16())
	require.Equal(uint16(30000), d.FetchU16())
	require.Equal(int32(-30000000), d.FetchI32())
	require.Equal(uint32(30000000), d.FetchU32())
	require.Equal(int64(-30000000010), d.FetchI64())
	require.Equal(uint64(30000000010), d.FetchU64())
	require.Equal(0, d.Remaining())
	require.Equal(e.Offset(), d.Offset())
}

func TestDecoder_UnderrunClampsAndZeroFills(t *testing.T) {
	require := require.New(t)

	d := NewDecoder([]byte{0x01, 0x02})
	require.Equal(uint32(0), d.FetchU32())
	require.Equal(0, d.Remaining())
	require.Equal(uint8(0), d.FetchU8())
}

func TestDecoder_FetchBytesZeroPadsOnUnderrun(t *testing.T) {
	require := require.New(t)

	d := NewDecoder([]byte{0xAA, 0xBB})
	got := d.FetchBytes(5)
	require.Equal([]byte{0xAA, 0xBB, 0, 0, 0}, got)
	require.Equal(0, d.Remaining())
}

func TestDecoder_SkipUpToOffset(t *testing.T) {
	require := require.New(t)

	d := NewDecoder([]byte{1, 2, 3, 4, 5})
	d.SkipUpToOffset(3)
	require.Equal(3, d.Offset())
	require.Equal(uint8(4), d.FetchU8())

	// a target at or before the current offset is a no-op
	d.SkipUpToOffset(1)
	require.Equal(4, d.Offset())

	d.SkipUpToOffset(100)
	require.Equal(5, d.Offset())
}

func TestDecoder_FetchASCIIString(t *testing.T) {
	require := require.New(t)

	e := NewEncoder(16)
	e.AddBytes([]byte("hi"))
	e.AddI8(0)
	e.AddU8(0xFF) // trailing byte must not be consumed by the string fetch

	d := NewDecoder(e.Bytes())
	require.Equal("hi", d.FetchASCIIString(16))
	require.Equal(uint8(0xFF), d.FetchU8())
}

func TestDecoder_FetchASCIIStringExactlyFillsCapacityWithoutTerminator(t *testing.T) {
	require := require.New(t)

	e := NewEncoder(8)
	e.AddBytes([]byte("abcd")) // no terminator written: the field is at full capacity

	d := NewDecoder(e.Bytes())
	require.Equal("abcd", d.FetchASCIIString(4))
	require.Equal(0, d.Remaining())
}

func TestDecoder_FetchASCIIStringStopsAtBufferEnd(t *testing.T) {
	require := require.New(t)

	d := NewDecoder([]byte("ab"))
	require.Equal("ab", d.FetchASCIIString(16))
	require.Equal(0, d.Remaining())
}
