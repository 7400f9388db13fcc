package register

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trigrass2/popcop/wire"
)

func encode(t *testing.T, v Value) []byte {
	t.Helper()
	enc := wire.NewEncoder(MaxEncodedSize)
	v.Encode(enc)
	return enc.Bytes()
}

func TestValue_EmptyIsZeroValue(t *testing.T) {
	require := require.New(t)

	v := Value{}
	require.True(v.IsEmpty())
	require.Equal(KindEmpty, v.Kind())
	require.Equal(Empty(), v)
	require.True(v.Equal(Empty()))
	require.Equal([]byte{0}, encode(t, v))
}

func TestValue_StringEncoding(t *testing.T) {
	require := require.New(t)

	v, err := NewString("1234567")
	require.NoError(err)
	require.Equal([]byte{1, 49, 50, 51, 52, 53, 54, 55}, encode(t, v))

	s, ok := v.String()
	require.True(ok)
	require.Equal("1234567", s)
}

func TestValue_U64FullCapacity(t *testing.T) {
	require := require.New(t)

	values := make([]uint64, MaxU64Len)
	for i := range values {
		values[i] = 0xDEADBEEFBADC0FFE
	}

	v, err := NewU64(values)
	require.NoError(err)

	want := []byte{8}
	for range values {
		want = append(want, 0xFE, 0x0F, 0xDC, 0xBA, 0xEF, 0xBE, 0xAD, 0xDE)
	}
	require.Equal(want, encode(t, v))

	got, ok := v.U64()
	require.True(ok)
	require.Equal(values, got)

	_, err = NewU64(append(values, 0))
	require.ErrorIs(err, ErrValueTooLarge)
}

func TestValue_BooleanEncoding(t *testing.T) {
	require := require.New(t)

	v, err := NewBoolean([]bool{false, true, false, true})
	require.NoError(err)
	require.Equal([]byte{3, 0, 1, 0, 1}, encode(t, v))

	got, ok := v.Boolean()
	require.True(ok)
	require.Equal([]bool{false, true, false, true}, got)
}

func TestValue_UnstructuredEncoding(t *testing.T) {
	require := require.New(t)

	v, err := NewUnstructured([]byte{1, 2, 3, 4, 5})
	require.NoError(err)
	require.Equal([]byte{2, 1, 2, 3, 4, 5}, encode(t, v))
}

func TestTryDecode_Fixtures(t *testing.T) {
	require := require.New(t)

	dec := wire.NewDecoder(nil)
	v, ok := TryDecode(dec)
	require.True(ok, "an empty decoder deduces the Empty alternative")
	require.True(v.IsEmpty())

	dec = wire.NewDecoder([]byte{0})
	v, ok = TryDecode(dec)
	require.True(ok)
	require.True(v.IsEmpty())

	dec = wire.NewDecoder([]byte{0, 1, 2, 3})
	v, ok = TryDecode(dec)
	require.True(ok, "payload is ignored for an Empty register value")
	require.True(v.IsEmpty())

	dec = wire.NewDecoder([]byte{99})
	_, ok = TryDecode(dec)
	require.False(ok, "an out-of-range tag is a decode failure")

	dec = wire.NewDecoder([]byte{1, 48})
	v, ok = TryDecode(dec)
	require.True(ok)
	s, isString := v.String()
	require.True(isString)
	require.Equal("0", s)
}

func TestValue_RoundTripsEveryNumericKind(t *testing.T) {
	require := require.New(t)

	i8, err := NewI8([]int8{-1, 2, -3})
	require.NoError(err)
	i16, err := NewI16([]int16{-1000, 2000})
	require.NoError(err)
	i32, err := NewI32([]int32{-100000, 200000})
	require.NoError(err)
	i64, err := NewI64([]int64{-1, 2})
	require.NoError(err)
	u8, err := NewU8([]uint8{1, 2, 3})
	require.NoError(err)
	u16, err := NewU16([]uint16{1000, 2000})
	require.NoError(err)
	u32, err := NewU32([]uint32{100000, 200000})
	require.NoError(err)
	u64, err := NewU64([]uint64{1, 2})
	require.NoError(err)
	f32, err := NewF32([]float32{1.5, -2.5})
	require.NoError(err)
	f64, err := NewF64([]float64{1.5, -2.5})
	require.NoError(err)

	for _, v := range []Value{i8, i16, i32, i64, u8, u16, u32, u64, f32, f64} {
		enc := wire.NewEncoder(MaxEncodedSize)
		v.Encode(enc)

		dec := wire.NewDecoder(enc.Bytes())
		got, ok := TryDecode(dec)
		require.True(ok)
		require.True(v.Equal(got), v.Kind().String())
	}
}
