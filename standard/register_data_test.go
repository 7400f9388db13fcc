package standard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trigrass2/popcop/register"
)

var (
	regDataReqIDLo = byte(MessageIDRegisterDataRequest)
	regDataReqIDHi = byte(MessageIDRegisterDataRequest >> 8)
)

func TestRegisterDataRequestMessage_Fixtures(t *testing.T) {
	require := require.New(t)

	var msg RegisterDataRequestMessage
	encoded := encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)
	require.Equal([]byte{regDataReqIDLo, regDataReqIDHi, 0, 0}, encoded)

	msg.Name = "1234567"
	encoded = encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)
	require.Equal([]byte{regDataReqIDLo, regDataReqIDHi, 7, 49, 50, 51, 52, 53, 54, 55, 0}, encoded)

	msg.Name = ""
	v, err := register.NewString("1234567")
	require.NoError(err)
	msg.Value = v
	encoded = encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)
	require.Equal([]byte{regDataReqIDLo, regDataReqIDHi, 0, 1, 49, 50, 51, 52, 53, 54, 55}, encoded)

	msg.Name = "0"
	b, err := register.NewBoolean([]bool{false, true, false, true})
	require.NoError(err)
	msg.Value = b
	encoded = encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)
	require.Equal([]byte{regDataReqIDLo, regDataReqIDHi, 1, 48, 3, 0, 1, 0, 1}, encoded)

	msg.Name = "1"
	u, err := register.NewUnstructured([]byte{1, 2, 3, 4, 5})
	require.NoError(err)
	msg.Value = u
	encoded = encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)
	require.Equal([]byte{regDataReqIDLo, regDataReqIDHi, 1, 49, 2, 1, 2, 3, 4, 5}, encoded)
}

func TestRegisterDataRequestMessage_RoundTrip(t *testing.T) {
	require := require.New(t)

	v, err := register.NewU64(make([]uint64, register.MaxU64Len))
	require.NoError(err)

	msg := RegisterDataRequestMessage{Name: "reg", Value: v}
	encoded := encodeMessage(t, msg, RegisterDataRequestMaxEncodedSize)

	got, ok := TryDecodeRegisterDataRequest(encoded)
	require.True(ok)
	require.Equal("reg", got.Name)
	require.True(v.Equal(got.Value))
}

func TestRegisterDataRequestMessage_Decoding(t *testing.T) {
	require := require.New(t)

	header := []byte{regDataReqIDLo, regDataReqIDHi}

	t.Run("empty decoder yields Empty value", func(t *testing.T) {
		m, ok := TryDecodeRegisterDataRequest(header)
		require.True(ok)
		require.Empty(m.Name)
		require.True(m.Value.IsEmpty())
	})

	t.Run("name length exceeding remaining data fails", func(t *testing.T) {
		_, ok := TryDecodeRegisterDataRequest(append(append([]byte{}, header...), 5, 'a'))
		require.False(ok)
	})

	t.Run("name length exceeding MaxNameLen fails", func(t *testing.T) {
		_, ok := TryDecodeRegisterDataRequest(append(append([]byte{}, header...), 94))
		require.False(ok)
	})

	t.Run("mismatched message ID fails", func(t *testing.T) {
		_, ok := TryDecodeRegisterDataRequest([]byte{123, 0, 0, 0})
		require.False(ok)
	})

	t.Run("out-of-range register tag fails", func(t *testing.T) {
		_, ok := TryDecodeRegisterDataRequest(append(append([]byte{}, header...), 0, 99))
		require.False(ok)
	})
}

func TestRegisterDataResponseMessage_RoundTrip(t *testing.T) {
	require := require.New(t)

	v, err := register.NewI32([]int32{-1, 2, -3})
	require.NoError(err)

	msg := RegisterDataResponseMessage{
		Timestamp: 123456789,
		Flags:     RegisterDataResponseFlags{Mutable: true, Persistent: false},
		Name:      "reg",
		Value:     v,
	}
	encoded := encodeMessage(t, msg, RegisterDataResponseMaxEncodedSize)

	got, ok := TryDecodeRegisterDataResponse(encoded)
	require.True(ok)
	require.Equal(uint64(123456789), got.Timestamp)
	require.True(got.Flags.Mutable)
	require.False(got.Flags.Persistent)
	require.Equal("reg", got.Name)
	require.True(v.Equal(got.Value))
}
