package standard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_DispatchesKnownMessageTypes(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()

	reqMsg := RegisterDiscoveryRequestMessage{Index: 7}
	encoded := encodeMessage(t, reqMsg, RegisterDiscoveryRequestEncodedSize)

	decoded, ok := r.Dispatch(encoded)
	require.True(ok)
	require.Equal(MessageIDRegisterDiscoveryRequest, decoded.ID())

	got, ok := decoded.(RegisterDiscoveryRequestMessage)
	require.True(ok)
	require.Equal(uint16(7), got.Index)
}

func TestRegistry_UnknownMessageIDFails(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	_, ok := r.Dispatch([]byte{0xFF, 0xFF, 0, 0})
	require.False(ok)
}

func TestRegistry_TooShortDataFails(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	_, ok := r.Dispatch([]byte{0})
	require.False(ok)
}

func TestRegistry_RegisterDecoderAddsVendorID(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	var vendorID MessageID = 0xBEEF

	r.RegisterDecoder(vendorID, func(data []byte) (Message, bool) {
		return RegisterDiscoveryRequestMessage{Index: 99}, true
	})

	decoded, ok := r.Dispatch([]byte{byte(vendorID), byte(vendorID >> 8)})
	require.True(ok)
	require.Equal(MessageIDRegisterDiscoveryRequest, decoded.ID())
}
