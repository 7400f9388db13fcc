package standard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trigrass2/popcop/wire"
)

func encodeMessage(t *testing.T, m interface {
	Encode(enc *wire.Encoder)
}, capacity int) []byte {
	t.Helper()
	enc := wire.NewEncoder(capacity)
	m.Encode(enc)
	return enc.Bytes()
}

func TestEndpointInfoMessage_Fixture(t *testing.T) {
	require := require.New(t)

	var msg EndpointInfoMessage
	msg.SoftwareVersion.ImageCRC = 0xFFDEBC9A78563412
	msg.SoftwareVersion.ImageCRCPresent = true
	msg.SoftwareVersion.VCSCommitID = 0xDEADBEEF
	msg.SoftwareVersion.BuildTimestampUTC = 0xBADF00D2
	msg.SoftwareVersion.Major = 1
	msg.SoftwareVersion.Minor = 2
	msg.SoftwareVersion.ReleaseBuild = true
	msg.SoftwareVersion.DirtyBuild = true
	msg.HardwareVersion.Major = 3
	msg.HardwareVersion.Minor = 4
	msg.Mode = ModeNormal
	msg.GloballyUniqueID = [16]byte{
		0x10, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	msg.EndpointName = "Hello!"
	msg.EndpointDescription = "Space!"
	msg.BuildEnvironmentDescription = "upyachka"
	msg.RuntimeEnvironmentDescription = "RUNTIME!"
	msg.CertificateOfAuthenticity = []byte{1, 2, 3, 4}

	require.False(msg.IsRequest())
	require.True(EndpointInfoMessage{}.IsRequest())

	encoded := encodeMessage(t, msg, EndpointInfoMaxEncodedSize)
	require.Len(encoded, EndpointInfoMinEncodedSize+4)

	want := []byte{0x00, 0x00}
	want = append(want, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xFF)
	want = append(want, 0xEF, 0xBE, 0xAD, 0xDE)
	want = append(want, 0xD2, 0x00, 0xDF, 0xBA)
	want = append(want, 0x01, 0x02, 0x03, 0x04, 0x07, 0x00, 0x00, 0x00)
	want = append(want, msg.GloballyUniqueID[:]...)
	want = append(want, fixedASCII("Hello!", endpointInfoNameLen)...)
	want = append(want, fixedASCII("Space!", endpointInfoNameLen)...)
	want = append(want, fixedASCII("upyachka", endpointInfoNameLen)...)
	want = append(want, fixedASCII("RUNTIME!", endpointInfoNameLen)...)
	want = append(want, 1, 2, 3, 4)
	require.Equal(want, encoded)

	m2, ok := TryDecodeEndpointInfo(encoded)
	require.True(ok)
	require.Equal(encoded, encodeMessage(t, m2, EndpointInfoMaxEncodedSize))

	t.Run("invalid mode fails", func(t *testing.T) {
		bad := append([]byte(nil), encoded...)
		bad[2+21] = 123
		_, ok := TryDecodeEndpointInfo(bad)
		require.False(ok)
	})

	t.Run("mismatched message ID fails", func(t *testing.T) {
		bad := append([]byte(nil), encoded...)
		bad[0] = 123
		_, ok := TryDecodeEndpointInfo(bad)
		require.False(ok)
	})

	t.Run("truncated at fixed boundary decodes as request", func(t *testing.T) {
		short := encoded[:EndpointInfoMinEncodedSize]
		m, ok := TryDecodeEndpointInfo(short)
		require.True(ok)
		require.True(m.IsRequest())
	})

	t.Run("data past max encoded size fails", func(t *testing.T) {
		tooLong := append(append([]byte(nil), encoded...), make([]byte, 400)...)
		_, ok := TryDecodeEndpointInfo(tooLong)
		require.False(ok)
		_, ok = TryDecodeEndpointInfo(encoded)
		require.True(ok)
	})

	t.Run("flags round-trip", func(t *testing.T) {
		m, ok := TryDecodeEndpointInfo(encoded)
		require.True(ok)
		require.True(m.SoftwareVersion.ImageCRCPresent)
		require.True(m.SoftwareVersion.ReleaseBuild)
		require.True(m.SoftwareVersion.DirtyBuild)

		cleared := append([]byte(nil), encoded...)
		cleared[2+20] = 0
		m, ok = TryDecodeEndpointInfo(cleared)
		require.True(ok)
		require.False(m.SoftwareVersion.ImageCRCPresent)
		require.False(m.SoftwareVersion.ReleaseBuild)
		require.False(m.SoftwareVersion.DirtyBuild)
	})
}

func fixedASCII(s string, width int) []byte {
	out := make([]byte, width)
	copy(out, s)
	return out
}

func TestNodeInfoMessage_SharesSchemaWithDifferentID(t *testing.T) {
	require := require.New(t)

	var msg NodeInfoMessage
	msg.EndpointName = "node"
	encoded := encodeMessage(t, msg, NodeInfoMaxEncodedSize)
	require.Equal(byte(MessageIDNodeInfo), encoded[0])

	_, ok := TryDecodeEndpointInfo(encoded)
	require.False(ok, "a NodeInfo-tagged frame must not decode as EndpointInfo")

	m2, ok := TryDecodeNodeInfo(encoded)
	require.True(ok)
	require.Equal("node", m2.EndpointName)
}
