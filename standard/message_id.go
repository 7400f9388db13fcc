// Package standard implements the fixed-schema messages exchanged between
// an embedded endpoint and a host tool: identification, register read/write,
// register discovery, device management commands, and bootloader status and
// image transfer. Every message type encodes a 2-byte little-endian
// MessageID header followed by a fixed (or fixed-plus-bounded-variable)
// body, using the wire package's presentation codec.
package standard

import "github.com/trigrass2/popcop/wire"

// MessageID identifies the schema of a standard message body. It is encoded
// as the first two bytes of every standard message, little-endian.
type MessageID uint16

const (
	MessageIDEndpointInfo MessageID = iota
	MessageIDNodeInfo
	MessageIDRegisterDataRequest
	MessageIDRegisterDataResponse
	MessageIDRegisterDiscoveryRequest
	MessageIDRegisterDiscoveryResponse
	MessageIDDeviceManagementCommandRequest
	MessageIDDeviceManagementCommandResponse
	MessageIDBootloaderStatusRequest
	MessageIDBootloaderStatusResponse
	MessageIDBootloaderImageDataRequest
	MessageIDBootloaderImageDataResponse
)

func (id MessageID) String() string {
	switch id {
	case MessageIDEndpointInfo:
		return "EndpointInfo"
	case MessageIDNodeInfo:
		return "NodeInfo"
	case MessageIDRegisterDataRequest:
		return "RegisterDataRequest"
	case MessageIDRegisterDataResponse:
		return "RegisterDataResponse"
	case MessageIDRegisterDiscoveryRequest:
		return "RegisterDiscoveryRequest"
	case MessageIDRegisterDiscoveryResponse:
		return "RegisterDiscoveryResponse"
	case MessageIDDeviceManagementCommandRequest:
		return "DeviceManagementCommandRequest"
	case MessageIDDeviceManagementCommandResponse:
		return "DeviceManagementCommandResponse"
	case MessageIDBootloaderStatusRequest:
		return "BootloaderStatusRequest"
	case MessageIDBootloaderStatusResponse:
		return "BootloaderStatusResponse"
	case MessageIDBootloaderImageDataRequest:
		return "BootloaderImageDataRequest"
	case MessageIDBootloaderImageDataResponse:
		return "BootloaderImageDataResponse"
	default:
		return "Unknown"
	}
}

// HeaderSize is the width, in bytes, of the message ID header that prefixes
// every standard message body.
const HeaderSize = 2

// MaxNameLen is the largest length-prefixed register name the decoders
// accept. The encoders do not check it.
const MaxNameLen = 93

func encodeHeader(enc *wire.Encoder, id MessageID) {
	enc.AddU16(uint16(id))
}

// decodeHeader reads the 2-byte message ID header and reports whether it
// matches want.
func decodeHeader(dec *wire.Decoder, want MessageID) bool {
	if dec.Remaining() < HeaderSize {
		return false
	}
	return MessageID(dec.FetchU16()) == want
}
