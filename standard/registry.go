package standard

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Message is satisfied by every standard message type; it lets callers
// handle a decoded message generically (e.g. to log its ID or re-encode it)
// without a type switch over all twelve message types.
type Message interface {
	ID() MessageID
}

// Decoder decodes a single standard message type from a full
// header-plus-body encoding. It follows the TryDecode "present/absent"
// contract: no error is returned, only whether decoding succeeded.
type Decoder func(data []byte) (Message, bool)

// Registry dispatches a raw frame payload to the Decoder registered for its
// message ID. It is safe for concurrent use: a link session's read loop can
// register vendor-specific message IDs while another goroutine dispatches
// incoming frames, grounded on the same concurrent map pattern used to track
// outstanding requests in a session.
type Registry struct {
	decoders *xsync.MapOf[uint16, Decoder]
}

// NewRegistry returns a Registry pre-populated with decoders for all
// twelve standard message types.
func NewRegistry() *Registry {
	r := &Registry{decoders: xsync.NewMapOf[uint16, Decoder]()}
	r.RegisterDecoder(MessageIDEndpointInfo, wrapDecoder(TryDecodeEndpointInfo))
	r.RegisterDecoder(MessageIDNodeInfo, wrapDecoder(TryDecodeNodeInfo))
	r.RegisterDecoder(MessageIDRegisterDataRequest, wrapDecoder(TryDecodeRegisterDataRequest))
	r.RegisterDecoder(MessageIDRegisterDataResponse, wrapDecoder(TryDecodeRegisterDataResponse))
	r.RegisterDecoder(MessageIDRegisterDiscoveryRequest, wrapDecoder(TryDecodeRegisterDiscoveryRequest))
	r.RegisterDecoder(MessageIDRegisterDiscoveryResponse, wrapDecoder(TryDecodeRegisterDiscoveryResponse))
	r.RegisterDecoder(MessageIDDeviceManagementCommandRequest, wrapDecoder(TryDecodeDeviceManagementCommandRequest))
	r.RegisterDecoder(MessageIDDeviceManagementCommandResponse, wrapDecoder(TryDecodeDeviceManagementCommandResponse))
	r.RegisterDecoder(MessageIDBootloaderStatusRequest, wrapDecoder(TryDecodeBootloaderStatusRequest))
	r.RegisterDecoder(MessageIDBootloaderStatusResponse, wrapDecoder(TryDecodeBootloaderStatusResponse))
	r.RegisterDecoder(MessageIDBootloaderImageDataRequest, wrapDecoder(TryDecodeBootloaderImageDataRequest))
	r.RegisterDecoder(MessageIDBootloaderImageDataResponse, wrapDecoder(TryDecodeBootloaderImageDataResponse))
	return r
}

// wrapDecoder adapts one of this package's concretely-typed TryDecodeX
// functions to the generic Decoder signature.
func wrapDecoder[M Message](f func([]byte) (M, bool)) Decoder {
	return func(data []byte) (Message, bool) {
		m, ok := f(data)
		if !ok {
			return nil, false
		}
		return m, true
	}
}

// RegisterDecoder adds or replaces the decoder used for id, letting a
// caller extend the registry with vendor-specific message IDs without
// forking this package.
func (r *Registry) RegisterDecoder(id MessageID, dec Decoder) {
	r.decoders.Store(uint16(id), dec)
}

// Dispatch looks up data's message ID header and invokes its registered
// decoder. It reports false if the header is missing, no decoder is
// registered for that ID, or the decoder itself rejects the payload.
func (r *Registry) Dispatch(data []byte) (Message, bool) {
	if len(data) < HeaderSize {
		return nil, false
	}
	id := uint16(data[0]) | uint16(data[1])<<8
	dec, ok := r.decoders.Load(id)
	if !ok {
		return nil, false
	}
	return dec(data)
}
