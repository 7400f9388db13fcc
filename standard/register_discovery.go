package standard

import "github.com/trigrass2/popcop/wire"

const (
	RegisterDiscoveryRequestEncodedSize = HeaderSize + 2

	RegisterDiscoveryResponseMinEncodedSize = HeaderSize + 2 + 1
	RegisterDiscoveryResponseMaxEncodedSize = HeaderSize + 2 + 1 + MaxNameLen
)

// RegisterDiscoveryRequestMessage asks an endpoint to name the register at
// the given index, letting a host enumerate every register an endpoint
// exposes without knowing their names in advance.
type RegisterDiscoveryRequestMessage struct {
	Index uint16
}

func (m RegisterDiscoveryRequestMessage) ID() MessageID { return MessageIDRegisterDiscoveryRequest }

func (m RegisterDiscoveryRequestMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDRegisterDiscoveryRequest)
	enc.AddU16(m.Index)
}

func TryDecodeRegisterDiscoveryRequest(data []byte) (RegisterDiscoveryRequestMessage, bool) {
	var m RegisterDiscoveryRequestMessage
	if len(data) > RegisterDiscoveryRequestEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDRegisterDiscoveryRequest) {
		return m, false
	}
	m.Index = dec.FetchU16()
	return m, true
}

// RegisterDiscoveryResponseMessage names the register at the requested
// index. An empty Name indicates no register exists at that index.
type RegisterDiscoveryResponseMessage struct {
	Index uint16
	Name  string
}

func (m RegisterDiscoveryResponseMessage) ID() MessageID { return MessageIDRegisterDiscoveryResponse }

func (m RegisterDiscoveryResponseMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDRegisterDiscoveryResponse)
	enc.AddU16(m.Index)
	enc.AddU8(uint8(len(m.Name)))
	enc.AddBytes([]byte(m.Name))
}

func TryDecodeRegisterDiscoveryResponse(data []byte) (RegisterDiscoveryResponseMessage, bool) {
	var m RegisterDiscoveryResponseMessage
	if len(data) > RegisterDiscoveryResponseMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDRegisterDiscoveryResponse) {
		return m, false
	}
	if dec.Remaining() < 2 {
		return m, false
	}
	m.Index = dec.FetchU16()
	if dec.Remaining() < 1 {
		return m, false
	}
	nameLen := int(dec.FetchU8())
	if nameLen > MaxNameLen || dec.Remaining() < nameLen {
		return m, false
	}
	m.Name = string(dec.FetchBytes(nameLen))
	return m, true
}
