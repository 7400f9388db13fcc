package standard

import (
	"github.com/trigrass2/popcop/register"
	"github.com/trigrass2/popcop/wire"
)

const (
	// RegisterDataRequestMinEncodedSize is a header, a zero-length name,
	// and an Empty register value tag.
	RegisterDataRequestMinEncodedSize = HeaderSize + 1 + 1
	RegisterDataRequestMaxEncodedSize = HeaderSize + 1 + MaxNameLen + register.MaxEncodedSize
)

// RegisterDataRequestMessage reads or writes a named register. An empty
// Value requests a read; a non-empty Value requests a write.
type RegisterDataRequestMessage struct {
	Name  string
	Value register.Value
}

func (m RegisterDataRequestMessage) ID() MessageID { return MessageIDRegisterDataRequest }

func (m RegisterDataRequestMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDRegisterDataRequest)
	enc.AddU8(uint8(len(m.Name)))
	enc.AddBytes([]byte(m.Name))
	m.Value.Encode(enc)
}

// TryDecodeRegisterDataRequest decodes a RegisterDataRequestMessage from
// data. Unlike EndpointInfoMessage, the name length and name bytes are
// validated strictly: a name length that claims more bytes than remain in
// data is a decode failure, not a zero-filled truncation.
func TryDecodeRegisterDataRequest(data []byte) (RegisterDataRequestMessage, bool) {
	var m RegisterDataRequestMessage
	if len(data) > RegisterDataRequestMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDRegisterDataRequest) {
		return m, false
	}
	// A header-only request is the short form: the missing name length
	// fetches as zero and the missing value tag decodes as Empty.
	nameLen := int(dec.FetchU8())
	if nameLen > MaxNameLen {
		return m, false
	}
	if dec.Remaining() < nameLen {
		return m, false
	}
	m.Name = string(dec.FetchBytes(nameLen))

	value, ok := register.TryDecode(dec)
	if !ok {
		return m, false
	}
	m.Value = value
	return m, true
}

const (
	RegisterDataResponseMinEncodedSize = HeaderSize + 8 + 1 + 1 + 1
	RegisterDataResponseMaxEncodedSize = HeaderSize + 8 + 1 + 1 + MaxNameLen + register.MaxEncodedSize
)

// RegisterDataResponseFlags describes attributes of the register a
// RegisterDataResponseMessage reports on.
type RegisterDataResponseFlags struct {
	Mutable    bool
	Persistent bool
}

// RegisterDataResponseMessage reports the current value of a named
// register, along with when it was last observed and whether it can be
// written or is persisted across restarts.
type RegisterDataResponseMessage struct {
	Timestamp uint64 // nanoseconds since epoch
	Flags     RegisterDataResponseFlags
	Name      string
	Value     register.Value
}

func (m RegisterDataResponseMessage) ID() MessageID { return MessageIDRegisterDataResponse }

func (m RegisterDataResponseMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDRegisterDataResponse)
	enc.AddU64(m.Timestamp)

	var flags uint8
	if m.Flags.Mutable {
		flags |= 1 << 0
	}
	if m.Flags.Persistent {
		flags |= 1 << 1
	}
	enc.AddU8(flags)

	enc.AddU8(uint8(len(m.Name)))
	enc.AddBytes([]byte(m.Name))
	m.Value.Encode(enc)
}

func TryDecodeRegisterDataResponse(data []byte) (RegisterDataResponseMessage, bool) {
	var m RegisterDataResponseMessage
	if len(data) > RegisterDataResponseMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDRegisterDataResponse) {
		return m, false
	}
	if dec.Remaining() < 9 {
		return m, false
	}
	m.Timestamp = dec.FetchU64()

	flags := dec.FetchU8()
	m.Flags.Mutable = flags&(1<<0) != 0
	m.Flags.Persistent = flags&(1<<1) != 0

	if dec.Remaining() < 1 {
		return m, false
	}
	nameLen := int(dec.FetchU8())
	if nameLen > MaxNameLen || dec.Remaining() < nameLen {
		return m, false
	}
	m.Name = string(dec.FetchBytes(nameLen))

	value, ok := register.TryDecode(dec)
	if !ok {
		return m, false
	}
	m.Value = value
	return m, true
}
