package standard

import "github.com/trigrass2/popcop/wire"

// BootloaderState reports where in the boot sequence an endpoint's
// bootloader currently is.
type BootloaderState uint8

const (
	BootloaderStateNoAppToBoot BootloaderState = iota
	BootloaderStateBootingApplication
	BootloaderStateBootCancelled
	BootloaderStateApplicationRunning
)

func (s BootloaderState) String() string {
	switch s {
	case BootloaderStateNoAppToBoot:
		return "NoAppToBoot"
	case BootloaderStateBootingApplication:
		return "BootingApplication"
	case BootloaderStateBootCancelled:
		return "BootCancelled"
	case BootloaderStateApplicationRunning:
		return "ApplicationRunning"
	default:
		return "Unknown"
	}
}

const BootloaderStatusRequestEncodedSize = HeaderSize + 1

// BootloaderStatusRequestMessage asks the endpoint's bootloader to either
// continue booting the application or wait in the bootloader.
type BootloaderStatusRequestMessage struct {
	DesiredState BootloaderState
}

func (m BootloaderStatusRequestMessage) ID() MessageID { return MessageIDBootloaderStatusRequest }

func (m BootloaderStatusRequestMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDBootloaderStatusRequest)
	enc.AddU8(uint8(m.DesiredState))
}

func TryDecodeBootloaderStatusRequest(data []byte) (BootloaderStatusRequestMessage, bool) {
	var m BootloaderStatusRequestMessage
	if len(data) > BootloaderStatusRequestEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDBootloaderStatusRequest) {
		return m, false
	}
	m.DesiredState = BootloaderState(dec.FetchU8())
	return m, true
}

const BootloaderStatusResponseEncodedSize = HeaderSize + 8 + 8 + 1

// BootloaderStatusResponseMessage reports the bootloader's current state,
// along with a timestamp and an implementation-defined flags word.
type BootloaderStatusResponseMessage struct {
	Timestamp uint64 // nanoseconds since epoch
	Flags     uint64
	State     BootloaderState
}

func (m BootloaderStatusResponseMessage) ID() MessageID { return MessageIDBootloaderStatusResponse }

func (m BootloaderStatusResponseMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDBootloaderStatusResponse)
	enc.AddU64(m.Timestamp)
	enc.AddU64(m.Flags)
	enc.AddU8(uint8(m.State))
}

func TryDecodeBootloaderStatusResponse(data []byte) (BootloaderStatusResponseMessage, bool) {
	var m BootloaderStatusResponseMessage
	if len(data) > BootloaderStatusResponseEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDBootloaderStatusResponse) {
		return m, false
	}
	m.Timestamp = dec.FetchU64()
	m.Flags = dec.FetchU64()
	m.State = BootloaderState(dec.FetchU8())
	return m, true
}

// BootloaderImageType distinguishes the application firmware image from
// the certificate bundle that authenticates it.
type BootloaderImageType uint8

const (
	BootloaderImageTypeApplication BootloaderImageType = iota
	BootloaderImageTypeCertificateOfAuthenticity
)

func (t BootloaderImageType) String() string {
	switch t {
	case BootloaderImageTypeApplication:
		return "Application"
	case BootloaderImageTypeCertificateOfAuthenticity:
		return "CertificateOfAuthenticity"
	default:
		return "Unknown"
	}
}

const (
	bootloaderImageDataFixedSize = 8 + 1
	// MaxBootloaderImageDataLen is the largest chunk of image data a
	// single BootloaderImageData message carries.
	MaxBootloaderImageDataLen = 256

	BootloaderImageDataMinEncodedSize = HeaderSize + bootloaderImageDataFixedSize
	BootloaderImageDataMaxEncodedSize = BootloaderImageDataMinEncodedSize + MaxBootloaderImageDataLen
)

// bootloaderImageDataBody is the schema shared by the image-data request
// and response; they differ only in direction and message ID.
type bootloaderImageDataBody struct {
	ImageOffset uint64
	ImageType   BootloaderImageType
	ImageData   []byte
}

func (b *bootloaderImageDataBody) encode(enc *wire.Encoder) {
	enc.AddU64(b.ImageOffset)
	enc.AddU8(uint8(b.ImageType))
	enc.AddBytes(b.ImageData)
}

func (b *bootloaderImageDataBody) tryDecode(dec *wire.Decoder) bool {
	b.ImageOffset = dec.FetchU64()
	b.ImageType = BootloaderImageType(dec.FetchU8())
	if dec.Remaining() > 0 {
		b.ImageData = append([]byte(nil), dec.FetchBytes(dec.Remaining())...)
	} else {
		b.ImageData = nil
	}
	return true
}

// BootloaderImageDataRequestMessage carries a chunk of firmware image (or
// certificate) data from the host to the endpoint's bootloader, at the
// given byte offset.
type BootloaderImageDataRequestMessage struct {
	bootloaderImageDataBody
}

func (m BootloaderImageDataRequestMessage) ID() MessageID {
	return MessageIDBootloaderImageDataRequest
}

func (m BootloaderImageDataRequestMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDBootloaderImageDataRequest)
	m.encode(enc)
}

func TryDecodeBootloaderImageDataRequest(data []byte) (BootloaderImageDataRequestMessage, bool) {
	var m BootloaderImageDataRequestMessage
	if len(data) > BootloaderImageDataMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDBootloaderImageDataRequest) {
		return m, false
	}
	m.tryDecode(dec)
	return m, true
}

// BootloaderImageDataResponseMessage echoes back a chunk of image data,
// used by the endpoint to confirm what it received (or, for a read-style
// exchange, to serve image data back to the host).
type BootloaderImageDataResponseMessage struct {
	bootloaderImageDataBody
}

func (m BootloaderImageDataResponseMessage) ID() MessageID {
	return MessageIDBootloaderImageDataResponse
}

func (m BootloaderImageDataResponseMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDBootloaderImageDataResponse)
	m.encode(enc)
}

func TryDecodeBootloaderImageDataResponse(data []byte) (BootloaderImageDataResponseMessage, bool) {
	var m BootloaderImageDataResponseMessage
	if len(data) > BootloaderImageDataMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDBootloaderImageDataResponse) {
		return m, false
	}
	m.tryDecode(dec)
	return m, true
}
