package standard

import "github.com/trigrass2/popcop/wire"

// Mode reports whether an endpoint is running its application image or its
// bootloader.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeBootloader
)

func (m Mode) valid() bool {
	return m == ModeNormal || m == ModeBootloader
}

// SoftwareVersion describes the firmware image running on an endpoint.
type SoftwareVersion struct {
	ImageCRC         uint64
	ImageCRCPresent  bool
	VCSCommitID      uint32
	BuildTimestampUTC uint32
	Major            uint8
	Minor            uint8
	ReleaseBuild     bool
	DirtyBuild       bool
}

// HardwareVersion describes the PCB/hardware revision of an endpoint.
type HardwareVersion struct {
	Major uint8
	Minor uint8
}

const (
	endpointInfoNameLen = 80
	// endpointInfoFixedSize is the size, in bytes, of everything in the
	// body before the variable-length certificate of authenticity.
	endpointInfoFixedSize = 8 + 4 + 4 + 1 + 1 + 1 + 1 + 1 + 1 + 2 + 16 + endpointInfoNameLen*4
	// MaxCertificateLen is the largest certificate of authenticity the
	// decoders accept. Encode does not check it.
	MaxCertificateLen = 255
)

// endpointInfoBody holds the schema shared by EndpointInfoMessage and
// NodeInfoMessage; the two types differ only in their MessageID.
type endpointInfoBody struct {
	SoftwareVersion               SoftwareVersion
	HardwareVersion               HardwareVersion
	Mode                          Mode
	GloballyUniqueID              [16]byte
	EndpointName                  string
	EndpointDescription           string
	BuildEnvironmentDescription   string
	RuntimeEnvironmentDescription string
	CertificateOfAuthenticity     []byte
}

func (b *endpointInfoBody) isRequest() bool {
	return len(b.CertificateOfAuthenticity) == 0
}

func (b *endpointInfoBody) encode(enc *wire.Encoder) {
	sv := b.SoftwareVersion
	enc.AddU64(sv.ImageCRC)
	enc.AddU32(sv.VCSCommitID)
	enc.AddU32(sv.BuildTimestampUTC)
	enc.AddU8(sv.Major)
	enc.AddU8(sv.Minor)
	enc.AddU8(b.HardwareVersion.Major)
	enc.AddU8(b.HardwareVersion.Minor)

	var flags uint8
	if sv.ImageCRCPresent {
		flags |= 1 << 0
	}
	if sv.ReleaseBuild {
		flags |= 1 << 1
	}
	if sv.DirtyBuild {
		flags |= 1 << 2
	}
	enc.AddU8(flags)
	enc.AddU8(uint8(b.Mode))
	enc.AddU16(0) // reserved

	enc.AddBytes(b.GloballyUniqueID[:])
	encodeFixedASCII(enc, b.EndpointName, endpointInfoNameLen)
	encodeFixedASCII(enc, b.EndpointDescription, endpointInfoNameLen)
	encodeFixedASCII(enc, b.BuildEnvironmentDescription, endpointInfoNameLen)
	encodeFixedASCII(enc, b.RuntimeEnvironmentDescription, endpointInfoNameLen)
	enc.AddBytes(b.CertificateOfAuthenticity)
}

// tryDecode fills b from dec, which must already have had the message ID
// header consumed. It returns false only when the software mode field holds
// a value outside the known enumeration; any other truncation is tolerated
// via the decoder's zero-fill/clamp semantics, matching the lenient
// short-form-as-request decoding standard messages allow.
func (b *endpointInfoBody) tryDecode(dec *wire.Decoder) bool {
	b.SoftwareVersion.ImageCRC = dec.FetchU64()
	b.SoftwareVersion.VCSCommitID = dec.FetchU32()
	b.SoftwareVersion.BuildTimestampUTC = dec.FetchU32()
	b.SoftwareVersion.Major = dec.FetchU8()
	b.SoftwareVersion.Minor = dec.FetchU8()
	b.HardwareVersion.Major = dec.FetchU8()
	b.HardwareVersion.Minor = dec.FetchU8()

	flags := dec.FetchU8()
	b.SoftwareVersion.ImageCRCPresent = flags&(1<<0) != 0
	b.SoftwareVersion.ReleaseBuild = flags&(1<<1) != 0
	b.SoftwareVersion.DirtyBuild = flags&(1<<2) != 0

	mode := Mode(dec.FetchU8())
	if !mode.valid() {
		return false
	}
	b.Mode = mode

	dec.FetchU16() // reserved

	copy(b.GloballyUniqueID[:], dec.FetchBytes(16))
	for _, field := range []*string{
		&b.EndpointName,
		&b.EndpointDescription,
		&b.BuildEnvironmentDescription,
		&b.RuntimeEnvironmentDescription,
	} {
		// Each field occupies a fixed width on the wire, whatever the
		// string's length, so skip its zero padding before the next one.
		start := dec.Offset()
		*field = dec.FetchASCIIString(endpointInfoNameLen)
		dec.SkipUpToOffset(start + endpointInfoNameLen)
	}

	if dec.Remaining() > 0 {
		b.CertificateOfAuthenticity = append([]byte(nil), dec.FetchBytes(dec.Remaining())...)
	} else {
		b.CertificateOfAuthenticity = nil
	}
	return true
}

func encodeFixedASCII(enc *wire.Encoder, s string, width int) {
	start := enc.Offset()
	if len(s) > width {
		s = s[:width]
	}
	enc.AddBytes([]byte(s))
	enc.FillUpToOffset(start+width, 0)
}

// EndpointInfoMessage identifies a single endpoint: its firmware and
// hardware versions, its unique ID, human-readable names, and (in a
// response) a certificate of authenticity. An EndpointInfoMessage with an
// empty certificate is a request; one with a certificate is a response.
type EndpointInfoMessage struct {
	endpointInfoBody
}

// EndpointInfoMinEncodedSize is the size of an EndpointInfoMessage with no
// certificate: a header plus the fixed body.
const EndpointInfoMinEncodedSize = HeaderSize + endpointInfoFixedSize

// EndpointInfoMaxEncodedSize is the largest valid encoding of an EndpointInfoMessage:
// the fixed body plus a maximal certificate of authenticity.
const EndpointInfoMaxEncodedSize = EndpointInfoMinEncodedSize + MaxCertificateLen

func (m EndpointInfoMessage) ID() MessageID { return MessageIDEndpointInfo }

func (m EndpointInfoMessage) IsRequest() bool { return m.isRequest() }

func (m EndpointInfoMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDEndpointInfo)
	m.encode(enc)
}

// TryDecodeEndpointInfo decodes an EndpointInfoMessage from data, which must
// hold the full header-plus-body encoding (possibly truncated, per the
// lenient short-form-request rule). It fails if the header doesn't match,
// the data exceeds the maximum encoded size, or the mode field is invalid.
func TryDecodeEndpointInfo(data []byte) (EndpointInfoMessage, bool) {
	var m EndpointInfoMessage
	if len(data) > EndpointInfoMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDEndpointInfo) {
		return m, false
	}
	if !m.tryDecode(dec) {
		return m, false
	}
	return m, true
}

// NodeInfoMessage has the identical schema to EndpointInfoMessage but a
// distinct message ID, used when a node (rather than a single endpoint)
// announces itself on the link.
type NodeInfoMessage struct {
	endpointInfoBody
}

const NodeInfoMinEncodedSize = EndpointInfoMinEncodedSize
const NodeInfoMaxEncodedSize = EndpointInfoMaxEncodedSize

func (m NodeInfoMessage) ID() MessageID { return MessageIDNodeInfo }

func (m NodeInfoMessage) IsRequest() bool { return m.isRequest() }

func (m NodeInfoMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDNodeInfo)
	m.encode(enc)
}

func TryDecodeNodeInfo(data []byte) (NodeInfoMessage, bool) {
	var m NodeInfoMessage
	if len(data) > NodeInfoMaxEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDNodeInfo) {
		return m, false
	}
	if !m.tryDecode(dec) {
		return m, false
	}
	return m, true
}
