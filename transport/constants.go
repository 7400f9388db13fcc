// Package transport implements popcop's self-synchronizing byte-level
// framing: a byte-fed Parser that deframes and de-escapes an incoming
// stream while verifying a trailing CRC-32C, and two complementary
// emitters (BufferedEmitter and StreamEmitter) that produce the exact
// bytes a Parser expects.
//
// A frame on the wire is:
//
//	[Delimiter] [payload ... | type_code | crc_lo crc_mid crc_hi crc_high] [Delimiter]
//
// with Delimiter and EscapeCharacter bytes inside the body replaced by
// EscapeCharacter followed by the original byte XOR 0xFF.
package transport

// FrameDelimiter opens and closes every frame on the wire.
const FrameDelimiter byte = 0x8E

// EscapeCharacter precedes an escaped byte inside a frame body.
const EscapeCharacter byte = 0x9E

// escapeXOR is XORed with an escaped byte's original value on the wire.
const escapeXOR byte = 0xFF

// headerSize is the number of trailing body bytes that are not payload:
// one type-code byte followed by four little-endian CRC-32C bytes.
const headerSize = 5

// ParserBufferAlignment is the minimum alignment, in bytes, of the buffer
// backing a received frame's payload — callers may reinterpret the first
// bytes of Frame.Payload as wider scalars.
const ParserBufferAlignment = 16
