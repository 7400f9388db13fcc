// Package register implements RegisterValue, a wire-stable tagged union
// used to carry one device register's current value over the link. A
// Value holds exactly one of fourteen alternatives, selected by Kind,
// each with a fixed per-variant capacity chosen so the encoded tag plus
// body never exceeds MaxEncodedSize bytes.
package register

// Kind identifies which alternative a Value holds. Kind values are
// wire-stable: they appear as the leading tag byte of every encoded
// Value and must never be renumbered.
type Kind uint8

const (
	KindEmpty        Kind = 0
	KindString       Kind = 1
	KindUnstructured Kind = 2
	KindBoolean      Kind = 3
	KindI64          Kind = 4
	KindI32          Kind = 5
	KindI16          Kind = 6
	KindI8           Kind = 7
	KindU64          Kind = 8
	KindU32          Kind = 9
	KindU16          Kind = 10
	KindU8           Kind = 11
	KindF64          Kind = 12
	KindF32          Kind = 13
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindString:
		return "String"
	case KindUnstructured:
		return "Unstructured"
	case KindBoolean:
		return "Boolean"
	case KindI64:
		return "I64"
	case KindI32:
		return "I32"
	case KindI16:
		return "I16"
	case KindI8:
		return "I8"
	case KindU64:
		return "U64"
	case KindU32:
		return "U32"
	case KindU16:
		return "U16"
	case KindU8:
		return "U8"
	case KindF64:
		return "F64"
	case KindF32:
		return "F32"
	default:
		return "Invalid"
	}
}

// Per-variant element capacities, chosen so tag (1 byte) plus the
// encoded body never exceeds MaxEncodedSize.
const (
	MaxStringLen       = 256
	MaxUnstructuredLen = 256
	MaxBooleanLen      = 256
	MaxI64Len          = 32
	MaxI32Len          = 64
	MaxI16Len          = 128
	MaxI8Len           = 256
	MaxU64Len          = 32
	MaxU32Len          = 64
	MaxU16Len          = 128
	MaxU8Len           = 256
	MaxF64Len          = 32
	MaxF32Len          = 64
)

// MaxBodySize is the largest encoded body any variant can produce.
const MaxBodySize = 256

// MinEncodedSize and MaxEncodedSize bound a Value's wire size, tag
// included.
const (
	MinEncodedSize = 1
	MaxEncodedSize = 1 + MaxBodySize
)
