// Package crc32c implements the CRC-32C (Castagnoli) checksum used by the
// popcop transport to detect corrupted frames.
//
// The algorithm uses polynomial 0x1EDC6F41 with reflected input/output, an
// initial register of 0xFFFFFFFF and a final XOR of 0xFFFFFFFF — the same
// parameters used by iSCSI, SCTP and btrfs. A 256-entry lookup table is
// built once at package init and reused by every Engine.
package crc32c

// Polynomial is the reversed representation of the Castagnoli polynomial,
// 0x1EDC6F41, as used by table-driven reflected CRC implementations.
const Polynomial uint32 = 0x82F63B78

// Residue is the fixed value an Engine's register (before the final XOR)
// holds once a message followed by its own little-endian CRC-32C has been
// fully fed in.
const Residue uint32 = 0xB798B438

var table [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
}

// Engine computes a running CRC-32C one byte at a time.
//
// The zero value is NOT ready to use: its register starts at 0, not the
// 0xFFFFFFFF initial value the algorithm requires. Construct with
// NewEngine, or call Reset before the first Add/AddBytes.
type Engine struct {
	reg uint32
}

// NewEngine returns an Engine with its register reset.
func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset discards all accumulated state.
func (e *Engine) Reset() {
	e.reg = 0xFFFFFFFF
}

// Add folds one more byte into the running checksum.
func (e *Engine) Add(b byte) {
	e.reg = table[byte(e.reg)^b] ^ (e.reg >> 8)
}

// AddBytes folds every byte of data into the running checksum, in order.
func (e *Engine) AddBytes(data []byte) {
	for _, b := range data {
		e.Add(b)
	}
}

// Value returns the CRC-32C of the bytes added so far.
func (e *Engine) Value() uint32 {
	return e.reg ^ 0xFFFFFFFF
}

// IsResidueCorrect reports whether the register equals Residue, which
// holds iff the last four bytes added were the little-endian CRC-32C of
// everything added before them.
func (e *Engine) IsResidueCorrect() bool {
	return e.reg == Residue
}

// Checksum is a convenience wrapper computing the CRC-32C of a single
// byte slice without requiring the caller to manage an Engine.
func Checksum(data []byte) uint32 {
	e := NewEngine()
	e.AddBytes(data)
	return e.Value()
}
