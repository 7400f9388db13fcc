package crc32c

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineZeroValue(t *testing.T) {
	var e Engine
	require.Equal(t, uint32(0), e.Value())
	require.False(t, e.IsResidueCorrect())
}

func TestEngineCheckValue(t *testing.T) {
	e := NewEngine()
	e.AddBytes([]byte("123456789"))
	require.Equal(t, uint32(0xE3069283), e.Value())
	require.False(t, e.IsResidueCorrect())
}

func TestEngineResidue(t *testing.T) {
	e := NewEngine()
	e.AddBytes([]byte("123456789"))
	e.Add(0x83)
	e.Add(0x92)
	e.Add(0x06)
	e.Add(0xE3)
	require.True(t, e.IsResidueCorrect())
}

func TestResidueLawForArbitraryBuffer(t *testing.T) {
	for _, buf := range [][]byte{
		nil,
		{0x00},
		{0x8E, 0x9E, 0x01},
		[]byte("the quick brown fox jumps over the lazy dog"),
	} {
		sum := Checksum(buf)
		e := NewEngine()
		e.AddBytes(buf)
		e.Add(byte(sum))
		e.Add(byte(sum >> 8))
		e.Add(byte(sum >> 16))
		e.Add(byte(sum >> 24))
		require.True(t, e.IsResidueCorrect(), "buf=%v", buf)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()
	e.AddBytes([]byte("garbage"))
	e.Reset()
	require.Equal(t, uint32(0), e.Value())
}
