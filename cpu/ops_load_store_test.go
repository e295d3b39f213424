package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestLDXSetsNZ(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	require.NoError(t, mem.Write(0x1000, []byte{0xA2, 0x00})) // LDX #$00

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), regs.X)
	require.True(t, regs.Zero())
}

func TestSTAWritesMemory(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x99
	require.NoError(t, mem.Write(0x1000, []byte{0x85, 0x20})) // STA $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x99), mem.ReadByte(0x0020))
}

func TestSTZWritesZeroWithoutTouchingFlags(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	mem.WriteByte(0x0020, 0xFF)
	regs.SetNegative(true)
	require.NoError(t, mem.Write(0x1000, []byte{0x64, 0x20})) // STZ $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), mem.ReadByte(0x0020))
	require.True(t, regs.Negative()) // untouched
}

func TestTAXCopiesAccumulatorAndSetsNZ(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x80
	require.NoError(t, mem.Write(0x1000, []byte{0xAA})) // TAX

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), regs.X)
	require.True(t, regs.Negative())
}

func TestTXSDoesNotTouchFlags(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.X = 0x00
	regs.SetZero(false)
	require.NoError(t, mem.Write(0x1000, []byte{0x9A})) // TXS

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), regs.S)
	require.False(t, regs.Zero()) // TXS never touches flags
}

func TestTSXCopiesStackPointerAndSetsNZ(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.S = 0x00
	require.NoError(t, mem.Write(0x1000, []byte{0xBA})) // TSX

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), regs.X)
	require.True(t, regs.Zero())
}
