package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestANDMasksAccumulator(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0xF0
	require.NoError(t, mem.Write(0x1000, []byte{0x29, 0x1C})) // AND #$1C

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x10), regs.A)
}

func TestORASetsBits(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x01
	require.NoError(t, mem.Write(0x1000, []byte{0x09, 0x80})) // ORA #$80

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x81), regs.A)
	require.True(t, regs.Negative())
}

func TestEORToggles(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0xFF
	require.NoError(t, mem.Write(0x1000, []byte{0x49, 0xFF})) // EOR #$FF

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), regs.A)
	require.True(t, regs.Zero())
}

func TestBITMemoryFormSetsNVFromOperand(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x00
	mem.WriteByte(0x0020, 0xC0) // bits 7 and 6 set
	require.NoError(t, mem.Write(0x1000, []byte{0x24, 0x20})) // BIT $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.True(t, regs.Negative())
	require.True(t, regs.Overflow())
	require.True(t, regs.Zero()) // A=0 & M=$C0 == 0
}

func TestBITImmediateFormOnlyTouchesZero(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x00
	regs.SetNegative(true)
	regs.SetOverflow(true)
	require.NoError(t, mem.Write(0x1000, []byte{0x89, 0xC0})) // BIT #$C0

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.True(t, regs.Zero())
	require.True(t, regs.Negative())  // untouched by immediate form
	require.True(t, regs.Overflow())  // untouched by immediate form
}

func TestTRBClearsBitsSetInAccumulator(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x0F
	mem.WriteByte(0x0020, 0xFF)
	require.NoError(t, mem.Write(0x1000, []byte{0x14, 0x20})) // TRB $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0xF0), mem.ReadByte(0x0020))
	require.False(t, regs.Zero())
}

func TestTSBSetsBitsSetInAccumulator(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x0F
	mem.WriteByte(0x0020, 0x00)
	require.NoError(t, mem.Write(0x1000, []byte{0x04, 0x20})) // TSB $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x0F), mem.ReadByte(0x0020))
	require.True(t, regs.Zero()) // A & M before write was 0
}
