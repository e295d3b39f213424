package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestBranchNotTakenCostsBaseCycles(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.SetCarry(true)
	require.NoError(t, mem.Write(0x1000, []byte{0x90, 0x10})) // BCC, not taken

	line, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint8(2), line.Cycles)
	require.Equal(t, uint16(0x1002), regs.PC)
}

func TestBranchTakenSamePageCostsBasePlusOne(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.SetCarry(false)
	require.NoError(t, mem.Write(0x1000, []byte{0x90, 0x10})) // BCC, taken, +0x10

	line, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint8(3), line.Cycles)
	require.Equal(t, uint16(0x1012), regs.PC)
}

func TestBranchTakenCrossingPageCostsBasePlusTwo(t *testing.T) {
	regs := NewInitialized(0x10F0)
	mem := memory.New()
	regs.SetCarry(false)
	require.NoError(t, mem.Write(0x10F0, []byte{0x90, 0x20})) // BCC, taken, crosses into $1112

	line, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint8(4), line.Cycles)
}

func TestBRAIsAlwaysTaken(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	require.NoError(t, mem.Write(0x1000, []byte{0x80, 0x05}))

	line, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint8(3), line.Cycles)
	require.Equal(t, uint16(0x1007), regs.PC)
}

func TestBBRBranchesWhenBitClear(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	mem.WriteByte(0x0020, 0x00) // bit 0 clear
	require.NoError(t, mem.Write(0x1000, []byte{0x0F, 0x20, 0x05})) // BBR0 $20, +5

	line, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint8(5), line.Cycles)
	require.Equal(t, uint16(0x1008), regs.PC)
}

func TestBBSDoesNotBranchWhenBitClear(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	mem.WriteByte(0x0020, 0x00)
	require.NoError(t, mem.Write(0x1000, []byte{0x8F, 0x20, 0x05})) // BBS0 $20, +5

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1003), regs.PC)
}

func TestRMBClearsBit(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	mem.WriteByte(0x0020, 0xFF)
	require.NoError(t, mem.Write(0x1000, []byte{0x07, 0x20})) // RMB0 $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0xFE), mem.ReadByte(0x0020))
}

func TestSMBSetsBit(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	mem.WriteByte(0x0020, 0x00)
	require.NoError(t, mem.Write(0x1000, []byte{0x87, 0x20})) // SMB0 $20

	_, err := ExecuteStep(regs, mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), mem.ReadByte(0x0020))
}
