package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestDecodeDocumentedOpcodes(t *testing.T) {
	cases := []struct {
		opcode       byte
		mnemonic     string
		operandLen   int
		baseCycles   uint8
	}{
		{0x00, "BRK", 0, 7},
		{0x69, "ADC", 1, 2},
		{0xBD, "LDA", 2, 4},
		{0x6C, "JMP", 2, 6},
		{0x80, "BRA", 1, 2},
		{0x0F, "BBR0", 2, 5},
		{0x8F, "BBS0", 2, 5},
		{0x07, "RMB0", 1, 5},
		{0x87, "SMB0", 1, 5},
		{0xDB, "STP", 0, 3},
		{0xCB, "WAI", 0, 3},
		{0x1A, "INC", 0, 2},
		{0x3A, "DEC", 0, 2},
		{0x89, "BIT", 1, 2},
		{0x04, "TSB", 1, 5},
		{0x14, "TRB", 1, 5},
	}

	mem := memory.New()
	for _, c := range cases {
		t.Run(c.mnemonic, func(t *testing.T) {
			operands := make([]byte, c.operandLen)
			require.NoError(t, mem.Write(0x2000, append([]byte{c.opcode}, operands...)))

			ins, err := decode(0x2000, mem)
			require.NoError(t, err)
			require.Equal(t, c.mnemonic, ins.Mnemonic)
			require.Equal(t, c.baseCycles, ins.Cycles)
			require.Equal(t, uint16(c.operandLen), ins.Mode.length())
		})
	}
}

func TestDecodeUndocumentedNOPSlotsHaveCorrectLengthAndCycles(t *testing.T) {
	cases := []struct {
		opcode     byte
		operandLen int
		cycles     uint8
	}{
		{0x03, 0, 1},
		{0x44, 1, 3},
		{0x54, 1, 4},
		{0x5C, 2, 8},
		{0xDC, 2, 4},
		{0xFC, 2, 4},
	}

	mem := memory.New()
	for _, c := range cases {
		operands := make([]byte, c.operandLen)
		require.NoError(t, mem.Write(0x2000, append([]byte{c.opcode}, operands...)))

		ins, err := decode(0x2000, mem)
		require.NoError(t, err)
		require.Equal(t, "NOP", ins.Mnemonic)
		require.Equal(t, c.cycles, ins.Cycles)
		require.Equal(t, uint16(c.operandLen), ins.Mode.length())
	}
}

func TestEveryOpcodeSlotIsPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		entry := opcodeTable[i]
		require.NotNilf(t, entry.fn, "opcode $%02X has no decode table entry", i)
		require.NotEmptyf(t, entry.mnemonic, "opcode $%02X has no mnemonic", i)
	}
}
