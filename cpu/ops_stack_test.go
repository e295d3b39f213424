package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestJSRRTSRoundTrip(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	require.NoError(t, mem.Write(0x1000, []byte{0x20, 0x00, 0x20})) // JSR $2000
	require.NoError(t, mem.Write(0x2000, []byte{0x60}))             // RTS

	_, err := ExecuteStep(regs, mem) // JSR
	require.NoError(t, err)
	require.Equal(t, uint16(0x2000), regs.PC)

	_, err = ExecuteStep(regs, mem) // RTS
	require.NoError(t, err)
	require.Equal(t, uint16(0x1003), regs.PC)
}

func TestBRKRTIRoundTrip(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	require.NoError(t, mem.Write(int(InterruptVector), []byte{0x00, 0x30})) // handler at $3000
	require.NoError(t, mem.Write(0x1000, []byte{0x00, 0x00}))               // BRK, signature byte
	require.NoError(t, mem.Write(0x3000, []byte{0x40}))                     // RTI

	regs.SetCarry(true)
	wantP := regs.StatusByte()

	_, err := ExecuteStep(regs, mem) // BRK
	require.NoError(t, err)
	require.Equal(t, uint16(0x3000), regs.PC)
	require.True(t, regs.InterruptDisable())

	_, err = ExecuteStep(regs, mem) // RTI
	require.NoError(t, err)
	require.Equal(t, uint16(0x1002), regs.PC)
	require.Equal(t, wantP, regs.StatusByte())
}

func TestStackRoundTripForAllBytes(t *testing.T) {
	mem := memory.New()
	regs := NewInitialized(0)
	regs.S = 0x80

	for b := 0; b < 256; b++ {
		require.NoError(t, regs.Push(mem, byte(b)))
		got, err := regs.Pull(mem)
		require.NoError(t, err)
		require.Equal(t, byte(b), got)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	regs := NewInitialized(0x1000)
	mem := memory.New()
	regs.A = 0x77
	require.NoError(t, mem.Write(0x1000, []byte{0x48, 0xA9, 0x00, 0x68})) // PHA; LDA #0; PLA

	_, err := ExecuteStep(regs, mem) // PHA
	require.NoError(t, err)
	_, err = ExecuteStep(regs, mem) // LDA #0
	require.NoError(t, err)
	require.Equal(t, byte(0x00), regs.A)
	_, err = ExecuteStep(regs, mem) // PLA
	require.NoError(t, err)
	require.Equal(t, byte(0x77), regs.A)
}
