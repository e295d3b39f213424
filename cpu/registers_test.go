package cpu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func TestFlagRoundTrip(t *testing.T) {
	r := NewInitialized(0)

	setters := []func(bool){r.SetNegative, r.SetOverflow, r.SetDecimal, r.SetInterruptDisable, r.SetZero, r.SetCarry}
	getters := []func() bool{r.Negative, r.Overflow, r.Decimal, r.InterruptDisable, r.Zero, r.Carry}

	for i := range setters {
		setters[i](true)
		require.True(t, getters[i]())
		setters[i](false)
		require.False(t, getters[i]())
	}
}

func TestStatusByteAlwaysReadsUnusedAndBreakBitsSet(t *testing.T) {
	r := NewInitialized(0)
	r.SetStatusByte(0x00)
	require.Equal(t, uint8(flagS|flagB), r.StatusByte())
}

func TestFormatStatus(t *testing.T) {
	r := NewInitialized(0)
	require.Equal(t, "nv-Bdizc", r.FormatStatus())

	r.SetCarry(true)
	r.SetZero(true)
	r.SetNegative(true)
	require.Equal(t, "Nv-BdiZC", r.FormatStatus())
}

func TestStackPushPullRoundTrip(t *testing.T) {
	mem := memory.New()
	r := NewInitialized(0)

	for _, b := range []byte{0x00, 0x7F, 0x80, 0xFF} {
		require.NoError(t, r.Push(mem, b))
		got, err := r.Pull(mem)
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
}

func TestStackPointerWrapsOnEightBitBoundary(t *testing.T) {
	mem := memory.New()
	r := NewInitialized(0)
	r.S = 0x00

	require.NoError(t, r.Push(mem, 0x42))
	require.Equal(t, uint8(0xFF), r.S)

	got, err := r.Pull(mem)
	require.NoError(t, err)
	require.Equal(t, byte(0x42), got)
	require.Equal(t, uint8(0x00), r.S)
}

func TestPushPullWordRoundTrip(t *testing.T) {
	mem := memory.New()
	r := NewInitialized(0)

	require.NoError(t, r.PushWord(mem, 0xBEEF))
	got, err := r.PullWord(mem)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), got)
}

func TestResetFromVector(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Write(int(InitVector), []byte{0x00, 0x80}))

	r, err := ResetFromVector(mem)
	require.NoError(t, err)
	require.Equal(t, uint16(0x8000), r.PC)
	require.Equal(t, uint8(0xFF), r.S)
}

// TestTwoInitializedRegistersAtTheSameVectorAreIdentical guards against a
// stray field (e.g. Cycles, a flag default) drifting between two
// construction calls for what should be the exact same reset state. deep
// reports every differing field at once, which is more useful here than a
// single require.Equal failure when several fields are wrong.
func TestTwoInitializedRegistersAtTheSameVectorAreIdentical(t *testing.T) {
	a := NewInitialized(0x8000)
	b := NewInitialized(0x8000)

	if diff := deep.Equal(a, b); diff != nil {
		t.Fatalf("unexpected differences between identically-constructed Registers: %v", diff)
	}
}
