package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jawr/soft65c02/memory"
)

func resolve(t *testing.T, mode AddressingMode, mem *memory.Memory, regs *Registers) Resolution {
	t.Helper()
	res, err := Resolve(mode, mem, regs)
	require.NoError(t, err)
	return res
}

func TestZeroPageIndexedWraps(t *testing.T) {
	mem := memory.New()
	regs := NewInitialized(0)
	regs.X = 0x10

	res := resolve(t, ZeroPageXIndexed{Byte: 0xF8}, mem, regs)
	require.Equal(t, uint16(0x08), *res.Address)
}

func TestZeroPagePointerWrapsOnHighByte(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Write(0x00FF, []byte{0x00}))
	require.NoError(t, mem.Write(0x0000, []byte{0x12}))

	regs := NewInitialized(0)
	regs.Y = 0
	res := resolve(t, ZeroPageIndirectYIndexed{Byte: 0xFF}, mem, regs)
	require.Equal(t, uint16(0x1200), *res.Address)
}

func TestZeroPageXIndexedIndirectWraps(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Write(0x0000, []byte{0x34, 0x12}))

	regs := NewInitialized(0)
	regs.X = 0x01
	res := resolve(t, ZeroPageXIndexedIndirect{Byte: 0xFF}, mem, regs)
	require.Equal(t, uint16(0x1234), *res.Address)
}

func TestAbsoluteIndexedWrapsAt64K(t *testing.T) {
	mem := memory.New()
	regs := NewInitialized(0)
	regs.X = 0x02

	res := resolve(t, AbsoluteXIndexed{Lo: 0xFF, Hi: 0xFF}, mem, regs)
	require.Equal(t, uint16(0x0001), *res.Address)
}

func TestIndirectJMPPageSafeFix(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Write(0x12FF, []byte{0x34}))
	require.NoError(t, mem.Write(0x1300, []byte{0x56}))
	require.NoError(t, mem.Write(0x1200, []byte{0xFF}))

	regs := NewInitialized(0)
	res := resolve(t, Indirect{Lo: 0xFF, Hi: 0x12}, mem, regs)
	require.Equal(t, uint16(0x5634), *res.Address)
}

func TestRelativeAndZeroPageRelativeDisplay(t *testing.T) {
	rel := Relative{Site: 0x1000, Offset: 0xFE} // -2
	require.Equal(t, uint16(0x1000), resolveRelativeTarget(rel.Site, rel.Offset))

	zpr := ZeroPageRelative{Site: 0x1000, Byte: 0x20, Offset: 0x05}
	require.Equal(t, uint16(0x1008), resolveRelativeTarget(zpr.Site+1, zpr.Offset))
}

func TestImpliedAccumulatorHaveNoEffectiveAddress(t *testing.T) {
	mem := memory.New()
	regs := NewInitialized(0)

	res := resolve(t, Implied{}, mem, regs)
	require.Nil(t, res.Address)

	res = resolve(t, Accumulator{}, mem, regs)
	require.Nil(t, res.Address)
}
