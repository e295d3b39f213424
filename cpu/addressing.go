package cpu

import (
	"fmt"

	"github.com/jawr/soft65c02/memory"
)

// AddressingMode is a closed union over the 65C02's sixteen operand
// shapes. Each variant embeds its own literal operand bytes so a
// resolution can report them back verbatim without re-reading memory.
type AddressingMode interface {
	fmt.Stringer
	// Operands returns the literal bytes that followed the opcode.
	Operands() []byte
	// length is the number of operand bytes (0, 1 or 2).
	length() uint16
}

// Implied carries no operand at all (CLC, INX, RTS, ...).
type Implied struct{}

// Accumulator targets the A register (ASL A, ROL A, ...).
type Accumulator struct{}

// Immediate carries a literal byte at PC+1.
type Immediate struct{ Byte byte }

// ZeroPage targets the zero-page address in Byte.
type ZeroPage struct{ Byte byte }

// ZeroPageXIndexed targets (Byte + X) mod 256.
type ZeroPageXIndexed struct{ Byte byte }

// ZeroPageYIndexed targets (Byte + Y) mod 256.
type ZeroPageYIndexed struct{ Byte byte }

// ZeroPageXIndexedIndirect forms a pointer at (Byte+X) mod 256, with
// zero-page wrap on the high byte fetch; the target is the 16-bit
// little-endian word stored there.
type ZeroPageXIndexedIndirect struct{ Byte byte }

// ZeroPageIndirectYIndexed forms a pointer at Byte (zero-page wrap), then
// adds Y to it modulo 65536.
type ZeroPageIndirectYIndexed struct{ Byte byte }

// ZeroPageIndirect forms a pointer at Byte (zero-page wrap); the target is
// that pointer verbatim. 65C02-only addressing mode.
type ZeroPageIndirect struct{ Byte byte }

// Absolute targets the little-endian word Lo|Hi<<8.
type Absolute struct{ Lo, Hi byte }

// AbsoluteXIndexed targets (base + X) mod 65536.
type AbsoluteXIndexed struct{ Lo, Hi byte }

// AbsoluteYIndexed targets (base + Y) mod 65536.
type AbsoluteYIndexed struct{ Lo, Hi byte }

// AbsoluteXIndexedIndirect forms an intermediate address (base + X) mod
// 65536, then reads the 16-bit target from there. 65C02-only, used by
// JMP ($nnnn,X).
type AbsoluteXIndexedIndirect struct{ Lo, Hi byte }

// Indirect targets the 16-bit word stored at base, fetched the page-safe
// (CMOS) way: the high byte always comes from base+1, even when base's
// low byte is 0xFF. Used by JMP ($nnnn).
type Indirect struct{ Lo, Hi byte }

// Relative carries a signed branch offset; Site is the address of the
// opcode byte, stored so disassembly can display the resolved target
// without re-deriving it from the caller's PC.
type Relative struct {
	Site   uint16
	Offset byte
}

// ZeroPageRelative is BBR/BBS's operand: a zero-page byte to test plus a
// branch offset relative to Site+1 (the address of the zero-page operand
// byte), so the taken target is Site+3 plus the signed offset.
type ZeroPageRelative struct {
	Site   uint16
	Byte   byte
	Offset byte
}

func (Implied) Operands() []byte                      { return nil }
func (Accumulator) Operands() []byte                  { return nil }
func (a Immediate) Operands() []byte                  { return []byte{a.Byte} }
func (a ZeroPage) Operands() []byte                   { return []byte{a.Byte} }
func (a ZeroPageXIndexed) Operands() []byte           { return []byte{a.Byte} }
func (a ZeroPageYIndexed) Operands() []byte           { return []byte{a.Byte} }
func (a ZeroPageXIndexedIndirect) Operands() []byte   { return []byte{a.Byte} }
func (a ZeroPageIndirectYIndexed) Operands() []byte   { return []byte{a.Byte} }
func (a ZeroPageIndirect) Operands() []byte           { return []byte{a.Byte} }
func (a Absolute) Operands() []byte                   { return []byte{a.Lo, a.Hi} }
func (a AbsoluteXIndexed) Operands() []byte           { return []byte{a.Lo, a.Hi} }
func (a AbsoluteYIndexed) Operands() []byte           { return []byte{a.Lo, a.Hi} }
func (a AbsoluteXIndexedIndirect) Operands() []byte   { return []byte{a.Lo, a.Hi} }
func (a Indirect) Operands() []byte                   { return []byte{a.Lo, a.Hi} }
func (a Relative) Operands() []byte                   { return []byte{a.Offset} }
func (a ZeroPageRelative) Operands() []byte           { return []byte{a.Byte, a.Offset} }

func (Implied) length() uint16                    { return 0 }
func (Accumulator) length() uint16                { return 0 }
func (Immediate) length() uint16                  { return 1 }
func (ZeroPage) length() uint16                   { return 1 }
func (ZeroPageXIndexed) length() uint16           { return 1 }
func (ZeroPageYIndexed) length() uint16           { return 1 }
func (ZeroPageXIndexedIndirect) length() uint16   { return 1 }
func (ZeroPageIndirectYIndexed) length() uint16   { return 1 }
func (ZeroPageIndirect) length() uint16           { return 1 }
func (Absolute) length() uint16                   { return 2 }
func (AbsoluteXIndexed) length() uint16           { return 2 }
func (AbsoluteYIndexed) length() uint16           { return 2 }
func (AbsoluteXIndexedIndirect) length() uint16   { return 2 }
func (Indirect) length() uint16                   { return 2 }
func (Relative) length() uint16                   { return 1 }
func (ZeroPageRelative) length() uint16           { return 2 }

func (Implied) String() string     { return "" }
func (Accumulator) String() string { return "A" }
func (a Immediate) String() string { return fmt.Sprintf("#$%02X", a.Byte) }
func (a ZeroPage) String() string  { return fmt.Sprintf("$%02X", a.Byte) }
func (a ZeroPageXIndexed) String() string         { return fmt.Sprintf("$%02X,X", a.Byte) }
func (a ZeroPageYIndexed) String() string         { return fmt.Sprintf("$%02X,Y", a.Byte) }
func (a ZeroPageXIndexedIndirect) String() string { return fmt.Sprintf("($%02X,X)", a.Byte) }
func (a ZeroPageIndirectYIndexed) String() string { return fmt.Sprintf("($%02X),Y", a.Byte) }
func (a ZeroPageIndirect) String() string         { return fmt.Sprintf("($%02X)", a.Byte) }
func (a Absolute) String() string                 { return fmt.Sprintf("$%04X", a.word()) }
func (a AbsoluteXIndexed) String() string         { return fmt.Sprintf("$%04X,X", a.word()) }
func (a AbsoluteYIndexed) String() string         { return fmt.Sprintf("$%04X,Y", a.word()) }
func (a AbsoluteXIndexedIndirect) String() string { return fmt.Sprintf("($%04X,X)", a.word()) }
func (a Indirect) String() string                 { return fmt.Sprintf("($%04X)", a.word()) }
func (a Relative) String() string {
	return fmt.Sprintf("$%04X", resolveRelativeTarget(a.Site, a.Offset))
}
func (a ZeroPageRelative) String() string {
	return fmt.Sprintf("$%02X, $%04X", a.Byte, resolveRelativeTarget(a.Site+1, a.Offset))
}

func (a Absolute) word() uint16                 { return uint16(a.Hi)<<8 | uint16(a.Lo) }
func (a AbsoluteXIndexed) word() uint16         { return uint16(a.Hi)<<8 | uint16(a.Lo) }
func (a AbsoluteYIndexed) word() uint16         { return uint16(a.Hi)<<8 | uint16(a.Lo) }
func (a AbsoluteXIndexedIndirect) word() uint16 { return uint16(a.Hi)<<8 | uint16(a.Lo) }
func (a Indirect) word() uint16                 { return uint16(a.Hi)<<8 | uint16(a.Lo) }

// resolveRelativeTarget decodes offset as a signed 8-bit delta and adds it
// to site+2, the address of the instruction following the branch. Display
// code for ZeroPageRelative calls this with site+1 in place of site, since
// the offset there follows one extra operand byte.
func resolveRelativeTarget(site uint16, offset byte) uint16 {
	return site + 2 + uint16(int8(offset))
}

// Resolution is the product of resolving an addressing-mode site: the mode
// itself (which carries its operand bytes) plus, where applicable, the
// effective address the microcode should read or write.
type Resolution struct {
	Mode    AddressingMode
	Address *uint16
}

// SolvingError reports a structurally impossible resolution. No existing
// addressing mode can currently produce one; it exists so a future mode
// extension has somewhere to report the failure rather than panicking.
type SolvingError struct {
	Mode          AddressingMode
	OpcodeAddress uint16
	PartialTarget *uint16
}

func (e *SolvingError) Error() string {
	return fmt.Sprintf("cpu: cannot solve addressing mode %T at $%04X", e.Mode, e.OpcodeAddress)
}

// ResolutionError wraps either a memory error encountered while resolving
// an address, or a SolvingError.
type ResolutionError struct {
	Memory  error
	Solving *SolvingError
}

func (e *ResolutionError) Error() string {
	if e.Solving != nil {
		return e.Solving.Error()
	}
	return fmt.Sprintf("cpu: resolution failed: %v", e.Memory)
}

func (e *ResolutionError) Unwrap() error {
	if e.Solving != nil {
		return e.Solving
	}
	return e.Memory
}

// Resolve computes the Resolution for mode, observing the wrap and
// indirect-fetch rules of §4.3: zero-page index wrap, zero-page pointer
// wrap on the high byte fetch, 16-bit wrap of every final effective
// address, and the CMOS page-safe JMP ($nnnn) fix.
func Resolve(mode AddressingMode, mem *memory.Memory, regs *Registers) (Resolution, error) {
	addr := func(a uint16) Resolution { return Resolution{Mode: mode, Address: &a} }
	none := func() Resolution { return Resolution{Mode: mode} }

	switch m := mode.(type) {
	case Implied:
		return none(), nil
	case Accumulator:
		return none(), nil
	case Immediate:
		return none(), nil
	case ZeroPage:
		return addr(uint16(m.Byte)), nil
	case ZeroPageXIndexed:
		return addr(uint16(m.Byte + regs.X)), nil
	case ZeroPageYIndexed:
		return addr(uint16(m.Byte + regs.Y)), nil
	case ZeroPageXIndexedIndirect:
		ptr := m.Byte + regs.X
		lo, hi, err := zeroPagePointer(mem, ptr)
		if err != nil {
			return Resolution{}, &ResolutionError{Memory: err}
		}
		return addr(uint16(hi)<<8 | uint16(lo)), nil
	case ZeroPageIndirectYIndexed:
		lo, hi, err := zeroPagePointer(mem, m.Byte)
		if err != nil {
			return Resolution{}, &ResolutionError{Memory: err}
		}
		base := uint16(hi)<<8 | uint16(lo)
		return addr(base + uint16(regs.Y)), nil
	case ZeroPageIndirect:
		lo, hi, err := zeroPagePointer(mem, m.Byte)
		if err != nil {
			return Resolution{}, &ResolutionError{Memory: err}
		}
		return addr(uint16(hi)<<8 | uint16(lo)), nil
	case Absolute:
		return addr(m.word()), nil
	case AbsoluteXIndexed:
		return addr(m.word() + uint16(regs.X)), nil
	case AbsoluteYIndexed:
		return addr(m.word() + uint16(regs.Y)), nil
	case AbsoluteXIndexedIndirect:
		intermediate := m.word() + uint16(regs.X)
		lo := mem.ReadByte(intermediate)
		hi := mem.ReadByte(intermediate + 1)
		return addr(uint16(hi)<<8 | uint16(lo)), nil
	case Indirect:
		base := m.word()
		lo := mem.ReadByte(base)
		hi := mem.ReadByte(base + 1)
		return addr(uint16(hi)<<8 | uint16(lo)), nil
	case Relative:
		return none(), nil
	case ZeroPageRelative:
		return none(), nil
	default:
		return Resolution{}, &ResolutionError{Solving: &SolvingError{Mode: mode}}
	}
}

// zeroPagePointer fetches the two bytes of a zero-page pointer stored at
// ptr and ptr+1, wrapping the high-byte fetch within the zero page (the
// documented 6502/65C02 behaviour for (zp,X) and (zp),Y).
func zeroPagePointer(mem *memory.Memory, ptr byte) (lo, hi byte, err error) {
	lo = mem.ReadByte(uint16(ptr))
	hi = mem.ReadByte(uint16(ptr + 1))
	return lo, hi, nil
}
