package cpu

import (
	"math/rand"

	"github.com/jawr/soft65c02/memory"
)

// StackBase is the fixed page the stack lives in; the stack pointer S is
// interpreted relative to it.
const StackBase uint16 = 0x0100

// InitVector is the reset vector: PC is loaded from here on power-on.
const InitVector uint16 = 0xFFFC

// InterruptVector is the BRK/IRQ vector.
const InterruptVector uint16 = 0xFFFE

// status flag bit positions within P, NV-BDIZC.
const (
	flagC = uint8(1) << 0
	flagZ = uint8(1) << 1
	flagI = uint8(1) << 2
	flagD = uint8(1) << 3
	flagB = uint8(1) << 4
	flagS = uint8(1) << 5 // unused, always reads 1
	flagV = uint8(1) << 6
	flagN = uint8(1) << 7
)

// Registers holds the 65C02's architectural state: the three 8-bit general
// purpose registers, the status register, the stack pointer, the command
// pointer and the running cycle count.
type Registers struct {
	A, X, Y uint8
	P       uint8
	S       uint8
	PC      uint16
	Cycles  uint64
}

// NewUninitialized mimics the indeterminate state of real silicon after a
// cold start: A, X, Y and S carry whatever garbage was on the bus, P has
// bits 5 and 4 forced set and the Decimal bit forced clear, and the
// Interrupt-disable bit is standardized to set (see SPEC_FULL.md for why this
// diverges from leaving it to chance). PC is set to the caller's init
// address and the cycle counter starts at zero.
func NewUninitialized(pc uint16) *Registers {
	r := &Registers{
		A:  uint8(rand.Intn(256)),
		X:  uint8(rand.Intn(256)),
		Y:  uint8(rand.Intn(256)),
		S:  uint8(rand.Intn(256)),
		P:  uint8(rand.Intn(256)),
		PC: pc,
	}
	r.P |= flagS | flagB
	r.P &^= flagD
	r.P |= flagI
	return r
}

// NewInitialized returns registers in the conventional "cleanly booted"
// state: A=X=Y=0, P=0b00110000, S=0xFF, PC set to the caller's address.
func NewInitialized(pc uint16) *Registers {
	return &Registers{
		A:  0,
		X:  0,
		Y:  0,
		P:  flagS | flagB,
		S:  0xFF,
		PC: pc,
	}
}

// ResetFromVector reads the 16-bit little-endian reset vector out of mem
// and uses it as PC. It's a convenience for callers that don't want to
// hand-compute the init address.
func ResetFromVector(mem *memory.Memory) (*Registers, error) {
	lo, hi, err := readVector(mem, InitVector)
	if err != nil {
		return nil, err
	}
	return NewInitialized(uint16(hi)<<8 | uint16(lo)), nil
}

func readVector(mem *memory.Memory, addr uint16) (lo, hi byte, err error) {
	b, err := mem.Read(int(addr), 2)
	if err != nil {
		return 0, 0, err
	}
	return b[0], b[1], nil
}

// Negative reports whether the N flag is set.
func (r *Registers) Negative() bool { return r.P&flagN != 0 }

// Overflow reports whether the V flag is set.
func (r *Registers) Overflow() bool { return r.P&flagV != 0 }

// Decimal reports whether the D flag is set.
func (r *Registers) Decimal() bool { return r.P&flagD != 0 }

// InterruptDisable reports whether the I flag is set.
func (r *Registers) InterruptDisable() bool { return r.P&flagI != 0 }

// Zero reports whether the Z flag is set.
func (r *Registers) Zero() bool { return r.P&flagZ != 0 }

// Carry reports whether the C flag is set.
func (r *Registers) Carry() bool { return r.P&flagC != 0 }

// SetNegative sets or clears the N flag.
func (r *Registers) SetNegative(v bool) { r.setFlag(flagN, v) }

// SetOverflow sets or clears the V flag.
func (r *Registers) SetOverflow(v bool) { r.setFlag(flagV, v) }

// SetDecimal sets or clears the D flag.
func (r *Registers) SetDecimal(v bool) { r.setFlag(flagD, v) }

// SetInterruptDisable sets or clears the I flag.
func (r *Registers) SetInterruptDisable(v bool) { r.setFlag(flagI, v) }

// SetZero sets or clears the Z flag.
func (r *Registers) SetZero(v bool) { r.setFlag(flagZ, v) }

// SetCarry sets or clears the C flag.
func (r *Registers) SetCarry(v bool) { r.setFlag(flagC, v) }

func (r *Registers) setFlag(mask uint8, v bool) {
	if v {
		r.P |= mask
	} else {
		r.P &^= mask
	}
}

// StatusByte returns P with bits 5 and 4 forced to 1, the way any read or
// push of the status register observes it.
func (r *Registers) StatusByte() uint8 {
	return r.P | flagS | flagB
}

// SetStatusByte replaces P wholesale, as PLP does. Bits 5 and 4 still read
// back as 1 regardless of what's stored, per StatusByte.
func (r *Registers) SetStatusByte(p uint8) {
	r.P = p
}

// FormatStatus renders the eight-character mnemonic NV-BDIZC, uppercasing
// each letter whose flag is set and lowercasing it otherwise. Positions 2
// and 3 are the literal '-' and 'B'.
func (r *Registers) FormatStatus() string {
	out := [7]byte{'n', 'v', '-', 'b', 'd', 'i', 'z'}
	if r.Negative() {
		out[0] = 'N'
	}
	if r.Overflow() {
		out[1] = 'V'
	}
	out[3] = 'B'
	if r.Decimal() {
		out[4] = 'D'
	}
	if r.InterruptDisable() {
		out[5] = 'I'
	}
	if r.Zero() {
		out[6] = 'Z'
	}
	status := string(out[:])
	if r.Carry() {
		status += "C"
	} else {
		status += "c"
	}
	return status
}

// Push writes b to the stack at StackBase+S, then decrements S with 8-bit
// wrap (post-decrement).
func (r *Registers) Push(mem *memory.Memory, b byte) error {
	if err := mem.Write(int(StackBase)+int(r.S), []byte{b}); err != nil {
		return err
	}
	r.S--
	return nil
}

// Pull increments S with 8-bit wrap (pre-increment), then returns the byte
// at StackBase+S.
func (r *Registers) Pull(mem *memory.Memory) (byte, error) {
	r.S++
	b, err := mem.Read(int(StackBase)+int(r.S), 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PushWord pushes a 16-bit value high byte first, so that PullWord (low
// then high) reconstructs it. This is the order JSR/BRK use for PC.
func (r *Registers) PushWord(mem *memory.Memory, v uint16) error {
	if err := r.Push(mem, byte(v>>8)); err != nil {
		return err
	}
	return r.Push(mem, byte(v))
}

// PullWord reverses PushWord: low byte first, then high.
func (r *Registers) PullWord(mem *memory.Memory) (uint16, error) {
	lo, err := r.Pull(mem)
	if err != nil {
		return 0, err
	}
	hi, err := r.Pull(mem)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
