package cpu

import (
	"fmt"

	"github.com/jawr/soft65c02/memory"
)

// setNZ updates the Negative and Zero flags from the given 8-bit result,
// the rule shared by every load/transfer/logic/arithmetic instruction.
func setNZ(regs *Registers, v byte) {
	regs.SetNegative(v&0x80 != 0)
	regs.SetZero(v == 0)
}

// advanceSequential moves PC past the instruction's opcode and operand
// bytes. Every microcode routine that doesn't redirect control flow
// itself (branches, jumps, RTS/RTI, BRK) ends by calling this.
func advanceSequential(ins *Instruction, regs *Registers) {
	regs.PC = ins.Address + 1 + ins.Mode.length()
}

// crossesPage reports whether a and b fall in different 256-byte pages.
func crossesPage(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// readSurcharge returns 1 if mode's indexing crossed a page boundary on
// its way to effective, and 0 otherwise. Only AbsoluteXIndexed,
// AbsoluteYIndexed and ZeroPageIndirectYIndexed can incur it, and only on
// reads: write-only instructions never call this.
func readSurcharge(mode AddressingMode, mem *memory.Memory, effective uint16) uint8 {
	var base uint16
	switch m := mode.(type) {
	case AbsoluteXIndexed:
		base = m.word()
	case AbsoluteYIndexed:
		base = m.word()
	case ZeroPageIndirectYIndexed:
		lo, hi, _ := zeroPagePointer(mem, m.Byte)
		base = uint16(hi)<<8 | uint16(lo)
	default:
		return 0
	}
	if crossesPage(base, effective) {
		return 1
	}
	return 0
}

// operand is the resolved input to a read-modify-write or read-only
// instruction: the effective address (nil for Accumulator/Immediate) and
// the byte value found there.
type operand struct {
	Resolution Resolution
	Address    *uint16
	Value      byte
}

// loadOperand resolves ins.Mode and fetches the byte it names, applying
// the read page-cross surcharge where applicable. It panics if the
// addressing mode cannot produce a value, which the decoder guarantees
// never happens for a well-formed opcode table.
func loadOperand(ins *Instruction, regs *Registers, mem *memory.Memory) (operand, error) {
	res, err := Resolve(ins.Mode, mem, regs)
	if err != nil {
		return operand{}, wrapResolutionErr(err)
	}

	switch m := ins.Mode.(type) {
	case Accumulator:
		return operand{Resolution: res, Value: regs.A}, nil
	case Immediate:
		return operand{Resolution: res, Value: m.Byte}, nil
	default:
		if res.Address == nil {
			panic(fmt.Sprintf("%s: addressing mode %T yielded no effective address", ins.Mnemonic, ins.Mode))
		}
		ins.raiseCycles(readSurcharge(ins.Mode, mem, *res.Address))
		return operand{Resolution: res, Address: res.Address, Value: mem.ReadByte(*res.Address)}, nil
	}
}

// resolveAddress is loadOperand's sibling for write-only instructions
// (STA/STX/STY/STZ): it never incurs the read-page-cross surcharge, since
// writes never do.
func resolveAddress(ins *Instruction, regs *Registers, mem *memory.Memory) (Resolution, error) {
	res, err := Resolve(ins.Mode, mem, regs)
	if err != nil {
		return Resolution{}, wrapResolutionErr(err)
	}
	return res, nil
}

// loadRMWOperand is loadOperand's sibling for the read-modify-write family
// (ASL/LSR/ROL/ROR/INC/DEC on memory): per §4.D.3 these carry a fixed
// cycle cost regardless of indexing, so the value is fetched without
// readSurcharge even though, unlike STA/STX/STY/STZ, a byte is read back.
func loadRMWOperand(ins *Instruction, regs *Registers, mem *memory.Memory) (operand, error) {
	res, err := Resolve(ins.Mode, mem, regs)
	if err != nil {
		return operand{}, wrapResolutionErr(err)
	}

	if _, ok := ins.Mode.(Accumulator); ok {
		return operand{Resolution: res, Value: regs.A}, nil
	}
	if res.Address == nil {
		panic(fmt.Sprintf("%s: addressing mode %T yielded no effective address", ins.Mnemonic, ins.Mode))
	}
	return operand{Resolution: res, Address: res.Address, Value: mem.ReadByte(*res.Address)}, nil
}

// storeResult writes v to wherever ins.Mode targets: A for Accumulator,
// memory otherwise. It panics under the same well-formed-table guarantee
// as loadOperand.
func storeResult(ins *Instruction, regs *Registers, mem *memory.Memory, res Resolution, v byte) {
	if _, ok := ins.Mode.(Accumulator); ok {
		regs.A = v
		return
	}
	if res.Address == nil {
		panic(fmt.Sprintf("%s: addressing mode %T has no store target", ins.Mnemonic, ins.Mode))
	}
	mem.WriteByte(*res.Address, v)
}
