package cpu

import (
	"fmt"

	"github.com/jawr/soft65c02/memory"
)

// Microcode implements the architectural effect of one mnemonic: it
// resolves its own addressing mode, mutates registers/memory, updates
// flags and cycle surcharges on ins, and returns a short outcome summary
// for the LogLine (e.g. "A:1F" or "PC:1234").
type Microcode func(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error)

// Instruction bundles one decoded opcode site: where it lives, its raw
// byte, the mnemonic and resolved addressing mode, and the microcode that
// executes it. Everything is immutable except Cycles, which microcode
// raises for page-crossing, branch-taken and decimal-mode surcharges.
type Instruction struct {
	Address  uint16
	Opcode   byte
	Mnemonic string
	Mode     AddressingMode
	Cycles   uint8

	fn Microcode
}

// raiseCycles adds n to the instruction's running cycle count. Microcode
// calls this after computing its effect, never before, so the final count
// reflects the actual surcharged cost.
func (ins *Instruction) raiseCycles(n uint8) {
	ins.Cycles += n
}

// execute invokes the instruction's microcode against regs/mem.
func (ins *Instruction) execute(regs *Registers, mem *memory.Memory) (string, error) {
	return ins.fn(ins, regs, mem)
}

// opcodeEntry is a row of the decode table: everything needed to build an
// Instruction once the operand bytes have been read from memory.
type opcodeEntry struct {
	mnemonic   string
	baseCyc    uint8
	operandLen uint8
	fn         Microcode
	newMode    func(operands []byte, site uint16) AddressingMode
}

// displayPad is the column width the operand display is padded to in
// LogLine.String, per the textual format in §6.
const displayPad = 9

// operandDisplay renders the addressing mode's traditional 6502 notation
// plus, when the resolution carries an effective address, a parenthesized
// "(#0xAAAA)" suffix.
func operandDisplay(res Resolution) string {
	s := res.Mode.String()
	if res.Address != nil {
		return fmt.Sprintf("%-*s(#0x%04X)", displayPad, s, *res.Address)
	}
	return fmt.Sprintf("%-*s", displayPad, s)
}
