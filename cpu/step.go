package cpu

import (
	"fmt"
	"strings"

	"github.com/jawr/soft65c02/memory"
)

// LogLine is the observable record of one executed instruction: enough to
// reproduce the traditional disassembler line and to drive a tester's
// register assertions, without the caller needing to retain the
// Instruction it came from.
type LogLine struct {
	Address    uint16
	Opcode     byte
	Operands   []byte
	Mnemonic   string
	Resolution Resolution
	Cycles     uint8
	Outcome    string
	Registers  Registers
}

// String renders the LogLine in the canonical
// "#0xAAAA: (oo op1 op2)  MNE  <operand-display>   outcome-text[C]" form.
func (l LogLine) String() string {
	bytes := append([]byte{l.Opcode}, l.Operands...)
	hex := make([]string, len(bytes))
	for i, b := range bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}

	return fmt.Sprintf("#0x%04X: (%s)  %-4s  %s   %s[%d]",
		l.Address,
		strings.Join(hex, " "),
		l.Mnemonic,
		operandDisplay(l.Resolution),
		l.Outcome,
		l.Cycles,
	)
}

// ExecuteStep decodes the instruction at regs.PC, runs its microcode, folds
// its cycle count into regs.Cycles, and returns the resulting LogLine.
func ExecuteStep(regs *Registers, mem *memory.Memory) (LogLine, error) {
	ins, err := decode(regs.PC, mem)
	if err != nil {
		return LogLine{}, err
	}

	outcome, err := ins.execute(regs, mem)
	if err != nil {
		return LogLine{}, err
	}

	// Re-resolve for display purposes only: no addressing mode's target
	// depends on the registers its own microcode just mutated (X/Y used
	// for indexing are never the destination of the same instruction), so
	// this is safe to do after execute() with the live registers.
	res, _ := Resolve(ins.Mode, mem, regs)

	regs.Cycles += uint64(ins.Cycles)

	return LogLine{
		Address:    ins.Address,
		Opcode:     ins.Opcode,
		Operands:   ins.Mode.Operands(),
		Mnemonic:   ins.Mnemonic,
		Resolution: res,
		Cycles:     ins.Cycles,
		Outcome:    outcome,
		Registers:  *regs,
	}, nil
}

// ReadStep decodes the instruction at addr without executing it, for
// disassemblers that must not perturb CPU state.
func ReadStep(addr uint16, mem *memory.Memory) (*Instruction, error) {
	return decode(addr, mem)
}

// Disassemble decodes every instruction from start up to and including the
// one that starts at or crosses end, in program order.
func Disassemble(start, end uint16, mem *memory.Memory) ([]*Instruction, error) {
	var out []*Instruction
	addr := start
	for addr <= end {
		ins, err := decode(addr, mem)
		if err != nil {
			return out, err
		}
		out = append(out, ins)

		next := addr + 1 + ins.Mode.length()
		if next <= addr {
			break // 16-bit address space exhausted
		}
		addr = next
	}
	return out, nil
}

// MemoryParserIterator is a restartable, lazy forward iterator over
// instructions starting at a fixed address: each Next() decodes one more
// instruction and advances past it, independent of any executing CPU.
type MemoryParserIterator struct {
	start uint16
	mem   *memory.Memory
	next  uint16
}

// NewMemoryParserIterator returns an iterator that will yield instructions
// starting at start, in order, until a decode error occurs.
func NewMemoryParserIterator(start uint16, mem *memory.Memory) *MemoryParserIterator {
	return &MemoryParserIterator{start: start, mem: mem, next: start}
}

// Next decodes the instruction at the iterator's current position and
// advances it past that instruction's bytes.
func (it *MemoryParserIterator) Next() (*Instruction, error) {
	ins, err := decode(it.next, it.mem)
	if err != nil {
		return nil, err
	}
	it.next = it.next + 1 + ins.Mode.length()
	return ins, nil
}

// Reset rewinds the iterator back to its construction address.
func (it *MemoryParserIterator) Reset() {
	it.next = it.start
}
