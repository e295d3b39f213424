package cpu

import "github.com/jawr/soft65c02/memory"

func and(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.A &= op.Value
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func ora(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.A |= op.Value
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func eor(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.A ^= op.Value
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

// bit implements BIT's two faces: the classic memory form transfers bits
// 7/6 of the operand into N/V and sets Z from A&M; the 65C02-only
// immediate form only ever touches Z, since there's no memory cell to read
// N/V out of.
func bit(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}

	regs.SetZero(regs.A&op.Value == 0)
	if _, immediate := ins.Mode.(Immediate); !immediate {
		regs.SetNegative(op.Value&0x80 != 0)
		regs.SetOverflow(op.Value&0x40 != 0)
	}
	advanceSequential(ins, regs)
	return "tested", nil
}

// trb clears, in memory, the bits that are set in A. Z is set from A&M
// taken before the write.
func trb(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.SetZero(regs.A&op.Value == 0)
	storeResult(ins, regs, mem, op.Resolution, op.Value&^regs.A)
	advanceSequential(ins, regs)
	return "reset bits", nil
}

// tsb sets, in memory, the bits that are set in A. Z is set from A&M taken
// before the write.
func tsb(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.SetZero(regs.A&op.Value == 0)
	storeResult(ins, regs, mem, op.Resolution, op.Value|regs.A)
	advanceSequential(ins, regs)
	return "set bits", nil
}
