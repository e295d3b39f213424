package cpu

import "github.com/jawr/soft65c02/memory"

func lda(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.A = op.Value
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func ldx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.X = op.Value
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func ldy(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	regs.Y = op.Value
	setNZ(regs, regs.Y)
	advanceSequential(ins, regs)
	return fmtByte("Y", regs.Y), nil
}

func sta(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := resolveAddress(ins, regs, mem)
	if err != nil {
		return "", err
	}
	storeResult(ins, regs, mem, res, regs.A)
	advanceSequential(ins, regs)
	return "stored A", nil
}

func stx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := resolveAddress(ins, regs, mem)
	if err != nil {
		return "", err
	}
	storeResult(ins, regs, mem, res, regs.X)
	advanceSequential(ins, regs)
	return "stored X", nil
}

func sty(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := resolveAddress(ins, regs, mem)
	if err != nil {
		return "", err
	}
	storeResult(ins, regs, mem, res, regs.Y)
	advanceSequential(ins, regs)
	return "stored Y", nil
}

// stz is a 65C02 addition: store zero, without touching flags.
func stz(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := resolveAddress(ins, regs, mem)
	if err != nil {
		return "", err
	}
	storeResult(ins, regs, mem, res, 0)
	advanceSequential(ins, regs)
	return "stored 0", nil
}

func tax(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.X = regs.A
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func tay(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.Y = regs.A
	setNZ(regs, regs.Y)
	advanceSequential(ins, regs)
	return fmtByte("Y", regs.Y), nil
}

func txa(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.A = regs.X
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func tya(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.A = regs.Y
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func tsx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.X = regs.S
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func txs(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.S = regs.X
	advanceSequential(ins, regs)
	return fmtByte("S", regs.S), nil
}
