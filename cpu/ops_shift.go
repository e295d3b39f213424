package cpu

import "github.com/jawr/soft65c02/memory"

func asl(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	result := op.Value << 1
	regs.SetCarry(op.Value&0x80 != 0)
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "shifted", nil
}

func lsr(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	result := op.Value >> 1
	regs.SetCarry(op.Value&0x01 != 0)
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "shifted", nil
}

func rol(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	var c byte
	if regs.Carry() {
		c = 1
	}
	result := (op.Value << 1) | c
	regs.SetCarry(op.Value&0x80 != 0)
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "rotated", nil
}

func ror(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	var c byte
	if regs.Carry() {
		c = 0x80
	}
	result := (op.Value >> 1) | c
	regs.SetCarry(op.Value&0x01 != 0)
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "rotated", nil
}

// inc and dec are polymorphic over Accumulator (65C02 INC A/DEC A) and
// memory, same as the shift family. Neither touches the Carry flag, a
// common pitfall noted in the reference material.
func inc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	result := op.Value + 1
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "incremented", nil
}

func dec(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadRMWOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	result := op.Value - 1
	setNZ(regs, result)
	storeResult(ins, regs, mem, op.Resolution, result)
	advanceSequential(ins, regs)
	return "decremented", nil
}

func inx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.X++
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func iny(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.Y++
	setNZ(regs, regs.Y)
	advanceSequential(ins, regs)
	return fmtByte("Y", regs.Y), nil
}

func dex(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.X--
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func dey(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.Y--
	setNZ(regs, regs.Y)
	advanceSequential(ins, regs)
	return fmtByte("Y", regs.Y), nil
}
