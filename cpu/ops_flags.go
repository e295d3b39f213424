package cpu

import "github.com/jawr/soft65c02/memory"

func clc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetCarry(false)
	advanceSequential(ins, regs)
	return "C cleared", nil
}

func cld(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetDecimal(false)
	advanceSequential(ins, regs)
	return "D cleared", nil
}

func cli(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetInterruptDisable(false)
	advanceSequential(ins, regs)
	return "I cleared", nil
}

func clv(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetOverflow(false)
	advanceSequential(ins, regs)
	return "V cleared", nil
}

func sec(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetCarry(true)
	advanceSequential(ins, regs)
	return "C set", nil
}

func sed(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetDecimal(true)
	advanceSequential(ins, regs)
	return "D set", nil
}

func sei(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	regs.SetInterruptDisable(true)
	advanceSequential(ins, regs)
	return "I set", nil
}
