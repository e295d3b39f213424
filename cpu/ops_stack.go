package cpu

import "github.com/jawr/soft65c02/memory"

func pha(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	if err := regs.Push(mem, regs.A); err != nil {
		return "", wrapMemoryErr(err)
	}
	advanceSequential(ins, regs)
	return "pushed A", nil
}

func php(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	if err := regs.Push(mem, regs.StatusByte()); err != nil {
		return "", wrapMemoryErr(err)
	}
	advanceSequential(ins, regs)
	return "pushed P", nil
}

// phx and phy are 65C02 additions.
func phx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	if err := regs.Push(mem, regs.X); err != nil {
		return "", wrapMemoryErr(err)
	}
	advanceSequential(ins, regs)
	return "pushed X", nil
}

func phy(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	if err := regs.Push(mem, regs.Y); err != nil {
		return "", wrapMemoryErr(err)
	}
	advanceSequential(ins, regs)
	return "pushed Y", nil
}

func pla(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	v, err := regs.Pull(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.A = v
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

func plp(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	v, err := regs.Pull(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.SetStatusByte(v)
	advanceSequential(ins, regs)
	return "pulled P", nil
}

func plx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	v, err := regs.Pull(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.X = v
	setNZ(regs, regs.X)
	advanceSequential(ins, regs)
	return fmtByte("X", regs.X), nil
}

func ply(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	v, err := regs.Pull(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.Y = v
	setNZ(regs, regs.Y)
	advanceSequential(ins, regs)
	return fmtByte("Y", regs.Y), nil
}

// jmp redirects PC to the resolved address. Absolute, Indirect and
// AbsoluteXIndexedIndirect are the only modes that reach here, and
// Indirect already applied the CMOS page-safe fix in Resolve.
func jmp(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := Resolve(ins.Mode, mem, regs)
	if err != nil {
		return "", wrapResolutionErr(err)
	}
	regs.PC = *res.Address
	return fmtWord("PC", regs.PC), nil
}

// jsr pushes the address of the last byte of the JSR instruction (not the
// address of the next instruction), then jumps, matching the classic 6502
// return-address convention that RTS compensates for.
func jsr(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	res, err := Resolve(ins.Mode, mem, regs)
	if err != nil {
		return "", wrapResolutionErr(err)
	}
	returnTo := ins.Address + 2
	if err := regs.PushWord(mem, returnTo); err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.PC = *res.Address
	return fmtWord("PC", regs.PC), nil
}

// rts pulls the return address pushed by JSR and resumes just past it.
func rts(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	addr, err := regs.PullWord(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.PC = addr + 1
	return fmtWord("PC", regs.PC), nil
}

// brk pushes PC+2 (BRK's operand byte is conventionally skipped, leaving a
// signature byte available to the handler), pushes P with the B flag
// forced set, sets I, then jumps through the IRQ/BRK vector.
func brk(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	returnTo := ins.Address + 2
	if err := regs.PushWord(mem, returnTo); err != nil {
		return "", wrapMemoryErr(err)
	}
	if err := regs.Push(mem, regs.StatusByte()); err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.SetInterruptDisable(true)
	regs.SetDecimal(false) // 65C02 fix over NMOS, which left D untouched

	lo, hi, err := readVector(mem, InterruptVector)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.PC = uint16(hi)<<8 | uint16(lo)
	return fmtWord("PC", regs.PC), nil
}

// rti restores P and PC from the stack, the BRK/IRQ handler's return.
// Unlike RTS it does not add one: the pushed PC already points at the
// instruction following BRK.
func rti(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	p, err := regs.Pull(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.SetStatusByte(p)

	addr, err := regs.PullWord(mem)
	if err != nil {
		return "", wrapMemoryErr(err)
	}
	regs.PC = addr
	return fmtWord("PC", regs.PC), nil
}
