package cpu

import "github.com/jawr/soft65c02/memory"

// doBranch is shared by every conditional branch. It always advances PC
// past the instruction first, then redirects it if cond holds, raising the
// branch-taken surcharge and the further page-cross surcharge per §4.D.3.
func doBranch(ins *Instruction, regs *Registers, cond bool) (string, error) {
	rel := ins.Mode.(Relative)
	fallthroughPC := ins.Address + 1 + ins.Mode.length()
	if !cond {
		regs.PC = fallthroughPC
		return "not taken", nil
	}

	target := resolveRelativeTarget(rel.Site, rel.Offset)
	ins.raiseCycles(1)
	if crossesPage(fallthroughPC, target) {
		ins.raiseCycles(1)
	}
	regs.PC = target
	return fmtWord("PC", regs.PC), nil
}

func bcc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, !regs.Carry())
}

func bcs(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, regs.Carry())
}

func beq(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, regs.Zero())
}

func bne(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, !regs.Zero())
}

func bmi(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, regs.Negative())
}

func bpl(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, !regs.Negative())
}

func bvc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, !regs.Overflow())
}

func bvs(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, regs.Overflow())
}

// bra is the 65C02's unconditional branch: always taken.
func bra(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return doBranch(ins, regs, true)
}

// bitNumber extracts bits 6-4 of a BBRn/BBSn/RMBn/SMBn opcode: the opcode
// layout is 0bSNNN_1111 for BBR/BBS and 0bSNNN_0111 for RMB/SMB, where S
// is 0 for BBR/RMB and 1 for BBS/SMB, and NNN is the bit index.
func bitNumber(opcode byte) uint {
	return uint((opcode >> 4) & 0x07)
}

// bbr tests bit bitNumber(opcode) of the zero-page operand and branches if
// it is clear.
func bbr(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return zeroPageBranch(ins, regs, mem, false)
}

// bbs tests bit bitNumber(opcode) of the zero-page operand and branches if
// it is set.
func bbs(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return zeroPageBranch(ins, regs, mem, true)
}

func zeroPageBranch(ins *Instruction, regs *Registers, mem *memory.Memory, wantSet bool) (string, error) {
	zpr := ins.Mode.(ZeroPageRelative)
	v := mem.ReadByte(uint16(zpr.Byte))
	bit := byte(1) << bitNumber(ins.Opcode)
	cond := (v&bit != 0) == wantSet

	fallthroughPC := ins.Address + 1 + ins.Mode.length()
	if !cond {
		regs.PC = fallthroughPC
		return "not taken", nil
	}

	// BBRn/BBSn always cost their fixed 5 base cycles, taken or not: no
	// branch-taken or page-cross surcharge per §4.D.2.
	target := resolveRelativeTarget(zpr.Site+1, zpr.Offset)
	regs.PC = target
	return fmtWord("PC", regs.PC), nil
}

// rmb clears bit bitNumber(opcode) of the zero-page operand.
func rmb(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	zp := ins.Mode.(ZeroPage)
	v := mem.ReadByte(uint16(zp.Byte))
	bit := byte(1) << bitNumber(ins.Opcode)
	mem.WriteByte(uint16(zp.Byte), v&^bit)
	advanceSequential(ins, regs)
	return "bit reset", nil
}

// smb sets bit bitNumber(opcode) of the zero-page operand.
func smb(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	zp := ins.Mode.(ZeroPage)
	v := mem.ReadByte(uint16(zp.Byte))
	bit := byte(1) << bitNumber(ins.Opcode)
	mem.WriteByte(uint16(zp.Byte), v|bit)
	advanceSequential(ins, regs)
	return "bit set", nil
}
