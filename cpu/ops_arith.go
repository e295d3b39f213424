package cpu

import "github.com/jawr/soft65c02/memory"

func adc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}

	a, m := regs.A, op.Value
	var sum uint8
	if regs.Decimal() {
		sum = decimalAdd(regs, a, m)
		ins.raiseCycles(1)
	} else {
		sum = binaryAdd(regs, a, m)
	}
	regs.A = sum
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

// binaryAdd performs the ordinary unsigned sum, setting C from the 9-bit
// result and V from the classic signed-overflow formula.
func binaryAdd(regs *Registers, a, m byte) byte {
	var c uint16
	if regs.Carry() {
		c = 1
	}
	wide := uint16(a) + uint16(m) + c
	result := uint8(wide)
	regs.SetCarry(wide > 0xFF)
	regs.SetOverflow((a^result)&(m^result)&0x80 != 0)
	return result
}

// decimalAdd implements the 65C02's BCD-correct ADC: split both operands
// into nibbles, add with cascading carry, normalise each nibble modulo 10,
// and recombine. N, V and Z are valid on the CMOS part (unlike NMOS); V is
// taken from the classic formula applied to the plain binary sum, before
// any BCD correction, per DESIGN.md's resolution of the spec's open question.
func decimalAdd(regs *Registers, a, m byte) byte {
	var c uint8
	if regs.Carry() {
		c = 1
	}

	lo := (a & 0x0F) + (m & 0x0F) + c
	var loCarry uint8
	if lo > 9 {
		lo -= 10
		loCarry = 1
	}

	hi := (a >> 4) + (m >> 4) + loCarry
	carryOut := false
	if hi > 9 {
		hi -= 10
		carryOut = true
	}

	result := (hi << 4) | (lo & 0x0F)
	binary := a + m + c
	regs.SetCarry(carryOut)
	regs.SetOverflow((a^binary)&(m^binary)&0x80 != 0)
	return result
}

func sbc(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}

	a, m := regs.A, op.Value
	var result uint8
	if regs.Decimal() {
		result = decimalSubtract(regs, a, m)
		ins.raiseCycles(1)
	} else {
		result = binarySubtract(regs, a, m)
	}
	regs.A = result
	setNZ(regs, regs.A)
	advanceSequential(ins, regs)
	return fmtByte("A", regs.A), nil
}

// binarySubtract implements A - M - (1-C) using the standard two's
// complement trick of adding the one's complement of M plus the carry.
func binarySubtract(regs *Registers, a, m byte) byte {
	var c uint16
	if regs.Carry() {
		c = 1
	}
	wide := uint16(a) + uint16(^m) + c
	result := uint8(wide)
	regs.SetCarry(wide > 0xFF) // NOT borrow
	regs.SetOverflow((a^result)&(^m^result)&0x80 != 0)
	return result
}

// decimalSubtract mirrors decimalAdd's nibble-wise approach for SBC.
func decimalSubtract(regs *Registers, a, m byte) byte {
	var borrowIn uint8
	if !regs.Carry() {
		borrowIn = 1
	}

	lo := int8(a&0x0F) - int8(m&0x0F) - int8(borrowIn)
	var loBorrow uint8
	if lo < 0 {
		lo += 10
		loBorrow = 1
	}

	hi := int8(a>>4) - int8(m>>4) - int8(loBorrow)
	carryOut := true
	if hi < 0 {
		hi += 10
		carryOut = false
	}

	result := (uint8(hi) << 4) | (uint8(lo) & 0x0F)
	binary := a + ^m + (1 - borrowIn)
	regs.SetCarry(carryOut)
	regs.SetOverflow((a^binary)&(^m^binary)&0x80 != 0)
	return result
}

func compare(regs *Registers, reg, m byte) byte {
	result := reg - m
	regs.SetCarry(reg >= m)
	setNZ(regs, result)
	return result
}

func cmp(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	compare(regs, regs.A, op.Value)
	advanceSequential(ins, regs)
	return "compared A", nil
}

func cpx(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	compare(regs, regs.X, op.Value)
	advanceSequential(ins, regs)
	return "compared X", nil
}

func cpy(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	op, err := loadOperand(ins, regs, mem)
	if err != nil {
		return "", err
	}
	compare(regs, regs.Y, op.Value)
	advanceSequential(ins, regs)
	return "compared Y", nil
}
