package cpu

import (
	"fmt"

	"github.com/jawr/soft65c02/memory"
)

func modeImplied(operands []byte, site uint16) AddressingMode     { return Implied{} }
func modeAccumulator(operands []byte, site uint16) AddressingMode { return Accumulator{} }
func modeImmediate(operands []byte, site uint16) AddressingMode {
	return Immediate{Byte: operands[0]}
}
func modeZeroPage(operands []byte, site uint16) AddressingMode {
	return ZeroPage{Byte: operands[0]}
}
func modeZeroPageXIndexed(operands []byte, site uint16) AddressingMode {
	return ZeroPageXIndexed{Byte: operands[0]}
}
func modeZeroPageYIndexed(operands []byte, site uint16) AddressingMode {
	return ZeroPageYIndexed{Byte: operands[0]}
}
func modeZeroPageXIndexedIndirect(operands []byte, site uint16) AddressingMode {
	return ZeroPageXIndexedIndirect{Byte: operands[0]}
}
func modeZeroPageIndirectYIndexed(operands []byte, site uint16) AddressingMode {
	return ZeroPageIndirectYIndexed{Byte: operands[0]}
}
func modeZeroPageIndirect(operands []byte, site uint16) AddressingMode {
	return ZeroPageIndirect{Byte: operands[0]}
}
func modeAbsolute(operands []byte, site uint16) AddressingMode {
	return Absolute{Lo: operands[0], Hi: operands[1]}
}
func modeAbsoluteXIndexed(operands []byte, site uint16) AddressingMode {
	return AbsoluteXIndexed{Lo: operands[0], Hi: operands[1]}
}
func modeAbsoluteYIndexed(operands []byte, site uint16) AddressingMode {
	return AbsoluteYIndexed{Lo: operands[0], Hi: operands[1]}
}
func modeAbsoluteXIndexedIndirect(operands []byte, site uint16) AddressingMode {
	return AbsoluteXIndexedIndirect{Lo: operands[0], Hi: operands[1]}
}
func modeIndirect(operands []byte, site uint16) AddressingMode {
	return Indirect{Lo: operands[0], Hi: operands[1]}
}
func modeRelative(operands []byte, site uint16) AddressingMode {
	return Relative{Site: site, Offset: operands[0]}
}
func modeZeroPageRelative(operands []byte, site uint16) AddressingMode {
	return ZeroPageRelative{Site: site, Byte: operands[0], Offset: operands[1]}
}

// opcodeTable is the authoritative 65C02 decode table: all 256 slots are
// populated, the undocumented ones with the documented NOP length/cycle
// count the CMOS part gives them.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", 7, 0, brk, modeImplied},
	0x01: {"ORA", 6, 1, ora, modeZeroPageXIndexedIndirect},
	0x02: {"NOP", 2, 1, nop, modeImmediate},
	0x03: {"NOP", 1, 0, nop, modeImplied},
	0x04: {"TSB", 5, 1, tsb, modeZeroPage},
	0x05: {"ORA", 3, 1, ora, modeZeroPage},
	0x06: {"ASL", 5, 1, asl, modeZeroPage},
	0x07: {"RMB0", 5, 1, rmb, modeZeroPage},
	0x08: {"PHP", 3, 0, php, modeImplied},
	0x09: {"ORA", 2, 1, ora, modeImmediate},
	0x0A: {"ASL", 2, 0, asl, modeAccumulator},
	0x0B: {"NOP", 1, 0, nop, modeImplied},
	0x0C: {"TSB", 6, 2, tsb, modeAbsolute},
	0x0D: {"ORA", 4, 2, ora, modeAbsolute},
	0x0E: {"ASL", 6, 2, asl, modeAbsolute},
	0x0F: {"BBR0", 5, 2, bbr, modeZeroPageRelative},

	0x10: {"BPL", 2, 1, bpl, modeRelative},
	0x11: {"ORA", 5, 1, ora, modeZeroPageIndirectYIndexed},
	0x12: {"ORA", 5, 1, ora, modeZeroPageIndirect},
	0x13: {"NOP", 1, 0, nop, modeImplied},
	0x14: {"TRB", 5, 1, trb, modeZeroPage},
	0x15: {"ORA", 4, 1, ora, modeZeroPageXIndexed},
	0x16: {"ASL", 6, 1, asl, modeZeroPageXIndexed},
	0x17: {"RMB1", 5, 1, rmb, modeZeroPage},
	0x18: {"CLC", 2, 0, clc, modeImplied},
	0x19: {"ORA", 4, 2, ora, modeAbsoluteYIndexed},
	0x1A: {"INC", 2, 0, inc, modeAccumulator},
	0x1B: {"NOP", 1, 0, nop, modeImplied},
	0x1C: {"TRB", 6, 2, trb, modeAbsolute},
	0x1D: {"ORA", 4, 2, ora, modeAbsoluteXIndexed},
	0x1E: {"ASL", 7, 2, asl, modeAbsoluteXIndexed},
	0x1F: {"BBR1", 5, 2, bbr, modeZeroPageRelative},

	0x20: {"JSR", 6, 2, jsr, modeAbsolute},
	0x21: {"AND", 6, 1, and, modeZeroPageXIndexedIndirect},
	0x22: {"NOP", 2, 1, nop, modeImmediate},
	0x23: {"NOP", 1, 0, nop, modeImplied},
	0x24: {"BIT", 3, 1, bit, modeZeroPage},
	0x25: {"AND", 3, 1, and, modeZeroPage},
	0x26: {"ROL", 5, 1, rol, modeZeroPage},
	0x27: {"RMB2", 5, 1, rmb, modeZeroPage},
	0x28: {"PLP", 4, 0, plp, modeImplied},
	0x29: {"AND", 2, 1, and, modeImmediate},
	0x2A: {"ROL", 2, 0, rol, modeAccumulator},
	0x2B: {"NOP", 1, 0, nop, modeImplied},
	0x2C: {"BIT", 4, 2, bit, modeAbsolute},
	0x2D: {"AND", 4, 2, and, modeAbsolute},
	0x2E: {"ROL", 6, 2, rol, modeAbsolute},
	0x2F: {"BBR2", 5, 2, bbr, modeZeroPageRelative},

	0x30: {"BMI", 2, 1, bmi, modeRelative},
	0x31: {"AND", 5, 1, and, modeZeroPageIndirectYIndexed},
	0x32: {"AND", 5, 1, and, modeZeroPageIndirect},
	0x33: {"NOP", 1, 0, nop, modeImplied},
	0x34: {"BIT", 4, 1, bit, modeZeroPageXIndexed},
	0x35: {"AND", 4, 1, and, modeZeroPageXIndexed},
	0x36: {"ROL", 6, 1, rol, modeZeroPageXIndexed},
	0x37: {"RMB3", 5, 1, rmb, modeZeroPage},
	0x38: {"SEC", 2, 0, sec, modeImplied},
	0x39: {"AND", 4, 2, and, modeAbsoluteYIndexed},
	0x3A: {"DEC", 2, 0, dec, modeAccumulator},
	0x3B: {"NOP", 1, 0, nop, modeImplied},
	0x3C: {"BIT", 4, 2, bit, modeAbsoluteXIndexed},
	0x3D: {"AND", 4, 2, and, modeAbsoluteXIndexed},
	0x3E: {"ROL", 7, 2, rol, modeAbsoluteXIndexed},
	0x3F: {"BBR3", 5, 2, bbr, modeZeroPageRelative},

	0x40: {"RTI", 6, 0, rti, modeImplied},
	0x41: {"EOR", 6, 1, eor, modeZeroPageXIndexedIndirect},
	0x42: {"NOP", 2, 1, nop, modeImmediate},
	0x43: {"NOP", 1, 0, nop, modeImplied},
	0x44: {"NOP", 3, 1, nop, modeZeroPage},
	0x45: {"EOR", 3, 1, eor, modeZeroPage},
	0x46: {"LSR", 5, 1, lsr, modeZeroPage},
	0x47: {"RMB4", 5, 1, rmb, modeZeroPage},
	0x48: {"PHA", 3, 0, pha, modeImplied},
	0x49: {"EOR", 2, 1, eor, modeImmediate},
	0x4A: {"LSR", 2, 0, lsr, modeAccumulator},
	0x4B: {"NOP", 1, 0, nop, modeImplied},
	0x4C: {"JMP", 3, 2, jmp, modeAbsolute},
	0x4D: {"EOR", 4, 2, eor, modeAbsolute},
	0x4E: {"LSR", 6, 2, lsr, modeAbsolute},
	0x4F: {"BBR4", 5, 2, bbr, modeZeroPageRelative},

	0x50: {"BVC", 2, 1, bvc, modeRelative},
	0x51: {"EOR", 5, 1, eor, modeZeroPageIndirectYIndexed},
	0x52: {"EOR", 5, 1, eor, modeZeroPageIndirect},
	0x53: {"NOP", 1, 0, nop, modeImplied},
	0x54: {"NOP", 4, 1, nop, modeZeroPageXIndexed},
	0x55: {"EOR", 4, 1, eor, modeZeroPageXIndexed},
	0x56: {"LSR", 6, 1, lsr, modeZeroPageXIndexed},
	0x57: {"RMB5", 5, 1, rmb, modeZeroPage},
	0x58: {"CLI", 2, 0, cli, modeImplied},
	0x59: {"EOR", 4, 2, eor, modeAbsoluteYIndexed},
	0x5A: {"PHY", 3, 0, phy, modeImplied},
	0x5B: {"NOP", 1, 0, nop, modeImplied},
	0x5C: {"NOP", 8, 2, nop, modeAbsolute},
	0x5D: {"EOR", 4, 2, eor, modeAbsoluteXIndexed},
	0x5E: {"LSR", 7, 2, lsr, modeAbsoluteXIndexed},
	0x5F: {"BBR5", 5, 2, bbr, modeZeroPageRelative},

	0x60: {"RTS", 6, 0, rts, modeImplied},
	0x61: {"ADC", 6, 1, adc, modeZeroPageXIndexedIndirect},
	0x62: {"NOP", 2, 1, nop, modeImmediate},
	0x63: {"NOP", 1, 0, nop, modeImplied},
	0x64: {"STZ", 3, 1, stz, modeZeroPage},
	0x65: {"ADC", 3, 1, adc, modeZeroPage},
	0x66: {"ROR", 5, 1, ror, modeZeroPage},
	0x67: {"RMB6", 5, 1, rmb, modeZeroPage},
	0x68: {"PLA", 4, 0, pla, modeImplied},
	0x69: {"ADC", 2, 1, adc, modeImmediate},
	0x6A: {"ROR", 2, 0, ror, modeAccumulator},
	0x6B: {"NOP", 1, 0, nop, modeImplied},
	0x6C: {"JMP", 6, 2, jmp, modeIndirect},
	0x6D: {"ADC", 4, 2, adc, modeAbsolute},
	0x6E: {"ROR", 6, 2, ror, modeAbsolute},
	0x6F: {"BBR6", 5, 2, bbr, modeZeroPageRelative},

	0x70: {"BVS", 2, 1, bvs, modeRelative},
	0x71: {"ADC", 5, 1, adc, modeZeroPageIndirectYIndexed},
	0x72: {"ADC", 5, 1, adc, modeZeroPageIndirect},
	0x73: {"NOP", 1, 0, nop, modeImplied},
	0x74: {"STZ", 4, 1, stz, modeZeroPageXIndexed},
	0x75: {"ADC", 4, 1, adc, modeZeroPageXIndexed},
	0x76: {"ROR", 6, 1, ror, modeZeroPageXIndexed},
	0x77: {"RMB7", 5, 1, rmb, modeZeroPage},
	0x78: {"SEI", 2, 0, sei, modeImplied},
	0x79: {"ADC", 4, 2, adc, modeAbsoluteYIndexed},
	0x7A: {"PLY", 4, 0, ply, modeImplied},
	0x7B: {"NOP", 1, 0, nop, modeImplied},
	0x7C: {"JMP", 6, 2, jmp, modeAbsoluteXIndexedIndirect},
	0x7D: {"ADC", 4, 2, adc, modeAbsoluteXIndexed},
	0x7E: {"ROR", 7, 2, ror, modeAbsoluteXIndexed},
	0x7F: {"BBR7", 5, 2, bbr, modeZeroPageRelative},

	0x80: {"BRA", 2, 1, bra, modeRelative},
	0x81: {"STA", 6, 1, sta, modeZeroPageXIndexedIndirect},
	0x82: {"NOP", 2, 1, nop, modeImmediate},
	0x83: {"NOP", 1, 0, nop, modeImplied},
	0x84: {"STY", 3, 1, sty, modeZeroPage},
	0x85: {"STA", 3, 1, sta, modeZeroPage},
	0x86: {"STX", 3, 1, stx, modeZeroPage},
	0x87: {"SMB0", 5, 1, smb, modeZeroPage},
	0x88: {"DEY", 2, 0, dey, modeImplied},
	0x89: {"BIT", 2, 1, bit, modeImmediate},
	0x8A: {"TXA", 2, 0, txa, modeImplied},
	0x8B: {"NOP", 1, 0, nop, modeImplied},
	0x8C: {"STY", 4, 2, sty, modeAbsolute},
	0x8D: {"STA", 4, 2, sta, modeAbsolute},
	0x8E: {"STX", 4, 2, stx, modeAbsolute},
	0x8F: {"BBS0", 5, 2, bbs, modeZeroPageRelative},

	0x90: {"BCC", 2, 1, bcc, modeRelative},
	0x91: {"STA", 6, 1, sta, modeZeroPageIndirectYIndexed},
	0x92: {"STA", 5, 1, sta, modeZeroPageIndirect},
	0x93: {"NOP", 1, 0, nop, modeImplied},
	0x94: {"STY", 4, 1, sty, modeZeroPageXIndexed},
	0x95: {"STA", 4, 1, sta, modeZeroPageXIndexed},
	0x96: {"STX", 4, 1, stx, modeZeroPageYIndexed},
	0x97: {"SMB1", 5, 1, smb, modeZeroPage},
	0x98: {"TYA", 2, 0, tya, modeImplied},
	0x99: {"STA", 5, 2, sta, modeAbsoluteYIndexed},
	0x9A: {"TXS", 2, 0, txs, modeImplied},
	0x9B: {"NOP", 1, 0, nop, modeImplied},
	0x9C: {"STZ", 4, 2, stz, modeAbsolute},
	0x9D: {"STA", 5, 2, sta, modeAbsoluteXIndexed},
	0x9E: {"STZ", 5, 2, stz, modeAbsoluteXIndexed},
	0x9F: {"BBS1", 5, 2, bbs, modeZeroPageRelative},

	0xA0: {"LDY", 2, 1, ldy, modeImmediate},
	0xA1: {"LDA", 6, 1, lda, modeZeroPageXIndexedIndirect},
	0xA2: {"LDX", 2, 1, ldx, modeImmediate},
	0xA3: {"NOP", 1, 0, nop, modeImplied},
	0xA4: {"LDY", 3, 1, ldy, modeZeroPage},
	0xA5: {"LDA", 3, 1, lda, modeZeroPage},
	0xA6: {"LDX", 3, 1, ldx, modeZeroPage},
	0xA7: {"SMB2", 5, 1, smb, modeZeroPage},
	0xA8: {"TAY", 2, 0, tay, modeImplied},
	0xA9: {"LDA", 2, 1, lda, modeImmediate},
	0xAA: {"TAX", 2, 0, tax, modeImplied},
	0xAB: {"NOP", 1, 0, nop, modeImplied},
	0xAC: {"LDY", 4, 2, ldy, modeAbsolute},
	0xAD: {"LDA", 4, 2, lda, modeAbsolute},
	0xAE: {"LDX", 4, 2, ldx, modeAbsolute},
	0xAF: {"BBS2", 5, 2, bbs, modeZeroPageRelative},

	0xB0: {"BCS", 2, 1, bcs, modeRelative},
	0xB1: {"LDA", 5, 1, lda, modeZeroPageIndirectYIndexed},
	0xB2: {"LDA", 5, 1, lda, modeZeroPageIndirect},
	0xB3: {"NOP", 1, 0, nop, modeImplied},
	0xB4: {"LDY", 4, 1, ldy, modeZeroPageXIndexed},
	0xB5: {"LDA", 4, 1, lda, modeZeroPageXIndexed},
	0xB6: {"LDX", 4, 1, ldx, modeZeroPageYIndexed},
	0xB7: {"SMB3", 5, 1, smb, modeZeroPage},
	0xB8: {"CLV", 2, 0, clv, modeImplied},
	0xB9: {"LDA", 4, 2, lda, modeAbsoluteYIndexed},
	0xBA: {"TSX", 2, 0, tsx, modeImplied},
	0xBB: {"NOP", 1, 0, nop, modeImplied},
	0xBC: {"LDY", 4, 2, ldy, modeAbsoluteXIndexed},
	0xBD: {"LDA", 4, 2, lda, modeAbsoluteXIndexed},
	0xBE: {"LDX", 4, 2, ldx, modeAbsoluteYIndexed},
	0xBF: {"BBS3", 5, 2, bbs, modeZeroPageRelative},

	0xC0: {"CPY", 2, 1, cpy, modeImmediate},
	0xC1: {"CMP", 6, 1, cmp, modeZeroPageXIndexedIndirect},
	0xC2: {"NOP", 2, 1, nop, modeImmediate},
	0xC3: {"NOP", 1, 0, nop, modeImplied},
	0xC4: {"CPY", 3, 1, cpy, modeZeroPage},
	0xC5: {"CMP", 3, 1, cmp, modeZeroPage},
	0xC6: {"DEC", 5, 1, dec, modeZeroPage},
	0xC7: {"SMB4", 5, 1, smb, modeZeroPage},
	0xC8: {"INY", 2, 0, iny, modeImplied},
	0xC9: {"CMP", 2, 1, cmp, modeImmediate},
	0xCA: {"DEX", 2, 0, dex, modeImplied},
	0xCB: {"WAI", 3, 0, wai, modeImplied},
	0xCC: {"CPY", 4, 2, cpy, modeAbsolute},
	0xCD: {"CMP", 4, 2, cmp, modeAbsolute},
	0xCE: {"DEC", 6, 2, dec, modeAbsolute},
	0xCF: {"BBS4", 5, 2, bbs, modeZeroPageRelative},

	0xD0: {"BNE", 2, 1, bne, modeRelative},
	0xD1: {"CMP", 5, 1, cmp, modeZeroPageIndirectYIndexed},
	0xD2: {"CMP", 5, 1, cmp, modeZeroPageIndirect},
	0xD3: {"NOP", 1, 0, nop, modeImplied},
	0xD4: {"NOP", 4, 1, nop, modeZeroPageXIndexed},
	0xD5: {"CMP", 4, 1, cmp, modeZeroPageXIndexed},
	0xD6: {"DEC", 6, 1, dec, modeZeroPageXIndexed},
	0xD7: {"SMB5", 5, 1, smb, modeZeroPage},
	0xD8: {"CLD", 2, 0, cld, modeImplied},
	0xD9: {"CMP", 4, 2, cmp, modeAbsoluteYIndexed},
	0xDA: {"PHX", 3, 0, phx, modeImplied},
	0xDB: {"STP", 3, 0, stp, modeImplied},
	0xDC: {"NOP", 4, 2, nop, modeAbsoluteXIndexed},
	0xDD: {"CMP", 4, 2, cmp, modeAbsoluteXIndexed},
	0xDE: {"DEC", 7, 2, dec, modeAbsoluteXIndexed},
	0xDF: {"BBS5", 5, 2, bbs, modeZeroPageRelative},

	0xE0: {"CPX", 2, 1, cpx, modeImmediate},
	0xE1: {"SBC", 6, 1, sbc, modeZeroPageXIndexedIndirect},
	0xE2: {"NOP", 2, 1, nop, modeImmediate},
	0xE3: {"NOP", 1, 0, nop, modeImplied},
	0xE4: {"CPX", 3, 1, cpx, modeZeroPage},
	0xE5: {"SBC", 3, 1, sbc, modeZeroPage},
	0xE6: {"INC", 5, 1, inc, modeZeroPage},
	0xE7: {"SMB6", 5, 1, smb, modeZeroPage},
	0xE8: {"INX", 2, 0, inx, modeImplied},
	0xE9: {"SBC", 2, 1, sbc, modeImmediate},
	0xEA: {"NOP", 2, 0, nop, modeImplied},
	0xEB: {"NOP", 1, 0, nop, modeImplied},
	0xEC: {"CPX", 4, 2, cpx, modeAbsolute},
	0xED: {"SBC", 4, 2, sbc, modeAbsolute},
	0xEE: {"INC", 6, 2, inc, modeAbsolute},
	0xEF: {"BBS6", 5, 2, bbs, modeZeroPageRelative},

	0xF0: {"BEQ", 2, 1, beq, modeRelative},
	0xF1: {"SBC", 5, 1, sbc, modeZeroPageIndirectYIndexed},
	0xF2: {"SBC", 5, 1, sbc, modeZeroPageIndirect},
	0xF3: {"NOP", 1, 0, nop, modeImplied},
	0xF4: {"NOP", 4, 1, nop, modeZeroPageXIndexed},
	0xF5: {"SBC", 4, 1, sbc, modeZeroPageXIndexed},
	0xF6: {"INC", 6, 1, inc, modeZeroPageXIndexed},
	0xF7: {"SMB7", 5, 1, smb, modeZeroPage},
	0xF8: {"SED", 2, 0, sed, modeImplied},
	0xF9: {"SBC", 4, 2, sbc, modeAbsoluteYIndexed},
	0xFA: {"PLX", 4, 0, plx, modeImplied},
	0xFB: {"NOP", 1, 0, nop, modeImplied},
	0xFC: {"NOP", 4, 2, nop, modeAbsoluteXIndexed},
	0xFD: {"SBC", 4, 2, sbc, modeAbsoluteXIndexed},
	0xFE: {"INC", 7, 2, inc, modeAbsoluteXIndexed},
	0xFF: {"BBS7", 5, 2, bbs, modeZeroPageRelative},
}

// decode reads one instruction site out of mem: the opcode byte at addr,
// then however many operand bytes its table entry calls for, and builds
// the Instruction ready for execute(). It never advances any register;
// callers decide what to do with the result.
func decode(addr uint16, mem *memory.Memory) (*Instruction, error) {
	opcodeByte, err := mem.Read(int(addr), 1)
	if err != nil {
		return nil, wrapMemoryErr(err)
	}
	opcode := opcodeByte[0]
	entry := opcodeTable[opcode]
	if entry.fn == nil {
		return nil, wrapMemoryErr(fmt.Errorf("cpu: opcode $%02X at $%04X has no decode table entry", opcode, addr))
	}

	operands, err := mem.Read(int(addr)+1, int(entry.operandLen))
	if err != nil {
		return nil, wrapMemoryErr(err)
	}

	return &Instruction{
		Address:  addr,
		Opcode:   opcode,
		Mnemonic: entry.mnemonic,
		Mode:     entry.newMode(operands, addr),
		Cycles:   entry.baseCyc,
		fn:       entry.fn,
	}, nil
}
