package cpu

import "github.com/jawr/soft65c02/memory"

// nop backs every documented NOP slot, including the many undocumented
// byte patterns the 65C02 defines as NOPs of 1, 2 or 3 bytes: the opcode
// table gives each one the addressing mode of the right length, and this
// just advances past it.
func nop(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	// Some NOP forms still read a memory operand on real silicon; none of
	// that is externally observable (no side effects, no flags), so
	// loadOperand is skipped entirely here.
	advanceSequential(ins, regs)
	return "no-op", nil
}

// stp halts the processor: PC is left exactly where it was, so a run
// loop's unchanged-PC termination check fires right after this step.
func stp(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return "stopped", nil
}

// wai waits for an interrupt. Since IRQ/NMI lines aren't modeled, there is
// nothing that will ever wake it: it halts exactly like stp.
func wai(ins *Instruction, regs *Registers, mem *memory.Memory) (string, error) {
	return "waiting", nil
}
