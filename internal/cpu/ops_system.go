package cpu

// BRK is a simplified halt sentinel in this spec: it sets the Break flag
// and nothing else. The run loop (CPU.Run) checks that flag and exits.
// Real 6502 behavior — push PC+2 and status, load the IRQ vector, and
// continue — is explicitly not implemented (see design notes).
func opBRK(cpu *CPU, _ AddressingMode) {
	cpu.B = true
}

// NOP consumes whatever operand bytes its addressing mode calls for
// (single-byte NOP, immediate SKB, or two/three-byte IGN) and otherwise
// does nothing.
func opNOP(cpu *CPU, mode AddressingMode) {
	if mode != Implied {
		cpu.resolve(mode)
	}
}
