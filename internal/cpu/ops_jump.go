package cpu

// JMP sets PC to the effective address; Absolute and Indirect (with its
// page-boundary bug) are both handled by the shared resolver.
func opJMP(cpu *CPU, mode AddressingMode) {
	cpu.PC = cpu.resolve(mode)
}

// JSR pushes (PC-1) high-then-low, where PC at that point already sits
// just past the two-byte operand, then jumps to the target.
func opJSR(cpu *CPU, mode AddressingMode) {
	target := cpu.resolve(mode)
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = target
}

// RTS pulls low-then-high and sets PC to that plus one.
func opRTS(cpu *CPU, _ AddressingMode) {
	cpu.PC = cpu.pullWord() + 1
}

// RTI pulls P, preserving bits 4 (Break) and 5 (Unused) of the current P
// rather than taking them from the stack, then pulls PC with no
// adjustment.
func opRTI(cpu *CPU, _ AddressingMode) {
	stacked := cpu.pull()
	current := cpu.GetStatusByte()
	preserved := current & (breakMask | unusedMask)
	cpu.SetStatusByte(preserved | (stacked &^ (breakMask | unusedMask)))
	cpu.PC = cpu.pullWord()
}
