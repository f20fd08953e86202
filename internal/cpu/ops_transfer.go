package cpu

func opTAX(cpu *CPU, _ AddressingMode) {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

func opTAY(cpu *CPU, _ AddressingMode) {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

func opTXA(cpu *CPU, _ AddressingMode) {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

func opTYA(cpu *CPU, _ AddressingMode) {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}

func opTSX(cpu *CPU, _ AddressingMode) {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
}

// TXS copies X into SP and, uniquely among the transfers, does not touch
// Z/N.
func opTXS(cpu *CPU, _ AddressingMode) {
	cpu.SP = cpu.X
}
