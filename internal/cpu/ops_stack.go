package cpu

func opPHA(cpu *CPU, _ AddressingMode) {
	cpu.push(cpu.A)
}

func opPLA(cpu *CPU, _ AddressingMode) {
	cpu.A = cpu.pull()
	cpu.setZN(cpu.A)
}

func opPHP(cpu *CPU, _ AddressingMode) {
	cpu.push(cpu.GetStatusByte())
}

func opPLP(cpu *CPU, _ AddressingMode) {
	cpu.SetStatusByte(cpu.pull())
}
