package cpu

func opINC(cpu *CPU, mode AddressingMode) {
	addr := cpu.resolve(mode)
	v := cpu.memory.Read(addr) + 1
	cpu.memory.Write(addr, v)
	cpu.setZN(v)
}

func opDEC(cpu *CPU, mode AddressingMode) {
	addr := cpu.resolve(mode)
	v := cpu.memory.Read(addr) - 1
	cpu.memory.Write(addr, v)
	cpu.setZN(v)
}

func opINX(cpu *CPU, _ AddressingMode) {
	cpu.X++
	cpu.setZN(cpu.X)
}

func opDEX(cpu *CPU, _ AddressingMode) {
	cpu.X--
	cpu.setZN(cpu.X)
}

func opINY(cpu *CPU, _ AddressingMode) {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

func opDEY(cpu *CPU, _ AddressingMode) {
	cpu.Y--
	cpu.setZN(cpu.Y)
}
