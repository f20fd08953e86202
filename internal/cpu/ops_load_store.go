package cpu

func opLDA(cpu *CPU, mode AddressingMode) {
	cpu.A = cpu.memory.Read(cpu.resolve(mode))
	cpu.setZN(cpu.A)
}

func opLDX(cpu *CPU, mode AddressingMode) {
	cpu.X = cpu.memory.Read(cpu.resolve(mode))
	cpu.setZN(cpu.X)
}

func opLDY(cpu *CPU, mode AddressingMode) {
	cpu.Y = cpu.memory.Read(cpu.resolve(mode))
	cpu.setZN(cpu.Y)
}

func opSTA(cpu *CPU, mode AddressingMode) {
	cpu.memory.Write(cpu.resolve(mode), cpu.A)
}

func opSTX(cpu *CPU, mode AddressingMode) {
	cpu.memory.Write(cpu.resolve(mode), cpu.X)
}

func opSTY(cpu *CPU, mode AddressingMode) {
	cpu.memory.Write(cpu.resolve(mode), cpu.Y)
}
