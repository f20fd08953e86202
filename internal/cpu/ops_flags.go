package cpu

func opCLC(cpu *CPU, _ AddressingMode) { cpu.C = false }
func opSEC(cpu *CPU, _ AddressingMode) { cpu.C = true }
func opCLI(cpu *CPU, _ AddressingMode) { cpu.I = false }
func opSEI(cpu *CPU, _ AddressingMode) { cpu.I = true }
func opCLV(cpu *CPU, _ AddressingMode) { cpu.V = false }
func opCLD(cpu *CPU, _ AddressingMode) { cpu.D = false }
func opSED(cpu *CPU, _ AddressingMode) { cpu.D = true }
