package cpu

import (
	"fmt"
	"strings"
)

// peekWord reads a little-endian word without mutating PC — used only by
// trace rendering, which must never have side effects on execution.
func (cpu *CPU) peekWord(addr uint16) uint16 {
	lo := uint16(cpu.memory.Read(addr))
	hi := uint16(cpu.memory.Read(addr + 1))
	return lo | hi<<8
}

// TraceLine renders the CPU's current state as a single NESTest-compatible
// trace line: PC, raw instruction bytes, mnemonic and operand disassembly,
// then register state. It is read-only — calling it must not alter PC,
// registers, or memory, so it can be invoked from the Run callback before
// every instruction without perturbing execution.
func (cpu *CPU) TraceLine() string {
	pc := cpu.PC
	opcode := cpu.memory.Read(pc)
	instr := cpu.instructions[opcode]
	if instr == nil {
		return fmt.Sprintf("%04X  ??                              A:%02X X:%02X Y:%02X P:%02X SP:%02X",
			pc, cpu.A, cpu.X, cpu.Y, cpu.GetStatusByte(), cpu.SP)
	}

	raw := make([]string, instr.Bytes)
	for i := uint8(0); i < instr.Bytes; i++ {
		raw[i] = fmt.Sprintf("%02X", cpu.memory.Read(pc+uint16(i)))
	}
	codeStr := strings.Join(raw, " ")

	name := instr.Name
	if instr.Unofficial {
		name = "*" + name
	}
	insStr := name
	if operand := cpu.disassembleOperand(pc, instr); operand != "" {
		insStr = name + " " + operand
	}

	regStr := fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", cpu.A, cpu.X, cpu.Y, cpu.GetStatusByte(), cpu.SP)
	pcStr := fmt.Sprintf("%04X", pc)
	return fmt.Sprintf("%-5s %-8s %-32s %s", pcStr, codeStr, insStr, regStr)
}

// disassembleOperand renders the operand half of the trace line per
// addressing mode, matching NESTest's golden-log formatting rules
// exactly, including the JMP/JSR special case (bare address, no
// "= value" suffix) and the Indirect page-boundary bug reflected back
// into the disassembly itself.
func (cpu *CPU) disassembleOperand(pc uint16, instr *Instruction) string {
	switch instr.Mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", cpu.memory.Read(pc+1))
	case ZeroPage:
		zp := cpu.memory.Read(pc + 1)
		return fmt.Sprintf("$%02X = %02X", zp, cpu.memory.Read(uint16(zp)))
	case ZeroPageX:
		zp := cpu.memory.Read(pc + 1)
		addr := uint16(zp+cpu.X) & zeroPageMask
		return fmt.Sprintf("$%02X,X @ %02X = %02X", zp, addr, cpu.memory.Read(addr))
	case ZeroPageY:
		zp := cpu.memory.Read(pc + 1)
		addr := uint16(zp+cpu.Y) & zeroPageMask
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", zp, addr, cpu.memory.Read(addr))
	case Absolute:
		abs := cpu.peekWord(pc + 1)
		if instr.Name == "JMP" || instr.Name == "JSR" {
			return fmt.Sprintf("$%04X", abs)
		}
		return fmt.Sprintf("$%04X = %02X", abs, cpu.memory.Read(abs))
	case AbsoluteX:
		abs := cpu.peekWord(pc + 1)
		addr := abs + uint16(cpu.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", abs, addr, cpu.memory.Read(addr))
	case AbsoluteY:
		abs := cpu.peekWord(pc + 1)
		addr := abs + uint16(cpu.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", abs, addr, cpu.memory.Read(addr))
	case Indirect:
		ptr := cpu.peekWord(pc + 1)
		addr := cpu.resolveIndirect(ptr)
		return fmt.Sprintf("($%04X) = %04X", ptr, addr)
	case IndexedIndirect:
		zp := cpu.memory.Read(pc + 1)
		t := uint16(zp+cpu.X) & zeroPageMask
		lo := uint16(cpu.memory.Read(t))
		hi := uint16(cpu.memory.Read((t + 1) & zeroPageMask))
		addr := lo | hi<<8
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zp, t, addr, cpu.memory.Read(addr))
	case IndirectIndexed:
		zp := cpu.memory.Read(pc + 1)
		lo := uint16(cpu.memory.Read(uint16(zp)))
		hi := uint16(cpu.memory.Read(uint16(zp+1) & zeroPageMask))
		base := lo | hi<<8
		addr := base + uint16(cpu.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, base, addr, cpu.memory.Read(addr))
	case Relative:
		offset := int8(cpu.memory.Read(pc + 1))
		target := uint16(int32(pc) + 2 + int32(offset))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}
