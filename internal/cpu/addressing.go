package cpu

// fetchByte reads the byte at PC and advances PC by one. It is the only
// way operand bytes are consumed, keeping PC advancement entirely inside
// address resolution as this spec's CPU contract requires.
func (cpu *CPU) fetchByte() uint8 {
	b := cpu.memory.Read(cpu.PC)
	cpu.PC++
	return b
}

func (cpu *CPU) fetchWord() uint16 {
	lo := uint16(cpu.fetchByte())
	hi := uint16(cpu.fetchByte())
	return lo | hi<<8
}

// resolve implements the AddressResolver table (§4.2): given an
// addressing mode and the current register state, it consumes whatever
// operand bytes that mode requires and returns the effective address.
// Accumulator, Relative, and Implied do not resolve to a memory address
// and must not be passed here — callers special-case them.
func (cpu *CPU) resolve(mode AddressingMode) uint16 {
	switch mode {
	case Immediate:
		addr := cpu.PC
		cpu.PC++
		return addr
	case ZeroPage:
		return uint16(cpu.fetchByte())
	case ZeroPageX:
		return uint16(cpu.fetchByte()+cpu.X) & zeroPageMask
	case ZeroPageY:
		return uint16(cpu.fetchByte()+cpu.Y) & zeroPageMask
	case Absolute:
		return cpu.fetchWord()
	case AbsoluteX:
		return cpu.fetchWord() + uint16(cpu.X)
	case AbsoluteY:
		return cpu.fetchWord() + uint16(cpu.Y)
	case Indirect:
		return cpu.resolveIndirect(cpu.fetchWord())
	case IndexedIndirect:
		zp := cpu.fetchByte()
		t := uint16(zp+cpu.X) & zeroPageMask
		lo := uint16(cpu.memory.Read(t))
		hi := uint16(cpu.memory.Read((t + 1) & zeroPageMask))
		return lo | hi<<8
	case IndirectIndexed:
		zp := cpu.fetchByte()
		lo := uint16(cpu.memory.Read(uint16(zp)))
		hi := uint16(cpu.memory.Read(uint16(zp+1) & zeroPageMask))
		base := lo | hi<<8
		return base + uint16(cpu.Y)
	default:
		panic(&FaultError{Kind: "UnsupportedAddressingMode", PC: cpu.PC, Detail: "mode has no memory address"})
	}
}

// resolveIndirect reproduces the 6502's Indirect-JMP page-boundary bug:
// when ptr's low byte is 0xFF, the high byte of the target is read from
// the start of the same page rather than the next page.
func (cpu *CPU) resolveIndirect(ptr uint16) uint16 {
	lo := uint16(cpu.memory.Read(ptr))
	var hi uint16
	if ptr&zeroPageMask == zeroPageMask {
		hi = uint16(cpu.memory.Read(ptr & pageMask))
	} else {
		hi = uint16(cpu.memory.Read(ptr + 1))
	}
	return lo | hi<<8
}

// resolveRelative consumes a Relative-mode signed operand byte and
// returns the branch target, computed as PC + signed_offset after the
// operand byte itself has been consumed.
func (cpu *CPU) resolveRelative() uint16 {
	offset := int8(cpu.fetchByte())
	return uint16(int32(cpu.PC) + int32(offset))
}
