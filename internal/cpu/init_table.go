package cpu

// installOfficial populates every documented 6502 opcode. The table is a
// flat array; decoding is one indexed lookup, never a chain of branches.
func (t *instructionTable) installOfficial() {
	// Load/Store
	t.set(0xA9, "LDA", 2, 2, Immediate, opLDA)
	t.set(0xA5, "LDA", 2, 3, ZeroPage, opLDA)
	t.set(0xB5, "LDA", 2, 4, ZeroPageX, opLDA)
	t.set(0xAD, "LDA", 3, 4, Absolute, opLDA)
	t.set(0xBD, "LDA", 3, 4, AbsoluteX, opLDA)
	t.set(0xB9, "LDA", 3, 4, AbsoluteY, opLDA)
	t.set(0xA1, "LDA", 2, 6, IndexedIndirect, opLDA)
	t.set(0xB1, "LDA", 2, 5, IndirectIndexed, opLDA)

	t.set(0xA2, "LDX", 2, 2, Immediate, opLDX)
	t.set(0xA6, "LDX", 2, 3, ZeroPage, opLDX)
	t.set(0xB6, "LDX", 2, 4, ZeroPageY, opLDX)
	t.set(0xAE, "LDX", 3, 4, Absolute, opLDX)
	t.set(0xBE, "LDX", 3, 4, AbsoluteY, opLDX)

	t.set(0xA0, "LDY", 2, 2, Immediate, opLDY)
	t.set(0xA4, "LDY", 2, 3, ZeroPage, opLDY)
	t.set(0xB4, "LDY", 2, 4, ZeroPageX, opLDY)
	t.set(0xAC, "LDY", 3, 4, Absolute, opLDY)
	t.set(0xBC, "LDY", 3, 4, AbsoluteX, opLDY)

	t.set(0x85, "STA", 2, 3, ZeroPage, opSTA)
	t.set(0x95, "STA", 2, 4, ZeroPageX, opSTA)
	t.set(0x8D, "STA", 3, 4, Absolute, opSTA)
	t.set(0x9D, "STA", 3, 5, AbsoluteX, opSTA)
	t.set(0x99, "STA", 3, 5, AbsoluteY, opSTA)
	t.set(0x81, "STA", 2, 6, IndexedIndirect, opSTA)
	t.set(0x91, "STA", 2, 6, IndirectIndexed, opSTA)

	t.set(0x86, "STX", 2, 3, ZeroPage, opSTX)
	t.set(0x96, "STX", 2, 4, ZeroPageY, opSTX)
	t.set(0x8E, "STX", 3, 4, Absolute, opSTX)

	t.set(0x84, "STY", 2, 3, ZeroPage, opSTY)
	t.set(0x94, "STY", 2, 4, ZeroPageX, opSTY)
	t.set(0x8C, "STY", 3, 4, Absolute, opSTY)

	// Arithmetic
	t.set(0x69, "ADC", 2, 2, Immediate, opADC)
	t.set(0x65, "ADC", 2, 3, ZeroPage, opADC)
	t.set(0x75, "ADC", 2, 4, ZeroPageX, opADC)
	t.set(0x6D, "ADC", 3, 4, Absolute, opADC)
	t.set(0x7D, "ADC", 3, 4, AbsoluteX, opADC)
	t.set(0x79, "ADC", 3, 4, AbsoluteY, opADC)
	t.set(0x61, "ADC", 2, 6, IndexedIndirect, opADC)
	t.set(0x71, "ADC", 2, 5, IndirectIndexed, opADC)

	t.set(0xE9, "SBC", 2, 2, Immediate, opSBC)
	t.set(0xE5, "SBC", 2, 3, ZeroPage, opSBC)
	t.set(0xF5, "SBC", 2, 4, ZeroPageX, opSBC)
	t.set(0xED, "SBC", 3, 4, Absolute, opSBC)
	t.set(0xFD, "SBC", 3, 4, AbsoluteX, opSBC)
	t.set(0xF9, "SBC", 3, 4, AbsoluteY, opSBC)
	t.set(0xE1, "SBC", 2, 6, IndexedIndirect, opSBC)
	t.set(0xF1, "SBC", 2, 5, IndirectIndexed, opSBC)

	// Logical
	t.set(0x29, "AND", 2, 2, Immediate, opAND)
	t.set(0x25, "AND", 2, 3, ZeroPage, opAND)
	t.set(0x35, "AND", 2, 4, ZeroPageX, opAND)
	t.set(0x2D, "AND", 3, 4, Absolute, opAND)
	t.set(0x3D, "AND", 3, 4, AbsoluteX, opAND)
	t.set(0x39, "AND", 3, 4, AbsoluteY, opAND)
	t.set(0x21, "AND", 2, 6, IndexedIndirect, opAND)
	t.set(0x31, "AND", 2, 5, IndirectIndexed, opAND)

	t.set(0x09, "ORA", 2, 2, Immediate, opORA)
	t.set(0x05, "ORA", 2, 3, ZeroPage, opORA)
	t.set(0x15, "ORA", 2, 4, ZeroPageX, opORA)
	t.set(0x0D, "ORA", 3, 4, Absolute, opORA)
	t.set(0x1D, "ORA", 3, 4, AbsoluteX, opORA)
	t.set(0x19, "ORA", 3, 4, AbsoluteY, opORA)
	t.set(0x01, "ORA", 2, 6, IndexedIndirect, opORA)
	t.set(0x11, "ORA", 2, 5, IndirectIndexed, opORA)

	t.set(0x49, "EOR", 2, 2, Immediate, opEOR)
	t.set(0x45, "EOR", 2, 3, ZeroPage, opEOR)
	t.set(0x55, "EOR", 2, 4, ZeroPageX, opEOR)
	t.set(0x4D, "EOR", 3, 4, Absolute, opEOR)
	t.set(0x5D, "EOR", 3, 4, AbsoluteX, opEOR)
	t.set(0x59, "EOR", 3, 4, AbsoluteY, opEOR)
	t.set(0x41, "EOR", 2, 6, IndexedIndirect, opEOR)
	t.set(0x51, "EOR", 2, 5, IndirectIndexed, opEOR)

	// Shift/rotate
	t.set(0x0A, "ASL", 1, 2, Accumulator, opASL)
	t.set(0x06, "ASL", 2, 5, ZeroPage, opASL)
	t.set(0x16, "ASL", 2, 6, ZeroPageX, opASL)
	t.set(0x0E, "ASL", 3, 6, Absolute, opASL)
	t.set(0x1E, "ASL", 3, 7, AbsoluteX, opASL)

	t.set(0x4A, "LSR", 1, 2, Accumulator, opLSR)
	t.set(0x46, "LSR", 2, 5, ZeroPage, opLSR)
	t.set(0x56, "LSR", 2, 6, ZeroPageX, opLSR)
	t.set(0x4E, "LSR", 3, 6, Absolute, opLSR)
	t.set(0x5E, "LSR", 3, 7, AbsoluteX, opLSR)

	t.set(0x2A, "ROL", 1, 2, Accumulator, opROL)
	t.set(0x26, "ROL", 2, 5, ZeroPage, opROL)
	t.set(0x36, "ROL", 2, 6, ZeroPageX, opROL)
	t.set(0x2E, "ROL", 3, 6, Absolute, opROL)
	t.set(0x3E, "ROL", 3, 7, AbsoluteX, opROL)

	t.set(0x6A, "ROR", 1, 2, Accumulator, opROR)
	t.set(0x66, "ROR", 2, 5, ZeroPage, opROR)
	t.set(0x76, "ROR", 2, 6, ZeroPageX, opROR)
	t.set(0x6E, "ROR", 3, 6, Absolute, opROR)
	t.set(0x7E, "ROR", 3, 7, AbsoluteX, opROR)

	// Comparisons
	t.set(0xC9, "CMP", 2, 2, Immediate, opCMP)
	t.set(0xC5, "CMP", 2, 3, ZeroPage, opCMP)
	t.set(0xD5, "CMP", 2, 4, ZeroPageX, opCMP)
	t.set(0xCD, "CMP", 3, 4, Absolute, opCMP)
	t.set(0xDD, "CMP", 3, 4, AbsoluteX, opCMP)
	t.set(0xD9, "CMP", 3, 4, AbsoluteY, opCMP)
	t.set(0xC1, "CMP", 2, 6, IndexedIndirect, opCMP)
	t.set(0xD1, "CMP", 2, 5, IndirectIndexed, opCMP)

	t.set(0xE0, "CPX", 2, 2, Immediate, opCPX)
	t.set(0xE4, "CPX", 2, 3, ZeroPage, opCPX)
	t.set(0xEC, "CPX", 3, 4, Absolute, opCPX)

	t.set(0xC0, "CPY", 2, 2, Immediate, opCPY)
	t.set(0xC4, "CPY", 2, 3, ZeroPage, opCPY)
	t.set(0xCC, "CPY", 3, 4, Absolute, opCPY)

	// Increment/decrement
	t.set(0xE6, "INC", 2, 5, ZeroPage, opINC)
	t.set(0xF6, "INC", 2, 6, ZeroPageX, opINC)
	t.set(0xEE, "INC", 3, 6, Absolute, opINC)
	t.set(0xFE, "INC", 3, 7, AbsoluteX, opINC)

	t.set(0xC6, "DEC", 2, 5, ZeroPage, opDEC)
	t.set(0xD6, "DEC", 2, 6, ZeroPageX, opDEC)
	t.set(0xCE, "DEC", 3, 6, Absolute, opDEC)
	t.set(0xDE, "DEC", 3, 7, AbsoluteX, opDEC)

	t.set(0xE8, "INX", 1, 2, Implied, opINX)
	t.set(0xCA, "DEX", 1, 2, Implied, opDEX)
	t.set(0xC8, "INY", 1, 2, Implied, opINY)
	t.set(0x88, "DEY", 1, 2, Implied, opDEY)

	// Transfers
	t.set(0xAA, "TAX", 1, 2, Implied, opTAX)
	t.set(0x8A, "TXA", 1, 2, Implied, opTXA)
	t.set(0xA8, "TAY", 1, 2, Implied, opTAY)
	t.set(0x98, "TYA", 1, 2, Implied, opTYA)
	t.set(0xBA, "TSX", 1, 2, Implied, opTSX)
	t.set(0x9A, "TXS", 1, 2, Implied, opTXS)

	// Stack
	t.set(0x48, "PHA", 1, 3, Implied, opPHA)
	t.set(0x68, "PLA", 1, 4, Implied, opPLA)
	t.set(0x08, "PHP", 1, 3, Implied, opPHP)
	t.set(0x28, "PLP", 1, 4, Implied, opPLP)

	// Flags
	t.set(0x18, "CLC", 1, 2, Implied, opCLC)
	t.set(0x38, "SEC", 1, 2, Implied, opSEC)
	t.set(0x58, "CLI", 1, 2, Implied, opCLI)
	t.set(0x78, "SEI", 1, 2, Implied, opSEI)
	t.set(0xB8, "CLV", 1, 2, Implied, opCLV)
	t.set(0xD8, "CLD", 1, 2, Implied, opCLD)
	t.set(0xF8, "SED", 1, 2, Implied, opSED)

	// Control flow
	t.set(0x4C, "JMP", 3, 3, Absolute, opJMP)
	t.set(0x6C, "JMP", 3, 5, Indirect, opJMP)
	t.set(0x20, "JSR", 3, 6, Absolute, opJSR)
	t.set(0x60, "RTS", 1, 6, Implied, opRTS)
	t.set(0x40, "RTI", 1, 6, Implied, opRTI)

	// Branches
	t.set(0x90, "BCC", 2, 2, Relative, opBCC)
	t.set(0xB0, "BCS", 2, 2, Relative, opBCS)
	t.set(0xD0, "BNE", 2, 2, Relative, opBNE)
	t.set(0xF0, "BEQ", 2, 2, Relative, opBEQ)
	t.set(0x10, "BPL", 2, 2, Relative, opBPL)
	t.set(0x30, "BMI", 2, 2, Relative, opBMI)
	t.set(0x50, "BVC", 2, 2, Relative, opBVC)
	t.set(0x70, "BVS", 2, 2, Relative, opBVS)

	// Miscellaneous
	t.set(0x24, "BIT", 2, 3, ZeroPage, opBIT)
	t.set(0x2C, "BIT", 3, 4, Absolute, opBIT)
	t.set(0xEA, "NOP", 1, 2, Implied, opNOP)
	t.set(0x00, "BRK", 1, 7, Implied, opBRK)
}

// installUnofficial populates the illegal/undocumented opcodes NESTest's
// golden log exercises: the NOP family, a duplicate SBC, and the
// combined read-modify-write and immediate-mode operations.
func (t *instructionTable) installUnofficial() {
	// Single-byte NOPs
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		t.setUnofficial(op, "NOP", 1, 2, Implied, opNOP)
	}
	// Immediate SKB
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		t.setUnofficial(op, "NOP", 2, 2, Immediate, opNOP)
	}
	// Zero-page IGN
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		t.setUnofficial(op, "NOP", 2, 3, ZeroPage, opNOP)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		t.setUnofficial(op, "NOP", 2, 4, ZeroPageX, opNOP)
	}
	// Absolute IGN
	t.setUnofficial(0x0C, "NOP", 3, 4, Absolute, opNOP)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		t.setUnofficial(op, "NOP", 3, 4, AbsoluteX, opNOP)
	}

	// Duplicate SBC
	t.setUnofficial(0xEB, "SBC", 2, 2, Immediate, opSBC)

	// LAX
	t.setUnofficial(0xA7, "LAX", 2, 3, ZeroPage, opLAX)
	t.setUnofficial(0xB7, "LAX", 2, 4, ZeroPageY, opLAX)
	t.setUnofficial(0xAF, "LAX", 3, 4, Absolute, opLAX)
	t.setUnofficial(0xBF, "LAX", 3, 4, AbsoluteY, opLAX)
	t.setUnofficial(0xA3, "LAX", 2, 6, IndexedIndirect, opLAX)
	t.setUnofficial(0xB3, "LAX", 2, 5, IndirectIndexed, opLAX)

	// SAX
	t.setUnofficial(0x87, "SAX", 2, 3, ZeroPage, opSAX)
	t.setUnofficial(0x97, "SAX", 2, 4, ZeroPageY, opSAX)
	t.setUnofficial(0x8F, "SAX", 3, 4, Absolute, opSAX)
	t.setUnofficial(0x83, "SAX", 2, 6, IndexedIndirect, opSAX)

	// DCP
	t.setUnofficial(0xC7, "DCP", 2, 5, ZeroPage, opDCP)
	t.setUnofficial(0xD7, "DCP", 2, 6, ZeroPageX, opDCP)
	t.setUnofficial(0xCF, "DCP", 3, 6, Absolute, opDCP)
	t.setUnofficial(0xDF, "DCP", 3, 7, AbsoluteX, opDCP)
	t.setUnofficial(0xDB, "DCP", 3, 7, AbsoluteY, opDCP)
	t.setUnofficial(0xC3, "DCP", 2, 8, IndexedIndirect, opDCP)
	t.setUnofficial(0xD3, "DCP", 2, 8, IndirectIndexed, opDCP)

	// ISB
	t.setUnofficial(0xE7, "ISB", 2, 5, ZeroPage, opISB)
	t.setUnofficial(0xF7, "ISB", 2, 6, ZeroPageX, opISB)
	t.setUnofficial(0xEF, "ISB", 3, 6, Absolute, opISB)
	t.setUnofficial(0xFF, "ISB", 3, 7, AbsoluteX, opISB)
	t.setUnofficial(0xFB, "ISB", 3, 7, AbsoluteY, opISB)
	t.setUnofficial(0xE3, "ISB", 2, 8, IndexedIndirect, opISB)
	t.setUnofficial(0xF3, "ISB", 2, 8, IndirectIndexed, opISB)

	// SLO
	t.setUnofficial(0x07, "SLO", 2, 5, ZeroPage, opSLO)
	t.setUnofficial(0x17, "SLO", 2, 6, ZeroPageX, opSLO)
	t.setUnofficial(0x0F, "SLO", 3, 6, Absolute, opSLO)
	t.setUnofficial(0x1F, "SLO", 3, 7, AbsoluteX, opSLO)
	t.setUnofficial(0x1B, "SLO", 3, 7, AbsoluteY, opSLO)
	t.setUnofficial(0x03, "SLO", 2, 8, IndexedIndirect, opSLO)
	t.setUnofficial(0x13, "SLO", 2, 8, IndirectIndexed, opSLO)

	// RLA
	t.setUnofficial(0x27, "RLA", 2, 5, ZeroPage, opRLA)
	t.setUnofficial(0x37, "RLA", 2, 6, ZeroPageX, opRLA)
	t.setUnofficial(0x2F, "RLA", 3, 6, Absolute, opRLA)
	t.setUnofficial(0x3F, "RLA", 3, 7, AbsoluteX, opRLA)
	t.setUnofficial(0x3B, "RLA", 3, 7, AbsoluteY, opRLA)
	t.setUnofficial(0x23, "RLA", 2, 8, IndexedIndirect, opRLA)
	t.setUnofficial(0x33, "RLA", 2, 8, IndirectIndexed, opRLA)

	// SRE
	t.setUnofficial(0x47, "SRE", 2, 5, ZeroPage, opSRE)
	t.setUnofficial(0x57, "SRE", 2, 6, ZeroPageX, opSRE)
	t.setUnofficial(0x4F, "SRE", 3, 6, Absolute, opSRE)
	t.setUnofficial(0x5F, "SRE", 3, 7, AbsoluteX, opSRE)
	t.setUnofficial(0x5B, "SRE", 3, 7, AbsoluteY, opSRE)
	t.setUnofficial(0x43, "SRE", 2, 8, IndexedIndirect, opSRE)
	t.setUnofficial(0x53, "SRE", 2, 8, IndirectIndexed, opSRE)

	// RRA
	t.setUnofficial(0x67, "RRA", 2, 5, ZeroPage, opRRA)
	t.setUnofficial(0x77, "RRA", 2, 6, ZeroPageX, opRRA)
	t.setUnofficial(0x6F, "RRA", 3, 6, Absolute, opRRA)
	t.setUnofficial(0x7F, "RRA", 3, 7, AbsoluteX, opRRA)
	t.setUnofficial(0x7B, "RRA", 3, 7, AbsoluteY, opRRA)
	t.setUnofficial(0x63, "RRA", 2, 8, IndexedIndirect, opRRA)
	t.setUnofficial(0x73, "RRA", 2, 8, IndirectIndexed, opRRA)

	// Immediate-mode combos
	t.setUnofficial(0x4B, "ALR", 2, 2, Immediate, opALR)
	t.setUnofficial(0x0B, "ANC", 2, 2, Immediate, opANC)
	t.setUnofficial(0x2B, "ANC", 2, 2, Immediate, opANC)
	t.setUnofficial(0x6B, "ARR", 2, 2, Immediate, opARR)
	t.setUnofficial(0xCB, "AXS", 2, 2, Immediate, opAXS)
}
