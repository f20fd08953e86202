package cpu

import "testing"

// Scenario 1: LDA immediate + BRK.
func TestScenarioLDAImmediateBRK(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xA9, 0x05, 0x00)

	h.CPU.Run(func(*CPU) {})

	if h.CPU.A != 0x05 {
		t.Errorf("expected A=0x05, got 0x%02X", h.CPU.A)
	}
	if h.CPU.Z {
		t.Errorf("expected Zero clear")
	}
	if h.CPU.N {
		t.Errorf("expected Negative clear")
	}
	if !h.CPU.B {
		t.Errorf("expected Break set")
	}
}

// Scenario 2: LDA + TAX + INX combo.
func TestScenarioLDATAXINX(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xA9, 0xC0, 0xAA, 0xE8, 0x00)

	h.CPU.Run(func(*CPU) {})

	if h.CPU.X != 0xC1 {
		t.Errorf("expected X=0xC1, got 0x%02X", h.CPU.X)
	}
}

// Scenario 3: INX overflow wraps and sets Zero.
func TestScenarioINXOverflow(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xE8, 0xE8, 0x00)
	h.CPU.X = 0xFF

	h.CPU.Run(func(*CPU) {})

	if h.CPU.X != 0x01 {
		t.Errorf("expected X=0x01, got 0x%02X", h.CPU.X)
	}
	if h.CPU.Z {
		t.Errorf("expected Zero clear")
	}
}

// Scenario 4: JSR/RTS round trip.
func TestScenarioSubroutineRoundTrip(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x0600)
	h.LoadProgram(0x0600, 0x20, 0x00, 0x30, 0x00) // JSR $3000 ; BRK
	h.LoadProgram(0x3000, 0x60)                   // RTS
	h.CPU.SP = 0xFF

	h.CPU.Step() // JSR
	if h.CPU.PC != 0x3000 {
		t.Fatalf("expected PC=0x3000 after JSR, got 0x%04X", h.CPU.PC)
	}
	h.CPU.Step() // RTS

	if h.CPU.PC != 0x0603 {
		t.Errorf("expected PC at the BRK byte (0x0603), got 0x%04X", h.CPU.PC)
	}
	if h.CPU.SP != 0xFF {
		t.Errorf("expected SP restored to 0xFF, got 0x%02X", h.CPU.SP)
	}
}

// Scenario 5: Indirect JMP page-boundary bug.
func TestScenarioIndirectJMPPageBug(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x6C, 0xFF, 0x10) // JMP ($10FF)
	h.Memory.SetBytes(0x10FF, 0x34)
	h.Memory.SetBytes(0x1000, 0x12)
	h.Memory.SetBytes(0x1100, 0x56)

	h.CPU.Step()

	if h.CPU.PC != 0x1234 {
		t.Errorf("expected PC=0x1234 (page-boundary bug), got 0x%04X", h.CPU.PC)
	}
}

// Boundary case: branch offset 0x80 jumps -128 bytes.
func TestBranchNegativeOffset(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xB0, 0x80) // BCS -128
	h.CPU.C = true

	h.CPU.Step()

	want := uint16(0x8002 - 128)
	if h.CPU.PC != want {
		t.Errorf("expected PC=0x%04X, got 0x%04X", want, h.CPU.PC)
	}
}

// Boundary case: ADC 0x7F + 0x01 sets Overflow and Negative, clears Carry.
func TestADCOverflowBoundary(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x69, 0x01) // ADC #$01
	h.CPU.A = 0x7F

	h.CPU.Step()

	if h.CPU.A != 0x80 {
		t.Errorf("expected A=0x80, got 0x%02X", h.CPU.A)
	}
	if !h.CPU.V {
		t.Errorf("expected Overflow set")
	}
	if !h.CPU.N {
		t.Errorf("expected Negative set")
	}
	if h.CPU.C {
		t.Errorf("expected Carry clear")
	}
}

// Universal invariant: Z/N track the result for a representative spread
// of register-producing instructions.
func TestZeroNegativeInvariant(t *testing.T) {
	cases := []struct {
		name    string
		program []uint8
		setup   func(*CPU)
		result  func(*CPU) uint8
	}{
		{"LDA zero", []uint8{0xA9, 0x00}, nil, func(c *CPU) uint8 { return c.A }},
		{"LDA negative", []uint8{0xA9, 0x80}, nil, func(c *CPU) uint8 { return c.A }},
		{"AND zero", []uint8{0x29, 0x00}, func(c *CPU) { c.A = 0xFF }, func(c *CPU) uint8 { return c.A }},
	}
	for _, tc := range cases {
		h := NewCPUTestHelper()
		h.SetupResetVector(0x8000)
		h.LoadProgram(0x8000, tc.program...)
		if tc.setup != nil {
			tc.setup(h.CPU)
		}
		h.CPU.Step()
		r := tc.result(h.CPU)
		if h.CPU.Z != (r == 0) {
			t.Errorf("%s: Z mismatch, result=0x%02X Z=%v", tc.name, r, h.CPU.Z)
		}
		if h.CPU.N != (r&0x80 != 0) {
			t.Errorf("%s: N mismatch, result=0x%02X N=%v", tc.name, r, h.CPU.N)
		}
	}
}

// Round-trip law: write then read any RAM address yields the value written.
func TestWriteReadRoundTrip(t *testing.T) {
	h := NewCPUTestHelper()
	h.Memory.Write(0x0042, 0x99)
	if got := h.Memory.Read(0x0042); got != 0x99 {
		t.Errorf("expected 0x99, got 0x%02X", got)
	}
}

// Unofficial opcode: LAX loads A and X together.
func TestLAX(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xA7, 0x10) // LAX $10
	h.Memory.SetBytes(0x0010, 0x77)

	h.CPU.Step()

	if h.CPU.A != 0x77 || h.CPU.X != 0x77 {
		t.Errorf("expected A=X=0x77, got A=0x%02X X=0x%02X", h.CPU.A, h.CPU.X)
	}
}

// Unofficial opcode: SAX stores A AND X without touching flags.
func TestSAX(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x87, 0x10) // SAX $10
	h.CPU.A, h.CPU.X = 0xF0, 0x0F
	h.CPU.Z = true

	h.CPU.Step()

	if got := h.Memory.Read(0x0010); got != 0x00 {
		t.Errorf("expected memory=0x00, got 0x%02X", got)
	}
	if !h.CPU.Z {
		t.Errorf("SAX must not touch flags")
	}
}

// Unofficial opcode: ANC copies Negative into Carry.
func TestANC(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x0B, 0xFF) // ANC #$FF
	h.CPU.A = 0x80

	h.CPU.Step()

	if !h.CPU.N || !h.CPU.C {
		t.Errorf("expected N and C both set, got N=%v C=%v", h.CPU.N, h.CPU.C)
	}
}

// Unofficial opcode: ARR flag table, bit6=1 bit5=0 case (Carry set, Overflow clear).
func TestARRFlagTable(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x6B, 0x40) // ARR #$40
	h.CPU.A = 0xC0                    // A & M = 0x40 -> bit6=1 bit5=0

	h.CPU.Step()

	if !h.CPU.C {
		t.Errorf("expected Carry set")
	}
	if h.CPU.V {
		t.Errorf("expected Overflow clear")
	}
}

// Unofficial opcode: AXS computes (A AND X) - M with Carry = no-borrow.
func TestAXS(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xCB, 0x05) // AXS #$05
	h.CPU.A, h.CPU.X = 0x0F, 0x0F     // A AND X = 0x0F

	h.CPU.Step()

	if h.CPU.X != 0x0A {
		t.Errorf("expected X=0x0A, got 0x%02X", h.CPU.X)
	}
	if !h.CPU.C {
		t.Errorf("expected Carry set (no borrow)")
	}
}

// Unofficial opcode: duplicate SBC at $EB behaves exactly like $E9.
func TestDuplicateSBC(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0xEB, 0x01) // SBC #$01 via $EB
	h.CPU.A = 0x05
	h.CPU.C = true // no borrow in

	h.CPU.Step()

	if h.CPU.A != 0x04 {
		t.Errorf("expected A=0x04, got 0x%02X", h.CPU.A)
	}
}

// PHP/PLP and PHA/PLA round trips through the stack.
func TestStackPushPullRoundTrip(t *testing.T) {
	h := NewCPUTestHelper()
	h.SetupResetVector(0x8000)
	h.LoadProgram(0x8000, 0x48, 0xA9, 0x00, 0x68) // PHA ; LDA #0 ; PLA
	h.CPU.A = 0x42
	sp := h.CPU.SP

	h.CPU.Step() // PHA
	if h.CPU.SP != sp-1 {
		t.Errorf("expected SP decremented by 1 after push")
	}
	h.CPU.Step() // LDA #0
	h.CPU.Step() // PLA
	if h.CPU.A != 0x42 {
		t.Errorf("expected A restored to 0x42, got 0x%02X", h.CPU.A)
	}
	if h.CPU.SP != sp {
		t.Errorf("expected SP restored")
	}
}
