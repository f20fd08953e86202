// Package bus implements the NES system bus: the CPU-visible memory map
// over RAM, the PPU register window, and cartridge PRG-ROM, plus the
// PPU-ticking and NMI-polling glue that keeps the two chips in sync.
package bus

import (
	"fmt"

	"nesgo/internal/cartridge"
	"nesgo/internal/nlog"
	"nesgo/internal/ppu"
)

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF
	ramMask      = 0x07FF

	ppuRegStart  = 0x2000
	ppuMirrorEnd = 0x3FFF
	ppuRegMask   = 0x0007

	unmappedStart = 0x4000
	unmappedEnd   = 0x7FFF

	prgStart    = 0x8000
	prgBankSize = 0x4000
)

// UnmappedBusAccess marks a read or write into $4000-$7FFF, a region
// this spec leaves unimplemented (APU, I/O, cartridge expansion RAM).
// Per the error taxonomy it is logged and otherwise ignored, never
// fatal.
type UnmappedBusAccess struct {
	Addr  uint16
	Write bool
}

// WriteToROM marks an attempted write into cartridge PRG-ROM space.
// Fatal per the error taxonomy.
type WriteToROM struct {
	Addr uint16
}

func (e *WriteToROM) Error() string {
	return fmt.Sprintf("write to read-only PRG-ROM at $%04X", e.Addr)
}

// Bus wires RAM, the PPU's register window, and cartridge PRG-ROM into
// the flat 16-bit address space the CPU sees through the cpu.Memory
// interface.
type Bus struct {
	ram [ramSize]uint8
	PPU *ppu.PPU
	rom *cartridge.RomImage

	logUnmapped func(UnmappedBusAccess)
}

// New constructs a Bus with its own PPU and no cartridge inserted yet.
// Unmapped accesses are logged through internal/nlog by default.
func New() *Bus {
	b := &Bus{PPU: ppu.New()}
	b.logUnmapped = func(e UnmappedBusAccess) {
		verb := "read from"
		if e.Write {
			verb = "write to"
		}
		nlog.Printf("ignoring %s unmapped address $%04X", verb, e.Addr)
	}
	return b
}

// SetUnmappedLogger installs a callback invoked whenever an unmapped
// $4000-$7FFF access occurs, replacing the internal/nlog logger that
// New installs by default. A nil fn disables reporting.
func (b *Bus) SetUnmappedLogger(fn func(UnmappedBusAccess)) {
	b.logUnmapped = fn
}

// InsertROM installs a cartridge image, wiring its CHR data and
// mirroring mode into the PPU.
func (b *Bus) InsertROM(rom *cartridge.RomImage) {
	b.rom = rom
	b.PPU.SetCHR(&chrBank{rom: rom}, mirroringFor(rom.Mirroring))
}

func mirroringFor(m cartridge.Mirroring) ppu.Mirroring {
	switch m {
	case cartridge.Vertical:
		return ppu.Vertical
	case cartridge.FourScreen:
		return ppu.FourScreen
	default:
		return ppu.Horizontal
	}
}

// chrBank adapts a RomImage's CHR slice to ppu.CHRSource. CHR-ROM is
// read-only on NROM; writes are accepted silently for CHR-RAM boards
// (a zero-length ROM CHR bank is treated as 8KB of RAM).
type chrBank struct {
	rom *cartridge.RomImage
	ram [0x2000]uint8
}

func (c *chrBank) ReadCHR(addr uint16) uint8 {
	if len(c.rom.CHR) == 0 {
		return c.ram[addr]
	}
	return c.rom.CHR[addr]
}

func (c *chrBank) WriteCHR(addr uint16, value uint8) {
	if len(c.rom.CHR) == 0 {
		c.ram[addr] = value
		return
	}
	// Writes to real CHR-ROM are not possible on the physical hardware;
	// they are logged and discarded.
	nlog.Printf("ignoring write to CHR-ROM address $%04X", addr)
}

// Read implements cpu.Memory.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&ramMask]
	case addr <= ppuMirrorEnd:
		return b.PPU.ReadRegister(ppuRegStart | (addr & ppuRegMask))
	case addr >= unmappedStart && addr <= unmappedEnd:
		b.reportUnmapped(addr, false)
		return 0
	case addr >= prgStart:
		return b.readPRG(addr)
	default:
		b.reportUnmapped(addr, false)
		return 0
	}
}

// Write implements cpu.Memory.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&ramMask] = value
	case addr <= ppuMirrorEnd:
		b.PPU.WriteRegister(ppuRegStart|(addr&ppuRegMask), value)
	case addr >= unmappedStart && addr <= unmappedEnd:
		b.reportUnmapped(addr, true)
	case addr >= prgStart:
		panic(&WriteToROM{Addr: addr})
	default:
		b.reportUnmapped(addr, true)
	}
}

func (b *Bus) reportUnmapped(addr uint16, write bool) {
	if b.logUnmapped != nil {
		b.logUnmapped(UnmappedBusAccess{Addr: addr, Write: write})
	}
}

// readPRG maps $8000-$FFFF onto the cartridge's PRG-ROM, mirroring a
// 16KB image across both halves of the window.
func (b *Bus) readPRG(addr uint16) uint8 {
	if b.rom == nil {
		b.reportUnmapped(addr, false)
		return 0
	}
	offset := addr - prgStart
	if len(b.rom.PRG) == prgBankSize {
		offset %= prgBankSize
	}
	return b.rom.PRG[offset]
}

// Tick advances the PPU three cycles for every CPU cycle consumed,
// matching the NES's fixed 3x PPU/CPU clock ratio.
func (b *Bus) Tick(cpuCycles int) {
	for i := 0; i < cpuCycles*3; i++ {
		b.PPU.Step()
	}
}

// PollNMI reports and clears a pending PPU-raised NMI. The CPU itself
// has no interrupt-vector machinery, so acting on the NMI is left to
// the caller; none of the bundled executables polls it.
func (b *Bus) PollNMI() bool {
	return b.PPU.PollNMI()
}
