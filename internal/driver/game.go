// Package driver implements the thin ebiten front-end for cmd/nesgo. It
// does not render NES graphics — per spec.md's explicit non-goal on
// pixel-perfect PPU output, Draw paints a flat inspection view of CPU
// registers and PPU/bus state instead of a decoded frame.
package driver

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"nesgo/internal/bus"
	"nesgo/internal/cpu"
)

const (
	screenWidth  = 512
	screenHeight = 240
)

// Game implements ebiten.Game, running a batch of CPU instructions per
// tick and painting a register/PPU-status inspection view instead of a
// rendered frame.
type Game struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	stepsPerTick int
	halted       bool
}

// New constructs a Game already wired to a running CPU+Bus pair.
func New(c *cpu.CPU, b *bus.Bus) *Game {
	return &Game{CPU: c, Bus: b, stepsPerTick: 1000}
}

// Update runs a batch of CPU instructions per display tick. It stops
// advancing once the Break flag halts the CPU, per spec.md's resolved
// BRK-as-halt semantics.
func (g *Game) Update() error {
	if g.haltedNow() {
		return nil
	}
	for i := 0; i < g.stepsPerTick && !g.haltedNow(); i++ {
		g.CPU.Step() // Step ticks the bus (and thus the PPU) internally
	}
	return nil
}

func (g *Game) haltedNow() bool {
	return g.CPU.B
}

// Draw paints the CPU register file and a short bus/PPU status line —
// not a decoded PPU frame.
func (g *Game) Draw(screen *ebiten.Image) {
	status := "RUNNING"
	if g.haltedNow() {
		status = "HALTED"
	}
	text := fmt.Sprintf(
		"nesgo inspector [%s]\nPC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X\nPPU scanline:%d cycle:%d",
		status, g.CPU.PC, g.CPU.A, g.CPU.X, g.CPU.Y, g.CPU.SP, g.CPU.GetStatusByte(),
		g.Bus.PPU.Scanline(), g.Bus.PPU.Cycle(),
	)
	ebitenutil.DebugPrint(screen, text)
}

// Layout implements ebiten.Game.Layout with a fixed inspector window
// size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
