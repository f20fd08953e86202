// Package main implements the nesgo NES emulator executable: an
// ebiten-driven register/PPU inspector view, with an optional
// interactive trace debugger.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/bus"
	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/debugger"
	"nesgo/internal/driver"
)

func main() {
	var (
		romPath  = flag.String("rom", "", "path to an iNES ROM file")
		headless = flag.Bool("headless", false, "run without opening a window, stepping until BRK halts the CPU")
		debug    = flag.Bool("debug", false, "launch the interactive trace debugger instead of the graphical view")
		help     = flag.Bool("help", false, "show usage")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *romPath == "" {
		log.Fatal("nesgo: -rom is required")
	}

	rom, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("nesgo: failed to load ROM: %v", err)
	}

	b := bus.New()
	b.InsertROM(rom)
	c := cpu.New(b)
	c.Reset()

	switch {
	case *debug:
		if err := debugger.Run(c, b); err != nil {
			log.Fatalf("nesgo: debugger exited with error: %v", err)
		}
	case *headless:
		c.Run(func(*cpu.CPU) {})
		fmt.Printf("halted at PC=$%04X A=%02X X=%02X Y=%02X\n", c.PC, c.A, c.X, c.Y)
	default:
		game := driver.New(c, b)
		ebiten.SetWindowTitle("nesgo")
		if err := ebiten.RunGame(game); err != nil {
			log.Fatalf("nesgo: %v", err)
		}
	}
}
