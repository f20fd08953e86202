// Package main implements the nestest trace runner: it loads a test
// ROM, overrides PC/SP the way NESTest's automated mode requires, and
// prints one NESTest-format trace line per instruction to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"nesgo/internal/bus"
	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
)

func main() {
	var (
		romPath = flag.String("rom", "", "path to the nestest iNES ROM")
		pcFlag  = flag.Uint("pc", 0xC000, "program counter to start execution at, overriding the reset vector")
		spFlag  = flag.Uint("sp", 0xFD, "stack pointer to start execution at")
		limit   = flag.Int("limit", 0, "stop after this many instructions (0 = run until BRK)")
	)
	flag.Parse()

	if *romPath == "" {
		log.Fatal("nestest: -rom is required")
	}

	rom, err := cartridge.Load(*romPath)
	if err != nil {
		log.Fatalf("nestest: failed to load ROM: %v", err)
	}

	b := bus.New()
	b.InsertROM(rom)
	c := cpu.New(b)
	c.Reset()
	c.PC = uint16(*pcFlag)
	c.SP = uint8(*spFlag)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	count := 0
	for !c.B {
		fmt.Fprintln(out, c.TraceLine())
		c.Step() // Step ticks the bus (and thus the PPU) internally
		count++
		if *limit > 0 && count >= *limit {
			break
		}
	}
}
