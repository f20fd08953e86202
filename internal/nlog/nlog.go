// Package nlog provides the single shared logger for diagnostic
// conditions that must not interleave with the NESTest trace stream on
// stdout (unmapped bus accesses, discarded PPU writes). Everything here
// goes to stderr.
package nlog

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "nesgo: ", log.LstdFlags)

// SetOutput redirects where diagnostic messages are written; tests use
// this to capture log output instead of polluting stderr.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Printf logs a single diagnostic line.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}
