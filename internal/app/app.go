// Package app provides the main application helper for the emulator.
package app

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the ROM and the selected
// interpreter settings.
func PrintInfo(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	quirks := opts.Quirks()
	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("instructions_per_second", opts.InstructionsPerSecond),
	)
	logger.Debug("Interpreter quirks",
		log.String("shift", shiftMode(quirks)),
		log.String("add_i_overflow", enabled(quirks.OverflowOnAddI)),
		log.String("increment_i", enabled(quirks.AutoIncrementI)),
		log.Hex("font_address", quirks.FontBaseAddress),
	)
}

func shiftMode(quirks chip8.Quirks) string {
	if quirks.ShiftAssignsVyToVx {
		return "vy"
	}
	return "vx"
}

func enabled(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
