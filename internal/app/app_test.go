package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestPrintInfo(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: "pong.ch8"},
		QuirkFlags: options.QuirkFlags{ShiftVs: true},
	}
	PrintInfo(log.NewTestLogger(t), opts)

	opts.Quiet = true
	PrintInfo(log.NewTestLogger(t), opts)
}

func TestShiftMode(t *testing.T) {
	assert.Equal(t, "vx", shiftMode(chip8.Quirks{}))
	assert.Equal(t, "vy", shiftMode(chip8.Quirks{ShiftAssignsVyToVx: true}))
	assert.Equal(t, "on", enabled(true))
	assert.Equal(t, "off", enabled(false))
}
