package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestIsROM(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"ch8 extension", "pong.ch8", true},
		{"c8 extension", "pong.c8", true},
		{"rom extension", "games/tetris.rom", true},
		{"upper case extension", "PONG.CH8", true},
		{"assembly listing", "pong.asm", false},
		{"NES ROM", "game.nes", false},
		{"no extension", "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsROM(tt.filename))
		})
	}
}
