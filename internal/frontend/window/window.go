// Package window presents a CHIP-8 machine in a desktop window.
package window

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrUnsupported is returned by Run in builds without window support.
var ErrUnsupported = errors.New("window output is not supported by this build")

// DefaultScale is the window scale factor used when none is configured.
const DefaultScale = 10

const haltedMessage = "HALTED - F10 resets"

// Config contains the window settings.
type Config struct {
	Scale int
	Title string
}

// Machine is the part of the machine the window interacts with.
type Machine interface {
	Frame() chip8.Frame
	Halted() error
	Reset()
	SetKey(key uint8, pressed bool)
}

// fillPixels converts a frame to RGBA pixels.
func fillPixels(dst []byte, frame chip8.Frame) {
	for i, on := range frame {
		var c byte
		if on {
			c = 0xFF
		}
		p := dst[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = c, c, c, 0xFF
	}
}
