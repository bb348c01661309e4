package window

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestFillPixels(t *testing.T) {
	var frame chip8.Frame
	frame[1] = true

	pixels := make([]byte, len(frame)*4)
	fillPixels(pixels, frame)

	assert.Equal(t, byte(0), pixels[0])
	assert.Equal(t, byte(0xFF), pixels[3])
	assert.Equal(t, byte(0xFF), pixels[4])
	assert.Equal(t, byte(0xFF), pixels[5])
	assert.Equal(t, byte(0xFF), pixels[6])
	assert.Equal(t, byte(0xFF), pixels[7])
}
