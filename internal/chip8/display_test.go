package chip8

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_Plot(t *testing.T) {
	var d Display

	assert.False(t, d.Plot(5, 7))
	assert.True(t, d.Pixel(5, 7))
	assert.True(t, d.Dirty())

	assert.True(t, d.Plot(5, 7))
	assert.False(t, d.Pixel(5, 7))

	frame := d.Frame()
	assert.False(t, frame.Pixel(5, 7))
}

func TestDisplay_RowMajor(t *testing.T) {
	var d Display
	d.Plot(63, 1)

	frame := d.Frame()
	assert.True(t, frame[1*DisplayWidth+63])
}

func TestDisplay_Clear(t *testing.T) {
	var d Display
	d.Plot(0, 0)
	d.Plot(63, 31)
	d.ClearDirty()

	d.Clear()

	if diff := cmp.Diff(Frame{}, d.Frame()); diff != "" {
		t.Errorf("frame after clear (-want, +got)\n%s", diff)
	}
	assert.True(t, d.Dirty())
}

func TestDisplay_DrawSpriteInvolution(t *testing.T) {
	var d Display
	d.Plot(10, 10)
	before := d.Frame()
	sprite := []byte{0xFF, 0x81, 0xFF}

	d.drawSprite(8, 9, sprite)
	collision := d.drawSprite(8, 9, sprite)

	assert.True(t, collision)
	if diff := cmp.Diff(before, d.Frame()); diff != "" {
		t.Errorf("frame after drawing twice (-want, +got)\n%s", diff)
	}
}

func TestDisplay_DrawSpriteWrap(t *testing.T) {
	var d Display

	collision := d.drawSprite(70, 40, []byte{0x80})

	assert.False(t, collision)
	assert.True(t, d.Pixel(70%DisplayWidth, 40%DisplayHeight))
}
