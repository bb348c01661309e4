package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the display, indexed row-major by y*DisplayWidth+x.
type Frame [DisplayWidth * DisplayHeight]bool

// Pixel returns the pixel at the given position.
func (f *Frame) Pixel(x, y int) bool {
	return f[y*DisplayWidth+x]
}

// Display is the 64x32 monochrome framebuffer. Plot toggles pixels and
// reports collisions, Clear blanks the buffer. Both mark the display dirty
// until the renderer calls ClearDirty.
type Display struct {
	pixels Frame
	dirty  bool
}

// Plot toggles the pixel at x, y and returns its value before the toggle.
// Coordinates must be in range, callers wrap them.
func (d *Display) Plot(x, y int) bool {
	i := y*DisplayWidth + x
	was := d.pixels[i]
	d.pixels[i] = !was
	d.dirty = true
	return was
}

// Pixel returns the pixel at x, y.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels.Pixel(x, y)
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// Frame returns a copy of the current pixels.
func (d *Display) Frame() Frame {
	return d.pixels
}

// Dirty returns whether the display changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty resets the dirty flag after the display was rendered.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// drawSprite XORs an 8 pixel wide sprite onto the display at x, y. Every
// pixel position wraps around the display edges. It returns whether any
// set pixel was turned off.
func (d *Display) drawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	for row, line := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			if d.Plot(px, py) {
				collision = true
			}
		}
	}
	d.dirty = true
	return collision
}
