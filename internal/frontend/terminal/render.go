// Package terminal presents a CHIP-8 machine in a text terminal.
package terminal

import (
	"bytes"
	"io"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// Renderer draws frames using half block characters, every text line
// shows two display rows.
type Renderer struct {
	logger *log.Logger

	mu  sync.Mutex
	w   io.Writer
	buf bytes.Buffer
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(logger *log.Logger, w io.Writer) *Renderer {
	return &Renderer{
		logger: logger,
		w:      w,
	}
}

// Start clears the screen and hides the cursor.
func (r *Renderer) Start() {
	r.write(clearScreen + cursorHome + hideCursor)
}

// Stop shows the cursor again.
func (r *Renderer) Stop() {
	r.write(showCursor + "\r\n")
}

// Render draws the frame at the top left corner of the terminal.
func (r *Renderer) Render(frame chip8.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf.Reset()
	r.buf.WriteString(cursorHome)
	writeFrame(&r.buf, frame)

	if _, err := r.w.Write(r.buf.Bytes()); err != nil {
		r.logger.Error("Writing frame failed", log.Err(err))
	}
}

// SetSound rings the terminal bell when the buzzer turns on.
func (r *Renderer) SetSound(active bool) {
	if active {
		r.write(bell)
	}
}

func (r *Renderer) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.w, s); err != nil {
		r.logger.Error("Writing to terminal failed", log.Err(err))
	}
}

func writeFrame(buf *bytes.Buffer, frame chip8.Frame) {
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top := frame.Pixel(x, y)
			bottom := frame.Pixel(x, y+1)
			switch {
			case top && bottom:
				buf.WriteRune('█')
			case top:
				buf.WriteRune('▀')
			case bottom:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\r\n")
	}
}
