package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRenderer_Render(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(log.NewTestLogger(t), &out)

	var frame chip8.Frame
	frame[0*chip8.DisplayWidth+0] = true // top only
	frame[1*chip8.DisplayWidth+1] = true // bottom only
	frame[0*chip8.DisplayWidth+2] = true // both
	frame[1*chip8.DisplayWidth+2] = true

	r.Render(frame)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, cursorHome))

	lines := strings.Split(strings.TrimPrefix(s, cursorHome), "\r\n")
	assert.Len(t, lines, chip8.DisplayHeight/2+1)
	assert.Equal(t, "", lines[len(lines)-1])

	first := []rune(lines[0])
	assert.Len(t, first, chip8.DisplayWidth)
	assert.Equal(t, '▀', first[0])
	assert.Equal(t, '▄', first[1])
	assert.Equal(t, '█', first[2])
	assert.Equal(t, ' ', first[3])
	assert.Equal(t, strings.Repeat(" ", chip8.DisplayWidth), lines[1])
}

func TestRenderer_SetSound(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(log.NewTestLogger(t), &out)

	r.SetSound(false)
	assert.Equal(t, 0, out.Len())

	r.SetSound(true)
	assert.Equal(t, bell, out.String())
}

func TestRenderer_StartStop(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(log.NewTestLogger(t), &out)

	r.Start()
	assert.True(t, strings.Contains(out.String(), hideCursor))
	r.Stop()
	assert.True(t, strings.Contains(out.String(), showCursor))
}
