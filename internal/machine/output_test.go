package machine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestOutputs(t *testing.T) {
	first := &recordingOutput{}
	second := &recordingOutput{}
	var buzzer []bool
	outputs := Outputs{first, second, SoundOnly(func(active bool) {
		buzzer = append(buzzer, active)
	})}

	var frame chip8.Frame
	frame[5] = true
	outputs.Render(frame)
	outputs.SetSound(true)

	assert.Equal(t, 1, first.renders())
	assert.Equal(t, 1, second.renders())
	assert.True(t, second.frames[0][5])
	assert.Len(t, first.sound, 1)
	assert.Len(t, buzzer, 1)
	assert.True(t, buzzer[0])
}
