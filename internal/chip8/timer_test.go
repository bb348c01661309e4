package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimers_Decrement(t *testing.T) {
	tests := []struct {
		start uint8
		ticks int
	}{
		{0, 0},
		{0, 5},
		{1, 1},
		{10, 3},
		{10, 10},
		{10, 25},
		{255, 300},
	}

	for _, tt := range tests {
		timers := Timers{Delay: tt.start, Sound: tt.start}
		for range tt.ticks {
			timers.Decrement()
		}

		want := uint8(max(0, int(tt.start)-tt.ticks))
		assert.Equal(t, want, timers.Delay)
		assert.Equal(t, want, timers.Sound)
	}
}

func TestTimers_SoundActive(t *testing.T) {
	timers := Timers{Sound: 2}

	assert.True(t, timers.Decrement())
	assert.True(t, timers.Decrement())
	assert.False(t, timers.Decrement())
	assert.Equal(t, uint8(0), timers.Sound)
}

func TestTimers_Independent(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0x7001, 0x1200)
	vm.timers.Delay = 5

	for range 100 {
		assert.NoError(t, vm.Step())
	}
	assert.Equal(t, uint8(5), vm.DelayTimer())
}
