package machine

import "github.com/retroenv/retrochip8/internal/chip8"

// Outputs forwards the machine state to multiple outputs.
type Outputs []Output

// Render passes the frame to all outputs.
func (o Outputs) Render(frame chip8.Frame) {
	for _, out := range o {
		out.Render(frame)
	}
}

// SetSound passes the buzzer state to all outputs.
func (o Outputs) SetSound(active bool) {
	for _, out := range o {
		out.SetSound(active)
	}
}

// SoundOnly adapts a buzzer to the Output interface and drops frames.
type SoundOnly func(active bool)

// Render does nothing.
func (s SoundOnly) Render(chip8.Frame) {}

// SetSound passes the buzzer state on.
func (s SoundOnly) SetSound(active bool) {
	s(active)
}
