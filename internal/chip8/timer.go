package chip8

// TimerFrequency is the rate in Hz at which DecrementTimers has to be called.
const TimerFrequency = 60

// Timers holds the delay and sound timers. They count down to zero at
// TimerFrequency and are never changed by instruction timing.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Decrement counts both timers down by one, stopping at zero. It returns
// whether the sound timer was running during this tick.
func (t *Timers) Decrement() bool {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound == 0 {
		return false
	}
	t.Sound--
	return true
}
