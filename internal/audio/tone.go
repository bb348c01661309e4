// Package audio generates the buzzer tone and plays it on the host sound
// device.
package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"
)

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100
	// Frequency is the buzzer frequency in Hz.
	Frequency = 440

	bytesPerSample = 4
	amplitude      = 0.25
)

// Tone is a mono sine wave generator that produces float32 little endian
// samples. While disabled it produces silence.
type Tone struct {
	enabled atomic.Bool
	phase   float64 // accessed by Read only
	step    float64
}

// NewTone returns a disabled tone generator.
func NewTone(sampleRate, frequency int) *Tone {
	return &Tone{
		step: float64(frequency) / float64(sampleRate),
	}
}

// SetEnabled turns the tone on or off. It is safe to call while another
// goroutine reads samples.
func (t *Tone) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

// Enabled returns whether the tone is audible.
func (t *Tone) Enabled() bool {
	return t.enabled.Load()
}

// Read fills p with whole samples and returns the number of bytes written.
// A non-empty buffer that cannot hold a single sample is rejected with
// io.ErrShortBuffer.
func (t *Tone) Read(p []byte) (int, error) {
	if len(p) > 0 && len(p) < bytesPerSample {
		return 0, io.ErrShortBuffer
	}
	n := len(p) / bytesPerSample * bytesPerSample
	enabled := t.enabled.Load()

	for i := 0; i < n; i += bytesPerSample {
		var sample float32
		if enabled {
			sample = float32(amplitude * math.Sin(2*math.Pi*t.phase))
			t.phase += t.step
			if t.phase >= 1 {
				t.phase--
			}
		}
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(sample))
	}
	return n, nil
}
