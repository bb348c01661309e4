package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func samples(t *testing.T, buf []byte) []float32 {
	t.Helper()
	result := make([]float32, 0, len(buf)/bytesPerSample)
	for i := 0; i+bytesPerSample <= len(buf); i += bytesPerSample {
		result = append(result, math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
	}
	return result
}

func TestTone_Silent(t *testing.T) {
	tone := NewTone(SampleRate, Frequency)
	assert.False(t, tone.Enabled())

	buf := make([]byte, 64)
	n, err := tone.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 64, n)

	for _, s := range samples(t, buf) {
		assert.Equal(t, float32(0), s)
	}
}

func TestTone_Enabled(t *testing.T) {
	// 4 samples per period
	tone := NewTone(4, 1)
	tone.SetEnabled(true)

	buf := make([]byte, 8*bytesPerSample)
	_, err := tone.Read(buf)
	assert.NoError(t, err)

	s := samples(t, buf)
	assert.Equal(t, float32(0), s[0])
	assert.True(t, math.Abs(float64(s[1])-amplitude) < 1e-6)
	assert.True(t, math.Abs(float64(s[3])+amplitude) < 1e-6)
	assert.True(t, math.Abs(float64(s[5])-amplitude) < 1e-6)
}

func TestTone_PartialSample(t *testing.T) {
	tone := NewTone(SampleRate, Frequency)

	n, err := tone.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestTone_ShortBuffer(t *testing.T) {
	tone := NewTone(SampleRate, Frequency)

	n, err := tone.Read(make([]byte, 3))
	assert.True(t, errors.Is(err, io.ErrShortBuffer))
	assert.Equal(t, 0, n)

	n, err = tone.Read(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}
