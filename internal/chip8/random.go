package chip8

import (
	"math/rand/v2"
	"time"
)

// RandomSource provides the bytes for the RND instruction.
type RandomSource interface {
	Byte() uint8
}

// pcgSource is the default RandomSource. It is seeded once and keeps its
// state for the lifetime of the machine.
type pcgSource struct {
	rng *rand.Rand
}

func newPCGSource(seed uint64) *pcgSource {
	return &pcgSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Byte returns a uniformly distributed byte.
func (s *pcgSource) Byte() uint8 {
	return uint8(s.rng.Uint32())
}

// SequenceSource is a RandomSource that cycles through a fixed list of
// bytes, for deterministic runs.
type SequenceSource struct {
	values []uint8
	pos    int
}

// NewSequenceSource returns a source that returns values in order and
// starts over after the last one. An empty list always yields 0.
func NewSequenceSource(values ...uint8) *SequenceSource {
	return &SequenceSource{values: values}
}

// Byte returns the next value of the sequence.
func (s *SequenceSource) Byte() uint8 {
	if len(s.values) == 0 {
		return 0
	}
	b := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return b
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
