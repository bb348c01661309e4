//go:build !headless

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Player plays the buzzer tone on the default sound device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *Tone
}

// NewPlayer opens the sound device and starts the silent tone stream.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewTone(SampleRate, Frequency)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Player{
		ctx:    ctx,
		player: player,
		tone:   tone,
	}, nil
}

// SetSound turns the buzzer on or off.
func (p *Player) SetSound(active bool) {
	p.tone.SetEnabled(active)
}

// Close stops the playback.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
