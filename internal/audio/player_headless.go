//go:build headless

package audio

// Player is a silent buzzer used by builds without sound device support.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer() (*Player, error) {
	return &Player{}, nil
}

// SetSound does nothing.
func (p *Player) SetSound(bool) {}

// Close does nothing.
func (p *Player) Close() error {
	return nil
}
