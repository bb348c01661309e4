package terminal

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
)

// DefaultReleaseDelay is the time after which a key counts as released
// when the terminal repeats no further presses. Terminals report no key
// release events.
const DefaultReleaseDelay = 150 * time.Millisecond

const (
	ctrlC = 0x03
	ctrlD = 0x04
	ctrlR = 0x12
)

// ErrQuit is returned by Input.Run when the user asks to quit.
var ErrQuit = errors.New("quit requested")

// Keypad receives keypad state changes.
type Keypad interface {
	SetKey(key uint8, pressed bool)
	Reset()
}

// Input translates terminal key presses to keypad state.
type Input struct {
	r       io.Reader
	keypad  Keypad
	release time.Duration
}

// NewInput returns an input reading key presses from r. The reader should
// be a terminal in raw mode.
func NewInput(r io.Reader, keypad Keypad, release time.Duration) *Input {
	if release <= 0 {
		release = DefaultReleaseDelay
	}
	return &Input{
		r:       r,
		keypad:  keypad,
		release: release,
	}
}

// Run processes key presses until the context is canceled, the reader
// reaches its end or the user presses Ctrl-C or Ctrl-D. Ctrl-R resets
// the machine.
func (in *Input) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go in.read(ctx, keys, readErr)

	ticker := time.NewTicker(in.release / 4)
	defer ticker.Stop()

	var deadlines [chip8.KeyCount]time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err

		case b := <-keys:
			switch b {
			case ctrlC, ctrlD:
				return ErrQuit
			case ctrlR:
				in.keypad.Reset()
				continue
			}

			key, ok := keymap.Key(rune(b))
			if !ok {
				continue
			}
			in.keypad.SetKey(key, true)
			deadlines[key] = time.Now().Add(in.release)

		case now := <-ticker.C:
			for key, deadline := range deadlines {
				if deadline.IsZero() || now.Before(deadline) {
					continue
				}
				in.keypad.SetKey(uint8(key), false)
				deadlines[key] = time.Time{}
			}
		}
	}
}

func (in *Input) read(ctx context.Context, keys chan<- byte, readErr chan<- error) {
	buf := make([]byte, 64)
	for {
		n, err := in.r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			readErr <- err
			return
		}
	}
}
