package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// MakeRaw switches the terminal into raw mode and returns a function that
// restores the previous mode.
func MakeRaw(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	return func() error {
		if err := term.Restore(fd, state); err != nil {
			return fmt.Errorf("restoring terminal mode: %w", err)
		}
		return nil
	}, nil
}

// FitsDisplay returns whether the terminal is large enough to show a full
// frame.
func FitsDisplay(f *os.File) (bool, error) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return false, fmt.Errorf("getting terminal size: %w", err)
	}
	return width >= chip8.DisplayWidth && height >= chip8.DisplayHeight/2, nil
}
