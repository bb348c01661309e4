// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Target receives a ROM image.
type Target interface {
	LoadFrom(r io.Reader) error
}

// Load opens the ROM file and loads it into the target.
func Load(path string, target Target) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := target.LoadFrom(file); err != nil {
		return fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return nil
}

// Read returns the content of a ROM file. Files that do not fit into the
// program memory are rejected.
func Read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(file, chip8.MaxROMSize+1)); err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if buf.Len() > chip8.MaxROMSize {
		return nil, fmt.Errorf("reading file %s: %w: more than %d bytes",
			path, chip8.ErrROMTooLarge, chip8.MaxROMSize)
	}
	return buf.Bytes(), nil
}
