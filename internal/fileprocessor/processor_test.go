package fileprocessor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "pong.ch8", []byte{0x22, 0x04, 0x12, 0x00, 0x00, 0xEE})

	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		opts := options.Program{Parameters: options.Parameters{Input: input}}

		assert.NoError(t, ProcessFile(logger, opts, &out))
		assert.True(t, strings.Contains(out.String(), "call L_204"))
		assert.True(t, strings.Contains(out.String(), "L_200:"))
	})

	t.Run("output file", func(t *testing.T) {
		output := filepath.Join(dir, "pong.asm")
		opts := options.Program{Parameters: options.Parameters{Input: input, Output: output}}

		var out bytes.Buffer
		assert.NoError(t, ProcessFile(logger, opts, &out))
		assert.Equal(t, 0, out.Len())

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(data), ".org $200\n"))
	})

	t.Run("oversized ROM", func(t *testing.T) {
		big := writeFile(t, dir, "big.ch8", make([]byte, chip8.MaxROMSize+1))
		opts := options.Program{Parameters: options.Parameters{Input: big}}

		err := ProcessFile(logger, opts, &bytes.Buffer{})
		assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
	})
}

func TestGetFilesToProcess(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	writeFile(t, dir, "a.ch8", []byte{0x00, 0xE0})
	writeFile(t, dir, "b.rom", []byte{0x00, 0xE0})
	writeFile(t, dir, "notes.txt", []byte("hello"))

	t.Run("single input", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: "game.ch8"}}
		files, err := GetFilesToProcess(logger, opts)
		assert.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Equal(t, "game.ch8", files[0])
	})

	t.Run("batch pattern", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*")}}
		files, err := GetFilesToProcess(logger, opts)
		assert.NoError(t, err)
		assert.Len(t, files, 2)
		assert.Equal(t, filepath.Join(dir, "a.ch8"), files[0])
		assert.Equal(t, filepath.Join(dir, "b.rom"), files[1])
	})

	t.Run("invalid pattern", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Batch: "["}}
		_, err := GetFilesToProcess(logger, opts)
		assert.Error(t, err)
	})
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "roms/pong.asm", GenerateOutputFilename("roms/pong.ch8"))
	assert.Equal(t, "tetris.asm", GenerateOutputFilename("tetris"))
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	return path
}
