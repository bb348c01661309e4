package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestQuirkFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.QuirkFlags
	}{
		{
			name: "default flags",
			args: nil,
			want: options.QuirkFlags{},
		},
		{
			name: "short flags",
			args: []string{"-s", "-o", "-i"},
			want: options.QuirkFlags{ShiftVs: true, IOverflow: true, IncrementI: true},
		},
		{
			name: "long flags",
			args: []string{"--shift-vs", "--increment-i"},
			want: options.QuirkFlags{ShiftVs: true, IncrementI: true},
		},
		{
			name: "hex font address",
			args: []string{"-f", "0x50"},
			want: options.QuirkFlags{Font: 0x50},
		},
		{
			name: "decimal font address",
			args: []string{"--font", "80"},
			want: options.QuirkFlags{Font: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got options.QuirkFlags
			flags := quirkFlags(&got)

			assert.NoError(t, flags.Parse(tt.args))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuirkFlags_InvalidFont(t *testing.T) {
	for _, value := range []string{"banana", "0x1000", "65536"} {
		t.Run(value, func(t *testing.T) {
			var got options.QuirkFlags
			flags := quirkFlags(&got)

			assert.Error(t, flags.Parse([]string{"--font", value}))
		})
	}
}

func TestProgram_Quirks(t *testing.T) {
	opts := options.Program{
		QuirkFlags: options.QuirkFlags{ShiftVs: true, Font: 0x50},
		Flags:      options.Flags{InstructionsPerSecond: 700, Trace: true, Seed: 7},
	}

	quirks := opts.Quirks()
	assert.True(t, quirks.ShiftAssignsVyToVx)
	assert.False(t, quirks.OverflowOnAddI)
	assert.Equal(t, uint16(0x50), quirks.FontBaseAddress)

	cfg := opts.Machine()
	assert.Equal(t, 700, cfg.InstructionsPerSecond)
	assert.True(t, cfg.Trace)
	assert.Len(t, opts.VMOptions(), 1)
}

func TestDisasmCommand(t *testing.T) {
	rom := writeROM(t, []byte{0x00, 0xE0, 0x12, 0x00})

	var out bytes.Buffer
	cmd := New(Build{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"disasm", "-q", rom})

	assert.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(out.String(), "cls"))
	assert.True(t, strings.Contains(out.String(), "jp L_200"))
}

func TestDisasmCommand_OutputFile(t *testing.T) {
	rom := writeROM(t, []byte{0x60, 0x01})
	output := filepath.Join(t.TempDir(), "out.asm")

	cmd := New(Build{Version: "test"})
	cmd.SetArgs([]string{"disasm", "-q", "-o", output, rom})
	assert.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "ld V0, $01"))
}

func TestDisasmCommand_Batch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ch8", "b.ch8"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{0x00, 0xE0}, 0600); err != nil {
			t.Fatalf("Failed to create ROM file: %v", err)
		}
	}

	cmd := New(Build{})
	cmd.SetArgs([]string{"disasm", "-q", "--batch", filepath.Join(dir, "*.ch8")})
	assert.NoError(t, cmd.Execute())

	for _, name := range []string{"a.asm", "b.asm"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "cls"))
	}
}

func TestDisasmCommand_MissingInput(t *testing.T) {
	cmd := New(Build{})
	cmd.SetArgs([]string{"disasm", "-q"})
	assert.ErrorContains(t, cmd.Execute(), "batch pattern is required")
}

func TestRunCommand_Errors(t *testing.T) {
	t.Run("missing argument", func(t *testing.T) {
		cmd := New(Build{})
		cmd.SetArgs([]string{"run"})
		cmd.SetErr(&bytes.Buffer{})
		assert.Error(t, cmd.Execute())
	})

	t.Run("invalid font address", func(t *testing.T) {
		rom := writeROM(t, []byte{0x12, 0x00})

		cmd := New(Build{})
		cmd.SetArgs([]string{"run", "-q", "--font", "0x1C0", rom})
		err := cmd.ExecuteContext(context.Background())
		assert.True(t, errors.Is(err, chip8.ErrInvalidQuirks))
	})

	t.Run("missing ROM file", func(t *testing.T) {
		cmd := New(Build{})
		cmd.SetArgs([]string{"run", "-q", filepath.Join(t.TempDir(), "missing.ch8")})
		err := cmd.ExecuteContext(context.Background())
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create ROM file: %v", err)
	}
	return path
}
