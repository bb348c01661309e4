// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/machine"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `arg:"positional" usage:"CHIP-8 ROM file"`
	Output string `flag:"o" usage:"output .asm file of the disasm command (default: stdout)"`
	Batch  string `flag:"batch" usage:"disassemble all ROMs matching the pattern (e.g. roms/*.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	InstructionsPerSecond int    `flag:"ips" usage:"instructions executed per second" default:"500"`
	Scale                 int    `flag:"scale" usage:"window scale factor" default:"10"`
	Seed                  uint64 `flag:"seed" usage:"random number generator seed (default: time based)"`
	Terminal              bool   `flag:"terminal" usage:"render in the terminal instead of a window"`
	NoSound               bool   `flag:"no-sound" usage:"disable the buzzer"`
	Trace                 bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Debug                 bool   `flag:"debug" usage:"enable debug logging"`
	Quiet                 bool   `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains the interpreter compatibility options.
type QuirkFlags struct {
	ShiftVs    bool   `flag:"s" usage:"shift instructions store Vy shifted into Vx"`
	IOverflow  bool   `flag:"o" usage:"ADD I, Vx sets VF when I leaves the address space"`
	IncrementI bool   `flag:"i" usage:"register store and load advance I"`
	Font       uint16 `flag:"f" usage:"font base address"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}

// Quirks returns the interpreter quirks selected by the options.
func (p Program) Quirks() chip8.Quirks {
	return chip8.Quirks{
		ShiftAssignsVyToVx: p.ShiftVs,
		OverflowOnAddI:     p.IOverflow,
		AutoIncrementI:     p.IncrementI,
		FontBaseAddress:    p.Font,
	}
}

// VMOptions returns the VM construction options.
func (p Program) VMOptions() []chip8.Option {
	if p.Seed == 0 {
		return nil
	}
	return []chip8.Option{chip8.WithSeed(p.Seed)}
}

// Machine returns the machine driver configuration.
func (p Program) Machine() machine.Config {
	return machine.Config{
		InstructionsPerSecond: p.InstructionsPerSecond,
		Trace:                 p.Trace,
	}
}
