// Package disasm formats CHIP-8 opcodes as assembly mnemonics.
// Instruction lookup is based on the retrogolib CHIP-8 opcode tables.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// lookup finds the opcode table entry that matches the opcode.
func lookup(opcode uint16) (chip8.Opcode, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// Name returns the mnemonic of the opcode, or an empty string for opcodes
// that are not part of the instruction set.
func Name(opcode uint16) string {
	op, ok := lookup(opcode)
	if !ok {
		return ""
	}
	return op.Instruction.Name
}

// Format returns the assembly representation of the opcode. Unknown
// opcodes are returned as a data word directive.
func Format(opcode uint16) string {
	name := Name(opcode)
	if name == "" {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(name, opcode); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// IsSkip returns whether the opcode conditionally skips the next
// instruction.
func IsSkip(opcode uint16) bool {
	name := Name(opcode)
	return name != "" && chip8.SkipInstructions.Contains(name)
}

// formatParams formats the parameters of an instruction.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return "" // No parameters
	case chip8.Jp.Name:
		return formatJump(opcode)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.Se.Name, chip8.Sne.Name:
		return formatCompare(opcode)
	case chip8.Ld.Name:
		return formatLoad(opcode)
	case chip8.Add.Name:
		return formatAdd(opcode)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJump formats JP addr and JP V0, addr.
func formatJump(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return fmt.Sprintf("$%03X", opcode&0x0FFF)
}

// formatCompare formats SE and SNE with a byte or register operand.
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	default:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
}

// formatLoad formats the LD variants.
func formatLoad(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatLoadMisc(x, opcode&0x00FF)
	}
	return ""
}

// formatLoadMisc formats the Fx.. LD variants that move values between
// registers, timers, the keypad and memory.
func formatLoadMisc(x, kind uint16) string {
	var pattern string
	switch kind {
	case 0x07:
		pattern = "V%X, DT"
	case 0x0A:
		pattern = "V%X, K"
	case 0x15:
		pattern = "DT, V%X"
	case 0x18:
		pattern = "ST, V%X"
	case 0x29:
		pattern = "F, V%X"
	case 0x33:
		pattern = "B, V%X"
	case 0x55:
		pattern = "[I], V%X"
	case 0x65:
		pattern = "V%X, [I]"
	default:
		return ""
	}
	return fmt.Sprintf(pattern, x)
}

// formatAdd formats ADD Vx, byte, ADD Vx, Vy and ADD I, Vx.
func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

// registerX extracts the X register nibble from a CHIP-8 opcode.
func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// registerY extracts the Y register nibble from a CHIP-8 opcode.
func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
