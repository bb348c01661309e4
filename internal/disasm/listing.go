package disasm

import (
	"fmt"
	"io"
	"slices"

	"github.com/retroenv/retrogolib/set"
)

const labelNaming = "L_%03X"

// Listing writes a linear disassembly of the ROM loaded at the base address.
// Every addressed instruction word is printed with its address and raw bytes,
// jump and call destinations inside the ROM get a label. Instructions that
// follow a skip are marked as skippable. A trailing odd byte is emitted as a
// byte directive.
func Listing(w io.Writer, rom []byte, base uint16) error {
	labels := collectLabels(rom, base)

	if _, err := fmt.Fprintf(w, "; CHIP-8 ROM disassembly\n\n.org $%03X\n", base); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var skippable bool
	for offset := 0; offset+1 < len(rom); offset += 2 {
		address := base + uint16(offset)
		if labels.Contains(address) {
			if _, err := fmt.Fprintf(w, "\n"+labelNaming+":\n", address); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		line := fmt.Sprintf("  %-24s ; $%03X: %02X %02X", formatWithLabel(opcode, labels),
			address, rom[offset], rom[offset+1])
		if skippable {
			line += " skippable"
		}
		skippable = IsSkip(opcode)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing instruction: %w", err)
		}
	}

	if len(rom)%2 == 1 {
		last := len(rom) - 1
		line := fmt.Sprintf("  %-24s ; $%03X: %02X", fmt.Sprintf(".byte $%02X", rom[last]),
			base+uint16(last), rom[last])
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing trailing byte: %w", err)
		}
	}
	return nil
}

// Labels returns the sorted jump and call destinations of the ROM that
// point at an instruction word inside the ROM.
func Labels(rom []byte, base uint16) []uint16 {
	labels := collectLabels(rom, base)
	addresses := make([]uint16, 0, len(labels))
	for address := range labels {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}

func collectLabels(rom []byte, base uint16) set.Set[uint16] {
	labels := set.New[uint16]()
	end := base + uint16(len(rom)&^1)

	for offset := 0; offset+1 < len(rom); offset += 2 {
		opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		target, ok := branchTarget(opcode)
		if !ok || target < base || target >= end || (target-base)%2 != 0 {
			continue
		}
		labels.Add(target)
	}
	return labels
}

// branchTarget returns the fixed destination of JP addr and CALL addr.
func branchTarget(opcode uint16) (uint16, bool) {
	switch opcode & 0xF000 {
	case 0x1000, 0x2000:
		return opcode & 0x0FFF, true
	default:
		return 0, false
	}
}

// formatWithLabel formats the opcode and replaces a labeled branch
// destination with the label name.
func formatWithLabel(opcode uint16, labels set.Set[uint16]) string {
	target, ok := branchTarget(opcode)
	if !ok || !labels.Contains(target) {
		return Format(opcode)
	}
	return fmt.Sprintf("%s "+labelNaming, Name(opcode), target)
}
