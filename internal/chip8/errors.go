package chip8

import (
	"errors"
	"fmt"
)

// Errors returned by the virtual machine. Faults (stack and address errors)
// halt the machine, ErrUnknownOpcode and ErrROMLoad are recoverable.
var (
	ErrROMLoad           = errors.New("rom load failed")
	ErrROMTooLarge       = errors.New("rom does not fit into program memory")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("memory address out of range")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrInvalidQuirks     = errors.New("invalid quirk configuration")
)

// ROMLoadError is returned when the ROM source could not be read.
// The program memory is left unchanged.
type ROMLoadError struct {
	Err error
}

func (e *ROMLoadError) Error() string {
	return fmt.Sprintf("%s: %v", ErrROMLoad, e.Err)
}

// Unwrap returns the underlying read error.
func (e *ROMLoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrROMLoad.
func (e *ROMLoadError) Is(target error) bool {
	return target == ErrROMLoad
}

// UnknownOpcodeError is returned by Step for opcodes that are not part of
// the instruction set. The instruction is skipped.
type UnknownOpcodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%s $%04X at $%03X", ErrUnknownOpcode, e.Opcode, e.Address)
}

// Is reports whether target is ErrUnknownOpcode.
func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// FaultError describes a fatal fault together with the address of the
// instruction that caused it.
type FaultError struct {
	Address uint16
	Opcode  uint16
	Err     error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault at $%03X (opcode $%04X): %v", e.Address, e.Opcode, e.Err)
}

// Unwrap returns the fault kind, one of ErrStackOverflow, ErrStackUnderflow
// or ErrAddressOutOfRange.
func (e *FaultError) Unwrap() error {
	return e.Err
}

// IsFault reports whether err halts the machine.
func IsFault(err error) bool {
	var fault *FaultError
	return errors.As(err, &fault)
}
