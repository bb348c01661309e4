// Package chip8 implements the CHIP-8 virtual machine.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for
// simple games on early microcomputers. The virtual machine has:
//   - 4KB of memory, programs are loaded at ProgramStart (0x200)
//   - 16 general purpose 8-bit registers V0-VF, VF doubles as flag register
//   - a 16 bit index register I and a 16 entry return stack
//   - a 64x32 monochrome display drawn by XORing sprites
//   - a 16 key hex keypad
//   - delay and sound timers counting down at 60 Hz
//
// # Execution
//
// Step executes exactly one instruction and never blocks; the wait for key
// instruction polls the keypad and repeats itself until a key is pressed.
// DecrementTimers has to be called at TimerFrequency by the driver,
// independent of the instruction rate. The VM is not safe for concurrent
// use, a driver that runs both clocks concurrently has to serialize access.
//
// # Usage Example
//
//	vm, err := chip8.New(chip8.Quirks{})
//	if err != nil {
//		return fmt.Errorf("creating vm: %w", err)
//	}
//	if err := vm.Load(rom); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	for {
//		if err := vm.Step(); chip8.IsFault(err) {
//			return err
//		}
//	}
//
// # Quirks
//
// Interpreters disagree on a few instructions. Quirks selects the variant:
// the shift operand source, VF on I overflow, I auto increment after bulk
// register transfers and the location of the font.
package chip8
