package chip8

import (
	"errors"
	"fmt"
)

// Step executes the instruction at the program counter.
//
// Unknown opcodes are skipped and reported as *UnknownOpcodeError, the
// machine keeps running. Stack and memory faults are returned as
// *FaultError; the program counter stays at the faulting instruction and
// every following Step returns the same fault until Reset is called.
func (vm *VM) Step() error {
	if vm.fault != nil {
		return vm.fault
	}

	address := vm.pc
	opcode, err := vm.readOpcode(address)
	if err != nil {
		return vm.halt(address, 0, err)
	}

	ins := Decode(opcode)
	vm.pc += instructionSize

	err = vm.execute(ins)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownOpcode):
		return &UnknownOpcodeError{Address: address, Opcode: opcode}
	default:
		vm.pc = address
		return vm.halt(address, opcode, err)
	}
}

func (vm *VM) halt(address, opcode uint16, err error) error {
	vm.fault = &FaultError{
		Address: address,
		Opcode:  opcode,
		Err:     err,
	}
	return vm.fault
}

// readOpcode assembles the big endian opcode at address.
func (vm *VM) readOpcode(address uint16) (uint16, error) {
	if err := checkRange(address, instructionSize); err != nil {
		return 0, err
	}
	return uint16(vm.memory[address])<<8 | uint16(vm.memory[address+1]), nil
}

// checkRange verifies that size bytes starting at address are inside the
// address space.
func checkRange(address uint16, size int) error {
	if size > 0 && int(address)+size-1 > MaxAddress {
		return fmt.Errorf("%w: $%04X+%d", ErrAddressOutOfRange, address, size)
	}
	return nil
}

//nolint:cyclop,funlen // one flat switch over the closed set of operations
func (vm *VM) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		vm.display.Clear()

	case OpRet:
		if vm.sp == 0 {
			return ErrStackUnderflow
		}
		vm.sp--
		vm.pc = vm.stack[vm.sp]

	case OpJp:
		vm.pc = ins.Addr

	case OpCall:
		if vm.sp == StackSize {
			return ErrStackOverflow
		}
		vm.stack[vm.sp] = vm.pc
		vm.sp++
		vm.pc = ins.Addr

	case OpSeByte:
		vm.skipIf(vm.v[x] == ins.KK)

	case OpSneByte:
		vm.skipIf(vm.v[x] != ins.KK)

	case OpSeReg:
		vm.skipIf(vm.v[x] == vm.v[y])

	case OpSneReg:
		vm.skipIf(vm.v[x] != vm.v[y])

	case OpLdByte:
		vm.v[x] = ins.KK

	case OpAddByte:
		vm.v[x] += ins.KK

	case OpLdReg:
		vm.v[x] = vm.v[y]

	case OpOr:
		vm.v[x] |= vm.v[y]

	case OpAnd:
		vm.v[x] &= vm.v[y]

	case OpXor:
		vm.v[x] ^= vm.v[y]

	case OpAddReg:
		sum := uint16(vm.v[x]) + uint16(vm.v[y])
		vm.v[x] = uint8(sum)
		vm.setFlag(sum > 0xFF)

	case OpSub:
		noBorrow := vm.v[x] >= vm.v[y]
		vm.v[x] -= vm.v[y]
		vm.setFlag(noBorrow)

	case OpSubn:
		noBorrow := vm.v[y] >= vm.v[x]
		vm.v[x] = vm.v[y] - vm.v[x]
		vm.setFlag(noBorrow)

	case OpShr:
		value := vm.shiftOperand(x, y)
		vm.v[x] = value >> 1
		vm.setFlag(value&0x01 != 0)

	case OpShl:
		value := vm.shiftOperand(x, y)
		vm.v[x] = value << 1
		vm.setFlag(value&0x80 != 0)

	case OpLdI:
		vm.i = ins.Addr

	case OpJpV0:
		vm.pc = uint16(vm.v[0]) + ins.Addr

	case OpRnd:
		vm.v[x] = vm.random.Byte() & ins.KK

	case OpDrw:
		return vm.draw(x, y, ins.N)

	// Only the low nibble of Vx selects the key.
	case OpSkp:
		vm.skipIf(vm.keypad[vm.v[x]&0x0F])

	case OpSknp:
		vm.skipIf(!vm.keypad[vm.v[x]&0x0F])

	case OpLdVxDT:
		vm.v[x] = vm.timers.Delay

	case OpLdVxK:
		vm.waitKey(x)

	case OpLdDTVx:
		vm.timers.Delay = vm.v[x]

	case OpLdSTVx:
		vm.timers.Sound = vm.v[x]

	case OpAddI:
		vm.addI(x)

	case OpLdF:
		vm.i = vm.quirks.FontBaseAddress + uint16(vm.v[x])*glyphSize

	case OpLdB:
		return vm.storeBCD(x)

	case OpStore:
		return vm.storeRegisters(x)

	case OpLoad:
		return vm.loadRegisters(x)

	case OpUnknown:
		return ErrUnknownOpcode

	default:
		return ErrUnknownOpcode
	}
	return nil
}

// skipIf skips the next instruction when the condition holds. The program
// counter already points at the next instruction.
func (vm *VM) skipIf(condition bool) {
	if condition {
		vm.pc += instructionSize
	}
}

// setFlag writes VF. It is called after the destination register was
// written so that the flag wins when the destination is VF.
func (vm *VM) setFlag(set bool) {
	if set {
		vm.v[flagRegister] = 1
	} else {
		vm.v[flagRegister] = 0
	}
}

// shiftOperand returns the value that a shift instruction operates on.
func (vm *VM) shiftOperand(x, y uint8) uint8 {
	if vm.quirks.ShiftAssignsVyToVx {
		return vm.v[y]
	}
	return vm.v[x]
}

func (vm *VM) draw(x, y, height uint8) error {
	if err := checkRange(vm.i, int(height)); err != nil {
		return err
	}

	// read the coordinates before VF is cleared
	px, py := vm.v[x], vm.v[y]
	vm.v[flagRegister] = 0
	sprite := vm.memory[vm.i : int(vm.i)+int(height)]
	collision := vm.display.drawSprite(px, py, sprite)
	vm.setFlag(collision)
	return nil
}

// waitKey stores the lowest pressed key in Vx. Without a pressed key the
// instruction is repeated on the next step.
func (vm *VM) waitKey(x uint8) {
	for key, pressed := range vm.keypad {
		if pressed {
			vm.v[x] = uint8(key)
			return
		}
	}
	vm.pc -= instructionSize
}

func (vm *VM) addI(x uint8) {
	sum := uint32(vm.i) + uint32(vm.v[x])
	vm.i = uint16(sum) & MaxAddress
	if vm.quirks.OverflowOnAddI {
		vm.setFlag(sum > MaxAddress)
	}
}

func (vm *VM) storeBCD(x uint8) error {
	if err := checkRange(vm.i, 3); err != nil {
		return err
	}

	value := vm.v[x]
	vm.memory[vm.i] = value / 100
	vm.memory[vm.i+1] = (value / 10) % 10
	vm.memory[vm.i+2] = value % 10
	return nil
}

func (vm *VM) storeRegisters(x uint8) error {
	count := int(x) + 1
	if err := checkRange(vm.i, count); err != nil {
		return err
	}

	copy(vm.memory[vm.i:], vm.v[:count])
	vm.advanceI(count)
	return nil
}

func (vm *VM) loadRegisters(x uint8) error {
	count := int(x) + 1
	if err := checkRange(vm.i, count); err != nil {
		return err
	}

	copy(vm.v[:count], vm.memory[vm.i:])
	vm.advanceI(count)
	return nil
}

func (vm *VM) advanceI(count int) {
	if vm.quirks.AutoIncrementI {
		vm.i += uint16(count)
	}
}
