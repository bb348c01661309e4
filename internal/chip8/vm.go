package chip8

import (
	"bytes"
	"fmt"
	"io"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter area, holds the font glyphs
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the address space in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address that ROMs are loaded to and execution
	// starts at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits into the program space.
	MaxROMSize = MemorySize - ProgramStart

	// StackSize is the number of return addresses the stack holds.
	StackSize = 16

	// KeyCount is the number of keys of the hex keypad.
	KeyCount = 16

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// instructionSize is the size of an opcode in bytes.
	instructionSize = 2

	flagRegister = 0xF
)

// Quirks selects between the documented behavior variants of CHIP-8
// interpreters. They are fixed when the machine is created.
type Quirks struct {
	// ShiftAssignsVyToVx makes 8xy6 and 8xyE shift Vy into Vx instead of
	// shifting Vx in place.
	ShiftAssignsVyToVx bool

	// OverflowOnAddI makes Fx1E set VF to 1 when I+Vx leaves the 12 bit
	// address space and to 0 otherwise.
	OverflowOnAddI bool

	// AutoIncrementI makes Fx55 and Fx65 leave I pointing after the last
	// transferred register.
	AutoIncrementI bool

	// FontBaseAddress is where the font glyphs are stored. The font has to
	// fit below ProgramStart.
	FontBaseAddress uint16
}

// Validate checks that the quirk configuration can be used.
func (q Quirks) Validate() error {
	if int(q.FontBaseAddress)+len(fontSet) > ProgramStart {
		return fmt.Errorf("%w: font at $%03X overlaps program space", ErrInvalidQuirks, q.FontBaseAddress)
	}
	return nil
}

// Option configures optional parts of a VM.
type Option func(*VM)

// WithRandom sets the source for the RND instruction.
func WithRandom(src RandomSource) Option {
	return func(vm *VM) {
		vm.random = src
	}
}

// WithSeed seeds the default random source with a fixed value.
func WithSeed(seed uint64) Option {
	return func(vm *VM) {
		vm.random = newPCGSource(seed)
	}
}

// VM is the state of a CHIP-8 virtual machine. It does no internal
// locking, concurrent callers have to serialize access.
type VM struct {
	memory [MemorySize]byte
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16
	sp     uint8
	stack  [StackSize]uint16

	timers  Timers
	display Display
	keypad  [KeyCount]bool

	soundFlag bool
	fault     error

	quirks Quirks
	random RandomSource
	rom    []byte
}

// New returns a machine in its power-on state with the font loaded.
func New(quirks Quirks, opts ...Option) (*VM, error) {
	if err := quirks.Validate(); err != nil {
		return nil, err
	}

	vm := &VM{
		quirks: quirks,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.random == nil {
		vm.random = newPCGSource(timeSeed())
	}

	vm.initialize()
	return vm, nil
}

// initialize zeroes all state and loads the font. The random source is
// kept.
func (vm *VM) initialize() {
	vm.memory = [MemorySize]byte{}
	vm.v = [RegisterCount]uint8{}
	vm.stack = [StackSize]uint16{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.sp = 0
	vm.timers = Timers{}
	vm.display = Display{}
	vm.keypad = [KeyCount]bool{}
	vm.soundFlag = false
	vm.fault = nil

	copy(vm.memory[vm.quirks.FontBaseAddress:], fontSet[:])
}

// Reset returns the machine to its power-on state and reloads the last
// loaded ROM. The random source keeps its state.
func (vm *VM) Reset() {
	vm.initialize()
	copy(vm.memory[ProgramStart:], vm.rom)
}

// Load copies a ROM image to ProgramStart. ROMs larger than MaxROMSize are
// rejected and leave the memory unchanged.
func (vm *VM) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	vm.rom = bytes.Clone(rom)
	clear(vm.memory[ProgramStart:])
	copy(vm.memory[ProgramStart:], vm.rom)
	return nil
}

// LoadFrom reads a ROM image from r and loads it. On read errors a
// ROMLoadError is returned and the memory is left unchanged.
func (vm *VM) LoadFrom(r io.Reader) error {
	// read one byte more than fits to detect oversized ROMs without
	// buffering arbitrary amounts of data
	data, err := io.ReadAll(io.LimitReader(r, MaxROMSize+1))
	if err != nil {
		return &ROMLoadError{Err: err}
	}
	if len(data) > MaxROMSize {
		return fmt.Errorf("%w: more than %d bytes", ErrROMTooLarge, MaxROMSize)
	}
	return vm.Load(data)
}

// Quirks returns the quirk configuration of the machine.
func (vm *VM) Quirks() Quirks {
	return vm.quirks
}

// PC returns the program counter.
func (vm *VM) PC() uint16 {
	return vm.pc
}

// I returns the index register.
func (vm *VM) I() uint16 {
	return vm.i
}

// SP returns the stack pointer.
func (vm *VM) SP() uint8 {
	return vm.sp
}

// V returns the value of register Vx.
func (vm *VM) V(x uint8) uint8 {
	return vm.v[x&0x0F]
}

// DelayTimer returns the current delay timer value.
func (vm *VM) DelayTimer() uint8 {
	return vm.timers.Delay
}

// SoundTimer returns the current sound timer value.
func (vm *VM) SoundTimer() uint8 {
	return vm.timers.Sound
}

// Memory returns the byte at the given address.
func (vm *VM) Memory(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("%w: $%04X", ErrAddressOutOfRange, address)
	}
	return vm.memory[address], nil
}

// Fetch returns the opcode at the program counter without executing it.
func (vm *VM) Fetch() (uint16, error) {
	return vm.readOpcode(vm.pc)
}

// Display returns the framebuffer.
func (vm *VM) Display() *Display {
	return &vm.display
}

// SetKey sets the pressed state of a keypad key. Keys outside 0x0-0xF are
// ignored.
func (vm *VM) SetKey(key uint8, pressed bool) {
	if key < KeyCount {
		vm.keypad[key] = pressed
	}
}

// Key returns whether the keypad key is pressed.
func (vm *VM) Key(key uint8) bool {
	return vm.keypad[key&0x0F]
}

// DrawFlag returns whether the display changed since the last render.
func (vm *VM) DrawFlag() bool {
	return vm.display.Dirty()
}

// ClearDrawFlag is called by the renderer after drawing the display.
func (vm *VM) ClearDrawFlag() {
	vm.display.ClearDirty()
}

// SoundFlag returns whether the sound timer was running at the last
// timer tick.
func (vm *VM) SoundFlag() bool {
	return vm.soundFlag
}

// ClearSoundFlag is called by the audio output after acting on the flag.
func (vm *VM) ClearSoundFlag() {
	vm.soundFlag = false
}

// DecrementTimers counts the delay and sound timers down by one. It has to
// be called at TimerFrequency, independent of the instruction rate.
func (vm *VM) DecrementTimers() {
	if vm.timers.Decrement() {
		vm.soundFlag = true
	}
}

// Halted returns the fault that stopped the machine, or nil.
func (vm *VM) Halted() error {
	return vm.fault
}
