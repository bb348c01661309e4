// Package machine drives a CHIP-8 virtual machine in real time. It runs the
// instruction clock and the 60 Hz timer clock and forwards frames and sound
// state to an output.
package machine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// DefaultInstructionsPerSecond is the instruction clock used when the
// configuration does not set one.
const DefaultInstructionsPerSecond = 500

// Output receives the machine state that is presented to the user.
type Output interface {
	// Render is called from the timer clock whenever the display changed.
	Render(frame chip8.Frame)
	// SetSound is called whenever the buzzer turns on or off.
	SetSound(active bool)
}

// Config contains the machine settings.
type Config struct {
	InstructionsPerSecond int
	Trace                 bool // log every executed instruction on debug level
}

// Machine owns a VM and serializes all access to it.
type Machine struct {
	logger *log.Logger
	cfg    Config
	out    Output

	resets chan struct{}

	mu     sync.Mutex
	vm     *chip8.VM
	sound  bool
	redraw bool
}

// New returns a machine driving the given VM.
func New(logger *log.Logger, vm *chip8.VM, cfg Config, out Output) *Machine {
	if cfg.InstructionsPerSecond <= 0 {
		cfg.InstructionsPerSecond = DefaultInstructionsPerSecond
	}
	return &Machine{
		logger: logger,
		cfg:    cfg,
		out:    out,
		resets: make(chan struct{}, 1),
		vm:     vm,
		redraw: true,
	}
}

// Run executes instructions and ticks the timers until the context is
// canceled or the VM faults. Cancellation is not reported as an error.
func (m *Machine) Run(ctx context.Context) error {
	m.logger.Debug("Starting machine",
		log.Int("instructions_per_second", m.cfg.InstructionsPerSecond))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runClock(ctx, m.instructionPeriod(), m.Step)
	})

	timerPeriod := time.Second / chip8.TimerFrequency
	g.Go(func() error {
		return runClock(ctx, timerPeriod, func() error {
			m.Tick()
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		m.silence()
		return fmt.Errorf("running machine: %w", err)
	}
	return nil
}

// instructionPeriod returns the instruction clock period, at least 1ns.
func (m *Machine) instructionPeriod() time.Duration {
	return max(time.Second/time.Duration(m.cfg.InstructionsPerSecond), time.Nanosecond)
}

// silence turns the buzzer off once the timer clock stopped, the frozen
// sound timer of a halted VM would otherwise keep it on.
func (m *Machine) silence() {
	m.mu.Lock()
	sound := m.sound
	m.sound = false
	m.mu.Unlock()

	if sound {
		m.out.SetSound(false)
	}
}

// Serve runs the machine until the context is canceled. After a fault it
// waits for a reset and continues with the restarted program.
func (m *Machine) Serve(ctx context.Context) error {
	for {
		err := m.Run(ctx)
		if err == nil || !chip8.IsFault(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-m.resets:
			m.logger.Debug("Resuming after reset")
		}
	}
}

// runClock calls fn once per period until the context is done or fn fails.
func runClock(ctx context.Context, period time.Duration, fn func() error) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

// Step executes a single instruction. Unknown opcodes are logged and
// skipped, faults are returned.
func (m *Machine) Step() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.Trace {
		m.trace()
	}

	err := m.vm.Step()
	if err == nil {
		return nil
	}

	var unknown *chip8.UnknownOpcodeError
	if errors.As(err, &unknown) {
		m.logger.Warn("Skipping unknown opcode",
			log.Hex("address", unknown.Address),
			log.Hex("opcode", unknown.Opcode))
		return nil
	}

	m.logger.Error("Machine halted", log.Err(err))
	return err
}

func (m *Machine) trace() {
	if m.vm.Halted() != nil {
		return
	}
	opcode, err := m.vm.Fetch()
	if err != nil {
		return
	}
	m.logger.Debug("Executing instruction",
		log.Hex("pc", m.vm.PC()),
		log.Hex("opcode", opcode),
		log.String("instruction", disasm.Format(opcode)),
		log.Hex("i", m.vm.I()))
}

// Tick advances the timers by one 60 Hz period, renders the display if it
// changed and updates the buzzer state.
func (m *Machine) Tick() {
	m.mu.Lock()
	m.vm.DecrementTimers()

	sound := m.vm.SoundFlag()
	m.vm.ClearSoundFlag()
	soundChanged := sound != m.sound
	m.sound = sound

	draw := m.redraw || m.vm.DrawFlag()
	var frame chip8.Frame
	if draw {
		frame = m.vm.Display().Frame()
		m.vm.ClearDrawFlag()
		m.redraw = false
	}
	m.mu.Unlock()

	if draw {
		m.out.Render(frame)
	}
	if soundChanged {
		m.out.SetSound(sound)
	}
}

// SetKey updates the state of a keypad key.
func (m *Machine) SetKey(key uint8, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vm.SetKey(key, pressed)
}

// Reset restarts the loaded program. Resetting a halted VM wakes up Serve.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	halted := m.vm.Halted() != nil
	m.vm.Reset()
	m.redraw = true
	m.logger.Info("Machine reset")

	if !halted {
		return
	}
	select {
	case m.resets <- struct{}{}:
	default:
	}
}

// Frame returns a snapshot of the display.
func (m *Machine) Frame() chip8.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vm.Display().Frame()
}

// Halted returns the fault that stopped the VM or nil.
func (m *Machine) Halted() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vm.Halted()
}
