// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Build contains the version information embedded at build time.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// New returns the root command of the program.
func New(build Build) *cobra.Command {
	var opts options.Program

	root := &cobra.Command{
		Use:           "retrochip8",
		Short:         "CHIP-8 emulator and disassembler",
		Version:       buildinfo.Version(build.Version, build.Commit, build.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")

	root.AddCommand(newRunCommand(build, &opts), newDisasmCommand(build, &opts))
	return root
}

func newRunCommand(build Build, opts *options.Program) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <rom file>",
		Short: "Run a ROM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			logger := config.CreateLogger(opts.Flags)
			config.PrintBanner(logger, opts.Flags, build.Version, build.Commit, build.Date)
			return runROM(cmd.Context(), logger, *opts)
		},
	}

	flags := cmd.Flags()
	flags.AddFlagSet(quirkFlags(&opts.QuirkFlags))
	flags.IntVar(&opts.InstructionsPerSecond, "ips", machine.DefaultInstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", window.DefaultScale, "window scale factor")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number generator seed (default: time based)")
	flags.BoolVar(&opts.Terminal, "terminal", false, "render in the terminal instead of a window")
	flags.BoolVar(&opts.NoSound, "no-sound", false, "disable the buzzer")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires --debug")
	return cmd
}

func newDisasmCommand(build Build, opts *options.Program) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm [rom file]",
		Short: "Disassemble a ROM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1:
				opts.Input = args[0]
			case opts.Batch == "":
				return errors.New("a ROM file or a batch pattern is required")
			}

			logger := config.CreateLogger(opts.Flags)
			config.PrintBanner(logger, opts.Flags, build.Version, build.Commit, build.Date)
			return disassembleFiles(logger, cmd.OutOrStdout(), *opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "name of the output .asm file, printed on console if no name given")
	cmd.Flags().StringVar(&opts.Batch, "batch", "", "process a batch of ROMs matching the pattern with automatic .asm file naming, for example *.ch8")
	return cmd
}

// quirkFlags returns the flags that select the interpreter quirks.
func quirkFlags(quirks *options.QuirkFlags) *pflag.FlagSet {
	flags := pflag.NewFlagSet("quirks", pflag.ContinueOnError)
	flags.BoolVarP(&quirks.ShiftVs, "shift-vs", "s", false, "shift instructions store Vy shifted into Vx")
	flags.BoolVarP(&quirks.IOverflow, "i-overflow", "o", false, "ADD I, Vx sets VF when I leaves the address space")
	flags.BoolVarP(&quirks.IncrementI, "increment-i", "i", false, "register store and load advance I")
	flags.VarP((*addressValue)(&quirks.Font), "font", "f", "font base address, decimal or 0x prefixed hex")
	return flags
}

// addressValue is a memory address flag that accepts decimal, hex and
// octal notation.
type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("0x%03X", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	value, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("parsing address '%s': %w", s, err)
	}
	if value > chip8.MaxAddress {
		return fmt.Errorf("address '%s' is outside of the memory", s)
	}
	*a = addressValue(value)
	return nil
}

func (a *addressValue) Type() string {
	return "address"
}
