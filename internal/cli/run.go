package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

func runROM(ctx context.Context, logger *log.Logger, opts options.Program) error {
	vm, err := chip8.New(opts.Quirks(), opts.VMOptions()...)
	if err != nil {
		return fmt.Errorf("creating virtual machine: %w", err)
	}
	if err := loader.Load(opts.Input, vm); err != nil {
		return err
	}

	app.PrintInfo(logger, opts)

	var outputs machine.Outputs
	if !opts.NoSound {
		player, err := audio.NewPlayer()
		if err != nil {
			logger.Warn("Sound output not available", log.Err(err))
		} else {
			defer func() { _ = player.Close() }()
			outputs = append(outputs, machine.SoundOnly(player.SetSound))
		}
	}

	if opts.Terminal {
		return runTerminal(ctx, logger, vm, opts, outputs)
	}
	return runWindow(ctx, logger, vm, opts, outputs)
}

func runWindow(ctx context.Context, logger *log.Logger, vm *chip8.VM, opts options.Program, outputs machine.Outputs) error {
	m := machine.New(logger, vm, opts.Machine(), outputs)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.Serve(ctx)
	}()

	cfg := window.Config{
		Scale: opts.Scale,
		Title: "retrochip8 - " + filepath.Base(opts.Input),
	}
	windowErr := window.Run(ctx, logger, m, cfg)
	cancel()
	machineErr := <-done

	if windowErr != nil {
		if errors.Is(windowErr, window.ErrUnsupported) {
			return fmt.Errorf("%w, use --terminal", windowErr)
		}
		return windowErr
	}
	return machineErr
}

func runTerminal(ctx context.Context, logger *log.Logger, vm *chip8.VM, opts options.Program, outputs machine.Outputs) error {
	restore, err := terminal.MakeRaw(os.Stdin)
	if err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	if fits, err := terminal.FitsDisplay(os.Stdout); err == nil && !fits {
		logger.Warn("Terminal is too small to show the full display")
	}

	renderer := terminal.NewRenderer(logger, os.Stdout)
	renderer.Start()
	defer renderer.Stop()

	m := machine.New(logger, vm, opts.Machine(), append(outputs, renderer))
	input := terminal.NewInput(os.Stdin, m, terminal.DefaultReleaseDelay)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.Run(ctx)
	})
	g.Go(func() error {
		return input.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, terminal.ErrQuit) {
		return err
	}
	return nil
}

func disassembleFiles(logger *log.Logger, stdout io.Writer, opts options.Program) error {
	files, err := fileprocessor.GetFilesToProcess(logger, opts)
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}

	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(logger, opts, stdout); err != nil {
			return fmt.Errorf("disassembling %s: %w", file, err)
		}
		if opts.Output != "" {
			logger.Info("Listing written", log.String("file", opts.Output))
		}
	}
	return nil
}
