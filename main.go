// Package main implements the main entry point for the CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cmd := cli.New(cli.Build{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			return
		}

		logger := config.CreateLogger(options.Flags{})
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}
