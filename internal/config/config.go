// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the flags.
// Debug logging wins over quiet mode.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flags.Debug:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// PrintBanner logs the program name and version unless quiet mode is set.
func PrintBanner(logger *log.Logger, flags options.Flags, version, commit, date string) {
	if flags.Quiet {
		return
	}
	logger.Info("retrochip8 - CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}
