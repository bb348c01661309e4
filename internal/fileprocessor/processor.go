// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile disassembles the input ROM and writes the listing to the
// output file, or to stdout if no output file is set.
func ProcessFile(logger *log.Logger, opts options.Program, stdout io.Writer) (err error) {
	rom, err := loader.Read(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	writer := stdout
	if opts.Output != "" {
		file, createErr := os.Create(opts.Output)
		if createErr != nil {
			return fmt.Errorf("creating output file %s: %w", opts.Output, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
			}
		}()
		writer = file
	}

	if err := disasm.Listing(writer, rom, chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	logger.Debug("Disassembled ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.Int("labels", len(disasm.Labels(rom, chip8.ProgramStart))))
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// Batch patterns only select files that are recognized as CHIP-8 ROMs.
func GetFilesToProcess(logger *log.Logger, opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}

	det := detector.New(logger)
	files := matches[:0]
	for _, match := range matches {
		if det.IsROM(match) {
			files = append(files, match)
		}
	}
	return files, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}
