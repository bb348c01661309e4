// Package detector recognizes CHIP-8 ROM files.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Detector recognizes CHIP-8 ROM files by their file extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new ROM detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// IsROM returns whether the file name has a CHIP-8 ROM extension.
func (d *Detector) IsROM(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return true
	default:
		d.logger.Debug("Skipping file with unknown extension",
			log.String("file", filename),
			log.String("extension", ext))
		return false
	}
}
