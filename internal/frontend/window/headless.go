//go:build headless

package window

import (
	"context"

	"github.com/retroenv/retrogolib/log"
)

// Run returns ErrUnsupported.
func Run(_ context.Context, _ *log.Logger, _ Machine, _ Config) error {
	return ErrUnsupported
}
