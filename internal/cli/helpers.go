package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/headr/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to the error stream (to separate from the truncated output).
func createLogger(stderr io.Writer, debug bool) *slog.Logger {
	if !debug {
		return logging.NewNop()
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return logging.New(stderr, slog.LevelDebug)
}
