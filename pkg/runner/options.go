package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/headr/pkg/adapters/file"
	"github.com/aretw0/headr/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithOpener configures how source names are resolved.
func WithOpener(opener ports.SourceOpener) Option {
	return func(r *Runner) {
		r.Opener = opener
	}
}

// WithStdin resolves sources on the filesystem with "-" reading from stdin.
func WithStdin(stdin io.Reader) Option {
	return func(r *Runner) {
		r.Opener = file.NewOpener(stdin)
	}
}

// WithOutput configures the primary output channel.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithErrors configures the diagnostic channel.
func WithErrors(w io.Writer) Option {
	return func(r *Runner) {
		r.Errors = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}
