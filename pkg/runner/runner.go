package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/headr/internal/logging"
	"github.com/aretw0/headr/pkg/adapters/file"
	"github.com/aretw0/headr/pkg/domain"
	"github.com/aretw0/headr/pkg/ports"
)

// Summary describes what the last Run did.
type Summary struct {
	Sources      int   // Sources attempted
	OpenFailures int   // Sources that could not be opened
	ReadFailures int   // Sources that failed mid-read
	Lines        int   // Lines emitted across all sources
	Bytes        int64 // Raw bytes consumed across all sources
}

// Failed reports whether any source produced a diagnostic.
func (s Summary) Failed() bool {
	return s.OpenFailures+s.ReadFailures > 0
}

// Runner processes the sources of a Config strictly in order.
// A source that fails to open or read is reported on Errors and skipped;
// the run itself only fails on an invalid Config or a broken writer.
type Runner struct {
	// Opener resolves source names. Defaults to the filesystem with os.Stdin.
	Opener ports.SourceOpener

	// Output receives banners and truncated content.
	Output io.Writer

	// Errors receives one "<name>: <reason>" line per failed source.
	Errors io.Writer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	engine  *Engine
	summary Summary
}

// NewRunner creates a Runner bound to the process's standard streams
// unless overridden by options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		engine: NewEngine(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Opener == nil {
		r.Opener = file.NewOpener(os.Stdin)
	}
	if r.Output == nil {
		r.Output = os.Stdout
	}
	if r.Errors == nil {
		r.Errors = os.Stderr
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run emits the head of every source in cfg.
// Per-source failures never make it return an error.
func (r *Runner) Run(ctx context.Context, cfg domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.summary = Summary{}
	multi := cfg.MultiSource()
	bannerPrinted := false

	for _, name := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.summary.Sources++

		src, err := r.Opener.Open(name)
		if err != nil {
			r.summary.OpenFailures++
			if err := r.report(sourceUnavailable(name, err)); err != nil {
				return err
			}
			continue
		}
		r.Logger.Debug("Source opened", "source", name, "kind", src.Kind, "mode", cfg.Mode)

		if multi {
			if err := r.banner(name, bannerPrinted); err != nil {
				src.Close()
				return err
			}
		}
		bannerPrinted = true

		res, err := r.engine.Truncate(r.Output, src, cfg.Mode)
		if cerr := src.Close(); cerr != nil {
			r.Logger.Debug("Source close failed", "source", name, "error", cerr)
		}
		r.summary.Lines += res.Lines
		r.summary.Bytes += res.Bytes

		if err != nil {
			if !errors.Is(err, domain.ErrReadFailure) {
				return err
			}
			r.summary.ReadFailures++
			if err := r.report(err); err != nil {
				return err
			}
		}
	}

	r.Logger.Debug("Run finished",
		"sources", r.summary.Sources,
		"open_failures", r.summary.OpenFailures,
		"read_failures", r.summary.ReadFailures,
		"lines", r.summary.Lines,
		"bytes", r.summary.Bytes,
	)
	return nil
}

// LastSummary returns the counters of the most recent Run.
func (r *Runner) LastSummary() Summary {
	return r.summary
}

// banner writes "==> name <==", preceded by a blank line after the first one.
func (r *Runner) banner(name string, spaced bool) error {
	prefix := ""
	if spaced {
		prefix = "\n"
	}
	if _, err := fmt.Fprintf(r.Output, "%s==> %s <==\n", prefix, name); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}

func (r *Runner) report(err error) error {
	r.Logger.Debug("Source failed", "error", err)
	if _, werr := fmt.Fprintln(r.Errors, err.Error()); werr != nil {
		return fmt.Errorf("write diagnostic: %w", werr)
	}
	return nil
}

// sourceUnavailable normalises opener errors from adapters that do not
// return the domain type themselves.
func sourceUnavailable(name string, err error) error {
	if errors.Is(err, domain.ErrSourceUnavailable) {
		return err
	}
	return &domain.SourceUnavailableError{Name: name, Err: err}
}
