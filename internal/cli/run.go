package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/headr/internal/config"
	"github.com/aretw0/headr/pkg/domain"
	"github.com/aretw0/headr/pkg/runner"
)

// RunOptions contains all the configuration for the root command.
type RunOptions struct {
	Files      []string
	Lines      string // Raw --lines value
	LinesSet   bool   // --lines was given explicitly
	Bytes      string // Raw --bytes value
	BytesSet   bool   // --bytes was given explicitly
	ConfigPath string
	Debug      bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// BuildConfig validates the raw options into a domain.Config.
// Explicit flags win over the defaults file, which wins over built-in defaults.
func BuildConfig(opts RunOptions) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if len(opts.Files) > 0 {
		cfg.Sources = append([]string(nil), opts.Files...)
	}

	if opts.LinesSet && opts.BytesSet {
		return cfg, fmt.Errorf("--lines and --bytes cannot be used together")
	}

	var defaults config.Defaults
	if opts.ConfigPath != "" {
		d, err := config.LoadDefaults(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		defaults = d
	}

	mode, err := selectMode(opts, defaults)
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	return cfg, nil
}

func selectMode(opts RunOptions, defaults config.Defaults) (domain.Mode, error) {
	switch {
	case opts.BytesSet:
		return bytesMode(opts.Bytes)
	case opts.LinesSet:
		return linesMode(opts.Lines)
	case defaults.Bytes != "":
		return bytesMode(defaults.Bytes)
	case defaults.Lines != "":
		return linesMode(defaults.Lines)
	case opts.Lines != "":
		return linesMode(opts.Lines)
	default:
		return domain.Lines(domain.DefaultLineCount), nil
	}
}

func linesMode(text string) (domain.Mode, error) {
	n, err := domain.ParseCount("line", text)
	if err != nil {
		return domain.Mode{}, err
	}
	return domain.Lines(n), nil
}

func bytesMode(text string) (domain.Mode, error) {
	n, err := domain.ParseCount("byte", text)
	if err != nil {
		return domain.Mode{}, err
	}
	return domain.Bytes(n), nil
}

// Execute builds the config and runs every source through the runner.
// Only configuration errors and broken output channels are returned;
// per-source failures are reported on Stderr and do not fail the run.
func Execute(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.Stderr, opts.Debug)

	cfg, err := BuildConfig(opts)
	if err != nil {
		return err
	}
	logger.Debug("Config built", "sources", len(cfg.Sources), "mode", cfg.Mode)

	r := runner.NewRunner(
		runner.WithStdin(opts.Stdin),
		runner.WithOutput(opts.Stdout),
		runner.WithErrors(opts.Stderr),
		runner.WithLogger(logger),
	)
	if err := r.Run(ctx, cfg); err != nil {
		return err
	}
	if summary := r.LastSummary(); summary.Failed() {
		logger.Debug("Some sources were skipped",
			"open_failures", summary.OpenFailures,
			"read_failures", summary.ReadFailures,
		)
	}
	return nil
}
