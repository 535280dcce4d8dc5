/*
Package runner implements the truncation engine and the multi-source loop of headr.

It acts as the bridge between a validated domain.Config and the outside world:
sources come in through a ports.SourceOpener, truncated content goes out on the
output writer, and per-source diagnostics go to the error writer.

# Key Components

  - Engine: Emits the first N lines or the first N bytes of one opened source.
  - Runner: Iterates the configured sources, prints banners and isolates failures.

# Usage

	r := runner.NewRunner(
		runner.WithOpener(file.NewOpener(os.Stdin)),
		runner.WithOutput(os.Stdout),
		runner.WithErrors(os.Stderr),
	)

	if err := r.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
*/
package runner
