/*
Package headr prints the beginning of its inputs, the way the Unix head command does.

For each source it emits either the first N lines or the first N bytes. When
more than one source is given, each one is preceded by a "==> name <==" banner,
with a blank line between consecutive sources.

# Concept

A run is described by a domain.Config: an ordered list of source names ("-"
is standard input) and a truncation domain.Mode, which is either Lines(n) or
Bytes(n), never both. The runner opens each source through a
ports.SourceOpener, truncates it with the Engine, and moves on. A source that
cannot be opened or read is reported on the error stream and skipped; it never
aborts the run.

# Key Features

  - Byte-exact line mode: lines are emitted as read, terminators included.
  - Lossy byte mode: a multi-byte character cut by the count is shown as U+FFFD.
  - Per-source isolation: open and read failures are reported, not fatal.
  - Pluggable sources: the filesystem by default, in-memory for tests.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/headr"
		"github.com/aretw0/headr/pkg/domain"
	)

	func main() {
		cfg := domain.Config{
			Sources: []string{"access.log", "error.log"},
			Mode:    domain.Lines(5),
		}
		if err := headr.Head(context.Background(), cfg); err != nil {
			log.Fatal(err)
		}
	}

The headr command (cmd/headr) wraps the same engine behind -n/--lines and
-c/--bytes flags.
*/
package headr
