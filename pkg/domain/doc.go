/*
Package domain contains the core types of the headr truncation engine.

It defines what a run is asked to do (Config and its truncation Mode), what it
reads from (Source) and how it can fail (InvalidCountError,
SourceUnavailableError, ReadFailureError). This package is kept pure and free
of I/O decisions: opening sources lives in the adapters, reading them lives in
the runner.

# Key Entities

  - Config: The validated, immutable description of one invocation.
  - Mode: A tagged union selecting either line-bounded or byte-bounded output.
  - Source: A named readable stream, either standard input or a named file.
*/
package domain
