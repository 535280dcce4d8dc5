package domain

import "fmt"

// StdinName is the source name that denotes the process's standard input.
const StdinName = "-"

// DefaultLineCount is the number of lines emitted when no count is given.
const DefaultLineCount = 10

// ModeKind tags which truncation algorithm a Mode selects.
type ModeKind int

const (
	modeUnset ModeKind = iota
	ModeLines          // Emit the first N lines
	ModeBytes          // Emit the first N bytes
)

func (k ModeKind) String() string {
	switch k {
	case ModeLines:
		return "lines"
	case ModeBytes:
		return "bytes"
	default:
		return "unset"
	}
}

// Mode selects exactly one truncation algorithm and its count.
// The zero value selects nothing and is rejected by Config.Validate.
type Mode struct {
	kind  ModeKind
	count int
}

// Lines returns a Mode emitting the first n lines of each source.
func Lines(n int) Mode {
	return Mode{kind: ModeLines, count: n}
}

// Bytes returns a Mode emitting the first n bytes of each source.
func Bytes(n int) Mode {
	return Mode{kind: ModeBytes, count: n}
}

// Kind reports which algorithm the mode selects.
func (m Mode) Kind() ModeKind { return m.kind }

// Count is the line or byte count, depending on Kind.
func (m Mode) Count() int { return m.count }

func (m Mode) String() string {
	if m.kind == modeUnset {
		return "unset"
	}
	return fmt.Sprintf("%s(%d)", m.kind, m.count)
}

// Config is the validated description of a single invocation.
type Config struct {
	// Sources are read in order. "-" denotes standard input.
	Sources []string

	// Mode is the active truncation selector.
	Mode Mode
}

// DefaultConfig reads ten lines from standard input.
func DefaultConfig() Config {
	return Config{
		Sources: []string{StdinName},
		Mode:    Lines(DefaultLineCount),
	}
}

// LineCount returns the line count and true when line mode is active.
func (c Config) LineCount() (int, bool) {
	if c.Mode.kind != ModeLines {
		return 0, false
	}
	return c.Mode.count, true
}

// ByteCount returns the byte count and true when byte mode is active.
// When it reports true, line mode is disabled.
func (c Config) ByteCount() (int, bool) {
	if c.Mode.kind != ModeBytes {
		return 0, false
	}
	return c.Mode.count, true
}

// MultiSource reports whether banners are printed for this run.
func (c Config) MultiSource() bool {
	return len(c.Sources) > 1
}

// Validate checks the invariants a Runner relies on.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return &ValidationError{Key: "sources", Reason: "at least one source is required"}
	}
	switch c.Mode.kind {
	case ModeLines, ModeBytes:
	default:
		return &ValidationError{Key: "mode", Reason: "no truncation mode selected"}
	}
	if c.Mode.count <= 0 {
		return &ValidationError{Key: "mode", Reason: "count must be positive", Value: c.Mode.count}
	}
	return nil
}
