package domain

import "io"

// SourceKind tags where a Source reads from.
type SourceKind int

const (
	StandardInput SourceKind = iota // Process-shared, never closed by the engine
	NamedFile                       // Exclusively owned handle
)

func (k SourceKind) String() string {
	if k == StandardInput {
		return "stdin"
	}
	return "file"
}

// Source is a named readable stream owned by the engine between Open and Close.
type Source struct {
	Name string
	Kind SourceKind

	r      io.Reader
	closer io.Closer
}

// NewStdinSource wraps the process's standard input. Closing it is a no-op.
func NewStdinSource(r io.Reader) *Source {
	return &Source{Name: StdinName, Kind: StandardInput, r: r}
}

// NewFileSource wraps an exclusively owned handle that Close releases.
func NewFileSource(name string, rc io.ReadCloser) *Source {
	return &Source{Name: name, Kind: NamedFile, r: rc, closer: rc}
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close releases the handle for NamedFile sources.
func (s *Source) Close() error {
	if s.Kind == StandardInput || s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}
