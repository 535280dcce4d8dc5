package ports

import "github.com/aretw0/headr/pkg/domain"

// SourceOpener maps a source name to a readable stream.
type SourceOpener interface {
	// Open returns the source for name. "-" must yield standard input, which
	// the caller must not assume it can re-read. Failures are reported as
	// *domain.SourceUnavailableError.
	Open(name string) (*domain.Source, error)
}

// OpenerFunc adapts a plain function to SourceOpener.
type OpenerFunc func(name string) (*domain.Source, error)

// Open calls f(name).
func (f OpenerFunc) Open(name string) (*domain.Source, error) {
	return f(name)
}
