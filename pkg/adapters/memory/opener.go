package memory

import (
	"bytes"
	"errors"
	"io"

	"github.com/aretw0/headr/pkg/domain"
)

// ErrNotFound is the reason reported for names the opener does not hold.
var ErrNotFound = errors.New("no such source")

// Opener implements ports.SourceOpener using an in-memory map.
// Standard input is a single shared reader: once drained, "-" yields nothing.
type Opener struct {
	files map[string][]byte
	stdin *bytes.Reader
}

// NewOpener creates an opener serving files by name and stdin for "-".
func NewOpener(stdin string, files map[string]string) *Opener {
	data := make(map[string][]byte, len(files))
	for k, v := range files {
		data[k] = []byte(v)
	}
	return &Opener{
		files: data,
		stdin: bytes.NewReader([]byte(stdin)),
	}
}

// Open returns a fresh reader over the named content on every call.
func (o *Opener) Open(name string) (*domain.Source, error) {
	if name == domain.StdinName {
		return domain.NewStdinSource(o.stdin), nil
	}
	content, ok := o.files[name]
	if !ok {
		return nil, &domain.SourceUnavailableError{Name: name, Err: ErrNotFound}
	}
	return domain.NewFileSource(name, io.NopCloser(bytes.NewReader(content))), nil
}
