package file

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/aretw0/headr/pkg/domain"
)

// ErrIsDirectory is the reason reported for a source path naming a directory.
var ErrIsDirectory = errors.New("is a directory")

// Opener implements ports.SourceOpener on the local filesystem.
type Opener struct {
	stdin io.Reader
}

// NewOpener creates an opener whose "-" source reads from stdin.
// A nil stdin falls back to os.Stdin.
func NewOpener(stdin io.Reader) *Opener {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Opener{stdin: stdin}
}

// Open returns standard input for "-" and a read-only file handle otherwise.
func (o *Opener) Open(name string) (*domain.Source, error) {
	if name == domain.StdinName {
		return domain.NewStdinSource(o.stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, &domain.SourceUnavailableError{Name: name, Err: reason(err)}
	}

	// os.Open succeeds on directories; reading them does not.
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &domain.SourceUnavailableError{Name: name, Err: reason(err)}
	}
	if info.IsDir() {
		f.Close()
		return nil, &domain.SourceUnavailableError{Name: name, Err: ErrIsDirectory}
	}

	return domain.NewFileSource(name, f), nil
}

// reason strips the "open <path>:" prefix so diagnostics read "<name>: <reason>".
func reason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
