package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/headr/pkg/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Result counts what a single truncation emitted.
type Result struct {
	Lines int   // Lines written (line mode only)
	Bytes int64 // Raw bytes consumed from the source
}

// Engine truncates one opened source at a time.
// It holds no per-source state and can be reused across sources.
type Engine struct{}

// NewEngine creates a truncation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Truncate dispatches on the mode's kind.
// Read errors are returned as *domain.ReadFailureError after the partial
// output has been written; any other error comes from the writer.
func (e *Engine) Truncate(w io.Writer, src *domain.Source, mode domain.Mode) (Result, error) {
	switch mode.Kind() {
	case domain.ModeLines:
		return e.Lines(w, src, mode.Count())
	case domain.ModeBytes:
		return e.Bytes(w, src, mode.Count())
	default:
		return Result{}, fmt.Errorf("truncate %s: unsupported mode %s", src.Name, mode)
	}
}

// Lines writes at most n lines of src to w, byte for byte.
// A line ends at '\n', which is kept; a final unterminated line counts too.
func (e *Engine) Lines(w io.Writer, src *domain.Source, n int) (Result, error) {
	var res Result
	var readErr error

	br := bufio.NewReader(src)
	bw := bufio.NewWriter(w)

	for res.Lines < n {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := bw.Write(line); werr != nil {
				return res, fmt.Errorf("write output: %w", werr)
			}
			res.Lines++
			res.Bytes += int64(len(line))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = &domain.ReadFailureError{Name: src.Name, Err: err}
			}
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, readErr
}

// Bytes writes the lossy UTF-8 decoding of the first n bytes of src to w.
// The cut is made on the byte count; a character split by it is replaced
// with U+FFFD. Output is streamed, so memory use does not grow with n.
func (e *Engine) Bytes(w io.Writer, src *domain.Source, n int) (Result, error) {
	sr := &sourceReader{r: io.LimitReader(src, int64(n))}
	tw := transform.NewWriter(w, unicode.UTF8.NewDecoder())

	copied, err := io.Copy(tw, sr)
	res := Result{Bytes: copied}

	// Close flushes a trailing partial rune as U+FFFD.
	if cerr := tw.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if sr.err != nil {
		return res, &domain.ReadFailureError{Name: src.Name, Err: sr.err}
	}
	if err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}

// sourceReader records the first non-EOF read error so it can be told apart
// from write errors surfacing through io.Copy.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && s.err == nil {
		s.err = err
	}
	return n, err
}
