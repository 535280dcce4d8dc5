package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/aretw0/headr/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader yields data and then a non-EOF error.
type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func stdinSource(content string) *domain.Source {
	return domain.NewStdinSource(strings.NewReader(content))
}

func TestEngine_Lines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		n         int
		expected  string
		lineCount int
	}{
		{"Fewer lines than requested", numberedLines(3), 10, numberedLines(3), 3},
		{"More lines than requested", numberedLines(20), 10, numberedLines(10), 10},
		{"Exact count", numberedLines(5), 5, numberedLines(5), 5},
		{"Empty source", "", 10, "", 0},
		{"Unterminated last line", "a\nb", 5, "a\nb", 2},
		{"CRLF is preserved", "one\r\ntwo\r\nthree\r\n", 2, "one\r\ntwo\r\n", 2},
		{"Blank lines count", "\n\n\nx\n", 2, "\n\n", 2},
		{"Invalid UTF-8 passes through", "\xff\xfe\nok\n", 1, "\xff\xfe\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := NewEngine().Lines(&out, stdinSource(tt.input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
			assert.Equal(t, tt.lineCount, res.Lines)
			assert.Equal(t, int64(len(tt.expected)), res.Bytes)
		})
	}
}

func TestEngine_LinesProperty(t *testing.T) {
	for total := 0; total <= 12; total++ {
		for n := 1; n <= 12; n++ {
			var out bytes.Buffer
			_, err := NewEngine().Lines(&out, stdinSource(numberedLines(total)), n)
			require.NoError(t, err)
			assert.Equal(t, numberedLines(min(total, n)), out.String(), "total=%d n=%d", total, n)
		}
	}
}

func TestEngine_Bytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
		consumed int64
	}{
		{"Shorter than count", "abc", 10, "abc", 3},
		{"Cut on ASCII", "hello world", 5, "hello", 5},
		{"Newlines are plain bytes", "a\nb\nc\n", 3, "a\nb", 3},
		{"Split multi-byte char", "héllo", 2, "h\uFFFD", 2},
		{"Whole multi-byte char", "héllo", 3, "hé", 3},
		{"Split three-byte char yields one marker", "a€b", 3, "a\uFFFD", 3},
		{"Invalid byte replaced", "h\xffi", 3, "h\uFFFDi", 3},
		{"Surrogate bytes replaced one by one", "\xed\xa0\x80x", 4, "\uFFFD\uFFFD\uFFFDx", 4},
		{"Empty source", "", 4, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := NewEngine().Bytes(&out, stdinSource(tt.input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
			assert.Equal(t, tt.consumed, res.Bytes)
		})
	}
}

// endlessReader yields the same byte forever.
type endlessReader byte

func (r endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func TestEngine_BytesMemoryDoesNotGrowWithCount(t *testing.T) {
	const count = 64 << 20

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	src := domain.NewStdinSource(endlessReader('a'))
	res, err := NewEngine().Bytes(io.Discard, src, count)

	runtime.ReadMemStats(&after)
	require.NoError(t, err)
	assert.Equal(t, int64(count), res.Bytes)

	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(4<<20), "allocated %d bytes for a %d byte count", allocated, count)
}

// stepReader hands out one chunk per Read and records how much output
// had reached the writer by the time the next chunk was requested.
type stepReader struct {
	chunks []string
	out    *bytes.Buffer
	seen   []string
}

func (s *stepReader) Read(p []byte) (int, error) {
	s.seen = append(s.seen, s.out.String())
	if len(s.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.chunks[0])
	s.chunks = s.chunks[1:]
	return n, nil
}

func TestEngine_BytesStreamsOutput(t *testing.T) {
	var out bytes.Buffer
	// "é" is split across the two chunks.
	r := &stepReader{chunks: []string{"ab\xc3", "\xa9cd"}, out: &out}

	_, err := NewEngine().Bytes(&out, domain.NewStdinSource(r), 100)
	require.NoError(t, err)

	assert.Equal(t, "abécd", out.String())
	require.GreaterOrEqual(t, len(r.seen), 2)
	assert.Equal(t, "ab", r.seen[1], "first chunk must be written before the next read")
}

func TestEngine_BytesDoesNotOverRead(t *testing.T) {
	r := strings.NewReader("0123456789")
	src := domain.NewStdinSource(r)

	var out bytes.Buffer
	_, err := NewEngine().Bytes(&out, src, 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", out.String())

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "456789", string(rest))
}

func TestEngine_ReadFailureKeepsPartialOutput(t *testing.T) {
	boom := errors.New("device unplugged")

	t.Run("Lines", func(t *testing.T) {
		src := domain.NewFileSource("flaky.txt", io.NopCloser(&failingReader{data: []byte("a\nb\n"), err: boom}))

		var out bytes.Buffer
		res, err := NewEngine().Lines(&out, src, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrReadFailure)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "flaky.txt: device unplugged", err.Error())
		assert.Equal(t, "a\nb\n", out.String())
		assert.Equal(t, 2, res.Lines)
	})

	t.Run("Bytes", func(t *testing.T) {
		src := domain.NewFileSource("flaky.bin", io.NopCloser(&failingReader{data: []byte("abc"), err: boom}))

		var out bytes.Buffer
		_, err := NewEngine().Bytes(&out, src, 10)
		assert.ErrorIs(t, err, domain.ErrReadFailure)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "abc", out.String())
	})
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("closed pipe") }

func TestEngine_WriteFailureIsNotReadFailure(t *testing.T) {
	_, err := NewEngine().Lines(brokenWriter{}, stdinSource("a\n"), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReadFailure)

	_, err = NewEngine().Bytes(brokenWriter{}, stdinSource("abc"), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReadFailure)
}

func TestEngine_Truncate(t *testing.T) {
	var out bytes.Buffer
	_, err := NewEngine().Truncate(&out, stdinSource("a\nb\nc\n"), domain.Lines(2))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out.String())

	out.Reset()
	_, err = NewEngine().Truncate(&out, stdinSource("a\nb\nc\n"), domain.Bytes(2))
	require.NoError(t, err)
	assert.Equal(t, "a\n", out.String())

	_, err = NewEngine().Truncate(&out, stdinSource(""), domain.Mode{})
	assert.Error(t, err)
}
