package terminal

import (
	"bufio"
	"io"
)

// LineReader implements ports.LineReader over any io.Reader, for piped or
// redirected input.
type LineReader struct {
	sc *bufio.Scanner
}

// NewLineReader creates a LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line, or io.EOF once r is exhausted.
func (l *LineReader) ReadLine() (string, error) {
	if l.sc.Scan() {
		return l.sc.Text(), nil
	}
	if err := l.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close is a no-op; the underlying reader is owned by the caller.
func (l *LineReader) Close() error { return nil }
