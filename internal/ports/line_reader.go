package ports

import "errors"

// ErrInterrupt is returned by a LineReader when the user interrupts the
// current line (Ctrl-C on a terminal).
var ErrInterrupt = errors.New("interrupt")

// LineReader supplies the session with one line of user input at a time.
type LineReader interface {
	// ReadLine returns the next line without its line terminator.
	// Returns io.EOF when input is exhausted and ErrInterrupt when the
	// line was abandoned.
	ReadLine() (string, error)

	// Close releases terminal state or other resources.
	Close() error
}
