// Package terminal provides LineReader adapters for interactive terminals
// and piped input.
package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/bft-labs/baseconv/internal/ports"
)

// Prompt is shown in front of every interactive input line.
const Prompt = "> "

// ReadlineConfig configures a ReadlineReader.
type ReadlineConfig struct {
	// HistoryFile persists input history across runs. Empty disables it.
	HistoryFile string
	// Completions are offered on tab, typically the session commands.
	Completions []string
	// Stdin and Stdout default to the process terminal.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// ReadlineReader implements ports.LineReader with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadline creates a ReadlineReader.
func NewReadline(cfg ReadlineConfig) (*ReadlineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Completions))
	for _, c := range cfg.Completions {
		items = append(items, readline.PcItem(c))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine reads one edited line. Ctrl-C yields ports.ErrInterrupt and
// Ctrl-D io.EOF.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	return line, translate(err)
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

func translate(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return ports.ErrInterrupt
	}
	return err
}
