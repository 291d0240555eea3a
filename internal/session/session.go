// Package session runs the interactive conversion loop.
//
// The outer loop asks for a "{source base} {target base}" pair, the inner
// loop converts numbers between that pair until the user goes back. Errors
// are reported and the loop carries on; only exhausted or failing input ends
// a session early.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/baseconv/internal/domain"
	"github.com/bft-labs/baseconv/internal/ports"
	"github.com/bft-labs/baseconv/pkg/baseconv"
	"github.com/bft-labs/baseconv/pkg/log"
)

// Commands recognized by the session.
const (
	CmdExit = "/exit"
	CmdBack = "/back"
)

const (
	basesPrompt  = "Enter two numbers in format: {source base} {target base} (To quit type " + CmdExit + ")"
	numberPrompt = "Enter number in base %d to convert to base %d (To go back type " + CmdBack + ")"
	resultFormat = "Conversion result: %s\n"
	errorFormat  = "Error: %v\n"
)

// Config holds the collaborators of a Session.
type Config struct {
	// Reader supplies input lines. Required.
	Reader ports.LineReader
	// Out receives prompts and results. Required.
	Out io.Writer
	// ErrOut receives error reports. Defaults to Out.
	ErrOut io.Writer
	// Converter performs conversions. Defaults to baseconv.New().
	Converter *baseconv.Converter
	// Logger defaults to a no-op logger.
	Logger log.Logger
	// Quiet suppresses prompts.
	Quiet bool
}

// Session is one run of the read loop.
type Session struct {
	reader ports.LineReader
	out    io.Writer
	errOut io.Writer
	conv   *baseconv.Converter
	logger log.Logger
	quiet  bool
}

// New validates cfg and creates a Session.
func New(cfg Config) (*Session, error) {
	if cfg.Reader == nil {
		return nil, errors.New("session: reader is required")
	}
	if cfg.Out == nil {
		return nil, errors.New("session: output writer is required")
	}
	s := &Session{
		reader: cfg.Reader,
		out:    cfg.Out,
		errOut: cfg.ErrOut,
		conv:   cfg.Converter,
		logger: cfg.Logger,
		quiet:  cfg.Quiet,
	}
	if s.errOut == nil {
		s.errOut = s.out
	}
	if s.conv == nil {
		s.conv = baseconv.New(baseconv.WithLogger(cfg.Logger))
	}
	if s.logger == nil {
		s.logger = log.NewNoopLogger()
	}
	return s, nil
}

type input int

const (
	inputLine input = iota
	inputInterrupt
	inputEnd
)

// Run reads and answers input until the user exits, input ends or ctx is
// cancelled. It returns an error only when reading input fails.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started", log.Bool("quiet", s.quiet))
	for {
		line, in, err := s.next(ctx, basesPrompt)
		if err != nil || in != inputLine || line == CmdExit {
			return err
		}

		from, to, err := ParseBases(line)
		if err != nil {
			s.logger.Warn("rejected base pair", log.String("line", line), log.Err(err))
			s.report(err)
			continue
		}
		s.logger.Debug("base pair selected", log.Base("from", from), log.Base("to", to))

		back, err := s.convertLoop(ctx, from, to)
		if err != nil || !back {
			return err
		}
	}
}

// convertLoop answers numbers for one base pair. It reports true when the user
// asked to return to base selection.
func (s *Session) convertLoop(ctx context.Context, from, to int) (bool, error) {
	prompt := fmt.Sprintf(numberPrompt, from, to)
	for {
		line, in, err := s.next(ctx, prompt)
		switch {
		case err != nil:
			return false, err
		case in == inputInterrupt:
			return true, nil
		case in == inputEnd:
			return false, nil
		case line == CmdBack:
			return true, nil
		}

		res, err := s.conv.Convert(line, from, to)
		if err != nil {
			s.report(err)
			continue
		}
		fmt.Fprintf(s.out, resultFormat, res.Formatted)
	}
}

// next shows prompt and returns the next non-blank line.
func (s *Session) next(ctx context.Context, prompt string) (string, input, error) {
	if !s.quiet {
		fmt.Fprintln(s.out, prompt)
	}
	for {
		if ctx.Err() != nil {
			return "", inputEnd, nil
		}
		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, ports.ErrInterrupt):
			return "", inputInterrupt, nil
		case errors.Is(err, io.EOF):
			return "", inputEnd, nil
		case err != nil:
			return "", inputEnd, fmt.Errorf("read input: %w", err)
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, inputLine, nil
		}
	}
}

func (s *Session) report(err error) {
	fmt.Fprintf(s.errOut, errorFormat, err)
}

// ParseBases parses a "{source base} {target base}" line. Malformed lines
// return a *domain.CommandError, bases outside 2..64 an
// *domain.UnsupportedBaseError.
func ParseBases(line string) (from, to int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &domain.CommandError{Line: line}
	}
	from, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, &domain.CommandError{Line: line}
	}
	to, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, &domain.CommandError{Line: line}
	}
	if err := domain.CheckBase(from); err != nil {
		return 0, 0, fmt.Errorf("source %w", err)
	}
	if err := domain.CheckBase(to); err != nil {
		return 0, 0, fmt.Errorf("target %w", err)
	}
	return from, to, nil
}
