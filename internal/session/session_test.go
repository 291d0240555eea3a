package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/baseconv/internal/domain"
	"github.com/bft-labs/baseconv/internal/ports"
	"github.com/bft-labs/baseconv/pkg/log"
)

type step struct {
	line string
	err  error
}

// scriptReader replays steps and then reports io.EOF.
type scriptReader struct {
	steps  []step
	reads  int
	closed bool
}

func lines(ls ...string) *scriptReader {
	r := &scriptReader{}
	for _, l := range ls {
		r.steps = append(r.steps, step{line: l})
	}
	return r
}

func (r *scriptReader) ReadLine() (string, error) {
	if r.reads >= len(r.steps) {
		return "", io.EOF
	}
	s := r.steps[r.reads]
	r.reads++
	return s.line, s.err
}

func (r *scriptReader) Close() error {
	r.closed = true
	return nil
}

func run(t *testing.T, reader ports.LineReader, quiet bool) (string, error) {
	t.Helper()
	var out bytes.Buffer
	s, err := New(Config{Reader: reader, Out: &out, Quiet: quiet})
	require.NoError(t, err)
	err = s.Run(context.Background())
	return out.String(), err
}

func TestSession_Transcript(t *testing.T) {
	out, err := run(t, lines("10 2", "10", "0.1", "/back", "16 10", "FF", "/back", "/exit"), false)
	require.NoError(t, err)

	want := "" +
		"Enter two numbers in format: {source base} {target base} (To quit type /exit)\n" +
		"Enter number in base 10 to convert to base 2 (To go back type /back)\n" +
		"Conversion result: 1010\n" +
		"Enter number in base 10 to convert to base 2 (To go back type /back)\n" +
		"Conversion result: .00011\n" +
		"Enter number in base 10 to convert to base 2 (To go back type /back)\n" +
		"Enter two numbers in format: {source base} {target base} (To quit type /exit)\n" +
		"Enter number in base 16 to convert to base 10 (To go back type /back)\n" +
		"Conversion result: 255\n" +
		"Enter number in base 16 to convert to base 10 (To go back type /back)\n" +
		"Enter two numbers in format: {source base} {target base} (To quit type /exit)\n"
	assert.Equal(t, want, out)
}

func TestSession_ErrorsKeepLoopAlive(t *testing.T) {
	reader := lines("abc", "10", "1 99", "2 10", "12", "11", "/back", "/exit", "10 10")
	out, err := run(t, reader, true)
	require.NoError(t, err)

	want := "" +
		"Error: expected \"{source base} {target base}\", got \"abc\"\n" +
		"Error: expected \"{source base} {target base}\", got \"10\"\n" +
		"Error: source base 1 is not supported (must be between 2 and 64)\n" +
		"Error: invalid digit '2' at position 1 for base 2\n" +
		"Conversion result: 3\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 8, reader.reads, "lines after /exit are not read")
}

func TestSession_BlankLinesIgnored(t *testing.T) {
	out, err := run(t, lines("", "  ", "8 10", "", " 17 ", "/back", "/exit"), true)
	require.NoError(t, err)
	assert.Equal(t, "Conversion result: 15\n", out)
}

func TestSession_EndOfInput(t *testing.T) {
	out, err := run(t, lines("10 16", "255"), true)
	require.NoError(t, err)
	assert.Equal(t, "Conversion result: FF\n", out)

	out, err = run(t, lines(), true)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSession_Interrupt(t *testing.T) {
	reader := &scriptReader{steps: []step{
		{line: "10 2"},
		{line: "3"},
		{err: ports.ErrInterrupt},
		{line: "2 10"},
		{line: "101"},
		{err: ports.ErrInterrupt},
		{err: ports.ErrInterrupt},
		{line: "10 10"},
	}}
	out, err := run(t, reader, true)
	require.NoError(t, err)
	assert.Equal(t, "Conversion result: 11\nConversion result: 5\n", out)
	assert.Equal(t, 7, reader.reads)
}

func TestSession_ReaderFailure(t *testing.T) {
	boom := errors.New("tty gone")
	reader := &scriptReader{steps: []step{{line: "10 2"}, {err: boom}}}
	_, err := run(t, reader, true)
	require.ErrorIs(t, err, boom)
}

func TestSession_CancelledContext(t *testing.T) {
	reader := lines("10 2", "5")
	var out bytes.Buffer
	s, err := New(Config{Reader: reader, Out: &out, Quiet: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))
	assert.Zero(t, reader.reads)
}

func TestSession_SeparateErrorWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	s, err := New(Config{Reader: lines("x y", "10 2", "9", "/back", "/exit"), Out: &out, ErrOut: &errOut, Quiet: true})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "Conversion result: 1001\n", out.String())
	assert.Contains(t, errOut.String(), `got "x y"`)
}

type fieldLogger struct {
	fields map[string][]log.Field
}

func (l *fieldLogger) record(msg string, fields []log.Field) {
	if l.fields == nil {
		l.fields = map[string][]log.Field{}
	}
	l.fields[msg] = fields
}

func (l *fieldLogger) Debug(msg string, fields ...log.Field) { l.record(msg, fields) }
func (l *fieldLogger) Info(msg string, fields ...log.Field)  { l.record(msg, fields) }
func (l *fieldLogger) Warn(msg string, fields ...log.Field)  { l.record(msg, fields) }
func (l *fieldLogger) Error(msg string, fields ...log.Field) { l.record(msg, fields) }

func TestSession_LogsStart(t *testing.T) {
	logger := &fieldLogger{}
	s, err := New(Config{Reader: lines("/exit"), Out: &bytes.Buffer{}, Logger: logger, Quiet: true})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	require.Contains(t, logger.fields, "session started")
	assert.Equal(t, []log.Field{{Key: "quiet", Value: true}}, logger.fields["session started"])
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Out: &bytes.Buffer{}})
	assert.Error(t, err)
	_, err = New(Config{Reader: lines()})
	assert.Error(t, err)
}

func TestParseBases(t *testing.T) {
	from, to, err := ParseBases("10 16")
	require.NoError(t, err)
	assert.Equal(t, 10, from)
	assert.Equal(t, 16, to)

	from, to, err = ParseBases("  2\t64 ")
	require.NoError(t, err)
	assert.Equal(t, 2, from)
	assert.Equal(t, 64, to)

	for _, line := range []string{"", "10", "10 16 2", "ten 16", "10 0x10", "1.5 2"} {
		_, _, err := ParseBases(line)
		assert.ErrorIs(t, err, domain.ErrMalformedCommand, "line %q", line)
	}

	_, _, err = ParseBases("10 65")
	assert.ErrorIs(t, err, domain.ErrUnsupportedBase)
}
