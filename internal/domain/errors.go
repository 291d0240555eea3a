package domain

import (
	"errors"
	"fmt"
)

// Supported range for symbol representations of a number.
const (
	MinBase = 2
	MaxBase = 64
)

// Domain errors represent error conditions in the baseconv domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrUnsupportedBase is returned when a base outside MinBase..MaxBase is
	// used for parsing or rendering.
	ErrUnsupportedBase = errors.New("baseconv: unsupported base")

	// ErrInvalidDigit is returned when a symbol is not part of the alphabet
	// or its value does not fit the base.
	ErrInvalidDigit = errors.New("baseconv: invalid digit")

	// ErrMalformedCommand is returned when a base pair line cannot be parsed.
	ErrMalformedCommand = errors.New("baseconv: malformed command")

	// ErrEmptyNumber is returned when there is nothing to parse.
	ErrEmptyNumber = errors.New("baseconv: empty number")

	// ErrNegativeValue is returned when a negative decimal is converted.
	ErrNegativeValue = errors.New("baseconv: negative value")
)

// UnsupportedBaseError reports the base that was rejected.
type UnsupportedBaseError struct {
	Base int
}

func (e *UnsupportedBaseError) Error() string {
	return fmt.Sprintf("base %d is not supported (must be between %d and %d)", e.Base, MinBase, MaxBase)
}

func (e *UnsupportedBaseError) Unwrap() error { return ErrUnsupportedBase }

// InvalidDigitError reports a symbol that cannot be a digit in Base.
// Pos is the rune index of Char in the parsed text.
type InvalidDigitError struct {
	Char rune
	Pos  int
	Base int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d for base %d", e.Char, e.Pos, e.Base)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// CommandError reports a base pair line that is not two integers.
type CommandError struct {
	Line string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("expected \"{source base} {target base}\", got %q", e.Line)
}

func (e *CommandError) Unwrap() error { return ErrMalformedCommand }

// CheckBase returns an *UnsupportedBaseError if base is outside MinBase..MaxBase.
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &UnsupportedBaseError{Base: base}
	}
	return nil
}
