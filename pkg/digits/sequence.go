package digits

import (
	"fmt"
	"strings"

	"github.com/bft-labs/baseconv/internal/domain"
)

// Errors returned by this package. See the domain package for details.
var (
	ErrUnsupportedBase = domain.ErrUnsupportedBase
	ErrInvalidDigit    = domain.ErrInvalidDigit
	ErrNegativeValue   = domain.ErrNegativeValue
)

type (
	// UnsupportedBaseError reports a base outside MinBase..MaxBase.
	UnsupportedBaseError = domain.UnsupportedBaseError

	// InvalidDigitError reports a symbol that is not a digit of the base.
	InvalidDigitError = domain.InvalidDigitError
)

// Sequence is a non-negative number written in a base.
// The zero value is an empty number with base 0.
type Sequence struct {
	// integer holds digit values from the units upward.
	integer []int
	// fractional holds digit values from the first place after the point.
	fractional []int
	base       int
}

// NewSequence builds a Sequence from digit values. integer is ordered from
// the units digit upward and fractional from the first fractional place
// downward. The slices are copied.
func NewSequence(integer, fractional []int, base int) (Sequence, error) {
	if base < MinBase {
		return Sequence{}, &UnsupportedBaseError{Base: base}
	}
	for i, d := range integer {
		if d < 0 || d >= base {
			return Sequence{}, fmt.Errorf("integer digit %d: value %d out of range for base %d: %w", i, d, base, ErrInvalidDigit)
		}
	}
	for i, d := range fractional {
		if d < 0 || d >= base {
			return Sequence{}, fmt.Errorf("fractional digit %d: value %d out of range for base %d: %w", i, d, base, ErrInvalidDigit)
		}
	}
	return Sequence{
		integer:    cloneDigits(integer),
		fractional: cloneDigits(fractional),
		base:       base,
	}, nil
}

// Parse reads text as a number in base. The integer and fractional parts are
// split at the first radix point. Bases up to 37 accept lowercase symbols.
// Empty text is the number zero with no digits, which is also how a zero
// integer part renders.
func Parse(text string, base int) (Sequence, error) {
	if err := domain.CheckBase(base); err != nil {
		return Sequence{}, err
	}
	runes := []rune(text)
	point := len(runes)
	for i, r := range runes {
		if r == RadixPoint {
			point = i
			break
		}
	}

	digitAt := func(pos int) (int, error) {
		r := runes[pos]
		if base <= caseFoldLimit {
			r = foldCase(r)
		}
		v, ok := Value(r)
		if !ok || v >= base {
			return 0, &InvalidDigitError{Char: runes[pos], Pos: pos, Base: base}
		}
		return v, nil
	}

	integer := make([]int, 0, point)
	for i := point - 1; i >= 0; i-- {
		v, err := digitAt(i)
		if err != nil {
			return Sequence{}, err
		}
		integer = append(integer, v)
	}

	var fractional []int
	if point < len(runes) {
		fractional = make([]int, 0, len(runes)-point-1)
		for i := point + 1; i < len(runes); i++ {
			v, err := digitAt(i)
			if err != nil {
				return Sequence{}, err
			}
			fractional = append(fractional, v)
		}
	}

	return Sequence{integer: integer, fractional: fractional, base: base}, nil
}

// Base returns the base the digits are expressed in.
func (s Sequence) Base() int { return s.base }

// IntegerDigits returns a copy of the integer digits, units digit first.
func (s Sequence) IntegerDigits() []int { return cloneDigits(s.integer) }

// FractionalDigits returns a copy of the fractional digits, most significant first.
func (s Sequence) FractionalDigits() []int { return cloneDigits(s.fractional) }

// IsInteger reports whether the number has no fractional digits.
func (s Sequence) IsInteger() bool { return len(s.fractional) == 0 }

// Render writes the number with the symbol alphabet, most significant digit
// first. A radix point is written only when there are fractional digits.
func (s Sequence) Render() (string, error) {
	if err := domain.CheckBase(s.base); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s.integer) + len(s.fractional) + 1)
	for i := len(s.integer) - 1; i >= 0; i-- {
		r, _ := Symbol(s.integer[i])
		b.WriteRune(r)
	}
	if len(s.fractional) > 0 {
		b.WriteRune(RadixPoint)
		for _, d := range s.fractional {
			r, _ := Symbol(d)
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// String implements fmt.Stringer. Numbers in bases without a symbol form are
// printed as digit lists.
func (s Sequence) String() string {
	if text, err := s.Render(); err == nil {
		return text
	}
	integer := make([]int, len(s.integer))
	for i, d := range s.integer {
		integer[len(s.integer)-1-i] = d
	}
	return fmt.Sprintf("%v.%v (base %d)", integer, s.fractional, s.base)
}

func cloneDigits(d []int) []int {
	if len(d) == 0 {
		return nil
	}
	out := make([]int, len(d))
	copy(out, d)
	return out
}
