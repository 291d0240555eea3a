package digits

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// TermPrecision is the number of decimal places each fractional term is
	// rounded to (half up) when summing into the decimal intermediate.
	TermPrecision = 10

	// MaxFractionDigits caps the fractional digits produced by FromDecimal.
	MaxFractionDigits = 10
)

// ToDecimal returns the base-10 value of s. The integer part is exact.
func ToDecimal(s Sequence) decimal.Decimal {
	base := decimal.NewFromInt(int64(s.base))

	result := decimal.Zero
	place := decimal.NewFromInt(1)
	for _, d := range s.integer {
		result = result.Add(decimal.NewFromInt(int64(d)).Mul(place))
		place = place.Mul(base)
	}

	place = base
	for _, d := range s.fractional {
		result = result.Add(decimal.NewFromInt(int64(d)).DivRound(place, TermPrecision))
		place = place.Mul(base)
	}
	return result
}

// FromDecimal expands value into digits of base. A zero integer part gives
// no integer digits. Fractional expansion stops when the remainder is zero or
// after MaxFractionDigits digits.
func FromDecimal(value decimal.Decimal, base int) (Sequence, error) {
	if base < MinBase {
		return Sequence{}, &UnsupportedBaseError{Base: base}
	}
	if value.IsNegative() {
		return Sequence{}, fmt.Errorf("%w: %s", ErrNegativeValue, value)
	}

	whole := value.Floor()

	var integer []int
	n := new(big.Int).Set(whole.BigInt())
	b := big.NewInt(int64(base))
	rem := new(big.Int)
	for n.Sign() != 0 {
		n.QuoRem(n, b, rem)
		integer = append(integer, int(rem.Int64()))
	}

	var fractional []int
	frac := value.Sub(whole)
	bd := decimal.NewFromInt(int64(base))
	for !frac.IsZero() && len(fractional) < MaxFractionDigits {
		product := frac.Mul(bd)
		digit := product.Floor()
		fractional = append(fractional, int(digit.IntPart()))
		frac = product.Sub(digit)
	}

	return Sequence{integer: integer, fractional: fractional, base: base}, nil
}

// ConvertBase re-expresses s in base via its decimal value.
func ConvertBase(s Sequence, base int) (Sequence, error) {
	return FromDecimal(ToDecimal(s), base)
}
