package digits

import "github.com/bft-labs/baseconv/internal/domain"

// Symbols is the digit alphabet, ordered by digit value.
const Symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZÑabcdefghijklmnopqrstuvwxyzñ"

// RadixPoint separates integer and fractional digits.
const RadixPoint = '.'

// Bases up to caseFoldLimit only use digits and uppercase symbols.
const caseFoldLimit = 37

// Supported base range for parsing and rendering.
const (
	MinBase = domain.MinBase
	MaxBase = domain.MaxBase
)

// Symbol returns the symbol for digit value v.
func Symbol(v int) (rune, bool) {
	switch {
	case v < 0:
		return 0, false
	case v < 10:
		return rune('0' + v), true
	case v < 36:
		return rune('A' + v - 10), true
	case v == 36:
		return 'Ñ', true
	case v < 63:
		return rune('a' + v - 37), true
	case v == 63:
		return 'ñ', true
	}
	return 0, false
}

// Value returns the digit value of symbol r.
func Value(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	case r == 'Ñ':
		return 36, true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 37, true
	case r == 'ñ':
		return 63, true
	}
	return -1, false
}

// foldCase maps lowercase alphabet symbols to their uppercase symbol.
// Runes outside the alphabet are returned unchanged.
func foldCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A'
	case r == 'ñ':
		return 'Ñ'
	}
	return r
}
