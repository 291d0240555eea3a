// Package format prepares conversion results for display.
package format

import "strings"

// FractionWidth is the number of fractional symbols shown when a result has
// a radix point.
const FractionWidth = 5

const point = "."

// HasPoint reports whether text contains a radix point.
func HasPoint(text string) bool {
	return strings.Contains(text, point)
}

// Conversion formats a rendered number for display. If forcePoint is set the
// result always has a radix point. When a point is present the fractional
// part is padded with zeros or truncated to exactly FractionWidth symbols.
func Conversion(rendered string, forcePoint bool) string {
	intPart, fracPart, found := strings.Cut(rendered, point)
	if !found && !forcePoint {
		return rendered
	}

	frac := []rune(fracPart)
	if len(frac) > FractionWidth {
		frac = frac[:FractionWidth]
	}
	return intPart + point + string(frac) + strings.Repeat("0", FractionWidth-len(frac))
}
