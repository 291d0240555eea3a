package digits

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		text string
		base int
		want string
	}{
		{"FF", 16, "255"},
		{"1010", 2, "10"},
		{"0.1", 2, "0.5"},
		{"0.01", 2, "0.25"},
		{"10.1", 3, "3.3333333333"},
		{"0.2", 3, "0.6666666667"},
		{"ñ", 64, "63"},
		{"10", 64, "64"},
		{"FF.8", 16, "255.5"},
		{"", 10, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			seq, err := Parse(tt.text, tt.base)
			require.NoError(t, err)
			got := ToDecimal(seq)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "ToDecimal(%q, %d) = %s, want %s", tt.text, tt.base, got, want)
		})
	}
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		base       int
		integer    []int
		fractional []int
	}{
		{name: "hex", value: "255", base: 16, integer: []int{15, 15}},
		{name: "binary", value: "10", base: 2, integer: []int{0, 1, 0, 1}},
		{name: "zero", value: "0", base: 2},
		{name: "zero integer part", value: "0.5", base: 2, fractional: []int{1}},
		{name: "terminating fraction", value: "2.75", base: 4, integer: []int{2}, fractional: []int{3}},
		{name: "repeating fraction capped", value: "0.1", base: 2, fractional: []int{0, 0, 0, 1, 1, 0, 0, 1, 1, 0}},
		{name: "base above symbol range", value: "12345", base: 100, integer: []int{45, 23, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := FromDecimal(decimal.RequireFromString(tt.value), tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.base, seq.Base())
			assertDigits(t, tt.integer, seq.IntegerDigits())
			assertDigits(t, tt.fractional, seq.FractionalDigits())
		})
	}
}

func TestFromDecimal_Errors(t *testing.T) {
	_, err := FromDecimal(decimal.NewFromInt(-5), 10)
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = FromDecimal(decimal.NewFromInt(5), 1)
	assert.ErrorIs(t, err, ErrUnsupportedBase)

	_, err = FromDecimal(decimal.NewFromInt(5), 0)
	assert.ErrorIs(t, err, ErrUnsupportedBase)
}

func TestFromDecimal_FractionCap(t *testing.T) {
	values := []string{"0.1", "0.3333333333", "0.7", "12.0123456789", "0.9999999999"}
	for _, v := range values {
		for base := MinBase; base <= MaxBase; base++ {
			seq, err := FromDecimal(decimal.RequireFromString(v), base)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(seq.FractionalDigits()), MaxFractionDigits, "value %s base %d", v, base)
		}
	}
}

func TestConvertBase_Scenarios(t *testing.T) {
	tests := []struct {
		text string
		from int
		to   int
		want string
	}{
		{"255", 10, 16, "FF"},
		{"10", 10, 2, "1010"},
		{"0.1", 10, 2, ".0001100110"},
		{"FF.8", 16, 2, "11111111.1"},
		{"ff", 16, 10, "255"},
		{"63", 10, 64, "ñ"},
		{"64", 10, 64, "10"},
		{"36", 10, 37, "Ñ"},
		{"zz", 36, 10, "1295"},
		{"0.5", 10, 3, ".1111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			seq, err := Parse(tt.text, tt.from)
			require.NoError(t, err)
			out, err := ConvertBase(seq, tt.to)
			require.NoError(t, err)
			got, err := out.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertBase_SameBaseIdentity(t *testing.T) {
	tests := []struct {
		text string
		base int
	}{
		{"12.5", 10},
		{"FF.8", 16},
		{"0.0001100110", 2},
		{"Zz9ñ", 64},
		{"1295", 10},
	}

	for _, tt := range tests {
		seq, err := Parse(tt.text, tt.base)
		require.NoError(t, err)
		same, err := ConvertBase(seq, tt.base)
		require.NoError(t, err)
		assert.True(t, ToDecimal(seq).Equal(ToDecimal(same)), "%s base %d: %s != %s", tt.text, tt.base, ToDecimal(seq), ToDecimal(same))
	}
}

func TestConvertBase_IntegerRoundTrip(t *testing.T) {
	values := []string{"0", "1", "2", "63", "64", "255", "1000", "123456789", "98765432109876543210123456789"}
	bases := []int{2, 3, 7, 8, 10, 16, 36, 37, 38, 62, 63, 64}

	for _, v := range values {
		n := decimal.RequireFromString(v)
		for _, b1 := range bases {
			inB1, err := FromDecimal(n, b1)
			require.NoError(t, err)
			text, err := inB1.Render()
			require.NoError(t, err)
			parsed, err := Parse(text, b1)
			require.NoError(t, err)

			for _, b2 := range bases {
				inB2, err := FromDecimal(ToDecimal(parsed), b2)
				require.NoError(t, err)
				got := ToDecimal(inB2)
				assert.True(t, n.Equal(got), "%s via base %d and %d = %s", v, b1, b2, got)
			}
		}
	}
}
