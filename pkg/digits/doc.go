// Package digits represents numbers as digit sequences in an arbitrary base
// and converts them between bases.
//
// A [Sequence] holds the digit values of a non-negative number split at the
// radix point: integer digits from the units upward and fractional digits
// from the first place after the point downward. Sequences are values;
// nothing mutates them after construction.
//
// # Symbols
//
// Bases 2 through 64 have a printable form using the alphabet
//
//	0-9 A-Z Ñ a-z ñ
//
// where a symbol's index is its digit value. Up to base 37 the alphabet has
// no lowercase symbols, so [Parse] folds input to uppercase there.
//
// # Conversion
//
// Every conversion goes through a base-10 decimal intermediate:
//
//	seq, err := digits.Parse("FF.8", 16)
//	if err != nil {
//	    return err
//	}
//	bin, err := digits.ConvertBase(seq, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(bin) // 11111111.1
//
// Integer parts convert exactly. Fractional parts are accumulated with
// [TermPrecision] decimal places per term and re-expanded to at most
// [MaxFractionDigits] digits, so repeating expansions are cut off.
package digits
