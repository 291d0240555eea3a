// Package baseconv converts numbers written in one base to another and
// formats the result for display.
//
// It wires the digit model in package digits to the display rules in
// package format and is what the baseconv CLI calls for every line a user
// enters. It can be embedded directly:
//
//	conv := baseconv.New()
//	res, err := conv.Convert("ff.8", 16, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Formatted) // 11111111.10000
//
// # Errors
//
// Failures are local to a call and can be inspected with errors.Is:
// [ErrUnsupportedBase] for bases outside 2..64, [ErrInvalidDigit] for
// symbols that are not digits of the source base and [ErrEmptyNumber] for
// empty input.
//
// # Dependency Injection
//
// Pass a logger to see each conversion at debug level:
//
//	conv := baseconv.New(baseconv.WithLogger(logger))
package baseconv
