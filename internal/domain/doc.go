// Package domain contains the error vocabulary shared by the baseconv
// packages.
//
// It has no dependencies on infrastructure concerns (terminal, logging,
// configuration) so that both the digit model and the interactive session
// can report failures in the same terms.
//
// # Errors
//
// Sentinel errors are matched with errors.Is:
//   - [ErrUnsupportedBase]: a base outside [MinBase]..[MaxBase]
//   - [ErrInvalidDigit]: a symbol that is not a digit of the base
//   - [ErrMalformedCommand]: a base pair line that is not two integers
//   - [ErrEmptyNumber], [ErrNegativeValue]
//
// The typed errors [UnsupportedBaseError], [InvalidDigitError] and
// [CommandError] carry the offending input and unwrap to their sentinel.
package domain
