package baseconv

import (
	"fmt"

	"github.com/bft-labs/baseconv/internal/domain"
	"github.com/bft-labs/baseconv/pkg/digits"
	"github.com/bft-labs/baseconv/pkg/format"
	"github.com/bft-labs/baseconv/pkg/log"
)

// Errors returned by Converter. They can be checked with errors.Is.
var (
	ErrUnsupportedBase = domain.ErrUnsupportedBase
	ErrInvalidDigit    = domain.ErrInvalidDigit
	ErrEmptyNumber     = domain.ErrEmptyNumber
)

// Result is the outcome of one conversion.
type Result struct {
	// Input is the text as given.
	Input string
	// Source is the parsed input.
	Source digits.Sequence
	// Target is the same number in the target base.
	Target digits.Sequence
	// Rendered is Target written with the symbol alphabet.
	Rendered string
	// Formatted is Rendered prepared for display.
	Formatted string
}

// Converter converts number text between bases. It holds no state between
// calls and is safe for concurrent use if its logger is.
type Converter struct {
	logger log.Logger
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{logger: o.logger}
}

// Convert reads text in base from and writes it in base to. The display form
// shows format.FractionWidth fractional symbols whenever text had a radix point or
// the result has fractional digits.
func (c *Converter) Convert(text string, from, to int) (Result, error) {
	if err := domain.CheckBase(from); err != nil {
		return Result{}, fmt.Errorf("source %w", err)
	}
	if err := domain.CheckBase(to); err != nil {
		return Result{}, fmt.Errorf("target %w", err)
	}
	if text == "" {
		return Result{}, ErrEmptyNumber
	}

	src, err := digits.Parse(text, from)
	if err != nil {
		c.logger.Warn("parse failed", log.String("input", text), log.Base("from", from), log.Err(err))
		return Result{}, err
	}

	dst, err := digits.ConvertBase(src, to)
	if err != nil {
		return Result{}, fmt.Errorf("convert to base %d: %w", to, err)
	}

	rendered, err := dst.Render()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Input:     text,
		Source:    src,
		Target:    dst,
		Rendered:  rendered,
		Formatted: format.Conversion(rendered, format.HasPoint(text)),
	}

	c.logger.Debug("converted",
		log.String("input", text),
		log.Base("from", from),
		log.Base("to", to),
		log.DigitCount("integer_digits", dst.IntegerDigits()),
		log.DigitCount("fractional_digits", dst.FractionalDigits()),
		log.String("result", res.Formatted),
	)
	return res, nil
}

// Table converts text from base from into each base in targets, in order.
// It stops at the first failure.
func (c *Converter) Table(text string, from int, targets []int) ([]Result, error) {
	results := make([]Result, 0, len(targets))
	for _, to := range targets {
		res, err := c.Convert(text, from, to)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
