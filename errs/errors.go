// Package errs defines the sentinel errors returned by the linreg library.
//
// All errors are defined as package-level sentinel values so that callers
// can classify failures with errors.Is regardless of the contextual
// message wrapped around them at the failure site:
//
//	result, err := linreg.Fit(x, y)
//	if errors.Is(err, errs.ErrDegenerateInput) {
//	    // all x values identical, no slope definable
//	}
package errs

import "errors"

var (
	// ErrEmptyInput indicates that a reduction received a zero-length input.
	ErrEmptyInput = errors.New("empty input")

	// ErrSizeMismatch indicates that two sequences expected to have equal
	// length do not.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrInsufficientData indicates fewer data points than the minimum the
	// operation requires (a fit needs at least 3 pairs, a confidence
	// interval needs positive degrees of freedom, a dot product needs at
	// least 2 elements).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput indicates input that satisfies the size
	// requirements but is numerically degenerate (zero variance in x).
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidConfidence indicates a confidence level alpha outside the
	// open interval (0, 1).
	ErrInvalidConfidence = errors.New("invalid confidence level")

	// ErrInvalidQuantile indicates an invalid argument passed to the
	// Student's t quantile function: a probability outside (0, 1) or a
	// non-positive degrees of freedom.
	ErrInvalidQuantile = errors.New("invalid quantile argument")
)
