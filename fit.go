package linreg

import (
	"fmt"
	"math"

	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/stats"
)

// minFitSamples is the smallest number of sample pairs a fit accepts.
// Two points always produce a perfect, meaningless line; three is the
// minimum for the residual to carry information.
const minFitSamples = 3

// Fit computes the ordinary least-squares fit of y = beta0 + beta1*x to
// the given sample pairs.
//
// Both inputs are mean-centered before the sums of squares and cross
// products are formed; the sums themselves are computed with the
// reduction primitives of the stats package. The residual sum of squares
// is accumulated in a single fused pass over the original, uncentered
// inputs so it reflects the fitted line exactly.
//
// Parameters:
//   - x: Independent variable samples, length >= 3
//   - y: Dependent variable samples, same length as x
//   - opts: Optional execution-strategy options forwarded to the
//     underlying reductions (see stats.WithParallel)
//
// Returns:
//   - *FitResult[T]: The fitted coefficients and deviation sums
//   - error: errs.ErrSizeMismatch if the lengths differ,
//     errs.ErrInsufficientData if fewer than 3 pairs are given,
//     errs.ErrDegenerateInput if all x values are identical
//
// Example:
//
//	result, err := linreg.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("slope %.4f, intercept %.4f\n", result.Beta1, result.Beta0)
func Fit[T stats.Float](x, y []T, opts ...stats.Option) (*FitResult[T], error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x and y must have equal length, got %d and %d",
			errs.ErrSizeMismatch, len(x), len(y))
	}
	if len(x) < minFitSamples {
		return nil, fmt.Errorf("%w: a fit needs at least %d sample pairs, got %d",
			errs.ErrInsufficientData, minFitSamples, len(x))
	}

	x0, err := stats.Center(x, opts...)
	if err != nil {
		return nil, err
	}
	y0, err := stats.Center(y, opts...)
	if err != nil {
		return nil, err
	}

	sxx, err := stats.DotProduct(x0, x0, opts...)
	if err != nil {
		return nil, err
	}
	if sxx == 0 {
		return nil, fmt.Errorf("%w: all x values are identical, no slope definable",
			errs.ErrDegenerateInput)
	}

	syy, err := stats.DotProduct(y0, y0, opts...)
	if err != nil {
		return nil, err
	}
	sxy, err := stats.DotProduct(x0, y0, opts...)
	if err != nil {
		return nil, err
	}

	meanX, err := stats.Mean(x, opts...)
	if err != nil {
		return nil, err
	}
	meanY, err := stats.Mean(y, opts...)
	if err != nil {
		return nil, err
	}

	beta1 := sxy / sxx
	beta0 := meanY - beta1*meanX
	rho := sxy / T(math.Sqrt(float64(sxx)*float64(syy)))

	// Fused residual reduction over the original inputs.
	var sse T
	for i, xi := range x {
		resid := y[i] - (beta0 + beta1*xi)
		sse += resid * resid
	}

	return &FitResult[T]{
		Beta0: beta0,
		Beta1: beta1,
		Rho:   rho,
		Sxx:   sxx,
		Syy:   syy,
		Sxy:   sxy,
		SSE:   sse,
		N:     len(x),
	}, nil
}
