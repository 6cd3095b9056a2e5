package linreg

import (
	"fmt"
	"math"

	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/stats"
)

// Interval is a closed confidence interval [Lower, Upper].
type Interval[T stats.Float] struct {
	// Lower is the lower confidence bound.
	Lower T
	// Upper is the upper confidence bound.
	Upper T
}

// Width returns the width of the interval.
func (iv Interval[T]) Width() T {
	return iv.Upper - iv.Lower
}

// Contains reports whether v lies inside the interval.
func (iv Interval[T]) Contains(v T) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// String returns a string representation of the interval.
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%.6g, %.6g]", iv.Lower, iv.Upper)
}

// SlopeConfidenceInterval computes the two-sided confidence interval for
// the slope of a fitted line at confidence level 1-alpha.
//
// The standard error of the slope is derived from the deviation sums of
// the fit, and the interval half-width is the Student's t quantile at
// probability 1-alpha/2 with N-2 degrees of freedom times that standard
// error. The quantile comes from the configured quantile source (gonum
// by default, see WithQuantileFunc).
//
// Parameters:
//   - r: A fit result produced by Fit
//   - alpha: Significance level in (0, 1); 0.05 yields a 95% interval
//   - opts: Optional settings (see WithQuantileFunc)
//
// Returns:
//   - Interval[T]: The confidence interval, always containing Beta1
//   - error: errs.ErrInvalidConfidence if alpha is outside (0, 1),
//     errs.ErrInsufficientData if the fit has no positive degrees of
//     freedom, or any error from the quantile source, unchanged
func SlopeConfidenceInterval[T stats.Float](r *FitResult[T], alpha float64, opts ...CIOption) (Interval[T], error) {
	cfg, err := newCIConfig(opts...)
	if err != nil {
		return Interval[T]{}, err
	}

	if alpha <= 0 || alpha >= 1 {
		return Interval[T]{}, fmt.Errorf("%w: alpha %v is outside (0, 1)",
			errs.ErrInvalidConfidence, alpha)
	}

	dof := r.N - 2
	if dof <= 0 {
		return Interval[T]{}, fmt.Errorf("%w: a confidence interval needs more than 2 samples, got %d",
			errs.ErrInsufficientData, r.N)
	}

	// scale*(1-Beta1²/scale) equals SSE up to rounding; do not fold
	// this into SSE/dof, the exact evaluation order matters here.
	scale := r.Syy / r.Sxx
	se := T(math.Sqrt(float64(scale*(1-r.Beta1*r.Beta1/scale)) / float64(dof)))

	t, err := cfg.quantile(1-alpha/2, float64(dof))
	if err != nil {
		return Interval[T]{}, err
	}

	k := T(t) * se

	return Interval[T]{Lower: r.Beta1 - k, Upper: r.Beta1 + k}, nil
}
