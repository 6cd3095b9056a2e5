package linreg

import (
	"fmt"

	"github.com/arloliu/linreg/stats"
)

// FitResult holds the outcome of an ordinary least-squares fit.
//
// A FitResult is created exactly once by Fit and never mutated
// afterwards; it is safe to share between goroutines.
//
// Fields:
//   - Beta0, Beta1: Intercept and slope of the fitted line y = Beta0 + Beta1*x
//   - Rho: Pearson correlation coefficient, in [-1, 1]
//   - Sxx, Syy, Sxy: Sums of squared/cross deviations from the means
//   - SSE: Sum of squared residuals between observed and fitted y
//   - N: Number of sample pairs used for the fit
type FitResult[T stats.Float] struct {
	// Beta0 is the intercept of the fitted line.
	Beta0 T
	// Beta1 is the slope of the fitted line.
	Beta1 T
	// Rho is the Pearson correlation coefficient.
	Rho T
	// Sxx is the sum of squared deviations of x from its mean.
	Sxx T
	// Syy is the sum of squared deviations of y from its mean.
	Syy T
	// Sxy is the sum of cross deviations of x and y from their means.
	Sxy T
	// SSE is the sum of squared residuals.
	SSE T
	// N is the number of sample pairs.
	N int
}

// Predict evaluates the fitted line at x.
func (r *FitResult[T]) Predict(x T) T {
	return r.Beta0 + r.Beta1*x
}

// RSquared returns the coefficient of determination, the proportion of
// variance in y explained by the fitted line. It equals Rho squared and
// lies in [0, 1].
func (r *FitResult[T]) RSquared() T {
	return r.Rho * r.Rho
}

// Formula returns a human-readable representation of the fitted line.
func (r *FitResult[T]) Formula() string {
	return fmt.Sprintf("y = %.4f + %.4f*x", r.Beta0, r.Beta1)
}

// String returns a string representation of the fit result.
func (r *FitResult[T]) String() string {
	return fmt.Sprintf("FitResult{N: %d, R²: %.4f, Formula: %s}",
		r.N, r.RSquared(), r.Formula())
}
