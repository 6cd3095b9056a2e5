// Package linreg fits a simple linear model y = beta0 + beta1*x to paired
// numeric samples using ordinary least squares, and derives
// confidence-interval and goodness-of-fit statistics from the result.
//
// The package is generic over the floating-point element type and built
// from the numerically stable reduction primitives in the stats
// subpackage. Both inputs are mean-centered before the sums of squares
// are formed, which avoids catastrophic cancellation for
// large-magnitude data.
//
// # Basic Usage
//
// Fitting a line and inspecting the result:
//
//	x := []float64{1, 2, 3, 4, 5}
//	y := []float64{2.1, 3.9, 6.2, 8.0, 9.9}
//
//	result, err := linreg.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Formula())  // y = 0.1100 + 1.9700*x
//	fmt.Println(result.RSquared()) // goodness of fit in [0, 1]
//	fmt.Println(result.Predict(6)) // extrapolate along the fitted line
//
// Computing a 95% confidence interval for the slope:
//
//	ci, err := linreg.SlopeConfidenceInterval(result, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("slope in %s with 95%% confidence\n", ci)
//
// # Error Handling
//
// Invalid input never produces a silent zero-valued result. Every entry
// point returns a typed error that can be classified with errors.Is
// against the sentinels in the errs subpackage: mismatched input lengths
// return errs.ErrSizeMismatch, fewer than 3 sample pairs return
// errs.ErrInsufficientData, and an x input with zero variance returns
// errs.ErrDegenerateInput.
//
// # Parallel Reductions
//
// For large inputs the underlying reductions can run data-parallel by
// passing stats options through Fit:
//
//	result, err := linreg.Fit(x, y, stats.WithParallel())
//
// Parallel execution changes results only by floating-point
// reassociation, a few ULPs at most; see the stats package
// documentation.
//
// # Student's t Quantile Source
//
// SlopeConfidenceInterval needs Student's t quantiles. By default they
// come from gonum's distuv package; WithQuantileFunc swaps in any other
// source with the same contract, which keeps the statistical tables out
// of this package and makes the inference layer testable against fixed
// quantiles.
package linreg
