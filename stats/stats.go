package stats

import (
	"fmt"

	"github.com/arloliu/linreg/errs"
)

// Float is the constraint satisfied by the floating-point element types
// the reduction primitives operate on.
type Float interface {
	~float32 | ~float64
}

// Mean calculates the arithmetic mean of data.
//
// The mean is computed as a single associative sum reduction divided by
// the element count. The accumulation order is unspecified when the
// parallel strategy is selected, but the result is deterministic up to
// floating-point rounding regardless of strategy.
//
// Parameters:
//   - data: Non-empty slice of floating-point values
//   - opts: Optional execution-strategy options (see WithParallel)
//
// Returns:
//   - T: The arithmetic mean of data
//   - error: errs.ErrEmptyInput if data has zero length
func Mean[T Float](data []T, opts ...Option) (T, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return 0, err
	}

	return meanWithConfig(data, cfg)
}

// meanWithConfig is the shared implementation behind Mean and Center.
func meanWithConfig[T Float](data []T, cfg *Config) (T, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: mean of a zero-length input is undefined", errs.ErrEmptyInput)
	}

	var sum T
	if cfg.useParallel(len(data)) {
		sum = parallelSum(data, cfg.workers)
	} else {
		for _, v := range data {
			sum += v
		}
	}

	return sum / T(len(data)), nil
}

// Center returns a new slice in which every element of data has the mean
// of data subtracted.
//
// The input is never modified. Postcondition: the mean of the returned
// slice is numerically zero, within a few ULPs of T under the sequential
// strategy and slightly looser under parallel summation.
//
// Parameters:
//   - data: Non-empty slice of floating-point values
//   - opts: Optional execution-strategy options (see WithParallel)
//
// Returns:
//   - []T: A freshly allocated mean-centered copy of data
//   - error: errs.ErrEmptyInput if data has zero length
func Center[T Float](data []T, opts ...Option) ([]T, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	m, err := meanWithConfig(data, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(data))
	if cfg.useParallel(len(data)) {
		parallelShift(out, data, m, cfg.workers)
	} else {
		for i, v := range data {
			out[i] = v - m
		}
	}

	return out, nil
}

// DotProduct calculates the sum of elementwise products of a and b.
//
// DotProduct is commutative and doubles as the sum-of-squares primitive:
// DotProduct(v, v) is the squared Euclidean norm of v.
//
// Parameters:
//   - a: First slice of floating-point values, length >= 2
//   - b: Second slice, same length as a
//   - opts: Optional execution-strategy options (see WithParallel)
//
// Returns:
//   - T: The dot product of a and b
//   - error: errs.ErrSizeMismatch if the lengths differ,
//     errs.ErrInsufficientData if the slices have fewer than 2 elements
func DotProduct[T Float](a, b []T, opts ...Option) (T, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return 0, err
	}

	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: got lengths %d and %d", errs.ErrSizeMismatch, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: dot product needs at least 2 elements, got %d", errs.ErrInsufficientData, len(a))
	}

	if cfg.useParallel(len(a)) {
		return parallelDot(a, b, cfg.workers), nil
	}

	var sum T
	for i, v := range a {
		sum += v * b[i]
	}

	return sum, nil
}
