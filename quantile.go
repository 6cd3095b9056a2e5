package linreg

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/linreg/errs"
)

// QuantileFunc supplies Student's t quantiles to the inference layer.
//
// Implementations must accept a probability p in (0, 1) and a positive
// degrees-of-freedom value, and return the value below which probability
// mass p of the t distribution falls. Errors are propagated to the
// caller of SlopeConfidenceInterval unchanged.
type QuantileFunc func(p, dof float64) (float64, error)

// studentTQuantile is the default QuantileFunc, backed by gonum's
// Student's t distribution.
func studentTQuantile(p, dof float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: probability %v is outside (0, 1)", errs.ErrInvalidQuantile, p)
	}
	if dof <= 0 {
		return 0, fmt.Errorf("%w: degrees of freedom %v is not positive", errs.ErrInvalidQuantile, dof)
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}

	return dist.Quantile(p), nil
}
