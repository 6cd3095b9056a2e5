package linreg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/stats"
)

func TestFit_ExactLineRecovery(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	result, err := Fit(x, y)
	require.NoError(t, err)

	require.InDelta(t, 0, result.Beta0, 1e-9)
	require.InEpsilon(t, 2, result.Beta1, 1e-9)
	require.InEpsilon(t, 1, result.Rho, 1e-9)
	require.InDelta(t, 0, result.SSE, 1e-9)
	require.InEpsilon(t, 1, result.RSquared(), 1e-9)
	require.Equal(t, 5, result.N)
}

func TestFit_DeviationSums(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	result, err := Fit(x, y)
	require.NoError(t, err)

	require.InEpsilon(t, 10, result.Sxx, 1e-12)
	require.InEpsilon(t, 40, result.Syy, 1e-12)
	require.InEpsilon(t, 20, result.Sxy, 1e-12)
}

func TestFit_DegenerateX(t *testing.T) {
	x := []float64{3, 3, 3}
	y := []float64{1, 2, 3}

	result, err := Fit(x, y)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
	require.Nil(t, result)
}

func TestFit_Guards(t *testing.T) {
	t.Run("too few samples", func(t *testing.T) {
		_, err := Fit([]float64{1, 2}, []float64{1, 2})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Fit([]float64{1, 2, 3, 4}, []float64{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrSizeMismatch)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := Fit([]float64{}, []float64{})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestFit_NoisyLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{3.1, 5.0, 7.2, 9.1, 10.0, 13.2, 15.5, 16.5, 19.0, 21.3}

	result, err := Fit(x, y)
	require.NoError(t, err)

	require.Greater(t, float64(result.RSquared()), 0.9, "known excellent-fit scenario")
	require.Greater(t, result.Beta1, 0.0)
	require.Greater(t, result.SSE, 0.0)
	require.InDelta(t, 1, result.Rho, 0.1)
}

func TestFit_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) + rng.NormFloat64()
		y[i] = 3.5 + 1.25*x[i] + rng.NormFloat64()*2
	}

	result, err := Fit(x, y)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	require.InEpsilon(t, alpha, result.Beta0, 1e-9)
	require.InEpsilon(t, beta, result.Beta1, 1e-9)
	require.InEpsilon(t, stat.Correlation(x, y, nil), result.Rho, 1e-9)
}

func TestFit_LargeMagnitudeData(t *testing.T) {
	// Mean-centering keeps the sums of squares sane even when the data
	// sits far from zero.
	x := []float64{1e9 + 1, 1e9 + 2, 1e9 + 3, 1e9 + 4, 1e9 + 5}
	y := []float64{2e9 + 2, 2e9 + 4, 2e9 + 6, 2e9 + 8, 2e9 + 10}

	result, err := Fit(x, y)
	require.NoError(t, err)
	require.InEpsilon(t, 2, result.Beta1, 1e-6)
	require.InEpsilon(t, 1, result.RSquared(), 1e-9)
}

func TestFit_Float32(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5}
	y := []float32{2, 4, 6, 8, 10}

	result, err := Fit(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0, result.Beta0, 1e-5)
	require.InEpsilon(t, 2, result.Beta1, 1e-5)
	require.InEpsilon(t, 1, result.RSquared(), 1e-5)
}

func TestFit_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 50_000
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * 1000
		y[i] = 2.5 - 0.75*x[i] + rng.NormFloat64()
	}

	seq, err := Fit(x, y)
	require.NoError(t, err)

	par, err := Fit(x, y, stats.WithParallel(), stats.WithParallelThreshold(64), stats.WithWorkers(8))
	require.NoError(t, err)

	// Parallel reductions reassociate sums, so compare with a
	// tolerance, never bit-exact.
	require.InEpsilon(t, seq.Beta0, par.Beta0, 1e-8)
	require.InEpsilon(t, seq.Beta1, par.Beta1, 1e-8)
	require.InEpsilon(t, seq.Rho, par.Rho, 1e-8)
	require.InEpsilon(t, seq.Sxx, par.Sxx, 1e-8)
	require.InEpsilon(t, seq.Syy, par.Syy, 1e-8)
	require.Equal(t, seq.N, par.N)
}

func TestFitResult_Predict(t *testing.T) {
	result := &FitResult[float64]{Beta0: 1, Beta1: 2}

	require.InDelta(t, 1, result.Predict(0), 1e-12)
	require.InDelta(t, 5, result.Predict(2), 1e-12)
	require.InDelta(t, -3, result.Predict(-2), 1e-12)
}

func TestFitResult_Strings(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	result, err := Fit(x, y)
	require.NoError(t, err)

	require.Equal(t, "y = 0.0000 + 2.0000*x", result.Formula())
	require.Equal(t, "FitResult{N: 5, R²: 1.0000, Formula: y = 0.0000 + 2.0000*x}", result.String())
}
