package modelselection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/linear"
)

func linearTestData(n int) (*mat.Dense, *mat.VecDense) {
	// y = 3x + 5 with a small deterministic wobble so no fold is degenerate
	X := mat.NewDense(n, 1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x := float64(i)
		X.Set(i, 0, x)
		y.SetVec(i, 3*x+5+float64(i%3)*0.01)
	}
	return X, y
}

func TestCrossValidate(t *testing.T) {
	X, y := linearTestData(40)

	folds, err := NewKFold(4, true, 42).Split(40)
	require.NoError(t, err)

	mean, rmses, err := CrossValidate(func() Estimator {
		return linear.NewLinearRegression()
	}, X, y, folds)
	require.NoError(t, err)

	require.Len(t, rmses, 4)
	var sum float64
	for i, rmse := range rmses {
		assert.Less(t, rmse, 0.05, "fold %d: near-linear data should fit tightly", i)
		sum += rmse
	}
	assert.InDelta(t, sum/4, mean, 1e-12, "mean must be the average of the fold scores")
}

func TestCrossValidateReproducible(t *testing.T) {
	X, y := linearTestData(32)

	run := func() (float64, []float64) {
		folds, err := NewKFold(4, true, 9).Split(32)
		require.NoError(t, err)
		mean, rmses, err := CrossValidate(func() Estimator {
			return linear.NewLinearRegression()
		}, X, y, folds)
		require.NoError(t, err)
		return mean, rmses
	}

	meanA, rmsesA := run()
	meanB, rmsesB := run()
	assert.Equal(t, meanA, meanB)
	assert.Equal(t, rmsesA, rmsesB)
}

func TestCrossValidateErrors(t *testing.T) {
	X, y := linearTestData(10)

	_, _, err := CrossValidate(func() Estimator {
		return linear.NewLinearRegression()
	}, X, y, nil)
	assert.Error(t, err, "no folds")

	// A constant target inside a fold surfaces the fit error.
	yConst := mat.NewVecDense(10, nil)
	for i := 0; i < 10; i++ {
		yConst.SetVec(i, 42)
	}
	folds, err := NewKFold(2, false, 0).Split(10)
	require.NoError(t, err)
	_, _, err = CrossValidate(func() Estimator {
		return linear.NewLinearRegression()
	}, X, yConst, folds)
	assert.Error(t, err)
}
