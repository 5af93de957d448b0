// Package linear implements ordinary-least-squares linear regression on
// gonum matrices.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/core/parallel"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// LinearRegression fits a weight per feature plus an intercept by
// minimizing squared residuals over the training rows.
type LinearRegression struct {
	model.BaseEstimator

	Weights   *mat.VecDense // coefficients, one per feature
	Intercept float64
	NFeatures int
}

var (
	_ model.Fitter    = (*LinearRegression)(nil)
	_ model.Predictor = (*LinearRegression)(nil)
)

// NewLinearRegression creates an unfitted linear regression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit estimates the weights and intercept from X and the column vector y.
// The fit is undefined, and an error is returned, when X is empty, the
// dimensions disagree, or y holds fewer than two distinct values.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}
	if constantColumn(y, r) {
		return errors.NewModelError("LinearRegression.Fit", "target has fewer than two distinct values", errors.ErrConstantTarget)
	}

	lr.NFeatures = c

	// Prepend a column of ones for the intercept term.
	XWithIntercept := mat.NewDense(r, c+1, nil)

	const parallelThreshold = 1000
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	// Minimum-norm least squares via SVD, the same solver scikit-learn's
	// LinearRegression uses. Fully one-hot encoded categoricals plus the
	// intercept column leave the design matrix rank deficient, which a
	// plain normal-equation inverse cannot handle.
	var svd mat.SVD
	if !svd.Factorize(XWithIntercept, mat.SVDThin) {
		return errors.NewModelError("LinearRegression.Fit", "SVD factorization failed", errors.ErrSingularMatrix)
	}

	const rcond = 1e-15
	rank := svd.Rank(rcond)
	if rank == 0 {
		return errors.NewModelError("LinearRegression.Fit", "zero-rank design matrix", errors.ErrSingularMatrix)
	}

	yDense := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		yDense.Set(i, 0, y.At(i, 0))
	}

	var sol mat.Dense
	svd.SolveTo(&sol, yDense, rank)

	lr.Intercept = sol.At(0, 0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, sol.At(i+1, 0))
	}

	lr.SetFitted()
	return nil
}

// Predict returns an n×1 matrix of predictions for X.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// GetWeights returns the learned coefficients.
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept returns the learned intercept.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score returns the coefficient of determination R² on X, y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()

	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)

		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}

// constantColumn reports whether the first column of y holds a single value.
func constantColumn(y mat.Matrix, rows int) bool {
	first := y.At(0, 0)
	for i := 1; i < rows; i++ {
		if y.At(i, 0) != first {
			return false
		}
	}
	return true
}
