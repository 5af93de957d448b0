// Package metrics provides regression evaluation metrics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// validatePair checks that yTrue and yPred are non-empty and equally sized.
func validatePair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// MSE computes the mean squared error (1/n) * Σ(yTrue - yPred)².
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error, sqrt(MSE).
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// RMSEMatrix computes RMSE over two n×1 matrices.
func RMSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, err := columnVector("RMSEMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	yPredVec, err := columnVector("RMSEMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return RMSE(yTrueVec, yPredVec)
}

// MAE computes the mean absolute error (1/n) * Σ|yTrue - yPred|.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination R² = 1 - RSS/TSS.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}

// columnVector converts an n×1 matrix into a vector.
func columnVector(op string, m mat.Matrix) (*mat.VecDense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}

	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}
