package modelselection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/metrics"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// Estimator is the model contract cross-validation drives: fit on a train
// partition, predict on a test partition.
type Estimator interface {
	Fit(X, y mat.Matrix) error
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// CrossValidate fits a fresh estimator per fold and scores RMSE on each
// fold's test partition. It returns the mean RMSE and the per-fold values
// in fold order.
func CrossValidate(newEstimator func() Estimator, X mat.Matrix, y *mat.VecDense, folds []CVFold) (float64, []float64, error) {
	if len(folds) == 0 {
		return 0, nil, errors.NewValueError("CrossValidate", "no folds")
	}

	rmses := make([]float64, len(folds))
	for i, fold := range folds {
		XTrain := subsetRows(X, fold.TrainIndices)
		yTrain := subsetVec(y, fold.TrainIndices)
		XTest := subsetRows(X, fold.TestIndices)
		yTest := subsetVec(y, fold.TestIndices)

		est := newEstimator()
		if err := est.Fit(XTrain, yTrain); err != nil {
			return 0, nil, errors.Wrapf(err, "fold %d", i)
		}

		yPred, err := est.Predict(XTest)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "fold %d", i)
		}

		rmse, err := metrics.RMSEMatrix(yTest, yPred)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "fold %d", i)
		}
		rmses[i] = rmse
	}

	var sum float64
	for _, v := range rmses {
		sum += v
	}
	return sum / float64(len(rmses)), rmses, nil
}

// subsetRows copies the given rows of X into a new matrix.
func subsetRows(X mat.Matrix, rows []int) *mat.Dense {
	_, c := X.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(r, j))
		}
	}
	return out
}

// subsetVec copies the given rows of v into a new column vector.
func subsetVec(v *mat.VecDense, rows []int) *mat.VecDense {
	out := mat.NewVecDense(len(rows), nil)
	for i, r := range rows {
		out.SetVec(i, v.AtVec(r))
	}
	return out
}
