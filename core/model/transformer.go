package model

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// FrameTransformer is the interface for table-level transformations.
// Transformations never mutate their input; each returns a new DataFrame.
type FrameTransformer interface {
	// Fit learns the parameters of the transformation from df.
	Fit(df dataframe.DataFrame) error

	// Transform applies the learned transformation to df.
	Transform(df dataframe.DataFrame) (dataframe.DataFrame, error)

	// FitTransform runs Fit and Transform in one step.
	FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X and the column vector y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns an n×1 matrix of predictions for X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}
