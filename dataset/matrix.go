package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// Matrix builds an n×len(cols) dense matrix from the named columns.
// Every column must be numeric and fully observed.
func Matrix(df dataframe.DataFrame, cols []string) (*mat.Dense, error) {
	n := df.Nrow()
	if n == 0 || len(cols) == 0 {
		return nil, errors.NewModelError("dataset.Matrix", "empty selection", errors.ErrEmptyData)
	}

	X := mat.NewDense(n, len(cols), nil)
	for j, name := range cols {
		col, err := Column(df, name)
		if err != nil {
			return nil, err
		}
		X.SetCol(j, col.RawVector().Data)
	}
	return X, nil
}

// Column builds an n-length vector from the named column.
func Column(df dataframe.DataFrame, name string) (*mat.VecDense, error) {
	if !HasColumn(df, name) {
		return nil, errors.Wrapf(errors.ErrMissingColumn, "dataset.Column: %q", name)
	}

	s := df.Col(name)
	if s.Err != nil {
		return nil, errors.Wrapf(s.Err, "dataset.Column: %q", name)
	}
	if !IsNumeric(s) {
		return nil, errors.NewValueError("dataset.Column", "column "+name+" is not numeric")
	}
	if s.HasNaN() {
		return nil, errors.NewValueError("dataset.Column", "column "+name+" has missing values")
	}

	return mat.NewVecDense(s.Len(), s.Float()), nil
}
