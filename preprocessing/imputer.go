// Package preprocessing provides dataframe-level cleaning transformers:
// missing-value handling and one-hot encoding of categorical columns.
package preprocessing

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// MissingValueHandler removes columns with excessive missingness and mode-
// imputes the numeric gaps that remain.
//
// The contract, applied in order during Fit:
//  1. any column with missing fraction >= Threshold is dropped
//  2. any remaining non-numeric column with a missing value is dropped
//  3. any remaining numeric column with missing values gets its mode as
//     the fill value (ties broken by first occurrence in row order)
//
// After Transform the retained column set has zero missing values.
type MissingValueHandler struct {
	model.BaseEstimator

	// Threshold is the missing-fraction at which a column is dropped.
	Threshold float64

	// DropColumns holds the learned list of columns to remove.
	DropColumns []string

	// FillValues holds the learned imputation value per numeric column.
	FillValues map[string]float64
}

var _ model.FrameTransformer = (*MissingValueHandler)(nil)

// NewMissingValueHandler creates a handler with the given drop threshold.
func NewMissingValueHandler(threshold float64) *MissingValueHandler {
	return &MissingValueHandler{Threshold: threshold}
}

// Fit learns which columns to drop and the fill value for each numeric
// column that keeps missing values below the threshold.
func (h *MissingValueHandler) Fit(df dataframe.DataFrame) error {
	if h.Threshold < 0 || h.Threshold > 1 {
		return errors.NewValidationError("Threshold", "must be in [0, 1]", h.Threshold)
	}
	if df.Err != nil {
		return errors.Wrap(df.Err, "MissingValueHandler.Fit")
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return errors.NewModelError("MissingValueHandler.Fit", "empty table", errors.ErrEmptyData)
	}

	h.DropColumns = nil
	h.FillValues = make(map[string]float64)

	for _, name := range df.Names() {
		col := df.Col(name)
		frac := dataset.MissingFraction(col)

		switch {
		case frac >= h.Threshold:
			h.DropColumns = append(h.DropColumns, name)
		case frac > 0 && !dataset.IsNumeric(col):
			h.DropColumns = append(h.DropColumns, name)
		case frac > 0:
			mode, err := dataset.Mode(col)
			if err != nil {
				return errors.Wrap(err, "MissingValueHandler.Fit")
			}
			h.FillValues[name] = mode
		}
	}

	h.SetFitted()
	return nil
}

// Transform drops the learned columns and fills the learned values.
func (h *MissingValueHandler) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if !h.IsFitted() {
		return dataframe.DataFrame{}, errors.NewNotFittedError("MissingValueHandler", "Transform")
	}

	out := df
	if len(h.DropColumns) > 0 {
		out = out.Drop(h.DropColumns)
		if out.Err != nil {
			return dataframe.DataFrame{}, errors.Wrap(out.Err, "MissingValueHandler.Transform")
		}
	}

	for name, fill := range h.FillValues {
		if !dataset.HasColumn(out, name) {
			continue
		}
		col := out.Col(name)
		out = out.Mutate(imputeNumeric(col, fill))
		if out.Err != nil {
			return dataframe.DataFrame{}, errors.Wrap(out.Err, "MissingValueHandler.Transform")
		}
	}

	return out, nil
}

// FitTransform runs Fit and Transform in one step.
func (h *MissingValueHandler) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := h.Fit(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return h.Transform(df)
}

// imputeNumeric returns a copy of col with missing entries set to fill.
// Integer columns stay integer: the mode of an int column is integral.
func imputeNumeric(col series.Series, fill float64) series.Series {
	values := col.Float()
	isNA := col.IsNaN()
	for i := range values {
		if isNA[i] {
			values[i] = fill
		}
	}

	if col.Type() == series.Int {
		ints := make([]int, len(values))
		for i, v := range values {
			ints[i] = int(v)
		}
		return series.New(ints, series.Int, col.Name)
	}
	return series.New(values, series.Float, col.Name)
}
