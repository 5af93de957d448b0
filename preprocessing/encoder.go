package preprocessing

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/core/parallel"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// OneHotEncoder expands categorical columns into binary indicator columns,
// one per observed category, named "<column>_<value>". The original column
// is removed after expansion. A row whose original value was missing gets
// zero in every indicator of that column; otherwise the row-wise sum of a
// column's indicators is exactly 1.
type OneHotEncoder struct {
	model.BaseEstimator

	// Columns restricts encoding to the named columns. When empty, every
	// categorical (string or boolean) column of the fitted table is encoded.
	Columns []string

	// categories holds the observed values per column in first-seen row
	// order, fixing the indicator column order.
	categories map[string][]string
	fitted     []string // columns actually selected during Fit, in table order
}

var _ model.FrameTransformer = (*OneHotEncoder)(nil)

// NewOneHotEncoder creates an encoder for the given columns, or for all
// categorical columns when none are named.
func NewOneHotEncoder(columns ...string) *OneHotEncoder {
	return &OneHotEncoder{Columns: columns}
}

// Fit records the distinct observed values of every target column.
func (e *OneHotEncoder) Fit(df dataframe.DataFrame) error {
	if df.Err != nil {
		return errors.Wrap(df.Err, "OneHotEncoder.Fit")
	}
	if df.Nrow() == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty table", errors.ErrEmptyData)
	}

	targets := e.Columns
	if len(targets) == 0 {
		targets = dataset.CategoricalColumns(df)
	} else {
		for _, name := range targets {
			if !dataset.HasColumn(df, name) {
				return errors.Wrapf(errors.ErrMissingColumn, "OneHotEncoder.Fit: %q", name)
			}
		}
	}

	e.categories = make(map[string][]string, len(targets))
	e.fitted = targets

	for _, name := range targets {
		col := df.Col(name)
		records := col.Records()
		isNA := col.IsNaN()

		seen := make(map[string]struct{}, len(records))
		var cats []string
		for i, v := range records {
			if isNA[i] {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				cats = append(cats, v)
			}
		}
		e.categories[name] = cats
	}

	e.SetFitted()
	return nil
}

// Transform replaces each encoded column with its indicator columns.
func (e *OneHotEncoder) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if !e.IsFitted() {
		return dataframe.DataFrame{}, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}

	out := df
	for _, name := range e.fitted {
		if !dataset.HasColumn(out, name) {
			return dataframe.DataFrame{}, errors.Wrapf(errors.ErrMissingColumn, "OneHotEncoder.Transform: %q", name)
		}

		col := out.Col(name)
		records := col.Records()
		isNA := col.IsNaN()

		for _, cat := range e.categories[name] {
			indicator := make([]int, len(records))
			parallel.ParallelizeWithThreshold(len(records), 1000, func(start, end int) {
				for i := start; i < end; i++ {
					if !isNA[i] && records[i] == cat {
						indicator[i] = 1
					}
				}
			})
			out = out.Mutate(series.New(indicator, series.Int, name+"_"+cat))
			if out.Err != nil {
				return dataframe.DataFrame{}, errors.Wrap(out.Err, "OneHotEncoder.Transform")
			}
		}

		out = out.Drop(name)
		if out.Err != nil {
			return dataframe.DataFrame{}, errors.Wrap(out.Err, "OneHotEncoder.Transform")
		}
	}

	return out, nil
}

// FitTransform runs Fit and Transform in one step.
func (e *OneHotEncoder) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := e.Fit(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return e.Transform(df)
}

// Categories returns the observed values of an encoded column in
// indicator-column order, or nil before Fit.
func (e *OneHotEncoder) Categories(column string) []string {
	if e.categories == nil {
		return nil
	}
	return e.categories[column]
}
