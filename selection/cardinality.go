package selection

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// CardinalityFilter drops nominal columns whose distinct-value count
// exceeds Max, bounding the width of the subsequent one-hot expansion.
// Only the columns named in Columns are considered; names absent from the
// fitted table are skipped, since earlier cleaning may already have
// removed them.
type CardinalityFilter struct {
	model.BaseEstimator

	// Columns is the allow-list of columns treated as nominal.
	Columns []string

	// Max is the largest distinct-value count a column may have and stay.
	Max int

	// Drop holds the learned list of columns to remove.
	Drop []string

	counts map[string]int
}

var _ model.FrameTransformer = (*CardinalityFilter)(nil)

// NewCardinalityFilter creates a filter over the given nominal columns.
func NewCardinalityFilter(columns []string, max int) *CardinalityFilter {
	return &CardinalityFilter{Columns: columns, Max: max}
}

// Fit counts distinct values for every listed column present in df.
func (f *CardinalityFilter) Fit(df dataframe.DataFrame) error {
	if f.Max < 1 {
		return errors.NewValidationError("Max", "must be at least 1", f.Max)
	}
	if df.Err != nil {
		return errors.Wrap(df.Err, "CardinalityFilter.Fit")
	}

	f.Drop = nil
	f.counts = make(map[string]int, len(f.Columns))

	for _, name := range f.Columns {
		if !dataset.HasColumn(df, name) {
			continue
		}
		n := dataset.DistinctCount(df.Col(name))
		f.counts[name] = n
		if n > f.Max {
			f.Drop = append(f.Drop, name)
		}
	}

	f.SetFitted()
	return nil
}

// Transform removes the high-cardinality columns.
func (f *CardinalityFilter) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if !f.IsFitted() {
		return dataframe.DataFrame{}, errors.NewNotFittedError("CardinalityFilter", "Transform")
	}
	if len(f.Drop) == 0 {
		return df, nil
	}

	out := df.Drop(f.Drop)
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "CardinalityFilter.Transform")
	}
	return out, nil
}

// FitTransform runs Fit and Transform in one step.
func (f *CardinalityFilter) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := f.Fit(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return f.Transform(df)
}

// DistinctCounts returns the distinct-value count per considered column.
func (f *CardinalityFilter) DistinctCounts() map[string]int {
	return f.counts
}
