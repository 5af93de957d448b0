// Package selection provides feature-selection transformers: a Pearson
// correlation filter for numeric columns and a distinct-count cap for
// nominal columns.
package selection

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// CorrelationSelector drops numeric columns whose absolute Pearson
// correlation with the target falls below a threshold. Non-numeric columns
// and the target itself are always retained. A zero-variance column counts
// as correlation 0.
type CorrelationSelector struct {
	model.BaseEstimator

	// Target names the column correlations are computed against.
	Target string

	// Threshold is the minimum absolute correlation to retain a column.
	Threshold float64

	// Keep holds the learned list of retained numeric columns, target
	// excluded, in table order.
	Keep []string

	drop         []string
	correlations map[string]float64
}

var _ model.FrameTransformer = (*CorrelationSelector)(nil)

// NewCorrelationSelector creates a selector for the given target column.
func NewCorrelationSelector(target string, threshold float64) *CorrelationSelector {
	return &CorrelationSelector{Target: target, Threshold: threshold}
}

// Fit computes the correlation of every numeric column against the target.
func (s *CorrelationSelector) Fit(df dataframe.DataFrame) error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return errors.NewValidationError("Threshold", "must be in [0, 1]", s.Threshold)
	}
	if df.Err != nil {
		return errors.Wrap(df.Err, "CorrelationSelector.Fit")
	}

	y, err := dataset.Column(df, s.Target)
	if err != nil {
		return errors.Wrap(err, "CorrelationSelector.Fit")
	}
	target := y.RawVector().Data

	s.Keep = nil
	s.drop = nil
	s.correlations = make(map[string]float64)

	for _, name := range dataset.NumericColumns(df) {
		if name == s.Target {
			continue
		}

		x, err := dataset.Column(df, name)
		if err != nil {
			return errors.Wrap(err, "CorrelationSelector.Fit")
		}

		r := stat.Correlation(x.RawVector().Data, target, nil)
		if math.IsNaN(r) {
			r = 0
		}
		s.correlations[name] = r

		if math.Abs(r) >= s.Threshold {
			s.Keep = append(s.Keep, name)
		} else {
			s.drop = append(s.drop, name)
		}
	}

	s.SetFitted()
	return nil
}

// Transform removes the weakly correlated numeric columns.
func (s *CorrelationSelector) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if !s.IsFitted() {
		return dataframe.DataFrame{}, errors.NewNotFittedError("CorrelationSelector", "Transform")
	}
	if len(s.drop) == 0 {
		return df, nil
	}

	out := df.Drop(s.drop)
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "CorrelationSelector.Transform")
	}
	return out, nil
}

// FitTransform runs Fit and Transform in one step.
func (s *CorrelationSelector) FitTransform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := s.Fit(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return s.Transform(df)
}

// Correlations returns the signed Pearson correlation per numeric column
// seen during Fit.
func (s *CorrelationSelector) Correlations() map[string]float64 {
	return s.correlations
}
