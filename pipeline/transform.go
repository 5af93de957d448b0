package pipeline

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
	"github.com/YuminosukeSato/amesgo/pkg/log"
	"github.com/YuminosukeSato/amesgo/preprocessing"
)

// TransformFeatures cleans the sale table: drops high-missingness columns,
// mode-imputes remaining numeric gaps, derives the two age features, removes
// rows whose derived ages are negative, and drops identifier, raw-year and
// leakage columns. The input frame is not mutated.
func TransformFeatures(df dataframe.DataFrame, cfg Config) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "TransformFeatures")
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, errors.NewModelError("TransformFeatures", "empty table", errors.ErrEmptyData)
	}
	if !dataset.HasColumn(df, cfg.Target) {
		return dataframe.DataFrame{}, errors.Wrapf(errors.ErrMissingColumn, "TransformFeatures: target %q", cfg.Target)
	}

	handler := preprocessing.NewMissingValueHandler(cfg.MissingThreshold)
	if err := handler.Fit(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	for _, name := range handler.DropColumns {
		if name == cfg.Target {
			return dataframe.DataFrame{}, errors.NewValueError("TransformFeatures",
				"target column "+cfg.Target+" exceeds the missing threshold")
		}
	}

	out, err := handler.Transform(df)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	out, dropped, err := deriveAges(out)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if dropped > 0 {
		errors.Warn(errors.NewDataQualityWarning("transform_features", dropped, 0,
			"negative derived sale age indicates a data-entry error"))
	}

	if drop := presentColumns(out, identifierColumns, rawYearColumns, leakageColumns); len(drop) > 0 {
		out = out.Drop(drop)
		if out.Err != nil {
			return dataframe.DataFrame{}, errors.Wrap(out.Err, "TransformFeatures")
		}
	}

	slog.Debug("transformed features",
		log.StageKey, "transform_features",
		log.RowsKey, out.Nrow(),
		log.ColumnsKey, out.Ncol(),
		log.DroppedRowsKey, dropped,
		log.DroppedColumnsKey, df.Ncol()-out.Ncol(),
	)
	return out, nil
}

// deriveAges adds Years Before Sale and Years Since Remod and filters out
// rows where either is negative. Returns the filtered frame and the number
// of rows removed.
func deriveAges(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
	for _, name := range []string{ColYrSold, ColYearBuilt, ColYearRemod} {
		if !dataset.HasColumn(df, name) {
			return dataframe.DataFrame{}, 0, errors.Wrapf(errors.ErrMissingColumn, "deriveAges: %q", name)
		}
	}

	yrSold := df.Col(ColYrSold).Float()
	yearBuilt := df.Col(ColYearBuilt).Float()
	yearRemod := df.Col(ColYearRemod).Float()

	n := len(yrSold)
	beforeSale := make([]int, n)
	sinceRemod := make([]int, n)
	keep := make([]bool, n)
	dropped := 0
	for i := 0; i < n; i++ {
		beforeSale[i] = int(yrSold[i] - yearBuilt[i])
		sinceRemod[i] = int(yrSold[i] - yearRemod[i])
		keep[i] = beforeSale[i] >= 0 && sinceRemod[i] >= 0
		if !keep[i] {
			dropped++
		}
	}

	out := df.
		Mutate(series.New(beforeSale, series.Int, ColYearsBeforeSale)).
		Mutate(series.New(sinceRemod, series.Int, ColYearsSinceRemod))
	if out.Err != nil {
		return dataframe.DataFrame{}, 0, errors.Wrap(out.Err, "deriveAges")
	}

	if dropped > 0 {
		out = out.Subset(keep)
		if out.Err != nil {
			return dataframe.DataFrame{}, 0, errors.Wrap(out.Err, "deriveAges")
		}
	}
	if out.Nrow() == 0 {
		return dataframe.DataFrame{}, 0, errors.NewModelError("deriveAges", "every row has an invalid sale age", errors.ErrEmptyData)
	}
	return out, dropped, nil
}

// presentColumns flattens the given lists, keeping only columns df has.
func presentColumns(df dataframe.DataFrame, lists ...[]string) []string {
	var present []string
	for _, list := range lists {
		for _, name := range list {
			if dataset.HasColumn(df, name) {
				present = append(present, name)
			}
		}
	}
	return present
}
