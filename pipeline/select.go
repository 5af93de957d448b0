package pipeline

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
	"github.com/YuminosukeSato/amesgo/pkg/log"
	"github.com/YuminosukeSato/amesgo/preprocessing"
	"github.com/YuminosukeSato/amesgo/selection"
)

// SelectFeatures filters the cleaned table down to the modelling columns:
// numeric features weakly correlated with the target go, nominal columns
// over the cardinality cap go, and the surviving categoricals are one-hot
// encoded. Expects a table with no missing values.
func SelectFeatures(df dataframe.DataFrame, cfg Config) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "SelectFeatures")
	}

	corr := selection.NewCorrelationSelector(cfg.Target, cfg.CorrelationThreshold)
	out, err := corr.FitTransform(df)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	card := selection.NewCardinalityFilter(cfg.NominalColumns, cfg.MaxCardinality)
	out, err = card.FitTransform(out)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(card.Drop) > 0 {
		errors.Warn(errors.NewDataQualityWarning("select_features", 0, len(card.Drop),
			"nominal columns above the cardinality cap"))
	}

	encoder := preprocessing.NewOneHotEncoder()
	out, err = encoder.FitTransform(out)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Debug("selected features",
		log.StageKey, "select_features",
		log.RowsKey, out.Nrow(),
		log.ColumnsKey, out.Ncol(),
		log.DroppedColumnsKey, len(card.Drop),
	)
	return out, nil
}
