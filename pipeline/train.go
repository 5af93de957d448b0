package pipeline

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/linear"
	"github.com/YuminosukeSato/amesgo/modelselection"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
	"github.com/YuminosukeSato/amesgo/pkg/log"
)

// EvalMode selects how TrainAndTest partitions the table.
type EvalMode int

const (
	// ModeHoldout trains on the leading TrainFraction of rows in table
	// order and tests on the remainder.
	ModeHoldout EvalMode = iota
	// ModeTwoWay shuffles, halves, and evaluates both directions,
	// reporting the mean of the two RMSEs.
	ModeTwoWay
	// ModeKFold runs k-fold cross-validation with a shuffled partition.
	ModeKFold
)

// String returns the mode name used in logs and CLI flags.
func (m EvalMode) String() string {
	switch m {
	case ModeHoldout:
		return "holdout"
	case ModeTwoWay:
		return "twoway"
	case ModeKFold:
		return "kfold"
	default:
		return "unknown"
	}
}

// Result carries the evaluation outcome. FoldRMSEs has one entry per fold
// for the two-way and k-fold modes and is nil for holdout.
type Result struct {
	RMSE      float64
	FoldRMSEs []float64
}

// TrainAndTest fits ordinary least squares on the feature columns of df and
// scores root-mean-squared-error under the requested evaluation mode.
// Every column but the target must be numeric and fully observed by now;
// string columns left over are an error, not a silent drop.
func TrainAndTest(df dataframe.DataFrame, mode EvalMode, cfg Config) (Result, error) {
	X, y, _, err := FeatureMatrix(df, cfg.Target)
	if err != nil {
		return Result{}, err
	}

	n, _ := X.Dims()
	var folds []modelselection.CVFold

	switch mode {
	case ModeHoldout:
		fold, err := modelselection.HoldoutSplit(n, cfg.TrainFraction)
		if err != nil {
			return Result{}, err
		}
		folds = []modelselection.CVFold{fold}
	case ModeTwoWay:
		folds, err = modelselection.TwoWaySplit(n, cfg.Seed)
		if err != nil {
			return Result{}, err
		}
	case ModeKFold:
		kf := modelselection.NewKFold(cfg.Folds, true, cfg.Seed)
		folds, err = kf.Split(n)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, errors.NewValidationError("mode", "unknown evaluation mode", int(mode))
	}

	mean, rmses, err := modelselection.CrossValidate(func() modelselection.Estimator {
		return linear.NewLinearRegression()
	}, X, y, folds)
	if err != nil {
		return Result{}, err
	}

	slog.Info("evaluated model",
		log.StageKey, "train_and_test",
		log.ModeKey, mode.String(),
		log.RowsKey, n,
		log.RMSEKey, mean,
		log.FoldsKey, len(folds),
		log.SeedKey, cfg.Seed,
	)

	res := Result{RMSE: mean}
	if mode != ModeHoldout {
		res.FoldRMSEs = rmses
	}
	return res, nil
}

// FeatureMatrix splits df into the feature matrix X (every column but the
// target, in table order), the target vector y, and the feature names.
func FeatureMatrix(df dataframe.DataFrame, target string) (*mat.Dense, *mat.VecDense, []string, error) {
	if df.Err != nil {
		return nil, nil, nil, errors.Wrap(df.Err, "FeatureMatrix")
	}
	if !dataset.HasColumn(df, target) {
		return nil, nil, nil, errors.Wrapf(errors.ErrMissingColumn, "FeatureMatrix: target %q", target)
	}

	var features []string
	for _, name := range df.Names() {
		if name == target {
			continue
		}
		if !dataset.IsNumeric(df.Col(name)) {
			return nil, nil, nil, errors.NewValueError("FeatureMatrix",
				"column "+name+" is not numeric; encode or drop it before training")
		}
		features = append(features, name)
	}
	if len(features) == 0 {
		return nil, nil, nil, errors.NewModelError("FeatureMatrix", "no feature columns besides the target", errors.ErrEmptyData)
	}

	X, err := dataset.Matrix(df, features)
	if err != nil {
		return nil, nil, nil, err
	}
	y, err := dataset.Column(df, target)
	if err != nil {
		return nil, nil, nil, err
	}
	return X, y, features, nil
}
