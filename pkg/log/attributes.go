package log

// Standard attribute keys for pipeline logging. Using the same keys across
// all stages keeps the JSON output filterable (e.g. every stage logs
// "table.rows" rather than an ad-hoc name per call site).
const (
	// StageKey identifies the pipeline stage emitting the record.
	// Values: "transform_features", "select_features", "train_and_test"
	StageKey = "pipeline.stage"

	// OperationKey specifies the estimator operation being performed.
	// Values: "fit", "transform", "fit_transform", "predict", "score"
	OperationKey = "ml.operation"

	// RowsKey is the row count of the working table or matrix.
	RowsKey = "table.rows"

	// ColumnsKey is the column count of the working table or matrix.
	ColumnsKey = "table.columns"

	// DroppedRowsKey counts rows removed by a cleaning step.
	DroppedRowsKey = "table.dropped_rows"

	// DroppedColumnsKey counts columns removed by a cleaning step.
	DroppedColumnsKey = "table.dropped_columns"

	// RMSEKey carries a root-mean-squared-error score.
	RMSEKey = "metric.rmse"

	// FoldKey identifies a cross-validation fold (0-based).
	FoldKey = "cv.fold"

	// FoldsKey is the configured number of cross-validation folds.
	FoldsKey = "cv.folds"

	// SeedKey is the shuffle seed used for a split.
	SeedKey = "cv.seed"

	// ModeKey names the evaluation mode ("holdout", "twoway", "kfold").
	ModeKey = "cv.mode"
)
