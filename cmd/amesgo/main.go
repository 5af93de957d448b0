// Command amesgo runs the housing-price pipeline over a tab-delimited sale
// table and prints the resulting RMSE.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pipeline"
	"github.com/YuminosukeSato/amesgo/pkg/log"
)

func main() {
	cfg := pipeline.DefaultConfig()

	dataPath := flag.String("data", "AmesHousing.tsv", "path to the tab-delimited sale table")
	mode := flag.String("mode", "kfold", "evaluation mode: holdout, twoway or kfold")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Float64Var(&cfg.MissingThreshold, "missing-threshold", cfg.MissingThreshold, "missing-fraction at which a column is dropped")
	flag.Float64Var(&cfg.CorrelationThreshold, "corr-threshold", cfg.CorrelationThreshold, "minimum absolute correlation with the target")
	flag.IntVar(&cfg.MaxCardinality, "max-cardinality", cfg.MaxCardinality, "largest distinct-value count for a nominal column")
	flag.Float64Var(&cfg.TrainFraction, "train-fraction", cfg.TrainFraction, "holdout train fraction")
	flag.IntVar(&cfg.Folds, "folds", cfg.Folds, "number of cross-validation folds")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed")
	flag.Parse()

	log.SetupLogger(*logLevel)

	evalMode, ok := parseMode(*mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	if err := run(*dataPath, evalMode, cfg); err != nil {
		slog.Error("pipeline failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run(dataPath string, mode pipeline.EvalMode, cfg pipeline.Config) error {
	df, err := dataset.ReadTSV(dataPath)
	if err != nil {
		return err
	}

	df, err = pipeline.TransformFeatures(df, cfg)
	if err != nil {
		return err
	}

	df, err = pipeline.SelectFeatures(df, cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.TrainAndTest(df, mode, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("RMSE: %.2f\n", res.RMSE)
	for i, rmse := range res.FoldRMSEs {
		fmt.Printf("  fold %d: %.2f\n", i, rmse)
	}
	return nil
}

func parseMode(s string) (pipeline.EvalMode, bool) {
	switch s {
	case "holdout":
		return pipeline.ModeHoldout, true
	case "twoway":
		return pipeline.ModeTwoWay, true
	case "kfold":
		return pipeline.ModeKFold, true
	default:
		return 0, false
	}
}
