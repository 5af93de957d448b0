// Package amesgo predicts housing sale prices from the Ames assessor table.
//
// The library is a linear sequence of table transformations over a gota
// DataFrame, ending in an ordinary-least-squares fit scored by RMSE:
//
//	df, err := dataset.ReadTSV("AmesHousing.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := pipeline.DefaultConfig()
//	df, err = pipeline.TransformFeatures(df, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	df, err = pipeline.SelectFeatures(df, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := pipeline.TrainAndTest(df, pipeline.ModeKFold, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("RMSE: %.2f\n", res.RMSE)
//
// # Packages
//
//   - dataset: tab-delimited loading and column statistics
//   - preprocessing: missing-value handling and one-hot encoding
//   - selection: correlation and cardinality feature filters
//   - linear: ordinary-least-squares regression
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - modelselection: holdout, two-way and k-fold splitting with
//     cross-validated scoring
//   - pipeline: the Ames-specific composition of the above
package amesgo
