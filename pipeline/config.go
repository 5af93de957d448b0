// Package pipeline composes the housing-sale modelling flow: feature
// transformation, feature selection and model evaluation over a loaded
// sale table.
package pipeline

// Config carries every tunable of the pipeline. Zero values are not
// meaningful; start from DefaultConfig.
type Config struct {
	// Target is the column being predicted.
	Target string

	// MissingThreshold is the missing-fraction at which a column is
	// dropped outright rather than imputed.
	MissingThreshold float64

	// CorrelationThreshold is the minimum absolute Pearson correlation a
	// numeric feature must have with the target to be retained.
	CorrelationThreshold float64

	// MaxCardinality is the largest distinct-value count a nominal column
	// may have before it is dropped instead of one-hot encoded.
	MaxCardinality int

	// TrainFraction sets the in-order holdout split point.
	TrainFraction float64

	// Folds is the number of cross-validation folds.
	Folds int

	// Seed drives every shuffled split.
	Seed int64

	// NominalColumns lists the columns treated as nominal categoricals.
	NominalColumns []string
}

// DefaultConfig returns the standard configuration for the Ames sale table.
func DefaultConfig() Config {
	return Config{
		Target:               ColSalePrice,
		MissingThreshold:     0.05,
		CorrelationThreshold: 0.4,
		MaxCardinality:       10,
		TrainFraction:        0.5,
		Folds:                4,
		Seed:                 1,
		NominalColumns:       DefaultNominalColumns(),
	}
}
