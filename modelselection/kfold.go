// Package modelselection provides train/test splitting strategies and
// cross-validated scoring for regression models.
package modelselection

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// CVFold holds the row indices of one train/test partition.
type CVFold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold partitions rows into k roughly equal folds, optionally shuffling
// with a seeded generator first. Splits are reproducible for a fixed seed.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    int64
}

// NewKFold creates a k-fold splitter. Fewer than 2 splits falls back to 5.
func NewKFold(nSplits int, shuffle bool, seed int64) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{NSplits: nSplits, Shuffle: shuffle, Seed: seed}
}

// Split generates the train/test indices for each of the k folds over n rows.
func (kf *KFold) Split(n int) ([]CVFold, error) {
	if n < kf.NSplits {
		return nil, errors.NewValidationError("NSplits", "more folds than rows", kf.NSplits)
	}

	indices := shuffledIndices(n, kf.Shuffle, kf.Seed)

	folds := make([]CVFold, kf.NSplits)
	foldSize := n / kf.NSplits
	remainder := n % kf.NSplits

	current := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[current:current+testSize])

		trainIndices := make([]int, 0, n-testSize)
		trainIndices = append(trainIndices, indices[:current]...)
		trainIndices = append(trainIndices, indices[current+testSize:]...)

		folds[i] = CVFold{TrainIndices: trainIndices, TestIndices: testIndices}
		current += testSize
	}
	return folds, nil
}

// HoldoutSplit partitions n rows in order: the first floor(n*trainFraction)
// rows train, the remainder test.
func HoldoutSplit(n int, trainFraction float64) (CVFold, error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return CVFold{}, errors.NewValidationError("TrainFraction", "must be in (0, 1)", trainFraction)
	}

	split := int(float64(n) * trainFraction)
	if split == 0 || split == n {
		return CVFold{}, errors.NewValueError("HoldoutSplit", "partition would leave an empty train or test set")
	}

	train := make([]int, split)
	test := make([]int, n-split)
	for i := 0; i < split; i++ {
		train[i] = i
	}
	for i := split; i < n; i++ {
		test[i-split] = i
	}
	return CVFold{TrainIndices: train, TestIndices: test}, nil
}

// TwoWaySplit shuffles n rows with the seeded generator and halves them into
// two folds, each fold testing what the other trained on.
func TwoWaySplit(n int, seed int64) ([]CVFold, error) {
	if n < 4 {
		return nil, errors.NewValueError("TwoWaySplit", "need at least 4 rows")
	}

	indices := shuffledIndices(n, true, seed)
	half := n / 2

	first := make([]int, half)
	second := make([]int, n-half)
	copy(first, indices[:half])
	copy(second, indices[half:])

	return []CVFold{
		{TrainIndices: first, TestIndices: second},
		{TrainIndices: second, TestIndices: first},
	}, nil
}

// shuffledIndices returns [0, n) in shuffled order when requested.
func shuffledIndices(n int, shuffle bool, seed int64) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if shuffle {
		r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}
	return indices
}
