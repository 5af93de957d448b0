package modelselection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFoldSplit(t *testing.T) {
	t.Run("even folds without shuffle", func(t *testing.T) {
		kf := NewKFold(5, false, 0)
		folds, err := kf.Split(100)
		require.NoError(t, err)
		require.Len(t, folds, 5)

		for i, fold := range folds {
			assert.Len(t, fold.TrainIndices, 80, "fold %d train size", i)
			assert.Len(t, fold.TestIndices, 20, "fold %d test size", i)

			testSet := make(map[int]bool)
			for _, idx := range fold.TestIndices {
				testSet[idx] = true
			}
			for _, idx := range fold.TrainIndices {
				assert.False(t, testSet[idx], "train index %d in test set", idx)
			}
		}

		// Every row appears as a test row exactly once.
		covered := make(map[int]int)
		for _, fold := range folds {
			for _, idx := range fold.TestIndices {
				covered[idx]++
			}
		}
		assert.Len(t, covered, 100)
		for idx, count := range covered {
			assert.Equal(t, 1, count, "index %d", idx)
		}
	})

	t.Run("uneven rows spread the remainder", func(t *testing.T) {
		kf := NewKFold(4, false, 0)
		folds, err := kf.Split(10)
		require.NoError(t, err)

		sizes := make([]int, 4)
		for i, fold := range folds {
			sizes[i] = len(fold.TestIndices)
		}
		assert.Equal(t, []int{3, 3, 2, 2}, sizes)
	})

	t.Run("shuffle is reproducible for a fixed seed", func(t *testing.T) {
		a, err := NewKFold(4, true, 42).Split(50)
		require.NoError(t, err)
		b, err := NewKFold(4, true, 42).Split(50)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		c, err := NewKFold(4, true, 7).Split(50)
		require.NoError(t, err)
		assert.NotEqual(t, a, c, "different seeds should permute differently")
	})

	t.Run("more folds than rows", func(t *testing.T) {
		_, err := NewKFold(5, false, 0).Split(3)
		assert.Error(t, err)
	})

	t.Run("degenerate fold count falls back to five", func(t *testing.T) {
		kf := NewKFold(1, false, 0)
		assert.Equal(t, 5, kf.NSplits)
	})
}

func TestHoldoutSplit(t *testing.T) {
	fold, err := HoldoutSplit(10, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fold.TrainIndices)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, fold.TestIndices)

	// floor semantics on odd counts
	fold, err = HoldoutSplit(7, 0.5)
	require.NoError(t, err)
	assert.Len(t, fold.TrainIndices, 3)
	assert.Len(t, fold.TestIndices, 4)

	_, err = HoldoutSplit(10, 0.0)
	assert.Error(t, err)
	_, err = HoldoutSplit(10, 1.0)
	assert.Error(t, err)
	_, err = HoldoutSplit(1, 0.5)
	assert.Error(t, err, "a one-row table cannot be partitioned")
}

func TestTwoWaySplit(t *testing.T) {
	folds, err := TwoWaySplit(11, 42)
	require.NoError(t, err)
	require.Len(t, folds, 2)

	// The second evaluation swaps train and test.
	assert.Equal(t, folds[0].TrainIndices, folds[1].TestIndices)
	assert.Equal(t, folds[0].TestIndices, folds[1].TrainIndices)

	// Both halves together cover every row exactly once.
	seen := make(map[int]int)
	for _, idx := range folds[0].TrainIndices {
		seen[idx]++
	}
	for _, idx := range folds[0].TestIndices {
		seen[idx]++
	}
	assert.Len(t, seen, 11)
	for idx, count := range seen {
		assert.Equal(t, 1, count, "index %d", idx)
	}

	// Reproducible for a fixed seed.
	again, err := TwoWaySplit(11, 42)
	require.NoError(t, err)
	assert.Equal(t, folds, again)

	_, err = TwoWaySplit(3, 42)
	assert.Error(t, err)
}
