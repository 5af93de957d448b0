package selection

import (
	"fmt"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

func TestCardinalityFilter(t *testing.T) {
	n := 12
	wide := make([]string, n)   // 12 distinct values
	narrow := make([]string, n) // 3 distinct values
	for i := 0; i < n; i++ {
		wide[i] = fmt.Sprintf("v%d", i)
		narrow[i] = fmt.Sprintf("v%d", i%3)
	}

	df := dataframe.New(
		series.New(wide, series.String, "wide"),
		series.New(narrow, series.String, "narrow"),
		series.New([]string{"a", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a"}, series.String, "untracked"),
	)
	require.NoError(t, df.Err)

	f := NewCardinalityFilter([]string{"wide", "narrow", "gone"}, 10)
	out, err := f.FitTransform(df)
	require.NoError(t, err)

	assert.Equal(t, []string{"wide"}, f.Drop)
	assert.Equal(t, []string{"narrow", "untracked"}, out.Names(),
		"columns outside the allow-list are never touched; absent names are skipped")
	assert.Equal(t, map[string]int{"wide": 12, "narrow": 3}, f.DistinctCounts())
}

func TestCardinalityFilterBoundary(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c"}, series.String, "three"),
	)
	require.NoError(t, df.Err)

	// A count equal to Max stays; only counts beyond it go.
	f := NewCardinalityFilter([]string{"three"}, 3)
	require.NoError(t, f.Fit(df))
	assert.Empty(t, f.Drop)

	f = NewCardinalityFilter([]string{"three"}, 2)
	require.NoError(t, f.Fit(df))
	assert.Equal(t, []string{"three"}, f.Drop)
}

func TestCardinalityFilterValidation(t *testing.T) {
	df := dataframe.New(series.New([]string{"a"}, series.String, "x"))

	f := NewCardinalityFilter([]string{"x"}, 0)
	err := f.Fit(df)
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))

	f = NewCardinalityFilter([]string{"x"}, 1)
	_, err = f.Transform(df)
	var nfErr *errors.NotFittedError
	assert.True(t, errors.As(err, &nfErr))
}
