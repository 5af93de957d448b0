// Package dataset loads tab-delimited sale tables into gota DataFrames and
// provides the column-level statistics the cleaning stages are built on:
// missing fractions, numeric modes and distinct-value counts.
package dataset

import (
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// naTokens are the strings treated as missing values when reading a table.
var naTokens = []string{"", "NA", "NaN", "N/A", "null", "nil"}

// ReadTSV loads a tab-delimited table with a header row from path.
func ReadTSV(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "failed to open dataset %q", path)
	}
	defer file.Close()

	return ReadTable(file)
}

// ReadTable loads a tab-delimited table with a header row from r.
// Malformed input (ragged rows, wrong delimiter) fails fast with an error.
func ReadTable(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
		dataframe.NaNValues(naTokens),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "failed to parse table")
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return dataframe.DataFrame{}, errors.NewModelError("dataset.ReadTable", "empty table", errors.ErrEmptyData)
	}
	return df, nil
}

// HasColumn reports whether the table contains a column named name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether s holds numeric values.
func IsNumeric(s series.Series) bool {
	t := s.Type()
	return t == series.Float || t == series.Int
}

// NumericColumns returns the names of all numeric columns in table order.
func NumericColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	types := df.Types()

	var numeric []string
	for i, t := range types {
		if t == series.Float || t == series.Int {
			numeric = append(numeric, names[i])
		}
	}
	return numeric
}

// CategoricalColumns returns the names of all non-numeric columns in table
// order. Boolean columns count as categorical: they behave as two-valued
// nominals.
func CategoricalColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	types := df.Types()

	var cols []string
	for i, t := range types {
		if t == series.String || t == series.Bool {
			cols = append(cols, names[i])
		}
	}
	return cols
}

// MissingFraction returns the fraction of missing values in s, in [0, 1].
func MissingFraction(s series.Series) float64 {
	n := s.Len()
	if n == 0 {
		return 0
	}

	missing := 0
	for _, isNA := range s.IsNaN() {
		if isNA {
			missing++
		}
	}
	return float64(missing) / float64(n)
}

// Mode returns the most frequent present value of a numeric column.
// Ties are broken by first occurrence in row order, so the result is
// deterministic for a fixed input order.
func Mode(s series.Series) (float64, error) {
	if !IsNumeric(s) {
		return 0, errors.NewValueError("dataset.Mode", "column "+s.Name+" is not numeric")
	}

	values := s.Float()
	isNA := s.IsNaN()

	counts := make(map[float64]int, len(values))
	firstSeen := make(map[float64]int, len(values))
	for i, v := range values {
		if isNA[i] {
			continue
		}
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	if len(counts) == 0 {
		return 0, errors.NewModelError("dataset.Mode", "column "+s.Name+" has no present values", errors.ErrEmptyData)
	}

	var mode float64
	bestCount := -1
	bestFirst := len(values)
	for v, c := range counts {
		if c > bestCount || (c == bestCount && firstSeen[v] < bestFirst) {
			mode = v
			bestCount = c
			bestFirst = firstSeen[v]
		}
	}
	return mode, nil
}

// DistinctCount returns the number of distinct present values in s.
func DistinctCount(s series.Series) int {
	records := s.Records()
	isNA := s.IsNaN()

	seen := make(map[string]struct{}, len(records))
	for i, v := range records {
		if isNA[i] {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
