// Package series provides a multi-column time-series container and a
// deterministic synthetic-series generator used as test and benchmark
// fixtures throughout algo-forecast.
package series

import "fmt"

// Series is a multi-column time series. All columns have the same number of
// timepoints. A Series is treated as immutable after construction; Column
// returns the backing slice, callers must not modify it.
type Series struct {
	names []string
	cols  [][]float64
}

// New creates a Series from column data. Columns must be non-empty and of
// equal length. Column names default to c0, c1, ….
func New(cols ...[]float64) (*Series, error) {
	names := make([]string, len(cols))
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}

	return NewNamed(names, cols)
}

// NewNamed creates a Series with explicit column names.
func NewNamed(names []string, cols [][]float64) (*Series, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("series must have at least one column")
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("series has %d names for %d columns", len(names), len(cols))
	}

	n := len(cols[0])
	if n == 0 {
		return nil, fmt.Errorf("series columns must not be empty")
	}

	for i, c := range cols {
		if len(c) != n {
			return nil, fmt.Errorf("series column %d has length %d, want %d", i, len(c), n)
		}
	}

	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("series column %d has empty name", i)
		}
	}

	return &Series{names: names, cols: cols}, nil
}

// Columns returns the number of output columns.
func (s *Series) Columns() int {
	return len(s.cols)
}

// Len returns the number of timepoints.
func (s *Series) Len() int {
	return len(s.cols[0])
}

// Column returns the values of column i.
func (s *Series) Column(i int) []float64 {
	return s.cols[i]
}

// ColumnNames returns the column names in order.
func (s *Series) ColumnNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// At returns the value of column col at timepoint t.
func (s *Series) At(col, t int) float64 {
	return s.cols[col][t]
}
