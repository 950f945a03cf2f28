package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// meanOf returns the arithmetic mean of x.
func meanOf(x []float64) float64 {
	return stat.Mean(x, nil)
}

// medianOf returns the empirical median of x. x is not modified.
func medianOf(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// gmeanOf returns the geometric mean of x. Entries must be non-negative; a
// zero entry yields zero.
func gmeanOf(x []float64) float64 {
	for _, v := range x {
		if v == 0 {
			return 0
		}
	}
	return stat.GeometricMean(x, nil)
}

// result assembles per-column values into a Result according to the
// configured multioutput mode. perColumn is owned by the caller and retained
// in the RawValues case.
func (cfg config) result(perColumn []float64) Result {
	if cfg.multioutput == RawValues {
		return Result{Multioutput: RawValues, Values: perColumn}
	}
	return Result{Multioutput: UniformAverage, Scalar: meanOf(perColumn)}
}
