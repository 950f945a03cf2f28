package metrics

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MeanAbsolutePercentageError computes the mean absolute percentage error,
// reported as a fraction. With WithSymmetric it computes sMAPE. Consumes
// y_true and y_pred; fails with ErrZeroDenominator when y_true contains zero
// (or, in the symmetric case, when a true/predicted pair is both zero).
type MeanAbsolutePercentageError struct {
	cfg config
}

// NewMeanAbsolutePercentageError creates the metric.
func NewMeanAbsolutePercentageError(opts ...Option) *MeanAbsolutePercentageError {
	return &MeanAbsolutePercentageError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanAbsolutePercentageError) Name() string { return "MeanAbsolutePercentageError" }

// Evaluate computes the metric.
func (m *MeanAbsolutePercentageError) Evaluate(in Inputs) (Result, error) {
	return evalPercentage(m.cfg, in, meanOf, false)
}

// MedianAbsolutePercentageError computes the median absolute percentage
// error. With WithSymmetric it computes the symmetric variant. Consumes
// y_true and y_pred.
type MedianAbsolutePercentageError struct {
	cfg config
}

// NewMedianAbsolutePercentageError creates the metric.
func NewMedianAbsolutePercentageError(opts ...Option) *MedianAbsolutePercentageError {
	return &MedianAbsolutePercentageError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianAbsolutePercentageError) Name() string { return "MedianAbsolutePercentageError" }

// Evaluate computes the metric.
func (m *MedianAbsolutePercentageError) Evaluate(in Inputs) (Result, error) {
	return evalPercentage(m.cfg, in, medianOf, false)
}

// MeanSquaredPercentageError computes the mean squared percentage error.
// With WithSquareRoot it reports the root mean squared percentage error.
// Consumes y_true and y_pred.
type MeanSquaredPercentageError struct {
	cfg config
}

// NewMeanSquaredPercentageError creates the metric.
func NewMeanSquaredPercentageError(opts ...Option) *MeanSquaredPercentageError {
	return &MeanSquaredPercentageError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanSquaredPercentageError) Name() string { return "MeanSquaredPercentageError" }

// Evaluate computes the metric.
func (m *MeanSquaredPercentageError) Evaluate(in Inputs) (Result, error) {
	return evalPercentage(m.cfg, in, meanOf, true)
}

// MedianSquaredPercentageError computes the median squared percentage error.
// With WithSquareRoot it reports the root of the median. Consumes y_true and
// y_pred.
type MedianSquaredPercentageError struct {
	cfg config
}

// NewMedianSquaredPercentageError creates the metric.
func NewMedianSquaredPercentageError(opts ...Option) *MedianSquaredPercentageError {
	return &MedianSquaredPercentageError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianSquaredPercentageError) Name() string { return "MedianSquaredPercentageError" }

// Evaluate computes the metric.
func (m *MedianSquaredPercentageError) Evaluate(in Inputs) (Result, error) {
	return evalPercentage(m.cfg, in, medianOf, true)
}

// evalPercentage evaluates the percentage-error family. squared selects the
// squared variant, aggregate selects mean or median aggregation over
// timepoints.
func evalPercentage(cfg config, in Inputs, aggregate func([]float64) float64, squared bool) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		if err := pctErrors(buf, in.YTrue.Column(c), in.YPred.Column(c), cfg.symmetric); err != nil {
			return Result{}, err
		}
		if squared {
			vecmath.MulBlockInPlace(buf, buf)
		}

		per[c] = aggregate(buf)
		if squared && cfg.squareRoot {
			per[c] = math.Sqrt(per[c])
		}
	}

	return cfg.result(per), nil
}
