package metrics

import "math"

// MeanSquaredError computes the mean squared error between y_true and
// y_pred. With WithSquareRoot it reports the root mean squared error.
// Consumes y_true and y_pred.
type MeanSquaredError struct {
	cfg config
}

// NewMeanSquaredError creates the metric.
func NewMeanSquaredError(opts ...Option) *MeanSquaredError {
	return &MeanSquaredError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanSquaredError) Name() string { return "MeanSquaredError" }

// Evaluate computes the metric.
func (m *MeanSquaredError) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		sqErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		per[c] = meanOf(buf)
		if m.cfg.squareRoot {
			per[c] = math.Sqrt(per[c])
		}
	}

	return m.cfg.result(per), nil
}

// MedianSquaredError computes the median squared error between y_true and
// y_pred. With WithSquareRoot it reports the root of the median.
// Consumes y_true and y_pred.
type MedianSquaredError struct {
	cfg config
}

// NewMedianSquaredError creates the metric.
func NewMedianSquaredError(opts ...Option) *MedianSquaredError {
	return &MedianSquaredError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianSquaredError) Name() string { return "MedianSquaredError" }

// Evaluate computes the metric.
func (m *MedianSquaredError) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		sqErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		per[c] = medianOf(buf)
		if m.cfg.squareRoot {
			per[c] = math.Sqrt(per[c])
		}
	}

	return m.cfg.result(per), nil
}
