package metrics

import "math"

// MeanAbsoluteScaledError computes MASE: the mean absolute error of y_pred
// scaled by the in-sample mean absolute error of the seasonal naive forecast
// over y_train. Consumes y_true, y_pred, and y_train; the seasonal period is
// set with WithSeasonalPeriod.
type MeanAbsoluteScaledError struct {
	cfg config
}

// NewMeanAbsoluteScaledError creates the metric.
func NewMeanAbsoluteScaledError(opts ...Option) *MeanAbsoluteScaledError {
	return &MeanAbsoluteScaledError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanAbsoluteScaledError) Name() string { return "MeanAbsoluteScaledError" }

// Evaluate computes the metric.
func (m *MeanAbsoluteScaledError) Evaluate(in Inputs) (Result, error) {
	return evalScaled(m.cfg, in, meanOf, AbsoluteError)
}

// MedianAbsoluteScaledError computes the median absolute scaled error.
// Consumes y_true, y_pred, and y_train.
type MedianAbsoluteScaledError struct {
	cfg config
}

// NewMedianAbsoluteScaledError creates the metric.
func NewMedianAbsoluteScaledError(opts ...Option) *MedianAbsoluteScaledError {
	return &MedianAbsoluteScaledError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianAbsoluteScaledError) Name() string { return "MedianAbsoluteScaledError" }

// Evaluate computes the metric.
func (m *MedianAbsoluteScaledError) Evaluate(in Inputs) (Result, error) {
	return evalScaled(m.cfg, in, medianOf, AbsoluteError)
}

// MeanSquaredScaledError computes the mean squared error scaled by the
// in-sample mean squared error of the seasonal naive forecast. With
// WithSquareRoot it reports RMSSE. Consumes y_true, y_pred, and y_train.
type MeanSquaredScaledError struct {
	cfg config
}

// NewMeanSquaredScaledError creates the metric.
func NewMeanSquaredScaledError(opts ...Option) *MeanSquaredScaledError {
	return &MeanSquaredScaledError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanSquaredScaledError) Name() string { return "MeanSquaredScaledError" }

// Evaluate computes the metric.
func (m *MeanSquaredScaledError) Evaluate(in Inputs) (Result, error) {
	return evalScaled(m.cfg, in, meanOf, SquaredError)
}

// MedianSquaredScaledError computes the median squared scaled error. With
// WithSquareRoot it reports the root of the median. Consumes y_true, y_pred,
// and y_train.
type MedianSquaredScaledError struct {
	cfg config
}

// NewMedianSquaredScaledError creates the metric.
func NewMedianSquaredScaledError(opts ...Option) *MedianSquaredScaledError {
	return &MedianSquaredScaledError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianSquaredScaledError) Name() string { return "MedianSquaredScaledError" }

// Evaluate computes the metric.
func (m *MedianSquaredScaledError) Evaluate(in Inputs) (Result, error) {
	return evalScaled(m.cfg, in, medianOf, SquaredError)
}

// evalScaled evaluates the scaled-error family. f selects the pointwise loss
// used on both the forecast errors and the naive in-sample benchmark.
func evalScaled(cfg config, in Inputs, aggregate func([]float64) float64, f ErrorFunction) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}
	if err := requireTrain(in); err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		denom, err := naiveTrainLoss(in.YTrain.Column(c), cfg.seasonalPeriod, f)
		if err != nil {
			return Result{}, err
		}

		if f == SquaredError {
			sqErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		} else {
			absErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		}
		for i := range buf {
			buf[i] /= denom
		}

		per[c] = aggregate(buf)
		if f == SquaredError && cfg.squareRoot {
			per[c] = math.Sqrt(per[c])
		}
	}

	return cfg.result(per), nil
}
