package metrics

// MeanAbsoluteError computes the mean absolute error between y_true and
// y_pred. Consumes y_true and y_pred.
type MeanAbsoluteError struct {
	cfg config
}

// NewMeanAbsoluteError creates the metric.
func NewMeanAbsoluteError(opts ...Option) *MeanAbsoluteError {
	return &MeanAbsoluteError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanAbsoluteError) Name() string { return "MeanAbsoluteError" }

// Evaluate computes the metric.
func (m *MeanAbsoluteError) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		absErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		per[c] = meanOf(buf)
	}

	return m.cfg.result(per), nil
}

// MedianAbsoluteError computes the median absolute error between y_true and
// y_pred. Consumes y_true and y_pred.
type MedianAbsoluteError struct {
	cfg config
}

// NewMedianAbsoluteError creates the metric.
func NewMedianAbsoluteError(opts ...Option) *MedianAbsoluteError {
	return &MedianAbsoluteError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianAbsoluteError) Name() string { return "MedianAbsoluteError" }

// Evaluate computes the metric.
func (m *MedianAbsoluteError) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		absErrors(buf, in.YTrue.Column(c), in.YPred.Column(c))
		per[c] = medianOf(buf)
	}

	return m.cfg.result(per), nil
}
