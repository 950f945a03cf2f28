package metrics

// MeanAsymmetricError computes the mean of an asymmetric pointwise loss:
// errors y_true - y_pred below the threshold are penalized with the left
// error function, errors at or above it with the right one. Defaults
// (threshold 0, squared left, absolute right) penalize over-prediction
// quadratically and under-prediction linearly. Consumes y_true and y_pred.
type MeanAsymmetricError struct {
	cfg config
}

// NewMeanAsymmetricError creates the metric.
func NewMeanAsymmetricError(opts ...Option) *MeanAsymmetricError {
	return &MeanAsymmetricError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanAsymmetricError) Name() string { return "MeanAsymmetricError" }

// Evaluate computes the metric.
func (m *MeanAsymmetricError) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		diffInto(buf, in.YTrue.Column(c), in.YPred.Column(c))
		for i, e := range buf {
			if e < m.cfg.threshold {
				buf[i] = pointLoss(e, m.cfg.leftError)
			} else {
				buf[i] = pointLoss(e, m.cfg.rightError)
			}
		}
		per[c] = meanOf(buf)
	}

	return m.cfg.result(per), nil
}
