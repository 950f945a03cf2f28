package metrics

// MeanRelativeAbsoluteError computes the mean of the pointwise absolute
// errors of y_pred divided by those of the benchmark prediction. Consumes
// y_true, y_pred, and y_pred_benchmark; fails with ErrZeroDenominator when
// the benchmark is exact at any timepoint.
type MeanRelativeAbsoluteError struct {
	cfg config
}

// NewMeanRelativeAbsoluteError creates the metric.
func NewMeanRelativeAbsoluteError(opts ...Option) *MeanRelativeAbsoluteError {
	return &MeanRelativeAbsoluteError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MeanRelativeAbsoluteError) Name() string { return "MeanRelativeAbsoluteError" }

// Evaluate computes the metric.
func (m *MeanRelativeAbsoluteError) Evaluate(in Inputs) (Result, error) {
	return evalRelative(m.cfg, in, meanOf, AbsoluteError)
}

// MedianRelativeAbsoluteError computes the median relative absolute error
// against the benchmark prediction. Consumes y_true, y_pred, and
// y_pred_benchmark.
type MedianRelativeAbsoluteError struct {
	cfg config
}

// NewMedianRelativeAbsoluteError creates the metric.
func NewMedianRelativeAbsoluteError(opts ...Option) *MedianRelativeAbsoluteError {
	return &MedianRelativeAbsoluteError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *MedianRelativeAbsoluteError) Name() string { return "MedianRelativeAbsoluteError" }

// Evaluate computes the metric.
func (m *MedianRelativeAbsoluteError) Evaluate(in Inputs) (Result, error) {
	return evalRelative(m.cfg, in, medianOf, AbsoluteError)
}

// GeometricMeanRelativeAbsoluteError computes the geometric mean of the
// pointwise relative absolute errors against the benchmark prediction.
// Consumes y_true, y_pred, and y_pred_benchmark.
type GeometricMeanRelativeAbsoluteError struct {
	cfg config
}

// NewGeometricMeanRelativeAbsoluteError creates the metric.
func NewGeometricMeanRelativeAbsoluteError(opts ...Option) *GeometricMeanRelativeAbsoluteError {
	return &GeometricMeanRelativeAbsoluteError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *GeometricMeanRelativeAbsoluteError) Name() string {
	return "GeometricMeanRelativeAbsoluteError"
}

// Evaluate computes the metric.
func (m *GeometricMeanRelativeAbsoluteError) Evaluate(in Inputs) (Result, error) {
	return evalRelative(m.cfg, in, gmeanOf, AbsoluteError)
}

// GeometricMeanRelativeSquaredError computes the geometric mean of the
// pointwise relative squared errors against the benchmark prediction.
// Consumes y_true, y_pred, and y_pred_benchmark.
type GeometricMeanRelativeSquaredError struct {
	cfg config
}

// NewGeometricMeanRelativeSquaredError creates the metric.
func NewGeometricMeanRelativeSquaredError(opts ...Option) *GeometricMeanRelativeSquaredError {
	return &GeometricMeanRelativeSquaredError{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *GeometricMeanRelativeSquaredError) Name() string {
	return "GeometricMeanRelativeSquaredError"
}

// Evaluate computes the metric.
func (m *GeometricMeanRelativeSquaredError) Evaluate(in Inputs) (Result, error) {
	return evalRelative(m.cfg, in, gmeanOf, SquaredError)
}

// RelativeLoss computes the aggregate pointwise loss of y_pred divided by the
// same aggregate loss of the benchmark prediction, per column. The loss is
// selected with WithRelativeLoss (absolute by default). Consumes y_true,
// y_pred, and y_pred_benchmark.
type RelativeLoss struct {
	cfg config
}

// NewRelativeLoss creates the metric.
func NewRelativeLoss(opts ...Option) *RelativeLoss {
	return &RelativeLoss{cfg: applyOptions(opts...)}
}

// Name returns the metric name.
func (m *RelativeLoss) Name() string { return "RelativeLoss" }

// Evaluate computes the metric.
func (m *RelativeLoss) Evaluate(in Inputs) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}
	if err := requireBenchmark(in); err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		yTrue := in.YTrue.Column(c)

		if m.cfg.relativeLoss == SquaredError {
			sqErrors(buf, yTrue, in.YPred.Column(c))
		} else {
			absErrors(buf, yTrue, in.YPred.Column(c))
		}
		num := meanOf(buf)

		if m.cfg.relativeLoss == SquaredError {
			sqErrors(buf, yTrue, in.YPredBenchmark.Column(c))
		} else {
			absErrors(buf, yTrue, in.YPredBenchmark.Column(c))
		}
		den := meanOf(buf)
		if den == 0 {
			return Result{}, ErrZeroDenominator
		}

		per[c] = num / den
	}

	return m.cfg.result(per), nil
}

// evalRelative evaluates the relative-error family on pointwise ratios.
func evalRelative(cfg config, in Inputs, aggregate func([]float64) float64, f ErrorFunction) (Result, error) {
	cols, err := requireTruePred(in)
	if err != nil {
		return Result{}, err
	}
	if err := requireBenchmark(in); err != nil {
		return Result{}, err
	}

	per := make([]float64, cols)
	buf := make([]float64, in.YTrue.Len())
	for c := 0; c < cols; c++ {
		err := relErrors(buf, in.YTrue.Column(c), in.YPred.Column(c), in.YPredBenchmark.Column(c), f)
		if err != nil {
			return Result{}, err
		}
		per[c] = aggregate(buf)
	}

	return cfg.result(per), nil
}
