package metrics

// ErrorFunction selects the pointwise loss used by configurable metrics.
type ErrorFunction int

const (
	// AbsoluteError uses |y_true - y_pred|.
	AbsoluteError ErrorFunction = iota
	// SquaredError uses (y_true - y_pred)^2.
	SquaredError
)

// String returns the canonical name of the error function.
func (f ErrorFunction) String() string {
	switch f {
	case AbsoluteError:
		return "absolute"
	case SquaredError:
		return "squared"
	default:
		return "unknown"
	}
}

type config struct {
	multioutput    Multioutput
	seasonalPeriod int
	squareRoot     bool
	symmetric      bool
	threshold      float64
	leftError      ErrorFunction
	rightError     ErrorFunction
	relativeLoss   ErrorFunction
}

// Option configures a metric at construction time. Options that do not apply
// to a given metric are ignored by it.
type Option func(*config)

func defaultConfig() config {
	return config{
		multioutput:    UniformAverage,
		seasonalPeriod: 1,
		leftError:      SquaredError,
		rightError:     AbsoluteError,
		relativeLoss:   AbsoluteError,
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMultioutput sets how per-column values are reported.
func WithMultioutput(m Multioutput) Option {
	return func(cfg *config) {
		cfg.multioutput = m
	}
}

// WithSeasonalPeriod sets the seasonal period used by scaled metrics when
// computing the naive in-sample benchmark. Default 1 (non-seasonal).
func WithSeasonalPeriod(sp int) Option {
	return func(cfg *config) {
		if sp > 0 {
			cfg.seasonalPeriod = sp
		}
	}
}

// WithSquareRoot makes squared-error metrics report the root of their value,
// e.g. turning MeanSquaredError into RMSE.
func WithSquareRoot() Option {
	return func(cfg *config) {
		cfg.squareRoot = true
	}
}

// WithSymmetric makes percentage metrics use the symmetric formulation,
// e.g. turning MeanAbsolutePercentageError into sMAPE.
func WithSymmetric() Option {
	return func(cfg *config) {
		cfg.symmetric = true
	}
}

// WithAsymmetricThreshold sets the error value at which MeanAsymmetricError
// switches between its left and right error functions. Default 0.
func WithAsymmetricThreshold(threshold float64) Option {
	return func(cfg *config) {
		cfg.threshold = threshold
	}
}

// WithLeftErrorFunction sets the loss applied to errors below the asymmetric
// threshold. Default SquaredError.
func WithLeftErrorFunction(f ErrorFunction) Option {
	return func(cfg *config) {
		cfg.leftError = f
	}
}

// WithRightErrorFunction sets the loss applied to errors at or above the
// asymmetric threshold. Default AbsoluteError.
func WithRightErrorFunction(f ErrorFunction) Option {
	return func(cfg *config) {
		cfg.rightError = f
	}
}

// WithRelativeLoss sets the pointwise loss RelativeLoss compares between the
// prediction and the benchmark. Default AbsoluteError.
func WithRelativeLoss(f ErrorFunction) Option {
	return func(cfg *config) {
		cfg.relativeLoss = f
	}
}
