package metrics

// Entry describes a registered metric: its canonical name, a constructor, and
// which optional inputs it consumes beyond y_true and y_pred.
type Entry struct {
	Name           string
	New            func(opts ...Option) Metric
	NeedsTrain     bool
	NeedsBenchmark bool
}

// registry enumerates every metric exported by this package. Order is the
// order metrics are reported in.
var registry = []Entry{
	{"MeanAbsoluteError", func(opts ...Option) Metric { return NewMeanAbsoluteError(opts...) }, false, false},
	{"MedianAbsoluteError", func(opts ...Option) Metric { return NewMedianAbsoluteError(opts...) }, false, false},
	{"MeanSquaredError", func(opts ...Option) Metric { return NewMeanSquaredError(opts...) }, false, false},
	{"MedianSquaredError", func(opts ...Option) Metric { return NewMedianSquaredError(opts...) }, false, false},
	{"MeanAbsolutePercentageError", func(opts ...Option) Metric { return NewMeanAbsolutePercentageError(opts...) }, false, false},
	{"MedianAbsolutePercentageError", func(opts ...Option) Metric { return NewMedianAbsolutePercentageError(opts...) }, false, false},
	{"MeanSquaredPercentageError", func(opts ...Option) Metric { return NewMeanSquaredPercentageError(opts...) }, false, false},
	{"MedianSquaredPercentageError", func(opts ...Option) Metric { return NewMedianSquaredPercentageError(opts...) }, false, false},
	{"MeanAbsoluteScaledError", func(opts ...Option) Metric { return NewMeanAbsoluteScaledError(opts...) }, true, false},
	{"MedianAbsoluteScaledError", func(opts ...Option) Metric { return NewMedianAbsoluteScaledError(opts...) }, true, false},
	{"MeanSquaredScaledError", func(opts ...Option) Metric { return NewMeanSquaredScaledError(opts...) }, true, false},
	{"MedianSquaredScaledError", func(opts ...Option) Metric { return NewMedianSquaredScaledError(opts...) }, true, false},
	{"MeanRelativeAbsoluteError", func(opts ...Option) Metric { return NewMeanRelativeAbsoluteError(opts...) }, false, true},
	{"MedianRelativeAbsoluteError", func(opts ...Option) Metric { return NewMedianRelativeAbsoluteError(opts...) }, false, true},
	{"GeometricMeanRelativeAbsoluteError", func(opts ...Option) Metric { return NewGeometricMeanRelativeAbsoluteError(opts...) }, false, true},
	{"GeometricMeanRelativeSquaredError", func(opts ...Option) Metric { return NewGeometricMeanRelativeSquaredError(opts...) }, false, true},
	{"MeanAsymmetricError", func(opts ...Option) Metric { return NewMeanAsymmetricError(opts...) }, false, false},
	{"RelativeLoss", func(opts ...Option) Metric { return NewRelativeLoss(opts...) }, false, true},
}

// Registry returns all registered metrics in report order.
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registry entry with the given canonical name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
