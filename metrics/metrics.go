// Package metrics implements forecasting performance metrics over
// multi-column series.
//
// Every metric is constructed from functional options and evaluated against
// an Inputs value carrying the true series, the predicted series, and two
// optional companions: a benchmark prediction (relative metrics) and the
// training series (scaled metrics). Metrics accept the full Inputs and
// consume a documented subset; unused inputs are ignored. Evaluation is pure:
// the same metric and inputs always produce the same Result.
package metrics

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-forecast/internal/fmath"
	"github.com/cwbudde/algo-forecast/series"
)

var (
	// ErrMissingInput indicates y_true or y_pred was not provided.
	ErrMissingInput = errors.New("y_true and y_pred are required")
	// ErrShapeMismatch indicates two input series disagree in shape.
	ErrShapeMismatch = errors.New("input series shapes do not match")
	// ErrMissingTrain indicates a scaled metric was evaluated without y_train.
	ErrMissingTrain = errors.New("y_train is required for scaled metrics")
	// ErrMissingBenchmark indicates a relative metric was evaluated without
	// y_pred_benchmark.
	ErrMissingBenchmark = errors.New("y_pred_benchmark is required for relative metrics")
	// ErrZeroDenominator indicates a percentage, scaled, or relative loss
	// divided by zero.
	ErrZeroDenominator = errors.New("loss denominator is zero")
	// ErrShortTrain indicates y_train has fewer timepoints than the seasonal
	// period requires.
	ErrShortTrain = errors.New("y_train is shorter than the seasonal period")
)

// Multioutput controls how per-column metric values are reported.
type Multioutput int

const (
	// UniformAverage aggregates per-column values into a single scalar.
	UniformAverage Multioutput = iota
	// RawValues reports one value per output column.
	RawValues
)

// String returns the canonical name of the mode.
func (m Multioutput) String() string {
	switch m {
	case UniformAverage:
		return "uniform_average"
	case RawValues:
		return "raw_values"
	default:
		return fmt.Sprintf("multioutput(%d)", int(m))
	}
}

// ParseMultioutput parses a canonical mode name.
func ParseMultioutput(s string) (Multioutput, error) {
	switch s {
	case "uniform_average":
		return UniformAverage, nil
	case "raw_values":
		return RawValues, nil
	default:
		return UniformAverage, fmt.Errorf("unknown multioutput mode %q", s)
	}
}

// Inputs carries the series a metric may consume. YTrue and YPred are always
// required. YPredBenchmark is consumed by relative metrics, YTrain by scaled
// metrics; both are ignored otherwise.
type Inputs struct {
	YTrue          *series.Series
	YPred          *series.Series
	YPredBenchmark *series.Series
	YTrain         *series.Series
}

// Result holds a metric evaluation outcome. For UniformAverage, Scalar holds
// the aggregated value and Values is nil. For RawValues, Values holds one
// entry per output column and Scalar is zero.
type Result struct {
	Multioutput Multioutput
	Scalar      float64
	Values      []float64
}

// Equal reports whether two results agree in mode and shape, with values
// compared within tol.
func (r Result) Equal(other Result, tol float64) bool {
	if r.Multioutput != other.Multioutput {
		return false
	}
	if len(r.Values) != len(other.Values) {
		return false
	}

	if !fmath.NearlyEqual(r.Scalar, other.Scalar, tol) {
		return false
	}
	for i := range r.Values {
		if !fmath.NearlyEqual(r.Values[i], other.Values[i], tol) {
			return false
		}
	}
	return true
}

// Metric is a forecasting performance metric.
type Metric interface {
	Name() string
	Evaluate(in Inputs) (Result, error)
}

// requireTruePred validates the mandatory input pair and returns the shared
// column count.
func requireTruePred(in Inputs) (int, error) {
	if in.YTrue == nil || in.YPred == nil {
		return 0, ErrMissingInput
	}
	if err := sameShape(in.YTrue, in.YPred, "y_pred"); err != nil {
		return 0, err
	}
	return in.YTrue.Columns(), nil
}

// requireBenchmark validates YPredBenchmark against YTrue.
func requireBenchmark(in Inputs) error {
	if in.YPredBenchmark == nil {
		return ErrMissingBenchmark
	}
	return sameShape(in.YTrue, in.YPredBenchmark, "y_pred_benchmark")
}

// requireTrain validates YTrain column count against YTrue. The training
// series may have a different number of timepoints.
func requireTrain(in Inputs) error {
	if in.YTrain == nil {
		return ErrMissingTrain
	}
	if in.YTrain.Columns() != in.YTrue.Columns() {
		return fmt.Errorf("y_train has %d columns, y_true has %d: %w",
			in.YTrain.Columns(), in.YTrue.Columns(), ErrShapeMismatch)
	}
	return nil
}

func sameShape(ref, other *series.Series, label string) error {
	if other.Columns() != ref.Columns() {
		return fmt.Errorf("%s has %d columns, y_true has %d: %w",
			label, other.Columns(), ref.Columns(), ErrShapeMismatch)
	}
	if other.Len() != ref.Len() {
		return fmt.Errorf("%s has %d timepoints, y_true has %d: %w",
			label, other.Len(), ref.Len(), ErrShapeMismatch)
	}
	return nil
}
