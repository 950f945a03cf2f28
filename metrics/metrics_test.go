package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-forecast/series"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustSeries(t *testing.T, cols ...[]float64) *series.Series {
	t.Helper()

	s, err := series.New(cols...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func scalarOf(t *testing.T, m Metric, in Inputs) float64 {
	t.Helper()

	res, err := m.Evaluate(in)
	if err != nil {
		t.Fatalf("%s: %v", m.Name(), err)
	}
	if res.Multioutput != UniformAverage {
		t.Fatalf("%s: Multioutput = %v, want uniform_average", m.Name(), res.Multioutput)
	}
	return res.Scalar
}

func TestMeanAbsoluteError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2, 3, 4}),
		YPred: mustSeries(t, []float64{1.5, 2, 2, 5}),
	}

	got := scalarOf(t, NewMeanAbsoluteError(), in)
	if !almostEqual(got, 0.625, tolerance) {
		t.Errorf("MAE = %g, want 0.625", got)
	}
}

func TestMedianAbsoluteError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2, 3}),
		YPred: mustSeries(t, []float64{1.1, 2.5, 2}),
	}

	// abs errors [0.1, 0.5, 1], median 0.5
	got := scalarOf(t, NewMedianAbsoluteError(), in)
	if !almostEqual(got, 0.5, tolerance) {
		t.Errorf("MdAE = %g, want 0.5", got)
	}
}

func TestMeanSquaredError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2, 3, 4}),
		YPred: mustSeries(t, []float64{1.5, 2, 2, 5}),
	}

	got := scalarOf(t, NewMeanSquaredError(), in)
	if !almostEqual(got, 0.5625, tolerance) {
		t.Errorf("MSE = %g, want 0.5625", got)
	}

	root := scalarOf(t, NewMeanSquaredError(WithSquareRoot()), in)
	if !almostEqual(root, 0.75, tolerance) {
		t.Errorf("RMSE = %g, want 0.75", root)
	}
}

func TestMeanAbsolutePercentageError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2, 4}),
		YPred: mustSeries(t, []float64{1.1, 1.8, 5}),
	}

	got := scalarOf(t, NewMeanAbsolutePercentageError(), in)
	if !almostEqual(got, 0.15, 1e-10) {
		t.Errorf("MAPE = %g, want 0.15", got)
	}

	med := scalarOf(t, NewMedianAbsolutePercentageError(), in)
	if !almostEqual(med, 0.1, 1e-10) {
		t.Errorf("MdAPE = %g, want 0.1", med)
	}
}

func TestSymmetricPercentageError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1}),
		YPred: mustSeries(t, []float64{3}),
	}

	// 2*|1-3| / (|1|+|3|) = 1
	got := scalarOf(t, NewMeanAbsolutePercentageError(WithSymmetric()), in)
	if !almostEqual(got, 1, tolerance) {
		t.Errorf("sMAPE = %g, want 1", got)
	}
}

func TestPercentageErrorZeroTrue(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{0, 1}),
		YPred: mustSeries(t, []float64{1, 1}),
	}

	_, err := NewMeanAbsolutePercentageError().Evaluate(in)
	if !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("err = %v, want ErrZeroDenominator", err)
	}
}

func TestMeanAbsoluteScaledError(t *testing.T) {
	in := Inputs{
		YTrue:  mustSeries(t, []float64{10, 12}),
		YPred:  mustSeries(t, []float64{11, 14}),
		YTrain: mustSeries(t, []float64{1, 2, 4, 7}),
	}

	// naive train MAE = (1+2+3)/3 = 2, forecast MAE = 1.5
	got := scalarOf(t, NewMeanAbsoluteScaledError(), in)
	if !almostEqual(got, 0.75, tolerance) {
		t.Errorf("MASE = %g, want 0.75", got)
	}
}

func TestScaledErrorSeasonalPeriod(t *testing.T) {
	in := Inputs{
		YTrue:  mustSeries(t, []float64{5, 5}),
		YPred:  mustSeries(t, []float64{4, 6}),
		YTrain: mustSeries(t, []float64{1, 10, 3, 14}),
	}

	// sp=2: diffs |3-1|, |14-10| mean = 3, forecast MAE = 1
	got := scalarOf(t, NewMeanAbsoluteScaledError(WithSeasonalPeriod(2)), in)
	if !almostEqual(got, 1.0/3.0, tolerance) {
		t.Errorf("seasonal MASE = %g, want 1/3", got)
	}
}

func TestScaledErrorFailures(t *testing.T) {
	yTrue := mustSeries(t, []float64{1, 2})
	yPred := mustSeries(t, []float64{2, 3})

	_, err := NewMeanAbsoluteScaledError().Evaluate(Inputs{YTrue: yTrue, YPred: yPred})
	if !errors.Is(err, ErrMissingTrain) {
		t.Errorf("missing train: err = %v, want ErrMissingTrain", err)
	}

	short := Inputs{YTrue: yTrue, YPred: yPred, YTrain: mustSeries(t, []float64{1, 2})}
	_, err = NewMeanAbsoluteScaledError(WithSeasonalPeriod(2)).Evaluate(short)
	if !errors.Is(err, ErrShortTrain) {
		t.Errorf("short train: err = %v, want ErrShortTrain", err)
	}

	flat := Inputs{YTrue: yTrue, YPred: yPred, YTrain: mustSeries(t, []float64{3, 3, 3})}
	_, err = NewMeanAbsoluteScaledError().Evaluate(flat)
	if !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("flat train: err = %v, want ErrZeroDenominator", err)
	}
}

func TestMeanRelativeAbsoluteError(t *testing.T) {
	in := Inputs{
		YTrue:          mustSeries(t, []float64{1, 2}),
		YPred:          mustSeries(t, []float64{2, 4}),
		YPredBenchmark: mustSeries(t, []float64{3, 6}),
	}

	// ratios [1/2, 2/4], mean 0.5
	got := scalarOf(t, NewMeanRelativeAbsoluteError(), in)
	if !almostEqual(got, 0.5, tolerance) {
		t.Errorf("MRAE = %g, want 0.5", got)
	}
}

func TestGeometricMeanRelativeAbsoluteError(t *testing.T) {
	in := Inputs{
		YTrue:          mustSeries(t, []float64{2, 4}),
		YPred:          mustSeries(t, []float64{3, 2}),
		YPredBenchmark: mustSeries(t, []float64{4, 2}),
	}

	// ratios [0.5, 1], gmean sqrt(0.5)
	got := scalarOf(t, NewGeometricMeanRelativeAbsoluteError(), in)
	if !almostEqual(got, math.Sqrt(0.5), 1e-10) {
		t.Errorf("GMRAE = %g, want %g", got, math.Sqrt(0.5))
	}
}

func TestRelativeMetricFailures(t *testing.T) {
	yTrue := mustSeries(t, []float64{1, 2})
	yPred := mustSeries(t, []float64{2, 3})

	_, err := NewMeanRelativeAbsoluteError().Evaluate(Inputs{YTrue: yTrue, YPred: yPred})
	if !errors.Is(err, ErrMissingBenchmark) {
		t.Errorf("missing benchmark: err = %v, want ErrMissingBenchmark", err)
	}

	exact := Inputs{YTrue: yTrue, YPred: yPred, YPredBenchmark: mustSeries(t, []float64{1, 3})}
	_, err = NewMeanRelativeAbsoluteError().Evaluate(exact)
	if !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("exact benchmark: err = %v, want ErrZeroDenominator", err)
	}
}

func TestRelativeLoss(t *testing.T) {
	in := Inputs{
		YTrue:          mustSeries(t, []float64{1, 2, 3}),
		YPred:          mustSeries(t, []float64{2, 3, 4}),
		YPredBenchmark: mustSeries(t, []float64{3, 4, 5}),
	}

	// mean abs losses: 1 vs 2
	got := scalarOf(t, NewRelativeLoss(), in)
	if !almostEqual(got, 0.5, tolerance) {
		t.Errorf("RelativeLoss = %g, want 0.5", got)
	}

	// mean squared losses: 1 vs 4
	sq := scalarOf(t, NewRelativeLoss(WithRelativeLoss(SquaredError)), in)
	if !almostEqual(sq, 0.25, tolerance) {
		t.Errorf("squared RelativeLoss = %g, want 0.25", sq)
	}
}

func TestMeanAsymmetricError(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2, 3}),
		YPred: mustSeries(t, []float64{2, 1, 3}),
	}

	// errors [-1, 1, 0]: squared left, absolute right -> [1, 1, 0]
	got := scalarOf(t, NewMeanAsymmetricError(), in)
	if !almostEqual(got, 2.0/3.0, tolerance) {
		t.Errorf("MeanAsymmetricError = %g, want 2/3", got)
	}

	// swapped error functions -> [1, 1, 0] becomes [|-1|, 1^2, 0] = same
	// values here, so use a threshold instead: with threshold 2 all errors are
	// "left" and squared.
	th := scalarOf(t, NewMeanAsymmetricError(
		WithAsymmetricThreshold(2),
		WithLeftErrorFunction(SquaredError),
		WithRightErrorFunction(SquaredError),
	), in)
	if !almostEqual(th, 2.0/3.0, tolerance) {
		t.Errorf("thresholded MeanAsymmetricError = %g, want 2/3", th)
	}
}

func TestRawValuesPerColumn(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2}, []float64{10, 20}),
		YPred: mustSeries(t, []float64{2, 3}, []float64{10, 24}),
	}

	res, err := NewMeanAbsoluteError(WithMultioutput(RawValues)).Evaluate(in)
	if err != nil {
		t.Fatal(err)
	}

	if res.Multioutput != RawValues {
		t.Fatalf("Multioutput = %v, want raw_values", res.Multioutput)
	}
	want := []float64{1, 2}
	if len(res.Values) != len(want) {
		t.Fatalf("Values length = %d, want %d", len(res.Values), len(want))
	}
	for i := range want {
		if !almostEqual(res.Values[i], want[i], tolerance) {
			t.Errorf("Values[%d] = %g, want %g", i, res.Values[i], want[i])
		}
	}
}

func TestUniformAverageAcrossColumns(t *testing.T) {
	in := Inputs{
		YTrue: mustSeries(t, []float64{1, 2}, []float64{10, 20}),
		YPred: mustSeries(t, []float64{2, 3}, []float64{10, 24}),
	}

	// per-column MAE [1, 2], averaged
	got := scalarOf(t, NewMeanAbsoluteError(), in)
	if !almostEqual(got, 1.5, tolerance) {
		t.Errorf("uniform average = %g, want 1.5", got)
	}
}

func TestInputValidation(t *testing.T) {
	yTrue := mustSeries(t, []float64{1, 2, 3})

	_, err := NewMeanAbsoluteError().Evaluate(Inputs{YTrue: yTrue})
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("missing y_pred: err = %v, want ErrMissingInput", err)
	}

	_, err = NewMeanAbsoluteError().Evaluate(Inputs{
		YTrue: yTrue,
		YPred: mustSeries(t, []float64{1, 2}),
	})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("length mismatch: err = %v, want ErrShapeMismatch", err)
	}

	_, err = NewMeanAbsoluteError().Evaluate(Inputs{
		YTrue: yTrue,
		YPred: mustSeries(t, []float64{1, 2, 3}, []float64{1, 2, 3}),
	})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("column mismatch: err = %v, want ErrShapeMismatch", err)
	}
}

func TestResultEqual(t *testing.T) {
	scalar := Result{Multioutput: UniformAverage, Scalar: 1.5}
	raw := Result{Multioutput: RawValues, Values: []float64{1, 2}}

	if !scalar.Equal(Result{Multioutput: UniformAverage, Scalar: 1.5 + 1e-14}, 1e-12) {
		t.Error("near-identical scalars reported unequal")
	}
	if scalar.Equal(Result{Multioutput: UniformAverage, Scalar: 2}, 1e-12) {
		t.Error("different scalars reported equal")
	}
	if scalar.Equal(raw, 1e-12) {
		t.Error("different modes reported equal")
	}
	if raw.Equal(Result{Multioutput: RawValues, Values: []float64{1}}, 1e-12) {
		t.Error("different lengths reported equal")
	}
	if !raw.Equal(Result{Multioutput: RawValues, Values: []float64{1, 2}}, 1e-12) {
		t.Error("identical raw values reported unequal")
	}
}

func TestParseMultioutput(t *testing.T) {
	m, err := ParseMultioutput("uniform_average")
	if err != nil || m != UniformAverage {
		t.Errorf("ParseMultioutput(uniform_average) = %v, %v", m, err)
	}

	m, err = ParseMultioutput("raw_values")
	if err != nil || m != RawValues {
		t.Errorf("ParseMultioutput(raw_values) = %v, %v", m, err)
	}

	if _, err := ParseMultioutput("bogus"); err == nil {
		t.Error("ParseMultioutput(bogus): expected error")
	}

	if got := UniformAverage.String(); got != "uniform_average" {
		t.Errorf("UniformAverage.String() = %q", got)
	}
	if got := RawValues.String(); got != "raw_values" {
		t.Errorf("RawValues.String() = %q", got)
	}
}
